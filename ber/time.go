// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"time"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/tlv"
)

var (
	tagUTCTime         = asn1.Universal(asn1.TagUTCTime)
	tagGeneralizedTime = asn1.Universal(asn1.TagGeneralizedTime)

	errInvalidUTCTime         = errors.New("invalid UTCTime")
	errInvalidGeneralizedTime = errors.New("invalid GeneralizedTime")
)

//region [UNIVERSAL 23] UTCTime

// UTCTime implements the ASN.1 UTCTime type. Values are encoded as their ASN.1
// string representation, which is also used in JSON. Only years between 1950
// and 2049 can be represented.
type UTCTime time.Time

func (t *UTCTime) BerTag() (asn1.Tag, bool) { return tagUTCTime, false }

func (t *UTCTime) BerDecode(b []byte) (int, error) { return decodeElement(t, tagUTCTime, b) }

func (t *UTCTime) BerDecodeContent(h tlv.Header, content []byte) error {
	v, err := parseUTCTime(string(content))
	if err != nil {
		return &SyntaxError{h.Tag, err}
	}
	*t = UTCTime(v)
	return nil
}

func (t *UTCTime) BerEncode(dst []byte) ([]byte, error) { return encodeElement(t, tagUTCTime, dst) }

func (t *UTCTime) BerEncodeContent(dst []byte) ([]byte, error) {
	if !asn1.UTCTime(*t).IsValid() {
		return dst, errors.New("cannot represent time as UTCTime")
	}
	return append(dst, asn1.UTCTime(*t).String()...), nil
}

func (t *UTCTime) BerPrint(p *Printer, name string) error {
	return p.Value(name, "UTCTime", asn1.UTCTime(*t).String())
}

func (t *UTCTime) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, asn1.UTCTime(*t).String())
}

func (t *UTCTime) JSONDecode(key string, root any) (int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		t.Reset()
		return 0, err
	}
	s, err := jsonString("UTCTime", v)
	if err != nil {
		return 0, err
	}
	tt, err := parseUTCTime(s)
	if err != nil {
		return 0, jsonFormatError("UTCTime", v)
	}
	*t = UTCTime(tt)
	return 1, nil
}

func (t *UTCTime) Reset() { *t = UTCTime{} }

// parseUTCTime parses the ASN.1 string representation of a UTCTime.
func parseUTCTime(s string) (time.Time, error) {
	if len(s) < 11 || len(s) > 17 {
		return time.Time{}, errInvalidUTCTime
	}
	year := atoiN[int](s, 2)
	month := atoiN[time.Month](s[2:], 2)
	day := atoiN[int](s[4:], 2)
	hour := atoiN[int](s[6:], 2)
	minute := atoiN[int](s[8:], 2)
	s = s[10:]
	second := atoiN[int](s, 2)
	if second >= 0 {
		s = s[2:]
	} else {
		second = 0
	}
	loc := parseLocation(s)
	if loc == nil {
		return time.Time{}, errInvalidUTCTime
	}

	// UTCTime only encodes times prior to 2050. See https://tools.ietf.org/html/rfc5280#section-4.1.2.5.1
	if year < 0 {
		return time.Time{}, errInvalidUTCTime
	} else if year <= 49 {
		year += 2000
	} else {
		year += 1900
	}
	ret := time.Date(year, month, day, hour, minute, second, 0, loc)
	if ret.Year() != year || ret.Month() != month || ret.Day() != day || ret.Hour() != hour || ret.Minute() != minute || ret.Second() != second {
		return time.Time{}, errInvalidUTCTime
	}
	return ret, nil
}

func parseLocation(s string) *time.Location {
	if len(s) == 1 && s[0] == 'Z' {
		return time.UTC
	}
	if len(s) != 5 {
		return nil
	}
	if s[0] != '+' && s[0] != '-' {
		return nil
	}
	mul := 44 - int(s[0])
	locHour := atoiN[int](s[1:], 2)
	locMinute := atoiN[int](s[3:], 2)
	if locHour < 0 || locMinute < 0 {
		return nil
	}
	return time.FixedZone("", mul*(locHour*3600+locMinute*60))
}

func atoiN[T ~int | ~int64](s string, n int) (i T) {
	if len(s) < n {
		return -1
	}
	for j := 0; j < n; j++ {
		if s[j] < '0' || '9' < s[j] {
			return -1
		}
		i = i*10 + T(s[j]-'0')
	}
	return i
}

//endregion

//region [UNIVERSAL 24] GeneralizedTime

// GeneralizedTime implements the ASN.1 GeneralizedTime type. Values are encoded
// as their ASN.1 string representation, which is also used in JSON.
// Sub-nanosecond precision is silently discarded.
type GeneralizedTime time.Time

func (t *GeneralizedTime) BerTag() (asn1.Tag, bool) { return tagGeneralizedTime, false }

func (t *GeneralizedTime) BerDecode(b []byte) (int, error) {
	return decodeElement(t, tagGeneralizedTime, b)
}

func (t *GeneralizedTime) BerDecodeContent(h tlv.Header, content []byte) error {
	v, err := parseGeneralizedTime(string(content))
	if err != nil {
		return &SyntaxError{h.Tag, err}
	}
	*t = GeneralizedTime(v)
	return nil
}

func (t *GeneralizedTime) BerEncode(dst []byte) ([]byte, error) {
	return encodeElement(t, tagGeneralizedTime, dst)
}

func (t *GeneralizedTime) BerEncodeContent(dst []byte) ([]byte, error) {
	if !asn1.GeneralizedTime(*t).IsValid() {
		return dst, errors.New("cannot represent time as GeneralizedTime")
	}
	return append(dst, asn1.GeneralizedTime(*t).String()...), nil
}

func (t *GeneralizedTime) BerPrint(p *Printer, name string) error {
	return p.Value(name, "GeneralizedTime", asn1.GeneralizedTime(*t).String())
}

func (t *GeneralizedTime) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, asn1.GeneralizedTime(*t).String())
}

func (t *GeneralizedTime) JSONDecode(key string, root any) (int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		t.Reset()
		return 0, err
	}
	s, err := jsonString("GeneralizedTime", v)
	if err != nil {
		return 0, err
	}
	tt, err := parseGeneralizedTime(s)
	if err != nil {
		return 0, jsonFormatError("GeneralizedTime", v)
	}
	*t = GeneralizedTime(tt)
	return 1, nil
}

func (t *GeneralizedTime) Reset() { *t = GeneralizedTime{} }

// parseGeneralizedTime parses the ASN.1 string representation of a
// GeneralizedTime.
func parseGeneralizedTime(s string) (time.Time, error) {
	if len(s) < 10 {
		return time.Time{}, errInvalidGeneralizedTime
	}
	year := atoiN[int](s, 4)
	month := atoiN[time.Month](s[4:], 2)
	day := atoiN[int](s[6:], 2)
	hour := atoiN[time.Duration](s[8:], 2)
	if year < 0 || hour < 0 || 23 < hour {
		return time.Time{}, errInvalidGeneralizedTime
	}
	s = s[10:]
	dur := hour * time.Hour
	unit := time.Hour // unit for fractional time
	if len(s) >= 2 && '0' <= s[0] && s[0] <= '9' {
		minute := atoiN[time.Duration](s, 2)
		if minute < 0 || 59 < minute {
			return time.Time{}, errInvalidGeneralizedTime
		}
		dur += minute * time.Minute
		unit = time.Minute
		s = s[2:]
	}
	if len(s) >= 2 && '0' <= s[0] && s[0] <= '9' {
		second := atoiN[time.Duration](s, 2)
		if second < 0 || 59 < second {
			return time.Time{}, errInvalidGeneralizedTime
		}
		unit = time.Second
		dur += second * time.Second
		s = s[2:]
	}
	if len(s) > 0 && (s[0] == '.' || s[0] == ',') {
		i := 1
		for ; i < len(s); i++ {
			if s[i] < '0' || '9' < s[i] {
				break
			}
			unit /= 10
			dur += time.Duration(s[i]-'0') * unit
		}
		if i == 1 {
			return time.Time{}, errInvalidGeneralizedTime
		}
		s = s[i:]
	}
	var loc *time.Location
	if len(s) == 0 {
		loc = time.Local
	} else if loc = parseLocation(s); loc == nil {
		return time.Time{}, errInvalidGeneralizedTime
	}
	ret := time.Date(year, month, day, 0, 0, 0, 0, loc)
	ret = ret.Add(dur)
	if ret.Year() != year || ret.Month() != month || ret.Day() != day {
		return time.Time{}, errInvalidGeneralizedTime
	}
	return ret, nil
}

//endregion
