// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/tlv"
)

var tagInteger = asn1.Universal(asn1.TagInteger)

var errEmptyInteger = errors.New("empty integer")

//region [UNIVERSAL 2] INTEGER

// Integer implements the ASN.1 INTEGER type for values that fit into an int64.
// The content octets of the last decode are retained and available via
// [Integer.Raw]. Encoding always produces the minimal two's-complement form of
// Value.
type Integer struct {
	Value int64
	raw   []byte
}

// NewInteger returns an Integer holding v.
func NewInteger(v int64) Integer {
	return Integer{Value: v}
}

// Raw returns the content octets from which i was decoded, or nil if i was not
// decoded from BER.
func (i *Integer) Raw() []byte {
	return i.raw
}

// SelectorKey implements [Selector].
func (i *Integer) SelectorKey() string {
	return strconv.FormatInt(i.Value, 10)
}

func (i *Integer) BerTag() (asn1.Tag, bool) { return tagInteger, false }

func (i *Integer) BerDecode(b []byte) (int, error) { return decodeElement(i, tagInteger, b) }

func (i *Integer) BerDecodeContent(h tlv.Header, content []byte) error {
	if len(content) == 0 {
		return &SyntaxError{h.Tag, errEmptyInteger}
	}
	if len(content) > 8 {
		return &SyntaxError{h.Tag, fmt.Errorf("%w: integer too large", ErrInvalidFormat)}
	}
	var val uint64
	for _, b := range content {
		val = val<<8 | uint64(b)
	}
	// Shift up and down in order to sign extend the result.
	v := int64(val << (64 - 8*len(content)))
	i.Value = v >> (64 - 8*len(content))
	i.raw = bytes.Clone(content)
	return nil
}

func (i *Integer) BerEncode(dst []byte) ([]byte, error) { return encodeElement(i, tagInteger, dst) }

func (i *Integer) BerEncodeContent(dst []byte) ([]byte, error) {
	return appendInt(dst, i.Value), nil
}

// appendInt appends the minimal two's-complement representation of v to dst.
func appendInt(dst []byte, v int64) []byte {
	var l int
	if v < 0 {
		l = (64 - bits.LeadingZeros64(^uint64(v)) + 8) / 8
	} else {
		l = (64 - bits.LeadingZeros64(uint64(v)) + 8) / 8
	}
	for j := l - 1; j >= 0; j-- {
		dst = append(dst, byte(v>>(8*j)))
	}
	return dst
}

func (i *Integer) BerPrint(p *Printer, name string) error {
	return p.Value(name, "INTEGER", strconv.FormatInt(i.Value, 10))
}

func (i *Integer) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, i.Value)
}

func (i *Integer) JSONDecode(key string, root any) (int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		i.Reset()
		return 0, err
	}
	if i.Value, err = jsonInt(v); err != nil {
		return 0, err
	}
	i.raw = nil
	return 1, nil
}

func (i *Integer) Reset() {
	*i = Integer{}
}

//endregion

//region [UNIVERSAL 2] INTEGER (unbounded)

// BigInteger implements the ASN.1 INTEGER type for non-negative values of
// arbitrary size. Bytes holds the big-endian magnitude of the value. Leading
// zero bytes in Bytes are insignificant.
//
// When encoding, a 0x00 byte is prepended if the most significant bit of the
// magnitude is set. When decoding, such a byte is required and redundant
// leading zeros are tolerated.
type BigInteger struct {
	Bytes []byte
}

// NewBigInteger returns a BigInteger holding the absolute value of x.
func NewBigInteger(x *big.Int) BigInteger {
	return BigInteger{Bytes: x.Bytes()}
}

// Int returns the value of i.
func (i *BigInteger) Int() *big.Int {
	return new(big.Int).SetBytes(i.Bytes)
}

// magnitude returns the magnitude of i without leading zeros.
func (i *BigInteger) magnitude() []byte {
	return bytes.TrimLeft(i.Bytes, "\x00")
}

func (i *BigInteger) BerTag() (asn1.Tag, bool) { return tagInteger, false }

func (i *BigInteger) BerDecode(b []byte) (int, error) { return decodeElement(i, tagInteger, b) }

func (i *BigInteger) BerDecodeContent(h tlv.Header, content []byte) error {
	if len(content) == 0 {
		return &SyntaxError{h.Tag, errEmptyInteger}
	}
	if content[0]&0x80 != 0 {
		return &SyntaxError{h.Tag, fmt.Errorf("%w: negative integer", ErrInvalidFormat)}
	}
	i.Bytes = bytes.Clone(bytes.TrimLeft(content, "\x00"))
	return nil
}

func (i *BigInteger) BerEncode(dst []byte) ([]byte, error) { return encodeElement(i, tagInteger, dst) }

func (i *BigInteger) BerEncodeContent(dst []byte) ([]byte, error) {
	m := i.magnitude()
	if len(m) == 0 || m[0]&0x80 != 0 {
		// Zero is written as a single 0 byte rather than no bytes.
		dst = append(dst, 0x00)
	}
	return append(dst, m...), nil
}

func (i *BigInteger) BerPrint(p *Printer, name string) error {
	return p.Value(name, "INTEGER", "0x"+i.hex())
}

// hex returns the upper case hex representation of the magnitude of i.
func (i *BigInteger) hex() string {
	m := i.magnitude()
	if len(m) == 0 {
		return "00"
	}
	return fmt.Sprintf("%X", m)
}

func (i *BigInteger) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, i.hex())
}

func (i *BigInteger) JSONDecode(key string, root any) (int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		i.Reset()
		return 0, err
	}
	s, err := jsonString("BigInteger", v)
	if err != nil {
		return 0, err
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	i.Bytes = bytes.TrimLeft(b, "\x00")
	return 1, nil
}

func (i *BigInteger) Reset() {
	i.Bytes = nil
}

//endregion
