// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"strconv"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/tlv"
)

var (
	tagBoolean         = asn1.Universal(asn1.TagBoolean)
	tagUTF8String      = asn1.Universal(asn1.TagUTF8String)
	tagPrintableString = asn1.Universal(asn1.TagPrintableString)
	tagIA5String       = asn1.Universal(asn1.TagIA5String)
)

//region [UNIVERSAL 1] BOOLEAN

// Boolean implements the ASN.1 BOOLEAN type. When decoding, any non-zero
// content octet is interpreted as true. True is encoded as 0xFF.
type Boolean bool

func (v *Boolean) BerTag() (asn1.Tag, bool) { return tagBoolean, false }

func (v *Boolean) BerDecode(b []byte) (int, error) { return decodeElement(v, tagBoolean, b) }

func (v *Boolean) BerDecodeContent(h tlv.Header, content []byte) error {
	if len(content) != 1 {
		return &SyntaxError{h.Tag, errors.New("invalid BOOLEAN value")}
	}
	*v = content[0] != 0x00
	return nil
}

func (v *Boolean) BerEncode(dst []byte) ([]byte, error) { return encodeElement(v, tagBoolean, dst) }

func (v *Boolean) BerEncodeContent(dst []byte) ([]byte, error) {
	if *v {
		return append(dst, 0xFF), nil
	}
	return append(dst, 0x00), nil
}

func (v *Boolean) BerPrint(p *Printer, name string) error {
	return p.Value(name, "BOOLEAN", strconv.FormatBool(bool(*v)))
}

func (v *Boolean) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, bool(*v))
}

func (v *Boolean) JSONDecode(key string, root any) (int, error) {
	jv, ok, err := getJSON(key, root)
	if err != nil || !ok {
		v.Reset()
		return 0, err
	}
	b, ok := jv.(bool)
	if !ok {
		return 0, jsonFormatError("BOOLEAN", jv)
	}
	*v = Boolean(b)
	return 1, nil
}

func (v *Boolean) Reset() {
	*v = false
}

//endregion

//region [UNIVERSAL 12] UTF8String, [UNIVERSAL 19] PrintableString, [UNIVERSAL 22] IA5String

// stringType implements the operations shared by the ASN.1 string types.
// Strings are validated during encoding and decoding. Only the primitive
// encoding is supported.
type stringType struct {
	tag   asn1.Tag
	name  string
	valid func(string) bool
}

var (
	utf8StringType      = stringType{tagUTF8String, "UTF8String", asn1.ValidUTF8}
	printableStringType = stringType{tagPrintableString, "PrintableString", asn1.ValidPrintable}
	ia5StringType       = stringType{tagIA5String, "IA5String", asn1.ValidIA5}
)

func (t stringType) decode(h tlv.Header, content []byte) (string, error) {
	if !t.valid(string(content)) {
		return "", &SyntaxError{h.Tag, errors.New(t.name + " contains invalid characters")}
	}
	return string(content), nil
}

func (t stringType) encode(dst []byte, s string) ([]byte, error) {
	if !t.valid(s) {
		return dst, errors.New(t.name + " contains invalid characters")
	}
	return append(dst, s...), nil
}

func (t stringType) jsonDecode(key string, root any) (string, int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		return "", 0, err
	}
	s, err := jsonString(t.name, v)
	if err != nil {
		return "", 0, err
	}
	if !t.valid(s) {
		return "", 0, jsonFormatError(t.name, v)
	}
	return s, 1, nil
}

// UTF8String implements the ASN.1 UTF8String type.
type UTF8String string

// SelectorKey implements [Selector].
func (s *UTF8String) SelectorKey() string { return string(*s) }

func (s *UTF8String) BerTag() (asn1.Tag, bool) { return tagUTF8String, false }

func (s *UTF8String) BerDecode(b []byte) (int, error) { return decodeElement(s, tagUTF8String, b) }

func (s *UTF8String) BerDecodeContent(h tlv.Header, content []byte) error {
	v, err := utf8StringType.decode(h, content)
	*s = UTF8String(v)
	return err
}

func (s *UTF8String) BerEncode(dst []byte) ([]byte, error) {
	return encodeElement(s, tagUTF8String, dst)
}

func (s *UTF8String) BerEncodeContent(dst []byte) ([]byte, error) {
	return utf8StringType.encode(dst, string(*s))
}

func (s *UTF8String) BerPrint(p *Printer, name string) error {
	return p.Value(name, "UTF8String", strconv.Quote(string(*s)))
}

func (s *UTF8String) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, string(*s))
}

func (s *UTF8String) JSONDecode(key string, root any) (int, error) {
	v, n, err := utf8StringType.jsonDecode(key, root)
	*s = UTF8String(v)
	return n, err
}

func (s *UTF8String) Reset() { *s = "" }

// PrintableString implements the ASN.1 PrintableString type. In addition to
// the characters allowed by ASN.1, '*' and '&' are accepted.
type PrintableString string

// SelectorKey implements [Selector].
func (s *PrintableString) SelectorKey() string { return string(*s) }

func (s *PrintableString) BerTag() (asn1.Tag, bool) { return tagPrintableString, false }

func (s *PrintableString) BerDecode(b []byte) (int, error) {
	return decodeElement(s, tagPrintableString, b)
}

func (s *PrintableString) BerDecodeContent(h tlv.Header, content []byte) error {
	v, err := printableStringType.decode(h, content)
	*s = PrintableString(v)
	return err
}

func (s *PrintableString) BerEncode(dst []byte) ([]byte, error) {
	return encodeElement(s, tagPrintableString, dst)
}

func (s *PrintableString) BerEncodeContent(dst []byte) ([]byte, error) {
	return printableStringType.encode(dst, string(*s))
}

func (s *PrintableString) BerPrint(p *Printer, name string) error {
	return p.Value(name, "PrintableString", strconv.Quote(string(*s)))
}

func (s *PrintableString) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, string(*s))
}

func (s *PrintableString) JSONDecode(key string, root any) (int, error) {
	v, n, err := printableStringType.jsonDecode(key, root)
	*s = PrintableString(v)
	return n, err
}

func (s *PrintableString) Reset() { *s = "" }

// IA5String implements the ASN.1 IA5String type, consisting of ASCII
// characters only.
type IA5String string

// SelectorKey implements [Selector].
func (s *IA5String) SelectorKey() string { return string(*s) }

func (s *IA5String) BerTag() (asn1.Tag, bool) { return tagIA5String, false }

func (s *IA5String) BerDecode(b []byte) (int, error) { return decodeElement(s, tagIA5String, b) }

func (s *IA5String) BerDecodeContent(h tlv.Header, content []byte) error {
	v, err := ia5StringType.decode(h, content)
	*s = IA5String(v)
	return err
}

func (s *IA5String) BerEncode(dst []byte) ([]byte, error) {
	return encodeElement(s, tagIA5String, dst)
}

func (s *IA5String) BerEncodeContent(dst []byte) ([]byte, error) {
	return ia5StringType.encode(dst, string(*s))
}

func (s *IA5String) BerPrint(p *Printer, name string) error {
	return p.Value(name, "IA5String", strconv.Quote(string(*s)))
}

func (s *IA5String) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, string(*s))
}

func (s *IA5String) JSONDecode(key string, root any) (int, error) {
	v, n, err := ia5StringType.jsonDecode(key, root)
	*s = IA5String(v)
	return n, err
}

func (s *IA5String) Reset() { *s = "" }

//endregion
