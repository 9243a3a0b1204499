// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/jsontree"
	"codello.dev/asn1codec/tlv"
)

var tagBitString = asn1.Universal(asn1.TagBitString)

var (
	errEmptyBitString   = errors.New("zero length BIT STRING")
	errBitStringPadding = errors.New("invalid padding bits in BIT STRING")
	errInvalidBitString = errors.New("BitString is not valid")
)

// decodeBits parses the content octets of a BIT STRING. Padding bits are set
// to zero in the returned value.
func decodeBits(h tlv.Header, content []byte) (asn1.BitString, error) {
	if len(content) == 0 {
		return asn1.BitString{}, &SyntaxError{h.Tag, errEmptyBitString}
	}
	padding := int(content[0])
	if padding > 7 || len(content) == 1 && padding > 0 {
		return asn1.BitString{}, &SyntaxError{h.Tag, errBitStringPadding}
	}
	bs := asn1.BitString{
		Bytes:     bytes.Clone(content[1:]),
		BitLength: (len(content)-1)*8 - padding,
	}
	if bs.Bytes == nil {
		bs.Bytes = []byte{}
	}
	if len(bs.Bytes) > 0 {
		// zero out padding bits
		bs.Bytes[len(bs.Bytes)-1] &= ^byte(1<<uint(padding) - 1)
	}
	return bs, nil
}

// appendBits appends the content octets of the BIT STRING bs to dst.
func appendBits(dst []byte, bs asn1.BitString) ([]byte, error) {
	if !bs.IsValid() {
		return dst, errInvalidBitString
	}
	padding := byte(bs.Padding())
	dst = append(dst, padding)
	if len(bs.Bytes) == 0 {
		return dst, nil
	}
	dst = append(dst, bs.Bytes[:len(bs.Bytes)-1]...)
	// zero out any padding bits
	return append(dst, bs.Bytes[len(bs.Bytes)-1] & ^byte(1<<padding-1)), nil
}

// bitsJSON returns the JSON representation of a bit string.
func bitsJSON(b []byte, bitLength int) *jsontree.Object {
	obj := jsontree.NewObject()
	obj.Set("bytes", hex.EncodeToString(b))
	obj.Set("bits", int64(bitLength))
	return obj
}

// parseBitsJSON parses the JSON representation of a bit string.
func parseBitsJSON(v any) ([]byte, int, error) {
	obj, ok := v.(*jsontree.Object)
	if !ok {
		return nil, 0, ErrNotAnObject
	}
	bv, _ := obj.Get("bytes")
	b, err := jsonHex("BIT STRING", bv)
	if err != nil {
		return nil, 0, err
	}
	nv, _ := obj.Get("bits")
	n, err := jsonInt(nv)
	if err != nil {
		return nil, 0, err
	}
	if n < 0 || int64(len(b)) != (n+7)/8 {
		return nil, 0, fmt.Errorf("%w: %d bits do not fit %d bytes", ErrInvalidFormat, n, len(b))
	}
	return b, int(n), nil
}

//region [UNIVERSAL 3] BIT STRING

// BitString implements the ASN.1 BIT STRING type. The bits are left-aligned in
// memory: the first bit is the most significant bit of the first byte. See
// [asn1.BitString].
//
// The JSON representation is an object with the hex encoded bytes and the
// number of bits.
type BitString struct {
	asn1.BitString
}

func (s *BitString) BerTag() (asn1.Tag, bool) { return tagBitString, false }

func (s *BitString) BerDecode(b []byte) (int, error) { return decodeElement(s, tagBitString, b) }

func (s *BitString) BerDecodeContent(h tlv.Header, content []byte) (err error) {
	s.BitString, err = decodeBits(h, content)
	return err
}

func (s *BitString) BerEncode(dst []byte) ([]byte, error) { return encodeElement(s, tagBitString, dst) }

func (s *BitString) BerEncodeContent(dst []byte) ([]byte, error) {
	return appendBits(dst, s.BitString)
}

func (s *BitString) BerPrint(p *Printer, name string) error {
	return p.Value(name, "BIT STRING", fmt.Sprintf("(%d bit) %s", s.BitLength, s.BitString.String()))
}

func (s *BitString) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, bitsJSON(s.Bytes, s.BitLength))
}

func (s *BitString) JSONDecode(key string, root any) (int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		s.Reset()
		return 0, err
	}
	b, n, err := parseBitsJSON(v)
	if err != nil {
		return 0, err
	}
	s.BitString = asn1.BitString{Bytes: b, BitLength: n}
	return 1, nil
}

func (s *BitString) Reset() {
	s.BitString = asn1.BitString{}
}

//endregion

//region [UNIVERSAL 3] BIT STRING (right-aligned)

// RightAlignedBitString implements the ASN.1 BIT STRING type for values whose
// bits are right-aligned in memory, such as flag words: the padding bits
// occupy the most significant bits of the first byte. The wire encoding is
// identical to [BitString].
type RightAlignedBitString struct {
	Bytes     []byte
	BitLength int
}

// left returns the left-aligned representation of s.
func (s *RightAlignedBitString) left() asn1.BitString {
	return asn1.LeftAlign(s.Bytes, s.BitLength)
}

func (s *RightAlignedBitString) BerTag() (asn1.Tag, bool) { return tagBitString, false }

func (s *RightAlignedBitString) BerDecode(b []byte) (int, error) {
	return decodeElement(s, tagBitString, b)
}

func (s *RightAlignedBitString) BerDecodeContent(h tlv.Header, content []byte) error {
	bs, err := decodeBits(h, content)
	if err != nil {
		return err
	}
	s.Bytes = bytes.Clone(bs.RightAlign())
	s.BitLength = bs.BitLength
	return nil
}

func (s *RightAlignedBitString) BerEncode(dst []byte) ([]byte, error) {
	return encodeElement(s, tagBitString, dst)
}

func (s *RightAlignedBitString) BerEncodeContent(dst []byte) ([]byte, error) {
	if s.BitLength < 0 || len(s.Bytes) != (s.BitLength+7)/8 {
		return dst, errInvalidBitString
	}
	return appendBits(dst, s.left())
}

func (s *RightAlignedBitString) BerPrint(p *Printer, name string) error {
	return p.Value(name, "BIT STRING", fmt.Sprintf("(%d bit) % X", s.BitLength, s.Bytes))
}

func (s *RightAlignedBitString) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, bitsJSON(s.Bytes, s.BitLength))
}

func (s *RightAlignedBitString) JSONDecode(key string, root any) (int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		s.Reset()
		return 0, err
	}
	s.Bytes, s.BitLength, err = parseBitsJSON(v)
	if err != nil {
		return 0, err
	}
	return 1, nil
}

func (s *RightAlignedBitString) Reset() {
	*s = RightAlignedBitString{}
}

//endregion
