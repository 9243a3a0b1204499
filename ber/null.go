// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/tlv"
)

var tagNull = asn1.Universal(asn1.TagNull)

// Null implements the ASN.1 NULL type. Its JSON representation is null.
type Null struct{}

func (n *Null) BerTag() (asn1.Tag, bool) { return tagNull, false }

func (n *Null) BerDecode(b []byte) (int, error) { return decodeElement(n, tagNull, b) }

func (n *Null) BerDecodeContent(h tlv.Header, content []byte) error {
	if len(content) > 0 {
		return &SyntaxError{h.Tag, errors.New("invalid NULL value")}
	}
	return nil
}

func (n *Null) BerEncode(dst []byte) ([]byte, error) { return encodeElement(n, tagNull, dst) }

func (n *Null) BerEncodeContent(dst []byte) ([]byte, error) { return dst, nil }

func (n *Null) BerPrint(p *Printer, name string) error {
	return p.Value(name, "NULL", "")
}

func (n *Null) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, nil)
}

func (n *Null) JSONDecode(key string, root any) (int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		return 0, err
	}
	if v != nil {
		return 0, jsonFormatError("NULL", v)
	}
	return 1, nil
}

func (n *Null) Reset() {}
