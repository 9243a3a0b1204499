// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/tlv"
)

var tagOctetString = asn1.Universal(asn1.TagOctetString)

// OctetString implements the ASN.1 OCTET STRING type. Decoding copies the
// content octets. Only the primitive encoding is supported. The JSON
// representation is a hex string.
type OctetString []byte

func (s *OctetString) BerTag() (asn1.Tag, bool) { return tagOctetString, false }

func (s *OctetString) BerDecode(b []byte) (int, error) { return decodeElement(s, tagOctetString, b) }

func (s *OctetString) BerDecodeContent(_ tlv.Header, content []byte) error {
	*s = bytes.Clone(content)
	if *s == nil {
		*s = OctetString{}
	}
	return nil
}

func (s *OctetString) BerEncode(dst []byte) ([]byte, error) {
	return encodeElement(s, tagOctetString, dst)
}

func (s *OctetString) BerEncodeContent(dst []byte) ([]byte, error) {
	return append(dst, *s...), nil
}

func (s *OctetString) BerPrint(p *Printer, name string) error {
	return p.Value(name, "OCTET STRING", fmt.Sprintf("(%d byte) % X", len(*s), []byte(*s)))
}

func (s *OctetString) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, hex.EncodeToString(*s))
}

func (s *OctetString) JSONDecode(key string, root any) (int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		s.Reset()
		return 0, err
	}
	b, err := jsonHex("OCTET STRING", v)
	if err != nil {
		return 0, err
	}
	*s = b
	return 1, nil
}

func (s *OctetString) Reset() {
	*s = nil
}
