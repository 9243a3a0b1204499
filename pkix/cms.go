// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkix

import (
	"codello.dev/asn1codec/ber"
)

// ContentInfo corresponds to the following ASN.1 type:
//
//	ContentInfo ::= SEQUENCE {
//		contentType ContentType,
//		content     [0] EXPLICIT ANY DEFINED BY contentType
//	}
//
// Content of type data is decoded as an OCTET STRING. Other content types are
// kept as raw values.
type ContentInfo struct {
	ContentType ber.ObjectIdentifier
	Data        ber.OctetString
	Content     ber.Any
}

// NewData returns a ContentInfo of type data holding b.
func NewData(b []byte) ContentInfo {
	return ContentInfo{ContentType: ber.MustParseObjectIdentifier(OIDData), Data: b}
}

func (c *ContentInfo) BerFields() []ber.Field {
	return []ber.Field{
		ber.NewField("contentType", &c.ContentType),
		ber.NewFieldWithParams("content", ber.Select(&c.ContentType,
			ber.Case("data", &c.Data, OIDData),
			ber.Default("content", &c.Content),
		), "explicit,tag:0"),
	}
}
