// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkix

import (
	"codello.dev/asn1codec/ber"
)

// CertificationRequest corresponds to the following ASN.1 type:
//
//	CertificationRequest ::= SEQUENCE {
//		certificationRequestInfo CertificationRequestInfo,
//		signatureAlgorithm       AlgorithmIdentifier,
//		signature                BIT STRING
//	}
type CertificationRequest struct {
	Info               CertificationRequestInfo
	SignatureAlgorithm AlgorithmIdentifier
	Signature          ber.BitString
}

func (r *CertificationRequest) BerFields() []ber.Field {
	return []ber.Field{
		ber.NewField("certificationRequestInfo", &r.Info),
		ber.NewField("signatureAlgorithm", &r.SignatureAlgorithm),
		ber.NewField("signature", &r.Signature),
	}
}

// CertificationRequestInfo corresponds to the following ASN.1 type:
//
//	CertificationRequestInfo ::= SEQUENCE {
//		version       INTEGER { v1(0) },
//		subject       Name,
//		subjectPKInfo SubjectPublicKeyInfo,
//		attributes    [0] IMPLICIT SET OF Attribute
//	}
type CertificationRequestInfo struct {
	Version       ber.Integer
	Subject       Name
	SubjectPKInfo SubjectPublicKeyInfo
	Attributes    ber.SetOf[Attribute]
}

func (r *CertificationRequestInfo) BerFields() []ber.Field {
	return []ber.Field{
		ber.NewField("version", &r.Version),
		ber.NewField("subject", &r.Subject),
		ber.NewField("subjectPKInfo", &r.SubjectPKInfo),
		ber.NewFieldWithParams("attributes", &r.Attributes, "tag:0"),
	}
}

// Attribute returns the attribute with the given type.
func (r *CertificationRequestInfo) Attribute(oid string) (*Attribute, bool) {
	for i := range r.Attributes.Items {
		if a := &r.Attributes.Items[i]; a.Type.String() == oid {
			return a, true
		}
	}
	return nil, false
}

// Attribute corresponds to the following ASN.1 type:
//
//	Attribute ::= SEQUENCE {
//		type   OBJECT IDENTIFIER,
//		values SET OF ANY DEFINED BY type
//	}
//
// The values are kept as raw values and can be decoded with [ber.Any.Decode].
type Attribute struct {
	Type   ber.ObjectIdentifier
	Values ber.SetOf[ber.Any]
}

func (a *Attribute) BerFields() []ber.Field {
	return []ber.Field{
		ber.NewField("type", &a.Type),
		ber.NewField("values", &a.Values),
	}
}
