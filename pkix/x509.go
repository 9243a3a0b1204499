// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkix

import (
	"codello.dev/asn1codec/ber"
)

// Certificate corresponds to the following ASN.1 type:
//
//	Certificate ::= SEQUENCE {
//		tbsCertificate     TBSCertificate,
//		signatureAlgorithm AlgorithmIdentifier,
//		signatureValue     BIT STRING
//	}
type Certificate struct {
	TBSCertificate     TBSCertificate
	SignatureAlgorithm AlgorithmIdentifier
	SignatureValue     ber.BitString
}

func (c *Certificate) BerFields() []ber.Field {
	return []ber.Field{
		ber.NewField("tbsCertificate", &c.TBSCertificate),
		ber.NewField("signatureAlgorithm", &c.SignatureAlgorithm),
		ber.NewField("signatureValue", &c.SignatureValue),
	}
}

// TBSCertificate corresponds to the following ASN.1 type:
//
//	TBSCertificate ::= SEQUENCE {
//		version         [0] EXPLICIT Version DEFAULT v1,
//		serialNumber         CertificateSerialNumber,
//		signature            AlgorithmIdentifier,
//		issuer               Name,
//		validity             Validity,
//		subject              Name,
//		subjectPublicKeyInfo SubjectPublicKeyInfo,
//		issuerUniqueID  [1] IMPLICIT UniqueIdentifier OPTIONAL,
//		subjectUniqueID [2] IMPLICIT UniqueIdentifier OPTIONAL,
//		extensions      [3] EXPLICIT Extensions OPTIONAL
//	}
//
// An absent version denotes v1. The DEFAULT value is not filled in.
type TBSCertificate struct {
	Version              ber.Optional[ber.Integer]
	SerialNumber         ber.BigInteger
	Signature            AlgorithmIdentifier
	Issuer               Name
	Validity             Validity
	Subject              Name
	SubjectPublicKeyInfo SubjectPublicKeyInfo
	IssuerUniqueID       ber.Optional[ber.BitString]
	SubjectUniqueID      ber.Optional[ber.BitString]
	Extensions           ber.Optional[ber.SequenceOf[Extension]]
}

func (c *TBSCertificate) BerFields() []ber.Field {
	return []ber.Field{
		ber.NewFieldWithParams("version", &c.Version, "explicit,tag:0"),
		ber.NewField("serialNumber", &c.SerialNumber),
		ber.NewField("signature", &c.Signature),
		ber.NewField("issuer", &c.Issuer),
		ber.NewField("validity", &c.Validity),
		ber.NewField("subject", &c.Subject),
		ber.NewField("subjectPublicKeyInfo", &c.SubjectPublicKeyInfo),
		ber.NewFieldWithParams("issuerUniqueID", &c.IssuerUniqueID, "tag:1"),
		ber.NewFieldWithParams("subjectUniqueID", &c.SubjectUniqueID, "tag:2"),
		ber.NewFieldWithParams("extensions", &c.Extensions, "explicit,tag:3"),
	}
}

// Extension returns the extension with the given identifier.
func (c *TBSCertificate) Extension(oid string) (*Extension, bool) {
	if !c.Extensions.Present {
		return nil, false
	}
	for i := range c.Extensions.Value.Items {
		if e := &c.Extensions.Value.Items[i]; e.ID.String() == oid {
			return e, true
		}
	}
	return nil, false
}

// Extension corresponds to the following ASN.1 type:
//
//	Extension ::= SEQUENCE {
//		extnID    OBJECT IDENTIFIER,
//		critical  BOOLEAN DEFAULT FALSE,
//		extnValue OCTET STRING
//	}
type Extension struct {
	ID       ber.ObjectIdentifier
	Critical ber.Optional[ber.Boolean]
	Value    ber.OctetString
}

func (e *Extension) BerFields() []ber.Field {
	return []ber.Field{
		ber.NewField("extnID", &e.ID),
		ber.NewField("critical", &e.Critical),
		ber.NewField("extnValue", &e.Value),
	}
}

// IsCritical reports whether e is marked as critical.
func (e *Extension) IsCritical() bool {
	return e.Critical.Present && bool(e.Critical.Value)
}

// Unmarshal decodes the DER encoded value of e into v.
func (e *Extension) Unmarshal(v any) error {
	return ber.Unmarshal(e.Value, v)
}

// BasicConstraints corresponds to the following ASN.1 type:
//
//	BasicConstraints ::= SEQUENCE {
//		cA                BOOLEAN DEFAULT FALSE,
//		pathLenConstraint INTEGER (0..MAX) OPTIONAL
//	}
type BasicConstraints struct {
	CA                ber.Optional[ber.Boolean]
	PathLenConstraint ber.Optional[ber.Integer]
}

func (c *BasicConstraints) BerFields() []ber.Field {
	return []ber.Field{
		ber.NewField("cA", &c.CA),
		ber.NewField("pathLenConstraint", &c.PathLenConstraint),
	}
}

// Bits of the KeyUsage extension.
const (
	KeyUsageDigitalSignature = iota
	KeyUsageContentCommitment
	KeyUsageKeyEncipherment
	KeyUsageDataEncipherment
	KeyUsageKeyAgreement
	KeyUsageKeyCertSign
	KeyUsageCRLSign
	KeyUsageEncipherOnly
	KeyUsageDecipherOnly
)

// KeyUsage corresponds to the following ASN.1 type:
//
//	KeyUsage ::= BIT STRING {
//		digitalSignature (0),
//		...
//		decipherOnly     (8)
//	}
//
// The named bits are stored right-aligned, so that the last named bit is the
// least significant bit of the last byte.
type KeyUsage struct {
	ber.RightAlignedBitString
}

// Has reports whether the named bit is set in u.
func (u *KeyUsage) Has(bit int) bool {
	if bit < 0 || bit >= u.BitLength {
		return false
	}
	pos := u.BitLength - 1 - bit
	i := len(u.Bytes) - 1 - pos/8
	return u.Bytes[i]>>(pos%8)&1 == 1
}
