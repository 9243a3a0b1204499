// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pkix contains record types for the ASN.1 structures used in X.509
// certificates, PKCS #10 certification requests and the CMS content info as
// defined in [RFC 5280], [RFC 2986] and [RFC 5652]. The types are composed from
// the nodes of the ber package and can be decoded, encoded, converted to and
// from JSON and printed like any other value.
//
// The package only describes the structure of these values. It does not
// validate certificates or verify signatures.
//
// [RFC 5280]: https://www.rfc-editor.org/rfc/rfc5280
// [RFC 2986]: https://www.rfc-editor.org/rfc/rfc2986
// [RFC 5652]: https://www.rfc-editor.org/rfc/rfc5652
package pkix

import (
	"time"

	"codello.dev/asn1codec/ber"
)

// Object identifiers of algorithms, attribute types and content types known to
// this package.
const (
	OIDRSAEncryption          = "1.2.840.113549.1.1.1"
	OIDSHA256WithRSA          = "1.2.840.113549.1.1.11"
	OIDECPublicKey            = "1.2.840.10045.2.1"
	OIDECDSAWithSHA256        = "1.2.840.10045.4.3.2"
	OIDCountryName            = "2.5.4.6"
	OIDOrganizationName       = "2.5.4.10"
	OIDOrganizationalUnitName = "2.5.4.11"
	OIDCommonName             = "2.5.4.3"
	OIDEmailAddress           = "1.2.840.113549.1.9.1"
	OIDChallengePassword      = "1.2.840.113549.1.9.7"
	OIDExtensionRequest       = "1.2.840.113549.1.9.14"
	OIDData                   = "1.2.840.113549.1.7.1"
	OIDSignedData             = "1.2.840.113549.1.7.2"
	OIDBasicConstraints       = "2.5.29.19"
	OIDKeyUsage               = "2.5.29.15"
)

//region AlgorithmIdentifier

// AlgorithmIdentifier corresponds to the following ASN.1 type:
//
//	AlgorithmIdentifier ::= SEQUENCE {
//		algorithm  OBJECT IDENTIFIER,
//		parameters ANY DEFINED BY algorithm OPTIONAL
//	}
//
// RSA algorithms carry NULL parameters, EC public keys carry the named curve.
// The parameters of all other algorithms are kept as raw values.
type AlgorithmIdentifier struct {
	Algorithm  ber.ObjectIdentifier
	Null       ber.Null
	NamedCurve ber.ObjectIdentifier
	Parameters ber.Optional[ber.Any]
}

func (a *AlgorithmIdentifier) BerFields() []ber.Field {
	return []ber.Field{
		ber.NewField("algorithm", &a.Algorithm),
		ber.NewField("parameters", ber.Select(&a.Algorithm,
			ber.Case("null", &a.Null, OIDRSAEncryption, OIDSHA256WithRSA),
			ber.Case("namedCurve", &a.NamedCurve, OIDECPublicKey),
			ber.Default("parameters", &a.Parameters),
		)),
	}
}

//endregion

//region SubjectPublicKeyInfo

// SubjectPublicKeyInfo corresponds to the following ASN.1 type:
//
//	SubjectPublicKeyInfo ::= SEQUENCE {
//		algorithm        AlgorithmIdentifier,
//		subjectPublicKey BIT STRING
//	}
type SubjectPublicKeyInfo struct {
	Algorithm AlgorithmIdentifier
	PublicKey ber.BitString
}

func (s *SubjectPublicKeyInfo) BerFields() []ber.Field {
	return []ber.Field{
		ber.NewField("algorithm", &s.Algorithm),
		ber.NewField("subjectPublicKey", &s.PublicKey),
	}
}

//endregion

//region Time

// TimeKind identifies the encoding of a [Time].
type TimeKind int

const (
	UTCTimeKind TimeKind = iota + 1
	GeneralizedTimeKind
)

// Time corresponds to the following ASN.1 type:
//
//	Time ::= CHOICE {
//		utcTime     UTCTime,
//		generalTime GeneralizedTime
//	}
type Time struct {
	Kind        TimeKind
	UTC         ber.UTCTime
	Generalized ber.GeneralizedTime
}

// NewTime returns the encoding of t required by RFC 5280: UTCTime for the
// years 1950 through 2049 and GeneralizedTime otherwise.
func NewTime(t time.Time) Time {
	t = t.UTC().Truncate(time.Second)
	if y := t.Year(); y >= 1950 && y < 2050 {
		return Time{Kind: UTCTimeKind, UTC: ber.UTCTime(t)}
	}
	return Time{Kind: GeneralizedTimeKind, Generalized: ber.GeneralizedTime(t)}
}

// Time returns the time value of t. The zero Time returns the zero time.
func (t *Time) Time() time.Time {
	switch t.Kind {
	case UTCTimeKind:
		return time.Time(t.UTC)
	case GeneralizedTimeKind:
		return time.Time(t.Generalized)
	}
	return time.Time{}
}

func (t *Time) BerNode() ber.Node {
	return ber.Trial(&t.Kind,
		ber.Try(UTCTimeKind, "utcTime", &t.UTC),
		ber.Try(GeneralizedTimeKind, "generalTime", &t.Generalized),
	)
}

// Validity corresponds to the following ASN.1 type:
//
//	Validity ::= SEQUENCE {
//		notBefore Time,
//		notAfter  Time
//	}
type Validity struct {
	NotBefore Time
	NotAfter  Time
}

func (v *Validity) BerFields() []ber.Field {
	return []ber.Field{
		ber.NewField("notBefore", &v.NotBefore),
		ber.NewField("notAfter", &v.NotAfter),
	}
}

//endregion
