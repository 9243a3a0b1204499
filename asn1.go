// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1 defines the data types shared by the packages of this module:
// ASN.1 tags, object identifiers and bit strings as defined in
// [Rec. ITU-T X.680]. The types in this package carry no encoding logic.
// Tag-length-value framing is implemented by the tlv package and the value
// codecs, the JSON bridge and the pretty printer by the ber package.
//
// # Describing Records
//
// Records are not described by struct tags. Instead a record type lists its
// fields explicitly and binds each field to a codec node from the ber package.
// Consider the following ASN.1 type:
//
//	DEFINITIONS
//	IMPLICIT TAGS
//	BEGIN
//
//	MyType ::= SEQUENCE {
//		num                  INTEGER
//		str                  UTF8String   OPTIONAL
//		data [APPLICATION 5] OCTET STRING
//	}
//	END
//
// This could be translated into the following Go type:
//
//	type MyType struct {
//		Num  ber.Integer
//		Str  ber.Optional[ber.UTF8String]
//		Data ber.OctetString
//	}
//
//	func (t *MyType) BerFields() []ber.Field {
//		return []ber.Field{
//			ber.NewField("num", &t.Num),
//			ber.NewField("str", &t.Str),
//			ber.NewFieldWithParams("data", &t.Data, "application,tag:5"),
//		}
//	}
//
// The order of the returned fields is the order of elements within the
// SEQUENCE as well as the order of keys in the JSON representation. The
// parameter string accepts the following comma separated options:
//
//	tag:x       specifies the ASN.1 tag number; implies ASN.1 CONTEXT SPECIFIC
//	application specifies that an APPLICATION tag is used
//	private     specifies that a PRIVATE tag is used
//	universal   specifies that a UNIVERSAL tag is used
//	explicit    mark the element as explicit
//	json:name   use name as the JSON key instead of the field name
//	skip        omit the field from the JSON representation
//
// [Rec. ITU-T X.680]: https://www.itu.int/rec/T-REC-X.680
package asn1

import (
	"strconv"
	"strings"
)

// Tag constitutes an ASN.1 tag, consisting of its class and number. For
// details, see Section 8 of Rec. ITU-T X.680.
type Tag struct {
	Class  Class
	Number uint
}

// Universal returns the tag with the given number in the [ClassUniversal]
// namespace.
func Universal(n uint) Tag {
	return Tag{Class: ClassUniversal, Number: n}
}

// ContextSpecific returns the tag with the given number in the
// [ClassContextSpecific] namespace.
func ContextSpecific(n uint) Tag {
	return Tag{Class: ClassContextSpecific, Number: n}
}

// Class holds the class part of an ASN.1 tag. The class acts as a namespace for
// the tag number. A Class value is an unsigned 2-bit integer. Class values
// whose value exceeds 2 bits are invalid.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// String returns a string representation t in a format similar to the one used
// in ASN.1 notation. The tag number is enclosed by square brackets and prefixed
// with the class used. To avoid ambiguity the UNIVERSAL word is used for
// universal tags, although this is not valid ASN.1 syntax.
func (t Tag) String() string {
	if t.Class == ClassContextSpecific {
		return "[" + strconv.FormatUint(uint64(t.Number), 10) + "]"
	}
	return "[" + strings.ToUpper(t.Class.String()) + " " + strconv.FormatUint(uint64(t.Number), 10) + "]"
}

// TagReserved is a reserved tag number in the [ClassUniversal] namespace to be
// used by encoding rules. This assignment is defined in Rec. ITU-T X.680,
// Section 8, Table 1.
const TagReserved = 0

// These are the ASN.1 tag numbers in the [ClassUniversal] namespace that have
// codecs in the ber package. These assignments are defined in Rec. ITU-T
// X.680, Section 8, Table 1.
const (
	TagBoolean         uint = 1
	TagInteger         uint = 2
	TagBitString       uint = 3
	TagOctetString     uint = 4
	TagNull            uint = 5
	TagOID             uint = 6
	TagUTF8String      uint = 12
	TagSequence        uint = 16
	TagSet             uint = 17
	TagPrintableString uint = 19
	TagIA5String       uint = 22
	TagUTCTime         uint = 23
	TagGeneralizedTime uint = 24
)
