// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkix

import (
	"strings"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/ber"
)

// StringKind identifies the string type of a [DirectoryString].
type StringKind int

const (
	PrintableStringKind StringKind = iota + 1
	UTF8StringKind
)

// DirectoryString corresponds to the following ASN.1 type:
//
//	DirectoryString ::= CHOICE {
//		printableString PrintableString,
//		utf8String      UTF8String
//	}
//
// The TeletexString, UniversalString and BMPString alternatives are not
// supported.
type DirectoryString struct {
	Kind      StringKind
	Printable ber.PrintableString
	UTF8      ber.UTF8String
}

// NewDirectoryString returns s as a PrintableString if possible and as a
// UTF8String otherwise.
func NewDirectoryString(s string) DirectoryString {
	if asn1.ValidPrintable(s) {
		return DirectoryString{Kind: PrintableStringKind, Printable: ber.PrintableString(s)}
	}
	return DirectoryString{Kind: UTF8StringKind, UTF8: ber.UTF8String(s)}
}

func (s *DirectoryString) String() string {
	switch s.Kind {
	case PrintableStringKind:
		return string(s.Printable)
	case UTF8StringKind:
		return string(s.UTF8)
	}
	return ""
}

func (s *DirectoryString) BerNode() ber.Node {
	return ber.Trial(&s.Kind,
		ber.Try(PrintableStringKind, "printableString", &s.Printable),
		ber.Try(UTF8StringKind, "utf8String", &s.UTF8),
	)
}

// AttributeTypeAndValue corresponds to the following ASN.1 type:
//
//	AttributeTypeAndValue ::= SEQUENCE {
//		type  OBJECT IDENTIFIER,
//		value ANY DEFINED BY type
//	}
//
// Country names are PrintableStrings, email addresses IA5Strings. All other
// attribute values are a [DirectoryString].
type AttributeTypeAndValue struct {
	Type    ber.ObjectIdentifier
	Country ber.PrintableString
	Email   ber.IA5String
	Value   DirectoryString
}

// NewAttribute returns the attribute of the given type with value s.
func NewAttribute(oid string, s string) AttributeTypeAndValue {
	a := AttributeTypeAndValue{Type: ber.MustParseObjectIdentifier(oid)}
	switch oid {
	case OIDCountryName:
		a.Country = ber.PrintableString(s)
	case OIDEmailAddress:
		a.Email = ber.IA5String(s)
	default:
		a.Value = NewDirectoryString(s)
	}
	return a
}

func (a *AttributeTypeAndValue) BerFields() []ber.Field {
	return []ber.Field{
		ber.NewField("type", &a.Type),
		ber.NewField("value", ber.Select(&a.Type,
			ber.Case("country", &a.Country, OIDCountryName),
			ber.Case("email", &a.Email, OIDEmailAddress),
			ber.Default("value", &a.Value),
		)),
	}
}

// String returns the value of a as a string.
func (a *AttributeTypeAndValue) String() string {
	switch a.Type.String() {
	case OIDCountryName:
		return string(a.Country)
	case OIDEmailAddress:
		return string(a.Email)
	}
	return a.Value.String()
}

// RelativeDistinguishedName corresponds to the following ASN.1 type:
//
//	RelativeDistinguishedName ::= SET OF AttributeTypeAndValue
type RelativeDistinguishedName struct {
	ber.SetOf[AttributeTypeAndValue]
}

// Name corresponds to the following ASN.1 type:
//
//	Name ::= SEQUENCE OF RelativeDistinguishedName
//
// Only the rdnSequence alternative of the Name CHOICE exists, so the choice is
// omitted.
type Name struct {
	ber.SequenceOf[RelativeDistinguishedName]
}

// NewName returns a name with one single-valued RDN per attribute.
func NewName(attrs ...AttributeTypeAndValue) Name {
	var n Name
	for _, a := range attrs {
		n.Items = append(n.Items, RelativeDistinguishedName{ber.SetOf[AttributeTypeAndValue]{Items: []AttributeTypeAndValue{a}}})
	}
	return n
}

var attributeNames = map[string]string{
	OIDCountryName:            "C",
	OIDOrganizationName:       "O",
	OIDOrganizationalUnitName: "OU",
	OIDCommonName:             "CN",
	OIDEmailAddress:           "emailAddress",
}

// String returns a representation of n in the style of OpenSSL, e.g.
// "C=DE, O=Example, CN=Test". Unknown attribute types are written as dotted
// object identifiers. Multi-valued RDNs are joined by "+".
func (n *Name) String() string {
	var b strings.Builder
	for i, rdn := range n.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		for j, a := range rdn.Items {
			if j > 0 {
				b.WriteByte('+')
			}
			key, ok := attributeNames[a.Type.String()]
			if !ok {
				key = a.Type.String()
			}
			b.WriteString(key)
			b.WriteByte('=')
			b.WriteString(a.String())
		}
	}
	return b.String()
}
