// Package tlv implements the tag-length-value (TLV) framing used by the Basic
// Encoding Rules (BER) and related encoding rules as specified in
// [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// This package deals with the syntactic layer of TLV-encoding while the ber
// package deals with the semantic layer of BER. Headers are parsed from and
// appended to byte slices via [ParseHeader] and [AppendHeader]. A [Scanner]
// splits a stream of bytes into consecutive top-level TLVs.
//
// # Lengths
//
// Only the definite-length form is supported. Lengths are bounded by
// [MaxLength] and by the number of bytes available in the input, so that a
// malformed header can never cause an allocation or a read beyond the input.
// Length octets that are not minimally encoded are accepted when parsing,
// [AppendHeader] always produces the minimal form.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package tlv

import (
	"strconv"

	"codello.dev/asn1codec"
)

// MaxLength is the largest content length and the largest tag number accepted
// by [ParseHeader].
const MaxLength = 0xFFFFFFFF

// Header represents a TLV header: the identifier octets and the length octets
// of a data value encoding. Length is the number of content octets following
// the header.
type Header struct {
	Tag         asn1.Tag
	Constructed bool
	Length      int
}

// String returns a string representation of h.
func (h Header) String() string {
	s := h.Tag.String()
	if h.Constructed {
		s += "/c"
	} else {
		s += "/p"
	}
	s += ":" + strconv.Itoa(h.Length)
	return s
}

// requireKeyedLiterals can be embedded in a struct to require keyed literals.
type requireKeyedLiterals struct{}

// nonComparable can be embedded in a struct to prevent comparability.
type nonComparable [0]func()
