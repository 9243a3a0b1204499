// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber implements the ASN.1 Basic Encoding Rules (BER) as well as a
// JSON representation and a human-readable dump of ASN.1 values. The Basic
// Encoding Rules are defined in [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// Every value is a [Node]. Primitive types such as [Integer], [OctetString] or
// [ObjectIdentifier] implement Node directly. Structured values are composed
// from combinators that are implemented purely in terms of the nodes they
// contain:
//
//   - [Optional] for OPTIONAL elements,
//   - [SequenceOf] and [SetOf] for SEQUENCE OF and SET OF,
//   - [Implicit] and [Explicit] for tagged types,
//   - [Sequence] for records, usually obtained from a [Record] via [Struct],
//   - [Choice] for members selected by a preceding field (ANY DEFINED BY),
//   - [TrialChoice] for CHOICE types without a selector.
//
// See the package documentation of the asn1 package for details on how
// records are described. Encoding always produces the definite-length form
// with minimal length octets. Decoding is lenient where BER allows it but
// never reads beyond its input, and never panics on malformed input.
//
// The following limitations apply:
//
//   - Only the primitive encoding of string types is supported.
//   - An [Integer] is limited to 64 bits. Use [BigInteger] for larger
//     non-negative values.
//   - The elements of a [SetOf] are encoded in their given order.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package ber
