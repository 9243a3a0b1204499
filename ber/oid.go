// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"fmt"
	"math"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/internal/vlq"
	"codello.dev/asn1codec/tlv"
)

var tagOID = asn1.Universal(asn1.TagOID)

var (
	errEmptyOID   = errors.New("empty OBJECT IDENTIFIER")
	errInvalidOID = errors.New("invalid OBJECT IDENTIFIER")
)

// ObjectIdentifier implements the ASN.1 OBJECT IDENTIFIER type. The first two
// arcs are encoded into a single value. Subsequent arcs use a variable-length
// base128 encoding. The JSON representation is the dot-separated notation.
type ObjectIdentifier asn1.ObjectIdentifier

// MustParseObjectIdentifier parses the dot-separated notation of an object
// identifier and panics if s is invalid. It is intended for the
// initialization of package level variables.
func MustParseObjectIdentifier(s string) ObjectIdentifier {
	oid, err := asn1.ParseObjectIdentifier(s)
	if err != nil {
		panic(err)
	}
	return ObjectIdentifier(oid)
}

// String returns the dot-separated notation of oid.
func (oid ObjectIdentifier) String() string {
	return asn1.ObjectIdentifier(oid).String()
}

// Equal reports whether oid and other represent the same identifier.
func (oid ObjectIdentifier) Equal(other ObjectIdentifier) bool {
	return asn1.ObjectIdentifier(oid).Equal(asn1.ObjectIdentifier(other))
}

// SelectorKey implements [Selector].
func (oid *ObjectIdentifier) SelectorKey() string {
	return oid.String()
}

func (oid *ObjectIdentifier) BerTag() (asn1.Tag, bool) { return tagOID, false }

func (oid *ObjectIdentifier) BerDecode(b []byte) (int, error) { return decodeElement(oid, tagOID, b) }

func (oid *ObjectIdentifier) BerDecodeContent(h tlv.Header, content []byte) error {
	if len(content) == 0 {
		return &SyntaxError{h.Tag, errEmptyOID}
	}
	// every arc occupies at least one byte
	ret := make(ObjectIdentifier, 1, len(content)+1)
	for i := 0; i < len(content); {
		v, n, err := vlq.ParseMinimal(content[i:], math.MaxUint)
		if err != nil {
			return &SyntaxError{h.Tag, fmt.Errorf("%w: %w", errInvalidOID, err)}
		}
		if i == 0 {
			// The first value encodes the first two arcs.
			if v < 80 {
				ret[0] = uint(v / 40)
				ret = append(ret, uint(v%40))
			} else {
				ret[0] = 2
				ret = append(ret, uint(v-80))
			}
		} else {
			ret = append(ret, uint(v))
		}
		i += n
	}
	*oid = ret
	return nil
}

func (oid *ObjectIdentifier) BerEncode(dst []byte) ([]byte, error) { return encodeElement(oid, tagOID, dst) }

func (oid *ObjectIdentifier) BerEncodeContent(dst []byte) ([]byte, error) {
	if !asn1.ObjectIdentifier(*oid).IsValid() {
		return dst, errInvalidOID
	}
	dst = vlq.Append(dst, uint64((*oid)[0]*40+(*oid)[1]))
	for _, arc := range (*oid)[2:] {
		dst = vlq.Append(dst, uint64(arc))
	}
	return dst, nil
}

func (oid *ObjectIdentifier) BerPrint(p *Printer, name string) error {
	return p.Value(name, "OBJECT IDENTIFIER", oid.String())
}

func (oid *ObjectIdentifier) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, oid.String())
}

func (oid *ObjectIdentifier) JSONDecode(key string, root any) (int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		oid.Reset()
		return 0, err
	}
	s, err := jsonString("OBJECT IDENTIFIER", v)
	if err != nil {
		return 0, err
	}
	parsed, err := asn1.ParseObjectIdentifier(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	*oid = ObjectIdentifier(parsed)
	return 1, nil
}

func (oid *ObjectIdentifier) Reset() {
	*oid = nil
}
