// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"math/bits"
	"strconv"
	"strings"

	"codello.dev/asn1codec"
)

// FieldParameters is the parsed representation of a field parameter string as
// passed to the field constructors of the ber package.
type FieldParameters struct {
	Tag      *asn1.Tag // the EXPLICIT or IMPLICIT class and tag number (maybe nil).
	Explicit bool      // true iff an EXPLICIT tag is in use.
	JSONName string    // alternative JSON key, empty if the field name is used.
	Skip     bool      // true iff the field is omitted from JSON.
}

// ParseFieldParameters will parse a given parameter string into a
// FieldParameters structure, ignoring unknown parts of the string. The string
// must be formatted according to the package documentation of the asn1
// package.
func ParseFieldParameters(str string) (ret FieldParameters) {
	class := asn1.ClassContextSpecific
	var number uint
	hasTag := false
	for part := range strings.SplitSeq(str, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "explicit":
			ret.Explicit = true
		case part == "skip":
			ret.Skip = true
		case strings.HasPrefix(part, "json:"):
			ret.JSONName = part[5:]
		case strings.HasPrefix(part, "tag:"):
			i, err := strconv.ParseUint(part[4:], 10, bits.UintSize)
			if err == nil {
				number = uint(i)
				hasTag = true
			}
		case part == "application":
			class = asn1.ClassApplication
		case part == "private":
			class = asn1.ClassPrivate
		case part == "universal":
			class = asn1.ClassUniversal
		}
	}
	if hasTag {
		ret.Tag = &asn1.Tag{Class: class, Number: number}
	}
	return ret
}
