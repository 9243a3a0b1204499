// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"codello.dev/asn1codec"
)

var (
	// ErrUnexpectedTag indicates that a data value was encoded with a different tag
	// than expected. Errors of type [*UnexpectedTagError] match this error.
	ErrUnexpectedTag = errors.New("unexpected tag")

	// ErrUnknownSelector indicates that a choice could not map its selector to a
	// member. Errors of type [*UnknownSelectorError] match this error.
	ErrUnknownSelector = errors.New("unknown selector value")

	// ErrNoVariantMatched indicates that none of the candidates of a trial-decode
	// choice could decode the input.
	ErrNoVariantMatched = errors.New("no variant matched")

	// ErrNotAnObject indicates that a JSON value other than an object was found
	// where an object was required.
	ErrNotAnObject = errors.New("json value is not an object")

	// ErrInvalidFormat indicates a malformed value, such as an integer that is too
	// large, an invalid string or an invalid JSON representation.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrTrailingData indicates unexpected bytes after the last element of a
	// constructed value or after a top-level value.
	ErrTrailingData = errors.New("trailing data")
)

// A SyntaxError suggests that the ASN.1 data is invalid. This can either
// indicate that the nesting of structured encodings contains an error, or that
// a primitive encoding could not be converted into a valid value.
type SyntaxError struct {
	Tag asn1.Tag // where the syntax error occurred
	Err error
}

func (e *SyntaxError) Error() string {
	var s strings.Builder
	s.WriteString("syntax error")
	if e.Tag != (asn1.Tag{}) {
		s.WriteString(" decoding ")
		s.WriteString(e.Tag.String())
	}
	if e.Err != nil {
		s.WriteString(": ")
		s.WriteString(e.Err.Error())
	}
	return s.String()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// UnexpectedTagError is returned when a data value does not carry the tag
// expected by its node.
type UnexpectedTagError struct {
	Want asn1.Tag
	Got  asn1.Tag
}

func (e *UnexpectedTagError) Error() string {
	return "unexpected tag " + e.Got.String() + ", want " + e.Want.String()
}

func (e *UnexpectedTagError) Unwrap() error { return ErrUnexpectedTag }

// UnknownSelectorError is returned when a choice has no member for a selector
// value and no default member.
type UnknownSelectorError struct {
	Value string
}

func (e *UnknownSelectorError) Error() string {
	return "unknown selector value " + strconv.Quote(e.Value)
}

func (e *UnknownSelectorError) Unwrap() error { return ErrUnknownSelector }

// VariantError is returned by a trial-decode choice if none of its candidates
// could decode the input. It matches [ErrNoVariantMatched] as well as the
// errors of the individual candidates.
type VariantError struct {
	Candidates []string
	Errs       []error
}

func (e *VariantError) Error() string {
	return ErrNoVariantMatched.Error() + " (tried " + strings.Join(e.Candidates, ", ") + ")"
}

func (e *VariantError) Unwrap() []error {
	return append([]error{ErrNoVariantMatched}, e.Errs...)
}

// FieldError records the path of the field that caused an error. Offset is the
// location of the failing data value relative to the input of the top-level
// node or -1 if the error did not occur during decoding.
type FieldError struct {
	Path   string
	Offset int
	Err    error
}

func (e *FieldError) Error() string {
	b := []byte("ber: ")
	b = append(b, e.Path...)
	if e.Offset >= 0 {
		b = strconv.AppendInt(append(b, " at offset "...), int64(e.Offset), 10)
	}
	b = append(b, ": "...)
	b = append(b, e.Err.Error()...)
	return string(b)
}

func (e *FieldError) Unwrap() error { return e.Err }

// withFieldError prefixes the path of err with name. If err is not a
// [*FieldError] a new one is created. A non-negative offset is added to the
// offset of err.
func withFieldError(err error, name string, offset int) error {
	if err == nil {
		return nil
	}
	if name == "" {
		name = "<anonymous>"
	}
	if fe, ok := err.(*FieldError); ok {
		ret := *fe
		if strings.HasPrefix(ret.Path, "[") {
			ret.Path = name + ret.Path
		} else {
			ret.Path = name + "." + ret.Path
		}
		if offset >= 0 && ret.Offset >= 0 {
			ret.Offset += offset
		}
		return &ret
	}
	return &FieldError{Path: name, Offset: offset, Err: err}
}

// withOffset adds offset to the offset of err if err is a [*FieldError].
func withOffset(err error, offset int) error {
	if fe, ok := err.(*FieldError); ok && fe.Offset >= 0 {
		ret := *fe
		ret.Offset += offset
		return &ret
	}
	return err
}

// InvalidTypeError indicates a value that is neither a [Node], a [Record] nor
// a [Composite].
type InvalidTypeError struct {
	Type reflect.Type
}

func (e *InvalidTypeError) Error() string {
	if e.Type == nil {
		return "ber: cannot use nil value"
	}
	return "ber: unsupported Go type: " + e.Type.String()
}
