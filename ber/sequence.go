// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"fmt"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/internal"
	"codello.dev/asn1codec/jsontree"
	"codello.dev/asn1codec/tlv"
)

// Field binds a named value to its position in a SEQUENCE. Fields are created
// by [NewField] and [NewFieldWithParams] and are usually returned by the
// BerFields method of a [Record].
type Field struct {
	name   string
	node   Node
	params internal.FieldParameters
}

// NewField returns a field named name encoding v. The value v must be a
// [Node], a [Record] or a [Composite], usually a pointer to a struct field.
func NewField(name string, v any) Field {
	return NewFieldWithParams(name, v, "")
}

// NewFieldWithParams works like [NewField] but accepts a parameter string as
// described in the documentation of the asn1 package. If v is an [Optional],
// the tag applies to its value so that the field remains optional.
func NewFieldWithParams(name string, v any, params string) Field {
	p := internal.ParseFieldParameters(params)
	var n Node
	if ov, ok := v.(optionalValue); ok && p.Tag != nil {
		opt := ov.optionalNode()
		opt.inner = tagged(opt.inner, *p.Tag, p.Explicit)
		n = opt
	} else {
		n = NodeFor(v)
		if p.Tag != nil {
			n = tagged(n, *p.Tag, p.Explicit)
		}
	}
	return Field{name: name, node: n, params: p}
}

// Name returns the name of f.
func (f Field) Name() string {
	return f.name
}

// jsonKey returns the key under which f is stored in JSON.
func (f Field) jsonKey() string {
	if f.params.JSONName != "" {
		return f.params.JSONName
	}
	return f.name
}

//region [UNIVERSAL 16] SEQUENCE

// Sequence implements the ASN.1 SEQUENCE type for a fixed list of fields.
// Fields are decoded strictly in order. The first field that fails to decode
// aborts decoding of the sequence.
//
// The JSON representation is an object holding the fields in order. If the
// sequence consists of a single field whose value is a SEQUENCE, SEQUENCE OF
// or SET OF and that has neither a tag nor JSON parameters, the JSON
// representation of the sequence is the representation of that field.
type Sequence struct {
	fields  []Field
	flatten bool
}

// NewSequence returns a sequence of the given fields.
func NewSequence(fields ...Field) *Sequence {
	s := &Sequence{fields: fields}
	if len(fields) == 1 {
		f := fields[0]
		_, isContainer := f.node.(container)
		s.flatten = isContainer && f.params.Tag == nil && f.params.JSONName == "" && !f.params.Skip
	}
	return s
}

// Struct returns the sequence of the fields of r.
func Struct(r Record) *Sequence {
	return NewSequence(r.BerFields()...)
}

// Fields returns the fields of s.
func (s *Sequence) Fields() []Field {
	return s.fields
}

func (s *Sequence) isContainer() {}

func (s *Sequence) BerTag() (asn1.Tag, bool) { return tagSequence, true }

func (s *Sequence) BerDecode(b []byte) (int, error) { return decodeElement(s, tagSequence, b) }

func (s *Sequence) BerDecodeContent(h tlv.Header, content []byte) error {
	off := 0
	for _, f := range s.fields {
		n, err := f.node.BerDecode(content[off:])
		if err != nil {
			return withFieldError(err, f.name, off)
		}
		off += n
	}
	if off < len(content) {
		return &SyntaxError{h.Tag, fmt.Errorf("%w after last field", ErrTrailingData)}
	}
	return nil
}

func (s *Sequence) BerEncode(dst []byte) ([]byte, error) { return encodeElement(s, tagSequence, dst) }

func (s *Sequence) BerEncodeContent(dst []byte) ([]byte, error) {
	var err error
	for _, f := range s.fields {
		if dst, err = f.node.BerEncode(dst); err != nil {
			return dst, withFieldError(err, f.name, -1)
		}
	}
	return dst, nil
}

func (s *Sequence) BerPrint(p *Printer, name string) error {
	if err := p.Begin(name, "SEQUENCE"); err != nil {
		return err
	}
	for _, f := range s.fields {
		if err := f.node.BerPrint(p, f.name); err != nil {
			return withFieldError(err, f.name, -1)
		}
	}
	return p.End()
}

func (s *Sequence) JSONEncode(key string, root *any) (int, error) {
	if s.flatten {
		return s.fields[0].node.JSONEncode(key, root)
	}
	var obj any = jsontree.NewObject()
	count := 0
	for _, f := range s.fields {
		if f.params.Skip {
			continue
		}
		n, err := f.node.JSONEncode(f.jsonKey(), &obj)
		if err != nil {
			return count, withFieldError(err, f.name, -1)
		}
		count += n
	}
	return count, putJSON(key, root, obj)
}

func (s *Sequence) JSONDecode(key string, root any) (int, error) {
	if s.flatten {
		return s.fields[0].node.JSONDecode(key, root)
	}
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		s.Reset()
		return 0, err
	}
	obj, ok := v.(*jsontree.Object)
	if !ok {
		return 0, ErrNotAnObject
	}
	count := 0
	for _, f := range s.fields {
		if f.params.Skip {
			f.node.Reset()
			continue
		}
		n, err := f.node.JSONDecode(f.jsonKey(), obj)
		if err != nil {
			return count, withFieldError(err, f.name, -1)
		}
		count += n
	}
	return count, nil
}

func (s *Sequence) Reset() {
	for _, f := range s.fields {
		f.node.Reset()
	}
}

//endregion
