// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"reflect"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/tlv"
)

// Node is the interface implemented by all values that can be encoded using
// this package. Primitive types as well as combinators implement Node, so
// that values compose recursively.
//
// BerDecode parses a single data value encoding from the beginning of b and
// returns the number of bytes consumed. Decoding never reads beyond b and never
// panics on malformed input. BerEncode appends the encoding of the value to
// dst. BerPrint writes a human-readable representation of the value using p.
//
// JSONEncode merges the JSON representation of the value into *root under key.
// If key is empty, *root is replaced. Otherwise *root must be nil or a
// [*jsontree.Object]. JSONDecode is the inverse operation. If key is missing
// from root, the value is reset and no error is returned. Both methods return
// the number of leaf values processed.
//
// Reset sets the value to its zero value.
type Node interface {
	BerDecode(b []byte) (n int, err error)
	BerEncode(dst []byte) ([]byte, error)
	BerPrint(p *Printer, name string) error
	JSONEncode(key string, root *any) (int, error)
	JSONDecode(key string, root any) (int, error)
	Reset()
}

// Element is implemented by nodes that have a fixed natural tag. Elements can
// be implicitly tagged. BerDecodeContent and BerEncodeContent only process the
// content octets of a data value encoding, the header is handled by the
// caller.
type Element interface {
	Node
	BerTag() (tag asn1.Tag, constructed bool)
	BerDecodeContent(h tlv.Header, content []byte) error
	BerEncodeContent(dst []byte) ([]byte, error)
}

// Record is implemented by types that are encoded as an ASN.1 SEQUENCE. The
// returned fields must refer to the fields of the receiver. See [Struct].
type Record interface {
	BerFields() []Field
}

// Composite is implemented by types that are represented by a single node
// referring to the receiver, usually a choice.
type Composite interface {
	BerNode() Node
}

// NodeFor returns the node that encodes v. If v implements [Node] it is
// returned directly. Values implementing [Record] are encoded as a SEQUENCE
// and values implementing [Composite] via their node. For any other value the
// returned node fails every operation with an [*InvalidTypeError].
func NodeFor(v any) Node {
	switch vv := v.(type) {
	case Node:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			break
		}
		return vv
	case Record:
		return Struct(vv)
	case Composite:
		return vv.BerNode()
	}
	return errNode{&InvalidTypeError{reflect.TypeOf(v)}}
}

// errNode is a node that fails all operations with err.
type errNode struct {
	err error
}

func (n errNode) BerDecode([]byte) (int, error) { return 0, n.err }
func (n errNode) BerEncode(dst []byte) ([]byte, error) { return dst, n.err }
func (n errNode) BerPrint(*Printer, string) error { return n.err }
func (n errNode) JSONEncode(string, *any) (int, error) { return 0, n.err }
func (n errNode) JSONDecode(string, any) (int, error) { return 0, n.err }
func (n errNode) Reset() {}

// Equal reports whether a and b have the same encoding. Values that cannot be
// encoded are never equal.
func Equal(a, b any) bool {
	ba, err := NodeFor(a).BerEncode(nil)
	if err != nil {
		return false
	}
	bb, err := NodeFor(b).BerEncode(nil)
	if err != nil {
		return false
	}
	return string(ba) == string(bb)
}

//region element helpers

var (
	errConstructed = errors.New("constructed encoding not supported")
	errPrimitive   = errors.New("primitive encoding not allowed")
)

// decodeElement decodes a data value encoding of e with the given tag from b.
func decodeElement(e Element, tag asn1.Tag, b []byte) (int, error) {
	h, hl, err := tlv.ParseHeader(b)
	if err != nil {
		return 0, err
	}
	if h.Tag != tag {
		return 0, &UnexpectedTagError{Want: tag, Got: h.Tag}
	}
	if _, constructed := e.BerTag(); h.Constructed != constructed {
		if h.Constructed {
			return 0, &SyntaxError{tag, errConstructed}
		}
		return 0, &SyntaxError{tag, errPrimitive}
	}
	if err = e.BerDecodeContent(h, b[hl:hl+h.Length]); err != nil {
		return 0, withOffset(err, hl)
	}
	return hl + h.Length, nil
}

// encodeElement appends the data value encoding of e using the given tag to
// dst.
func encodeElement(e Element, tag asn1.Tag, dst []byte) ([]byte, error) {
	content, err := e.BerEncodeContent(nil)
	if err != nil {
		return dst, err
	}
	_, constructed := e.BerTag()
	dst = tlv.AppendHeader(dst, tlv.Header{Tag: tag, Constructed: constructed, Length: len(content)})
	return append(dst, content...), nil
}

//endregion
