// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"fmt"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/tlv"
)

// Implicit returns an element that encodes e using tag instead of its natural
// tag. The constructed bit of the encoding is unchanged. Implicitly tagging a
// SEQUENCE OF or SET OF frames its items directly by tag.
func Implicit(e Element, tag asn1.Tag) Element {
	return &implicit{e, tag}
}

// Explicit returns an element that wraps the complete encoding of n in a
// constructed encoding with the given tag.
func Explicit(n Node, tag asn1.Tag) Element {
	return &explicit{n, tag}
}

// tagged applies tag to n. Untagged nodes such as choices and [Any] are
// always tagged explicitly.
func tagged(n Node, tag asn1.Tag, explicitly bool) Node {
	if e, ok := n.(Element); ok && !explicitly {
		return Implicit(e, tag)
	}
	return Explicit(n, tag)
}

//region implicit

type implicit struct {
	e   Element
	tag asn1.Tag
}

func (t *implicit) BerTag() (asn1.Tag, bool) {
	_, constructed := t.e.BerTag()
	return t.tag, constructed
}

func (t *implicit) BerDecode(b []byte) (int, error) { return decodeElement(t, t.tag, b) }

func (t *implicit) BerDecodeContent(h tlv.Header, content []byte) error {
	return t.e.BerDecodeContent(h, content)
}

func (t *implicit) BerEncode(dst []byte) ([]byte, error) { return encodeElement(t, t.tag, dst) }

func (t *implicit) BerEncodeContent(dst []byte) ([]byte, error) {
	return t.e.BerEncodeContent(dst)
}

func (t *implicit) BerPrint(p *Printer, name string) error {
	p.annotate(t.tag.String() + " IMPLICIT")
	return t.e.BerPrint(p, name)
}

func (t *implicit) JSONEncode(key string, root *any) (int, error) { return t.e.JSONEncode(key, root) }

func (t *implicit) JSONDecode(key string, root any) (int, error) { return t.e.JSONDecode(key, root) }

func (t *implicit) Reset() { t.e.Reset() }

//endregion

//region explicit

type explicit struct {
	n   Node
	tag asn1.Tag
}

func (t *explicit) BerTag() (asn1.Tag, bool) { return t.tag, true }

func (t *explicit) BerDecode(b []byte) (int, error) { return decodeElement(t, t.tag, b) }

func (t *explicit) BerDecodeContent(h tlv.Header, content []byte) error {
	n, err := t.n.BerDecode(content)
	if err != nil {
		return err
	}
	if n != len(content) {
		return &SyntaxError{h.Tag, fmt.Errorf("%w in explicitly tagged value", ErrTrailingData)}
	}
	return nil
}

func (t *explicit) BerEncode(dst []byte) ([]byte, error) { return encodeElement(t, t.tag, dst) }

func (t *explicit) BerEncodeContent(dst []byte) ([]byte, error) {
	return t.n.BerEncode(dst)
}

func (t *explicit) BerPrint(p *Printer, name string) error {
	p.annotate(t.tag.String() + " EXPLICIT")
	return t.n.BerPrint(p, name)
}

func (t *explicit) JSONEncode(key string, root *any) (int, error) { return t.n.JSONEncode(key, root) }

func (t *explicit) JSONDecode(key string, root any) (int, error) { return t.n.JSONDecode(key, root) }

func (t *explicit) Reset() { t.n.Reset() }

//endregion
