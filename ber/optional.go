// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

// Optional represents an ASN.1 element marked as OPTIONAL. If decoding Value
// fails, the Optional is absent and consumes no input. This is not an error.
// An absent Optional is not encoded, not printed and omitted from JSON.
type Optional[T any] struct {
	Present bool
	Value   T
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: v}
}

// optionalNode returns the node implementing o. The node for the value of o
// can be replaced by a tagging node by the [Field] constructors.
func (o *Optional[T]) optionalNode() *optional {
	return &optional{present: &o.Present, inner: NodeFor(&o.Value)}
}

func (o *Optional[T]) BerDecode(b []byte) (int, error) { return o.optionalNode().BerDecode(b) }

func (o *Optional[T]) BerEncode(dst []byte) ([]byte, error) {
	return o.optionalNode().BerEncode(dst)
}

func (o *Optional[T]) BerPrint(p *Printer, name string) error {
	return o.optionalNode().BerPrint(p, name)
}

func (o *Optional[T]) JSONEncode(key string, root *any) (int, error) {
	return o.optionalNode().JSONEncode(key, root)
}

func (o *Optional[T]) JSONDecode(key string, root any) (int, error) {
	return o.optionalNode().JSONDecode(key, root)
}

func (o *Optional[T]) Reset() {
	o.optionalNode().Reset()
}

// optionalValue is implemented by [*Optional] values.
type optionalValue interface {
	optionalNode() *optional
}

// optional implements the operations of [Optional] on a node.
type optional struct {
	present *bool
	inner   Node
}

func (o *optional) BerDecode(b []byte) (int, error) {
	n, err := o.inner.BerDecode(b)
	if err != nil {
		o.Reset()
		return 0, nil
	}
	*o.present = true
	return n, nil
}

func (o *optional) BerEncode(dst []byte) ([]byte, error) {
	if !*o.present {
		return dst, nil
	}
	return o.inner.BerEncode(dst)
}

func (o *optional) BerPrint(p *Printer, name string) error {
	if !*o.present {
		return nil
	}
	return o.inner.BerPrint(p, name)
}

func (o *optional) JSONEncode(key string, root *any) (int, error) {
	if !*o.present {
		if key == "" {
			*root = nil
		}
		return 0, nil
	}
	return o.inner.JSONEncode(key, root)
}

func (o *optional) JSONDecode(key string, root any) (int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil {
		return 0, err
	}
	if !ok || (key == "" && v == nil) {
		o.Reset()
		return 0, nil
	}
	n, err := o.inner.JSONDecode(key, root)
	if err != nil {
		return n, err
	}
	*o.present = true
	return n, nil
}

func (o *optional) Reset() {
	*o.present = false
	o.inner.Reset()
}
