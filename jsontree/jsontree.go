// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsontree implements a generic JSON value tree that preserves the
// order of object keys. A tree consists of the following Go values:
//
//	nil          JSON null
//	bool         JSON boolean
//	json.Number  JSON number (as produced by Parse)
//	int64        JSON number
//	string       JSON string
//	[]any        JSON array
//	*Object      JSON object
//
// Trees are produced by [Parse] and serialized by [Marshal] and
// [MarshalIndent]. Numbers are never converted to float64 so that integers of
// any size survive a round-trip.
package jsontree

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"slices"
)

// Object is a JSON object whose keys keep their insertion order. The zero
// value is an empty object ready to use.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns a new, empty object.
func NewObject() *Object {
	return &Object{}
}

// Len returns the number of keys in o.
func (o *Object) Len() int {
	return len(o.keys)
}

// Get returns the value stored under key and whether key exists in o.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Set stores v under key. A new key is appended to the end of o, an existing
// key keeps its position.
func (o *Object) Set(key string, v any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Delete removes key from o.
func (o *Object) Delete(key string) {
	if _, ok := o.values[key]; !ok {
		return
	}
	delete(o.values, key)
	o.keys = slices.DeleteFunc(o.keys, func(k string) bool { return k == key })
}

// Keys returns the keys of o in order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// All returns an iterator over the key-value pairs of o in order.
func (o *Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// MarshalJSON implements [json.Marshaler]. Keys are written in order.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements [json.Unmarshaler]. The existing contents of o are
// discarded.
func (o *Object) UnmarshalJSON(data []byte) error {
	v, err := Parse(data)
	if err != nil {
		return err
	}
	obj, ok := v.(*Object)
	if !ok {
		return errors.New("jsontree: value is not an object")
	}
	*o = *obj
	return nil
}

// Marshal returns the compact JSON encoding of the tree v.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent works like [Marshal] but applies indentation to format the
// output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

// Parse parses the JSON-encoded data into a tree. Numbers are returned as
// [json.Number], objects as [*Object]. Data after the first JSON value other
// than whitespace is an error.
func Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := parseValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err = dec.Token(); err != io.EOF {
		return nil, errors.New("jsontree: invalid data after top-level value")
	}
	return v, nil
}

// parseValue reads the next complete value from dec.
func parseValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	} else if err != nil {
		return nil, err
	}
	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '{':
			obj := NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(kt.(string), v)
			}
			if _, err = dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := []any{}
			for dec.More() {
				v, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err = dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, errors.New("jsontree: unexpected delimiter " + tok.String())
	default:
		// bool, json.Number, string or nil
		return tok, nil
	}
}
