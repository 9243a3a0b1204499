// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"codello.dev/asn1codec/tlv"
)

var errEmptyAny = errors.New("empty ANY value")

// Any captures an arbitrary data value encoding without interpreting it. Bytes
// holds the complete encoding including the header. Decoding accepts any
// well-formed TLV and copies it. The JSON representation is the hex encoded
// TLV.
//
// Any has no natural tag. When tagged within a record it is always tagged
// explicitly.
type Any struct {
	Bytes []byte
}

// Header returns the header of the captured value.
func (a *Any) Header() (tlv.Header, error) {
	h, _, err := tlv.ParseHeader(a.Bytes)
	return h, err
}

// Content returns the content octets of the captured value.
func (a *Any) Content() ([]byte, error) {
	h, hl, err := tlv.ParseHeader(a.Bytes)
	if err != nil {
		return nil, err
	}
	return a.Bytes[hl : hl+h.Length], nil
}

// Decode decodes the captured value into v.
func (a *Any) Decode(v any) error {
	n, err := NodeFor(v).BerDecode(a.Bytes)
	if err == nil && n != len(a.Bytes) {
		err = ErrTrailingData
	}
	return err
}

func (a *Any) BerDecode(b []byte) (int, error) {
	h, hl, err := tlv.ParseHeader(b)
	if err != nil {
		return 0, err
	}
	a.Bytes = bytes.Clone(b[:hl+h.Length])
	return hl + h.Length, nil
}

// validate checks that a holds exactly one TLV.
func (a *Any) validate() error {
	if len(a.Bytes) == 0 {
		return errEmptyAny
	}
	h, hl, err := tlv.ParseHeader(a.Bytes)
	if err != nil {
		return err
	}
	if hl+h.Length != len(a.Bytes) {
		return fmt.Errorf("%w in ANY value", ErrTrailingData)
	}
	return nil
}

func (a *Any) BerEncode(dst []byte) ([]byte, error) {
	if err := a.validate(); err != nil {
		return dst, err
	}
	return append(dst, a.Bytes...), nil
}

func (a *Any) BerPrint(p *Printer, name string) error {
	h, err := a.Header()
	if err != nil {
		return p.Value(name, "ANY", fmt.Sprintf("% X", a.Bytes))
	}
	content, _ := a.Content()
	if len(content) == 0 {
		return p.Value(name, "ANY", h.String())
	}
	return p.Value(name, "ANY", fmt.Sprintf("%s % X", h, content))
}

func (a *Any) JSONEncode(key string, root *any) (int, error) {
	return 1, putJSON(key, root, hex.EncodeToString(a.Bytes))
}

func (a *Any) JSONDecode(key string, root any) (int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		a.Reset()
		return 0, err
	}
	if a.Bytes, err = jsonHex("ANY", v); err != nil {
		return 0, err
	}
	if err = a.validate(); err != nil {
		a.Reset()
		return 0, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return 1, nil
}

func (a *Any) Reset() {
	a.Bytes = nil
}
