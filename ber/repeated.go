// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"strconv"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/tlv"
)

var (
	tagSequence = asn1.Universal(asn1.TagSequence)
	tagSet      = asn1.Universal(asn1.TagSet)
)

var errEmptyElement = errors.New("element consumed no input")

// container is implemented by nodes that hold other nodes in a constructed
// encoding. A [Sequence] with a single container field is flattened in JSON.
type container interface {
	isContainer()
}

//region [UNIVERSAL 16] SEQUENCE OF

// SequenceOf implements the ASN.1 SEQUENCE OF type. The order of Items is
// preserved. The JSON representation is an array.
type SequenceOf[T any] struct {
	Items []T
}

func (s *SequenceOf[T]) isContainer() {}

func (s *SequenceOf[T]) BerTag() (asn1.Tag, bool) { return tagSequence, true }

func (s *SequenceOf[T]) BerDecode(b []byte) (int, error) { return decodeElement(s, tagSequence, b) }

func (s *SequenceOf[T]) BerDecodeContent(_ tlv.Header, content []byte) (err error) {
	s.Items, err = decodeItems[T](content)
	return err
}

func (s *SequenceOf[T]) BerEncode(dst []byte) ([]byte, error) {
	return encodeElement(s, tagSequence, dst)
}

func (s *SequenceOf[T]) BerEncodeContent(dst []byte) ([]byte, error) {
	return encodeItems(dst, s.Items)
}

func (s *SequenceOf[T]) BerPrint(p *Printer, name string) error {
	return printItems(p, name, "SEQUENCE OF", s.Items)
}

func (s *SequenceOf[T]) JSONEncode(key string, root *any) (int, error) {
	return jsonEncodeItems(key, root, s.Items)
}

func (s *SequenceOf[T]) JSONDecode(key string, root any) (n int, err error) {
	s.Items, n, err = jsonDecodeItems[T](key, root)
	return n, err
}

func (s *SequenceOf[T]) Reset() {
	s.Items = nil
}

//endregion

//region [UNIVERSAL 17] SET OF

// SetOf implements the ASN.1 SET OF type. Items are encoded in the order in
// which they appear, no sorting is performed. The JSON representation is an
// array.
type SetOf[T any] struct {
	Items []T
}

func (s *SetOf[T]) isContainer() {}

func (s *SetOf[T]) BerTag() (asn1.Tag, bool) { return tagSet, true }

func (s *SetOf[T]) BerDecode(b []byte) (int, error) { return decodeElement(s, tagSet, b) }

func (s *SetOf[T]) BerDecodeContent(_ tlv.Header, content []byte) (err error) {
	s.Items, err = decodeItems[T](content)
	return err
}

func (s *SetOf[T]) BerEncode(dst []byte) ([]byte, error) { return encodeElement(s, tagSet, dst) }

func (s *SetOf[T]) BerEncodeContent(dst []byte) ([]byte, error) {
	return encodeItems(dst, s.Items)
}

func (s *SetOf[T]) BerPrint(p *Printer, name string) error {
	return printItems(p, name, "SET OF", s.Items)
}

func (s *SetOf[T]) JSONEncode(key string, root *any) (int, error) {
	return jsonEncodeItems(key, root, s.Items)
}

func (s *SetOf[T]) JSONDecode(key string, root any) (n int, err error) {
	s.Items, n, err = jsonDecodeItems[T](key, root)
	return n, err
}

func (s *SetOf[T]) Reset() {
	s.Items = nil
}

//endregion

//region shared implementation

// itemName returns the path segment used for errors of the i-th item.
func itemName(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// decodeItems decodes consecutive values of type T until content is
// exhausted.
func decodeItems[T any](content []byte) ([]T, error) {
	var items []T
	for off := 0; off < len(content); {
		var item T
		n, err := NodeFor(&item).BerDecode(content[off:])
		if err == nil && n == 0 {
			err = errEmptyElement
		}
		if err != nil {
			return nil, withFieldError(err, itemName(len(items)), off)
		}
		items = append(items, item)
		off += n
	}
	return items, nil
}

func encodeItems[T any](dst []byte, items []T) ([]byte, error) {
	var err error
	for i := range items {
		if dst, err = NodeFor(&items[i]).BerEncode(dst); err != nil {
			return dst, withFieldError(err, itemName(i), -1)
		}
	}
	return dst, nil
}

func printItems[T any](p *Printer, name, typ string, items []T) error {
	if err := p.Begin(name, typ); err != nil {
		return err
	}
	for i := range items {
		if err := NodeFor(&items[i]).BerPrint(p, ""); err != nil {
			return err
		}
	}
	return p.End()
}

func jsonEncodeItems[T any](key string, root *any, items []T) (int, error) {
	arr := make([]any, len(items))
	count := 0
	for i := range items {
		n, err := NodeFor(&items[i]).JSONEncode("", &arr[i])
		if err != nil {
			return count, withFieldError(err, itemName(i), -1)
		}
		count += n
	}
	return count, putJSON(key, root, arr)
}

func jsonDecodeItems[T any](key string, root any) ([]T, int, error) {
	v, ok, err := getJSON(key, root)
	if err != nil || !ok {
		return nil, 0, err
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, 0, jsonFormatError("array", v)
	}
	items := make([]T, len(arr))
	count := 0
	for i := range arr {
		n, err := NodeFor(&items[i]).JSONDecode("", arr[i])
		if err != nil {
			return nil, count, withFieldError(err, itemName(i), -1)
		}
		count += n
	}
	return items, count, nil
}

//endregion
