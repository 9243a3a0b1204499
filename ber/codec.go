// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"codello.dev/asn1codec/jsontree"
	"codello.dev/asn1codec/tlv"
)

// A Codec holds the configuration for encoding and decoding values. The zero
// value is not usable, use [NewCodec]. A Codec is safe for concurrent use.
type Codec struct {
	logger        *zap.Logger
	indent        string
	allowTrailing bool
	maxLength     int
}

// An Option configures a [Codec].
type Option interface {
	applyToCodec(*Codec)
}

// NewCodec returns a new Codec with the given options applied. Without
// options the codec does not log, indents printed output by two spaces, and
// rejects trailing data.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{
		logger:    zap.NewNop(),
		indent:    "  ",
		maxLength: tlv.MaxLength,
	}
	for _, opt := range opts {
		opt.applyToCodec(c)
	}
	return c
}

type loggerOption struct {
	logger *zap.Logger
}

// WithLogger sets the logger that receives diagnostics of the codec. Nodes
// never log, only the entry points of the Codec do. A nil logger disables
// logging.
func WithLogger(l *zap.Logger) Option {
	return &loggerOption{l}
}

func (o *loggerOption) applyToCodec(c *Codec) {
	if o.logger == nil {
		c.logger = zap.NewNop()
		return
	}
	c.logger = o.logger
}

type indentOption struct {
	indent string
}

// WithIndent sets the string used to indent nested values by [Codec.Print].
func WithIndent(indent string) Option {
	return &indentOption{indent}
}

func (o *indentOption) applyToCodec(c *Codec) {
	c.indent = o.indent
}

type trailingDataOption struct {
	allow bool
}

// WithTrailingData controls whether [Codec.Unmarshal] accepts data after the
// top-level value. By default, trailing data results in [ErrTrailingData].
func WithTrailingData(allow bool) Option {
	return &trailingDataOption{allow}
}

func (o *trailingDataOption) applyToCodec(c *Codec) {
	c.allowTrailing = o.allow
}

type maxLengthOption struct {
	max int
}

// WithMaxLength limits the content length of the top-level value. Values larger
// than [tlv.MaxLength] are ignored.
func WithMaxLength(n int) Option {
	return &maxLengthOption{n}
}

func (o *maxLengthOption) applyToCodec(c *Codec) {
	if o.max >= 0 && uint64(o.max) <= tlv.MaxLength {
		c.maxLength = o.max
	}
}

// typeName returns the name of the Go type of v for diagnostics.
func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// Decode decodes a single value from the beginning of b into v and returns the
// number of bytes consumed. The value v must be a [Node], a [Record] or a
// [Composite].
func (c *Codec) Decode(b []byte, v any) (int, error) {
	h, _, err := tlv.ParseHeader(b)
	if err == nil && h.Length > c.maxLength {
		err = &tlv.SyntaxError{Err: tlv.ErrLengthOverflow, Header: h}
	}
	if err != nil {
		c.logger.Debug("rejected header", zap.String("type", typeName(v)), zap.Error(err))
		return 0, err
	}
	n, err := NodeFor(v).BerDecode(b)
	if err != nil {
		c.logger.Debug("decode failed", zap.String("type", typeName(v)), zap.Error(err))
		return n, err
	}
	c.logger.Debug("decoded element", zap.String("type", typeName(v)), zap.Int("bytes", n))
	return n, nil
}

// Unmarshal decodes b into v. Unless the codec is configured using
// [WithTrailingData], b must contain exactly one value.
func (c *Codec) Unmarshal(b []byte, v any) error {
	n, err := c.Decode(b, v)
	if err != nil {
		return err
	}
	if n < len(b) {
		if !c.allowTrailing {
			c.logger.Warn("trailing data after element", zap.String("type", typeName(v)), zap.Int("bytes", len(b)-n))
			return fmt.Errorf("ber: %w (%d bytes)", ErrTrailingData, len(b)-n)
		}
		c.logger.Debug("ignoring trailing data", zap.Int("bytes", len(b)-n))
	}
	return nil
}

// DecodeReader reads a single top-level value from r and decodes it into v.
// Bytes following the value may be read from r and are discarded. Use a
// [tlv.Scanner] to read consecutive values.
func (c *Codec) DecodeReader(r io.Reader, v any) error {
	s := tlv.NewScanner(r)
	s.SetMaxLength(c.maxLength)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return err
		}
		return io.ErrUnexpectedEOF
	}
	return c.Unmarshal(s.Bytes(), v)
}

// Marshal returns the encoding of v.
func (c *Codec) Marshal(v any) ([]byte, error) {
	b, err := NodeFor(v).BerEncode(nil)
	if err != nil {
		c.logger.Debug("encode failed", zap.String("type", typeName(v)), zap.Error(err))
		return nil, err
	}
	c.logger.Debug("encoded element", zap.String("type", typeName(v)), zap.Int("bytes", len(b)))
	return b, nil
}

// Print writes the human-readable representation of v to w. The value is
// labeled with name.
func (c *Codec) Print(w io.Writer, name string, v any) error {
	return NodeFor(v).BerPrint(NewPrinter(w, c.indent), name)
}

// ToJSON returns the JSON tree representing v.
func (c *Codec) ToJSON(v any) (any, error) {
	var root any
	n, err := NodeFor(v).JSONEncode("", &root)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("converted to json", zap.String("type", typeName(v)), zap.Int("fields", n))
	return root, nil
}

// FromJSON sets v from the JSON tree root.
func (c *Codec) FromJSON(root any, v any) error {
	n, err := NodeFor(v).JSONDecode("", root)
	if err != nil {
		return err
	}
	c.logger.Debug("converted from json", zap.String("type", typeName(v)), zap.Int("fields", n))
	return nil
}

// MarshalJSON returns the JSON encoding of v.
func (c *Codec) MarshalJSON(v any) ([]byte, error) {
	root, err := c.ToJSON(v)
	if err != nil {
		return nil, err
	}
	return jsontree.Marshal(root)
}

// UnmarshalJSON parses the JSON-encoded data and stores the result in v.
func (c *Codec) UnmarshalJSON(data []byte, v any) error {
	root, err := jsontree.Parse(data)
	if err != nil {
		return err
	}
	return c.FromJSON(root, v)
}

//region package level functions

var defaultCodec = NewCodec()

// Marshal returns the encoding of v using the default codec.
func Marshal(v any) ([]byte, error) {
	return defaultCodec.Marshal(v)
}

// Unmarshal decodes b into v using the default codec.
func Unmarshal(b []byte, v any) error {
	return defaultCodec.Unmarshal(b, v)
}

// Print writes the human-readable representation of v to w using the default
// codec.
func Print(w io.Writer, name string, v any) error {
	return defaultCodec.Print(w, name, v)
}

// MarshalJSON returns the JSON encoding of v using the default codec.
func MarshalJSON(v any) ([]byte, error) {
	return defaultCodec.MarshalJSON(v)
}

// UnmarshalJSON parses data and stores the result in v using the default
// codec.
func UnmarshalJSON(data []byte, v any) error {
	return defaultCodec.UnmarshalJSON(data, v)
}

//endregion
