// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"codello.dev/asn1codec/tlv"
)

// newObservedCodec returns a codec logging into the returned logs.
func newObservedCodec(opts ...Option) (*Codec, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewCodec(append([]Option{WithLogger(zap.New(core))}, opts...)...), logs
}

func TestCodec_Unmarshal(t *testing.T) {
	c, logs := newObservedCodec()
	var got testRecord
	require.NoError(t, c.Unmarshal(fullRecordData, &got))
	if diff := cmp.Diff(fullRecord, got, cmpOpts...); diff != "" {
		t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
	}

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "decoded element", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "*ber.testRecord", entries[0].ContextMap()["type"])
	assert.Equal(t, int64(len(fullRecordData)), entries[0].ContextMap()["bytes"])
}

func TestCodec_optionalAbsence(t *testing.T) {
	// Absent optional fields are not reported.
	c, logs := newObservedCodec()
	var got testRecord
	require.NoError(t, c.Unmarshal(minimalRecordData, &got))
	assert.Equal(t, 1, logs.Len())
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestCodec_trailingData(t *testing.T) {
	data := append(bytes.Clone(minimalRecordData), 0x05, 0x00)

	c, logs := newObservedCodec()
	var got testRecord
	err := c.Unmarshal(data, &got)
	assert.ErrorIs(t, err, ErrTrailingData)
	assert.EqualError(t, err, "ber: trailing data (2 bytes)")
	warnings := logs.FilterMessage("trailing data after element").AllUntimed()
	require.Len(t, warnings, 1)
	assert.Equal(t, zapcore.WarnLevel, warnings[0].Level)
	assert.Equal(t, int64(2), warnings[0].ContextMap()["bytes"])

	c, logs = newObservedCodec(WithTrailingData(true))
	require.NoError(t, c.Unmarshal(data, &got))
	assert.Equal(t, 1, logs.FilterMessage("ignoring trailing data").Len())

	n, err := c.Decode(data, &got)
	require.NoError(t, err)
	assert.Equal(t, len(minimalRecordData), n)
}

func TestCodec_decodeError(t *testing.T) {
	c, logs := newObservedCodec()
	var i Integer
	err := c.Unmarshal([]byte{0x02, 0x00}, &i)
	assert.ErrorIs(t, err, errEmptyInteger)
	entries := logs.FilterMessage("decode failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "*ber.Integer", entries[0].ContextMap()["type"])

	err = c.Unmarshal([]byte{0x02}, &i)
	assert.ErrorIs(t, err, tlv.ErrTruncated)
	assert.Equal(t, 1, logs.FilterMessage("rejected header").Len())
}

func TestCodec_maxLength(t *testing.T) {
	data := []byte{0x04, 0x05, 0x01, 0x02, 0x03, 0x04, 0x05}
	var s OctetString

	c := NewCodec(WithMaxLength(4))
	err := c.Unmarshal(data, &s)
	assert.ErrorIs(t, err, tlv.ErrLengthOverflow)
	var syntaxErr *tlv.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)

	err = c.DecodeReader(bytes.NewReader(data), &s)
	assert.ErrorIs(t, err, tlv.ErrLengthOverflow)

	c = NewCodec(WithMaxLength(5))
	require.NoError(t, c.Unmarshal(data, &s))
	assert.Equal(t, OctetString{0x01, 0x02, 0x03, 0x04, 0x05}, s)

	// negative limits are ignored
	c = NewCodec(WithMaxLength(-1))
	require.NoError(t, c.Unmarshal(data, &s))
}

func TestCodec_DecodeReader(t *testing.T) {
	c := NewCodec()
	var got testRecord
	require.NoError(t, c.DecodeReader(bytes.NewReader(fullRecordData), &got))
	if diff := cmp.Diff(fullRecord, got, cmpOpts...); diff != "" {
		t.Errorf("DecodeReader() mismatch (-want +got):\n%s", diff)
	}

	err := c.DecodeReader(bytes.NewReader(nil), &got)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	err = c.DecodeReader(bytes.NewReader(fullRecordData[:10]), &got)
	assert.ErrorIs(t, err, tlv.ErrTruncated)
}

func TestCodec_Marshal(t *testing.T) {
	c, logs := newObservedCodec()
	v := fullRecord
	got, err := c.Marshal(&v)
	require.NoError(t, err)
	assert.Equal(t, fullRecordData, got)
	assert.Equal(t, 1, logs.FilterMessage("encoded element").Len())

	_, err = c.Marshal(&testTime{})
	assert.ErrorIs(t, err, ErrUnknownSelector)
	assert.Equal(t, 1, logs.FilterMessage("encode failed").Len())
}

func TestCodec_nilLogger(t *testing.T) {
	c := NewCodec(WithLogger(nil))
	var i Integer
	require.NoError(t, c.Unmarshal([]byte{0x02, 0x01, 0x01}, &i))
	assert.Equal(t, int64(1), i.Value)
}

func TestCodec_concurrent(t *testing.T) {
	c, _ := newObservedCodec()
	var g errgroup.Group
	for range 16 {
		g.Go(func() error {
			for range 50 {
				var got testRecord
				if err := c.Unmarshal(fullRecordData, &got); err != nil {
					return err
				}
				b, err := c.Marshal(&got)
				if err != nil {
					return err
				}
				if !bytes.Equal(b, fullRecordData) {
					t.Errorf("Marshal() = % X, want % X", b, fullRecordData)
				}
				if _, err = c.MarshalJSON(&got); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestCodec_JSON(t *testing.T) {
	c, logs := newObservedCodec()
	v := fullRecord
	data, err := c.MarshalJSON(&v)
	require.NoError(t, err)
	assert.Equal(t, `{"num":5,"str":"hi","data":"ab","flag":true,"noteText":"x"}`, string(data))

	var got testRecord
	require.NoError(t, c.UnmarshalJSON(data, &got))
	assert.Equal(t, int64(5), got.Num.Value)
	assert.Equal(t, 1, logs.FilterMessage("converted to json").Len())
	entries := logs.FilterMessage("converted from json").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(5), entries[0].ContextMap()["fields"])
}
