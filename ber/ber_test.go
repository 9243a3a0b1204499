// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/tlv"
)

// This file contains tests of the combinators. The test types defined here are
// shared with the JSON and printing tests.

// testRecord covers optional, tagged and skipped fields.
type testRecord struct {
	Num    Integer
	Str    Optional[UTF8String]
	Data   OctetString
	Flag   Optional[Boolean]
	Note   Optional[IA5String]
	Hidden Optional[Integer]
}

func (r *testRecord) BerFields() []Field {
	return []Field{
		NewField("num", &r.Num),
		NewField("str", &r.Str),
		NewFieldWithParams("data", &r.Data, "application,tag:5"),
		NewFieldWithParams("flag", &r.Flag, "tag:0"),
		NewFieldWithParams("note", &r.Note, "tag:1,explicit,json:noteText"),
		NewFieldWithParams("hidden", &r.Hidden, "tag:2,skip"),
	}
}

var (
	fullRecord = testRecord{
		Num:    NewInteger(5),
		Str:    Some(UTF8String("hi")),
		Data:   OctetString{0xAB},
		Flag:   Some(Boolean(true)),
		Note:   Some(IA5String("x")),
		Hidden: Some(NewInteger(7)),
	}
	fullRecordData = []byte{0x30, 0x15,
		0x02, 0x01, 0x05,
		0x0C, 0x02, 'h', 'i',
		0x45, 0x01, 0xAB,
		0x80, 0x01, 0xFF,
		0xA1, 0x03, 0x16, 0x01, 'x',
		0x82, 0x01, 0x07}

	minimalRecord     = testRecord{Num: NewInteger(5), Data: OctetString{0xAB}}
	minimalRecordData = []byte{0x30, 0x06, 0x02, 0x01, 0x05, 0x45, 0x01, 0xAB}
)

// testOuter nests records in a SEQUENCE OF.
type testOuter struct {
	Name  UTF8String
	Items SequenceOf[testRecord]
}

func (o *testOuter) BerFields() []Field {
	return []Field{
		NewField("name", &o.Name),
		NewField("items", &o.Items),
	}
}

// testNames is flattened in JSON.
type testNames struct {
	Names SequenceOf[UTF8String]
}

func (n *testNames) BerFields() []Field {
	return []Field{NewField("names", &n.Names)}
}

// testAttributes uses an implicitly tagged SET OF.
type testAttributes struct {
	Version Integer
	Attrs   SetOf[UTF8String]
}

func (a *testAttributes) BerFields() []Field {
	return []Field{
		NewField("version", &a.Version),
		NewFieldWithParams("attributes", &a.Attrs, "tag:0"),
	}
}

var (
	oidRSA        = "1.2.840.113549.1.1.1"
	oidECPublic   = "1.2.840.10045.2.1"
	oidP256       = MustParseObjectIdentifier("1.2.840.10045.3.1.7")
	oidPrivateUse = MustParseObjectIdentifier("1.3.6.1.4.1.99")
)

// testAlgorithm selects its parameters by the algorithm identifier.
type testAlgorithm struct {
	Algorithm ObjectIdentifier
	Null      Null
	Curve     ObjectIdentifier
	Other     Optional[Any]
}

func (a *testAlgorithm) BerFields() []Field {
	return []Field{
		NewField("algorithm", &a.Algorithm),
		NewField("parameters", Select(&a.Algorithm,
			Case("null", &a.Null, oidRSA),
			Case("curve", &a.Curve, oidECPublic),
			Default("other", &a.Other),
		)),
	}
}

// testStrictAlgorithm has no default member.
type testStrictAlgorithm struct {
	Algorithm ObjectIdentifier
	Null      Null
}

func (a *testStrictAlgorithm) BerFields() []Field {
	return []Field{
		NewField("algorithm", &a.Algorithm),
		NewField("parameters", Select(&a.Algorithm, Case("null", &a.Null, oidRSA))),
	}
}

// testTime is a choice decoded by trial.
type testTime struct {
	Kind int
	UTC  UTCTime
	Gen  GeneralizedTime
}

func (t *testTime) BerNode() Node {
	return Trial(&t.Kind, Try(1, "utcTime", &t.UTC), Try(2, "generalTime", &t.Gen))
}

// testEvent tags nodes without a natural tag.
type testEvent struct {
	ID   Integer
	When testTime
	Raw  Optional[Any]
}

func (e *testEvent) BerFields() []Field {
	return []Field{
		NewField("id", &e.ID),
		NewFieldWithParams("when", &e.When, "tag:0"),
		NewFieldWithParams("raw", &e.Raw, "tag:1"),
	}
}

// testAmbiguous has candidates accepting the same input.
type testAmbiguous struct {
	Which string
	Str   OctetString
	Raw   Any
}

func (a *testAmbiguous) BerNode() Node {
	return Trial(&a.Which, Try("str", "octets", &a.Str), Try("raw", "any", &a.Raw))
}

// testAmbiguousReversed declares the candidates of testAmbiguous in reverse
// order.
type testAmbiguousReversed testAmbiguous

func (a *testAmbiguousReversed) BerNode() Node {
	return Trial(&a.Which, Try("raw", "any", &a.Raw), Try("str", "octets", &a.Str))
}

var testDate = time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)

//region SEQUENCE

func TestSequenceCodec(t *testing.T) {
	testCodec(t, map[string]testCase[testRecord]{
		// Marshal & Unmarshal
		"Full":    {val: fullRecord, data: fullRecordData},
		"Minimal": {val: minimalRecord, data: minimalRecordData},
		"Partial": {val: testRecord{Num: NewInteger(-1), Data: OctetString{}, Note: Some(IA5String("ab"))}, data: []byte{0x30, 0x0B,
			0x02, 0x01, 0xFF,
			0x45, 0x00,
			0xA1, 0x04, 0x16, 0x02, 'a', 'b'}},
	}, nil, map[string]testCase[testRecord]{
		// Unmarshal
		"TrailingData": {data: []byte{0x30, 0x08, 0x02, 0x01, 0x05, 0x45, 0x01, 0xAB, 0x05, 0x00}, wantErr: ErrTrailingData},
		"MissingField": {data: []byte{0x30, 0x03, 0x02, 0x01, 0x05}, wantErr: tlv.ErrTruncated},
		"WrongOrder":   {data: []byte{0x30, 0x06, 0x45, 0x01, 0xAB, 0x02, 0x01, 0x05}, wantErr: ErrUnexpectedTag},
		"NotSequence":  {data: []byte{0x31, 0x06, 0x02, 0x01, 0x05, 0x45, 0x01, 0xAB}, wantErr: &UnexpectedTagError{}},
		"Primitive":    {data: []byte{0x10, 0x06, 0x02, 0x01, 0x05, 0x45, 0x01, 0xAB}, wantErr: errPrimitive},
		// The explicit wrapper must contain exactly one value.
		"ExplicitTrailing": {data: []byte{0x30, 0x0D,
			0x02, 0x01, 0x05,
			0x45, 0x01, 0xAB,
			0xA1, 0x05, 0x16, 0x01, 'x', 0x05, 0x00}, wantErr: ErrTrailingData},
	})
}

func TestSequence_nested(t *testing.T) {
	testCodec(t, map[string]testCase[testOuter]{
		// Marshal & Unmarshal
		"Empty": {val: testOuter{Name: "a"}, data: []byte{0x30, 0x05, 0x0C, 0x01, 'a', 0x30, 0x00}},
		"Items": {val: testOuter{Name: "a", Items: SequenceOf[testRecord]{Items: []testRecord{minimalRecord, minimalRecord}}}, data: []byte{0x30, 0x15,
			0x0C, 0x01, 'a',
			0x30, 0x10,
			0x30, 0x06, 0x02, 0x01, 0x05, 0x45, 0x01, 0xAB,
			0x30, 0x06, 0x02, 0x01, 0x05, 0x45, 0x01, 0xAB}},
	}, nil, nil)
}

func TestSequence_Fields(t *testing.T) {
	var r testRecord
	s := Struct(&r)
	var names []string
	for _, f := range s.Fields() {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{"num", "str", "data", "flag", "note", "hidden"}, names)
}

func TestNewSequence(t *testing.T) {
	var (
		a Integer
		b Optional[Boolean]
	)
	s := NewSequence(NewField("a", &a), NewFieldWithParams("b", &b, "tag:3"))
	got, err := s.BerEncode(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x30, 0x03, 0x02, 0x01, 0x00}, got)

	b = Some(Boolean(false))
	got, err = s.BerEncode(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x30, 0x06, 0x02, 0x01, 0x00, 0x83, 0x01, 0x00}, got)

	n, err := s.BerDecode([]byte{0x30, 0x06, 0x02, 0x01, 0x09, 0x83, 0x01, 0x01, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, int64(9), a.Value)
	assert.Equal(t, Some(Boolean(true)), b)
}

//endregion

//region OPTIONAL

func TestOptional_absent(t *testing.T) {
	o := Some(NewInteger(3))
	n, err := o.BerDecode([]byte{0x04, 0x00})
	require.NoError(t, err)
	assert.Zero(t, n, "absent optional consumed input")
	assert.False(t, o.Present)
	assert.Zero(t, o.Value.Value)

	n, err = o.BerDecode(nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	got, err := o.BerEncode([]byte{0xAA})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA}, got, "absent optional was encoded")
}

func TestOptional_present(t *testing.T) {
	var o Optional[Integer]
	n, err := o.BerDecode([]byte{0x02, 0x01, 0x2A, 0x05, 0x00})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, o.Present)
	assert.Equal(t, int64(42), o.Value.Value)

	o.Reset()
	assert.False(t, o.Present)
	assert.Zero(t, o.Value.Value)
}

//endregion

//region SEQUENCE OF, SET OF

func TestSequenceOfCodec(t *testing.T) {
	testCodec(t, map[string]testCase[SequenceOf[Integer]]{
		// Marshal & Unmarshal
		"Empty": {val: SequenceOf[Integer]{}, data: []byte{0x30, 0x00}},
		"Items": {val: SequenceOf[Integer]{Items: []Integer{NewInteger(1), NewInteger(2), NewInteger(300)}}, data: []byte{0x30, 0x0A,
			0x02, 0x01, 0x01,
			0x02, 0x01, 0x02,
			0x02, 0x02, 0x01, 0x2C}},
	}, nil, map[string]testCase[SequenceOf[Integer]]{
		// Unmarshal
		"WrongItem": {data: []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x04, 0x01, 0x02}, wantErr: ErrUnexpectedTag},
		"Truncated": {data: []byte{0x30, 0x04, 0x02, 0x01, 0x01, 0x02}, wantErr: tlv.ErrTruncated},
		"Set":       {data: []byte{0x31, 0x03, 0x02, 0x01, 0x01}, wantErr: ErrUnexpectedTag},
	})
}

func TestSetOfCodec(t *testing.T) {
	testCodec(t, map[string]testCase[SetOf[UTF8String]]{
		// Marshal & Unmarshal
		"Unsorted": {val: SetOf[UTF8String]{Items: []UTF8String{"b", "a"}}, data: []byte{0x31, 0x06,
			0x0C, 0x01, 'b',
			0x0C, 0x01, 'a'}},
	}, nil, nil)
}

func TestSequenceOf_emptyElement(t *testing.T) {
	var s SequenceOf[Optional[Integer]]
	_, err := s.BerDecode([]byte{0x30, 0x02, 0x05, 0x00})
	assert.ErrorIs(t, err, errEmptyElement)
}

//endregion

//region tagging

func TestTagging(t *testing.T) {
	testCodec(t, map[string]testCase[testAttributes]{
		// Marshal & Unmarshal
		"ImplicitSetOf": {val: testAttributes{Version: NewInteger(1), Attrs: SetOf[UTF8String]{Items: []UTF8String{"a", "b"}}}, data: []byte{0x30, 0x0B,
			0x02, 0x01, 0x01,
			0xA0, 0x06, 0x0C, 0x01, 'a', 0x0C, 0x01, 'b'}},
	}, nil, map[string]testCase[testAttributes]{
		// Unmarshal
		"UntaggedSet": {data: []byte{0x30, 0x0B,
			0x02, 0x01, 0x01,
			0x31, 0x06, 0x0C, 0x01, 'a', 0x0C, 0x01, 'b'}, wantErr: ErrUnexpectedTag},
	})

	testCodec(t, map[string]testCase[testEvent]{
		// Marshal & Unmarshal
		"UTCTime": {val: testEvent{ID: NewInteger(1), When: testTime{Kind: 1, UTC: UTCTime(testDate)}, Raw: Some(Any{Bytes: []byte{0x05, 0x00}})}, data: append(append([]byte{0x30, 0x18,
			0x02, 0x01, 0x01,
			0xA0, 0x0F, 0x17, 0x0D}, "230102030405Z"...),
			0xA1, 0x02, 0x05, 0x00)},
		"GeneralizedTime": {val: testEvent{ID: NewInteger(2), When: testTime{Kind: 2, Gen: GeneralizedTime(time.Date(2051, 1, 1, 0, 0, 0, 0, time.UTC))}}, data: append([]byte{0x30, 0x16,
			0x02, 0x01, 0x02,
			0xA0, 0x11, 0x18, 0x0F}, "20510101000000Z"...)},
	}, nil, nil)
}

func TestImplicit(t *testing.T) {
	var i Integer
	e := Implicit(&i, asn1.Tag{Class: asn1.ClassPrivate, Number: 40})
	tag, constructed := e.BerTag()
	assert.Equal(t, asn1.Tag{Class: asn1.ClassPrivate, Number: 40}, tag)
	assert.False(t, constructed)

	n, err := e.BerDecode([]byte{0xDF, 0x28, 0x01, 0x07})
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, int64(7), i.Value)

	_, err = e.BerDecode([]byte{0x02, 0x01, 0x07})
	assert.ErrorIs(t, err, ErrUnexpectedTag)
}

func TestExplicit(t *testing.T) {
	var s OctetString
	e := Explicit(&s, asn1.ContextSpecific(2))
	tag, constructed := e.BerTag()
	assert.Equal(t, asn1.ContextSpecific(2), tag)
	assert.True(t, constructed)

	s = OctetString{0x01}
	got, err := e.BerEncode(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xA2, 0x03, 0x04, 0x01, 0x01}, got)

	// primitive encoding of an explicit tag
	_, err = e.BerDecode([]byte{0x82, 0x03, 0x04, 0x01, 0x01})
	assert.ErrorIs(t, err, errPrimitive)
}

//endregion

//region Choice

func TestChoiceCodec(t *testing.T) {
	testCodec(t, map[string]testCase[testAlgorithm]{
		// Marshal & Unmarshal
		"Null": {val: testAlgorithm{Algorithm: MustParseObjectIdentifier(oidRSA)}, data: []byte{0x30, 0x0D,
			0x06, 0x09, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x01,
			0x05, 0x00}},
		"Curve": {val: testAlgorithm{Algorithm: MustParseObjectIdentifier(oidECPublic), Curve: oidP256}, data: []byte{0x30, 0x13,
			0x06, 0x07, 0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x02, 0x01,
			0x06, 0x08, 0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x03, 0x01, 0x07}},
		"DefaultAbsent": {val: testAlgorithm{Algorithm: oidPrivateUse}, data: []byte{0x30, 0x08,
			0x06, 0x06, 0x2B, 0x06, 0x01, 0x04, 0x01, 0x63}},
		"DefaultPresent": {val: testAlgorithm{Algorithm: oidPrivateUse, Other: Some(Any{Bytes: []byte{0x04, 0x01, 0xAA}})}, data: []byte{0x30, 0x0B,
			0x06, 0x06, 0x2B, 0x06, 0x01, 0x04, 0x01, 0x63,
			0x04, 0x01, 0xAA}},
	}, nil, map[string]testCase[testAlgorithm]{
		// Unmarshal
		"WrongParameters": {data: []byte{0x30, 0x0D,
			0x06, 0x09, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x01,
			0x04, 0x00}, wantErr: ErrUnexpectedTag},
	})
}

func TestChoice_resetsInactive(t *testing.T) {
	got := testAlgorithm{Curve: oidP256, Other: Some(Any{Bytes: []byte{0x05, 0x00}})}
	err := Unmarshal([]byte{0x30, 0x0D,
		0x06, 0x09, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x01, 0x01,
		0x05, 0x00}, &got)
	require.NoError(t, err)
	assert.Nil(t, got.Curve)
	assert.False(t, got.Other.Present)
}

func TestChoice_unknownSelector(t *testing.T) {
	var got testStrictAlgorithm
	err := Unmarshal([]byte{0x30, 0x0A,
		0x06, 0x06, 0x2B, 0x06, 0x01, 0x04, 0x01, 0x63,
		0x05, 0x00}, &got)
	var selErr *UnknownSelectorError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, "1.3.6.1.4.1.99", selErr.Value)
	assert.ErrorIs(t, err, ErrUnknownSelector)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "parameters", fieldErr.Path)
	assert.Equal(t, 10, fieldErr.Offset)

	_, err = Marshal(&testStrictAlgorithm{Algorithm: oidPrivateUse})
	assert.ErrorIs(t, err, ErrUnknownSelector)
}

func TestChoice_Active(t *testing.T) {
	oid := MustParseObjectIdentifier(oidECPublic)
	var null Null
	var curve, other ObjectIdentifier
	c := Select(&oid, Case("null", &null, oidRSA), Case("curve", &curve, oidECPublic, "1.3.132.1.12"), Default("other", &other))

	tests := map[string]string{
		oidRSA:           "null",
		oidECPublic:      "curve",
		"1.3.132.1.12":   "curve",
		"1.3.6.1.4.1.99": "other",
	}
	for key, want := range tests {
		t.Run(key, func(t *testing.T) {
			oid = MustParseObjectIdentifier(key)
			got, err := c.Active()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

//endregion

//region TrialChoice

func TestTrialChoice_order(t *testing.T) {
	data := []byte{0x04, 0x01, 0xAA}

	var a testAmbiguous
	require.NoError(t, Unmarshal(data, &a))
	assert.Equal(t, testAmbiguous{Which: "str", Str: OctetString{0xAA}}, a)

	var r testAmbiguousReversed
	require.NoError(t, Unmarshal(data, &r))
	assert.Equal(t, testAmbiguousReversed{Which: "raw", Raw: Any{Bytes: data}}, r)
}

func TestTrialChoice_fallthrough(t *testing.T) {
	a := testAmbiguous{Which: "str", Str: OctetString{0x01}}
	require.NoError(t, Unmarshal([]byte{0x05, 0x00}, &a))
	assert.Equal(t, "raw", a.Which)
	assert.Nil(t, a.Str, "inactive candidate was not reset")
	assert.Equal(t, []byte{0x05, 0x00}, a.Raw.Bytes)
}

func TestTrialChoice_noMatch(t *testing.T) {
	a := testAmbiguous{Which: "str", Str: OctetString{0x01}}
	err := Unmarshal([]byte{0x04, 0x05, 0xAA}, &a)
	assert.ErrorIs(t, err, ErrNoVariantMatched)
	assert.ErrorIs(t, err, tlv.ErrTruncated)
	var varErr *VariantError
	require.ErrorAs(t, err, &varErr)
	assert.Equal(t, []string{"octets", "any"}, varErr.Candidates)
	assert.Equal(t, testAmbiguous{}, a)

	var tt testTime
	err = Unmarshal([]byte{0x02, 0x01, 0x00}, &tt)
	assert.ErrorIs(t, err, ErrNoVariantMatched)
	assert.ErrorIs(t, err, ErrUnexpectedTag)
}

func TestTrialChoice_unknownDiscriminant(t *testing.T) {
	_, err := Marshal(&testTime{Kind: 3})
	var selErr *UnknownSelectorError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, "3", selErr.Value)

	_, err = MarshalJSON(&testAmbiguous{})
	assert.ErrorIs(t, err, ErrUnknownSelector)
}

func TestTrialChoiceCodec(t *testing.T) {
	testCodec(t, map[string]testCase[testTime]{
		// Marshal & Unmarshal
		"UTCTime":         {val: testTime{Kind: 1, UTC: UTCTime(testDate)}, data: append([]byte{0x17, 0x0D}, "230102030405Z"...)},
		"GeneralizedTime": {val: testTime{Kind: 2, Gen: GeneralizedTime(testDate)}, data: append([]byte{0x18, 0x0F}, "20230102030405Z"...)},
	}, nil, nil)
}

//endregion

//region errors

func TestFieldError_decode(t *testing.T) {
	data := []byte{0x30, 0x15,
		0x0C, 0x01, 'a',
		0x30, 0x10,
		0x30, 0x06, 0x02, 0x01, 0x05, 0x45, 0x01, 0xAB,
		0x30, 0x06, 0x04, 0x01, 0x05, 0x45, 0x01, 0xAB}
	var got testOuter
	err := Unmarshal(data, &got)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "items[1].num", fieldErr.Path)
	assert.Equal(t, 17, fieldErr.Offset)
	assert.Equal(t, byte(0x04), data[fieldErr.Offset])
	assert.ErrorIs(t, err, ErrUnexpectedTag)
	assert.EqualError(t, err, "ber: items[1].num at offset 17: unexpected tag [UNIVERSAL 4], want [UNIVERSAL 2]")
}

func TestFieldError_encode(t *testing.T) {
	v := testOuter{Name: "a", Items: SequenceOf[testRecord]{Items: []testRecord{{Str: Some(UTF8String("\xff"))}}}}
	_, err := Marshal(&v)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "items[0].str", fieldErr.Path)
	assert.Equal(t, -1, fieldErr.Offset)
	assert.EqualError(t, err, "ber: items[0].str: UTF8String contains invalid characters")
}

func TestNodeFor_invalid(t *testing.T) {
	tests := map[string]any{
		"Int":        42,
		"Nil":        nil,
		"NilPointer": (*Integer)(nil),
		"Struct":     struct{ A int }{},
	}
	for name, v := range tests {
		t.Run(name, func(t *testing.T) {
			var typeErr *InvalidTypeError
			_, err := Marshal(v)
			assert.ErrorAs(t, err, &typeErr)
			assert.ErrorAs(t, Unmarshal([]byte{0x05, 0x00}, v), &typeErr)
		})
	}
}

func TestEqual(t *testing.T) {
	a := fullRecord
	b := fullRecord
	assert.True(t, Equal(&a, &b))
	b.Num = NewInteger(6)
	assert.False(t, Equal(&a, &b))
	assert.False(t, Equal(42, 42))

	// values decoded from non-minimal input are equal to their minimal form
	var i Integer
	require.NoError(t, Unmarshal([]byte{0x02, 0x02, 0x00, 0x05}, &i))
	assert.True(t, Equal(&i, ptr(NewInteger(5))))
	assert.True(t, cmp.Equal(NewInteger(5).Value, i.Value))
}

func TestSyntaxError_Error(t *testing.T) {
	tests := map[string]struct {
		err  error
		want string
	}{
		"Tag":      {&SyntaxError{Tag: asn1.Universal(asn1.TagInteger), Err: errEmptyInteger}, "syntax error decoding [UNIVERSAL 2]: empty integer"},
		"NoTag":    {&SyntaxError{Err: errors.New("oops")}, "syntax error: oops"},
		"Variant":  {&VariantError{Candidates: []string{"a", "b"}}, "no variant matched (tried a, b)"},
		"Selector": {&UnknownSelectorError{Value: "1.2.3"}, `unknown selector value "1.2.3"`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

//endregion
