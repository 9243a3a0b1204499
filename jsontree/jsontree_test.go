// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsontree

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleObject() {
	obj := NewObject()
	obj.Set("zeta", int64(1))
	obj.Set("alpha", []any{true, nil, "x"})
	obj.Set("zeta", int64(2))
	b, _ := Marshal(obj)
	fmt.Println(string(b))
	// Output: {"zeta":2,"alpha":[true,null,"x"]}
}

func TestParse(t *testing.T) {
	tests := map[string]struct {
		data    string
		wantErr bool
	}{
		"Null":          {`null`, false},
		"Number":        {`18446744073709551617`, false},
		"Nested":        {`{"b":{"d":[1,2,{"e":"f"}],"c":true},"a":null}`, false},
		"EmptyObject":   {`{}`, false},
		"EmptyArray":    {`[]`, false},
		"Trailing":      {`{} {}`, true},
		"Unterminated":  {`{"a":`, true},
		"Empty":         {``, true},
		"InvalidSyntax": {`{"a" 1}`, true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			b, err := Marshal(got)
			require.NoError(t, err)
			assert.Equal(t, tt.data, string(b))
		})
	}
}

func TestParse_numbers(t *testing.T) {
	got, err := Parse([]byte(`{"n":-12,"big":340282366920938463463374607431768211456}`))
	require.NoError(t, err)
	obj := got.(*Object)
	want := map[string]any{
		"n":   json.Number("-12"),
		"big": json.Number("340282366920938463463374607431768211456"),
	}
	for k, w := range want {
		v, ok := obj.Get(k)
		require.True(t, ok, k)
		if diff := cmp.Diff(w, v); diff != "" {
			t.Errorf("Get(%q) mismatch (-want +got):\n%s", k, diff)
		}
	}
	assert.Equal(t, []string{"n", "big"}, obj.Keys())
}

func TestObject_Delete(t *testing.T) {
	obj := NewObject()
	obj.Set("a", "1")
	obj.Set("b", "2")
	obj.Set("c", "3")
	obj.Delete("b")
	obj.Delete("missing")
	assert.Equal(t, []string{"a", "c"}, obj.Keys())
	assert.Equal(t, 2, obj.Len())
	_, ok := obj.Get("b")
	assert.False(t, ok)

	var keys []string
	for k := range obj.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "c"}, keys)
}

func TestObject_UnmarshalJSON(t *testing.T) {
	var v struct {
		Obj *Object `json:"obj"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"obj":{"y":1,"x":2}}`), &v))
	assert.Equal(t, []string{"y", "x"}, v.Obj.Keys())

	var obj Object
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &obj))
}

func TestMarshalIndent(t *testing.T) {
	obj := NewObject()
	obj.Set("k", []any{int64(1)})
	b, err := MarshalIndent(obj, "", "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"k\": [\n    1\n  ]\n}", string(b))
}
