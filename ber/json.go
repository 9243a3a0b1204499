// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"codello.dev/asn1codec/jsontree"
)

// putJSON stores v under key in *root. If key is empty, *root is replaced.
func putJSON(key string, root *any, v any) error {
	if key == "" {
		*root = v
		return nil
	}
	if *root == nil {
		*root = jsontree.NewObject()
	}
	obj, ok := (*root).(*jsontree.Object)
	if !ok {
		return ErrNotAnObject
	}
	obj.Set(key, v)
	return nil
}

// getJSON returns the value stored under key in root. If key is empty, root is
// returned. A missing key or a nil root results in ok == false.
func getJSON(key string, root any) (v any, ok bool, err error) {
	if key == "" {
		return root, true, nil
	}
	if root == nil {
		return nil, false, nil
	}
	obj, isObj := root.(*jsontree.Object)
	if !isObj {
		return nil, false, ErrNotAnObject
	}
	v, ok = obj.Get(key)
	return v, ok, nil
}

// jsonFormatError returns an error indicating that v is not a valid JSON
// representation of a value of type typ.
func jsonFormatError(typ string, v any) error {
	return fmt.Errorf("%w: cannot use JSON value %v as %s", ErrInvalidFormat, v, typ)
}

// jsonInt converts a JSON number to an int64.
func jsonInt(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := strconv.ParseInt(string(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		return i, nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, jsonFormatError("integer", v)
		}
		return int64(n), nil
	}
	return 0, jsonFormatError("integer", v)
}

// jsonString converts a JSON string value.
func jsonString(typ string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", jsonFormatError(typ, v)
	}
	return s, nil
}

// jsonHex decodes a hex encoded JSON string.
func jsonHex(typ string, v any) ([]byte, error) {
	s, err := jsonString(typ, v)
	if err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return b, nil
}
