// Package vlq implements [Variable-length quantity] encoding as used in BER
// tag numbers and object identifier arcs. A VLQ is essentially a base-128
// representation of an unsigned integer with the eighth bit of every byte but
// the last one set to mark continuation. VLQ is identical to [LEB128] except in
// endianness.
//
// All functions operate on byte slices. Parsing is bounded by a caller supplied
// maximum so that hostile input can never produce values larger than the
// caller is prepared to handle.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
// [LEB128]: https://en.wikipedia.org/wiki/LEB128
package vlq

import (
	"errors"
	"io"
)

var (
	// ErrNotMinimal indicates a VLQ with a leading 0x80 byte.
	ErrNotMinimal = errors.New("vlq is not minimally encoded")
	// ErrOverflow indicates a VLQ whose value exceeds the requested maximum.
	ErrOverflow = errors.New("vlq exceeds maximum value")
)

// Parse parses an unsigned VLQ from the beginning of b and returns its value as
// well as the number of bytes it occupies. Values larger than max result in
// [ErrOverflow]. If b ends before the final byte of the VLQ, (which is the first
// byte without the continuation bit), [io.ErrUnexpectedEOF] is returned. An
// empty b results in [io.EOF].
//
// Parse ignores an arbitrary amount of leading zeros (encoded as 0x80 bytes).
// Use [ParseMinimal] to parse a minimally-encoded VLQ.
func Parse(b []byte, max uint64) (uint64, int, error) {
	return parse(b, max, false)
}

// ParseMinimal works like [Parse] but returns [ErrNotMinimal] if the VLQ is not
// minimally encoded (i.e. if it starts with a 0x80 byte).
func ParseMinimal(b []byte, max uint64) (uint64, int, error) {
	return parse(b, max, true)
}

// parse implements [Parse] and [ParseMinimal].
func parse(b []byte, max uint64, minimal bool) (ret uint64, n int, err error) {
	if len(b) == 0 {
		return 0, 0, io.EOF
	}
	if b[0] == 0x80 && minimal {
		return 0, 0, ErrNotMinimal
	}
	for n < len(b) {
		c := b[n]
		n++
		if ret > max>>7 {
			return 0, n, ErrOverflow
		}
		ret = ret<<7 | uint64(c&0x7f)
		if ret > max {
			return 0, n, ErrOverflow
		}
		if c&0x80 == 0 {
			return ret, n, nil
		}
	}
	return 0, n, io.ErrUnexpectedEOF
}

// Length returns the number of bytes needed to encode v as a VLQ.
func Length(v uint64) int {
	l := 1
	for v >>= 7; v > 0; v >>= 7 {
		l++
	}
	return l
}

// Append appends the minimal VLQ encoding of v to dst and returns the extended
// slice.
func Append(dst []byte, v uint64) []byte {
	for j := Length(v) - 1; j >= 0; j-- {
		b := byte(v>>(j*7)) & 0x7f
		if j > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}
