package tlv

import (
	"errors"
	"strconv"
)

var (
	// ErrTruncated indicates that the input ended before a header or the content
	// octets indicated by a header were complete.
	ErrTruncated = errors.New("truncated data value")

	// ErrLengthOverflow indicates a length or a tag number exceeding [MaxLength]
	// or a configured smaller bound.
	ErrLengthOverflow = errors.New("length exceeds maximum")

	errIndefinite     = errors.New("indefinite length not supported")
	errReservedLength = errors.New("reserved length octet 0xFF")
)

// SyntaxError represents an error in the TLV encoding. The error value contains
// the location of the error within the input as well as the [Header] of the
// data value that contained the malformed data, if known.
type SyntaxError struct {
	requireKeyedLiterals
	nonComparable

	Err error // underlying error

	// ByteOffset is the location of the error. The location is usually the start of
	// the TLV header containing the error.
	ByteOffset int64

	// Header is the TLV header of the data value whose encoding was malformed. It
	// is the zero value if the header itself could not be parsed.
	Header Header
}

func (e *SyntaxError) Unwrap() error { return e.Err }
func (e *SyntaxError) Error() string {
	b := []byte("tlv: syntax error")
	if e.Header != (Header{}) {
		b = append(b, " within "...)
		b = append(b, e.Header.String()...)
	}
	if e.ByteOffset > 0 {
		b = strconv.AppendInt(append(b, " for TLV beginning at offset "...), e.ByteOffset, 10)
	}
	if e.Err != nil {
		b = append(b, ": "...)
		b = append(b, e.Err.Error()...)
	}
	return string(b)
}
