package tlv

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// maxPrealloc is the largest number of bytes a [Scanner] allocates up front
// for the content of a TLV. Larger values grow the buffer while reading so
// that a forged length cannot cause a large allocation.
const maxPrealloc = 64 << 10

// A Scanner reads consecutive top-level TLVs from an [io.Reader]. Successive
// calls to [Scanner.Scan] step through the TLVs, the complete encoding of the
// current TLV (header and content) is available via [Scanner.Bytes]. Scanning
// stops at the end of the input or at the first error.
//
// A Scanner does not validate the content of constructed TLVs. Use the ber
// package to decode the returned bytes.
type Scanner struct {
	r      *bufio.Reader
	max    int
	offset int64

	buf    bytes.Buffer
	header Header
	err    error
}

// NewScanner returns a new Scanner reading from r. TLVs with a content length
// larger than [MaxLength] are rejected. Use [Scanner.SetMaxLength] to set a
// tighter bound.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r), max: MaxLength}
}

// SetMaxLength sets the maximum content length of a single TLV. Values larger
// than [MaxLength] are ignored. SetMaxLength must be called before scanning.
func (s *Scanner) SetMaxLength(n int) {
	if n >= 0 && uint64(n) <= MaxLength {
		s.max = n
	}
}

// Scan advances s to the next TLV. It returns false when the scan stops, either
// by reaching the end of the input or an error. After Scan returns false, the
// [Scanner.Err] method will return any error that occurred during scanning,
// except that if it was [io.EOF] at a TLV boundary, Err will return nil.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	s.buf.Reset()
	s.header = Header{}

	hdr, err := readHeader(s.r)
	if err == io.EOF && len(hdr) == 0 {
		s.err = io.EOF
		return false
	}
	if err != nil {
		return s.fail(err)
	}
	h, n, err := parseHeader(hdr)
	if err != nil {
		return s.fail(err)
	}
	s.header = h
	if h.Length > s.max {
		return s.fail(ErrLengthOverflow)
	}

	s.buf.Grow(n + min(h.Length, maxPrealloc))
	s.buf.Write(hdr)
	if _, err = io.CopyN(&s.buf, s.r, int64(h.Length)); err != nil {
		return s.fail(noEOF(err))
	}
	s.offset += int64(s.buf.Len())
	return true
}

// fail records err as a [SyntaxError] at the current TLV.
func (s *Scanner) fail(err error) bool {
	if errors.Is(err, ErrTruncated) || errors.Is(err, ErrLengthOverflow) ||
		err == errIndefinite || err == errReservedLength {
		err = &SyntaxError{Err: err, ByteOffset: s.offset, Header: s.header}
	}
	s.err = err
	return false
}

// Header returns the header of the most recent TLV produced by [Scanner.Scan].
func (s *Scanner) Header() Header {
	return s.header
}

// Bytes returns the complete encoding of the most recent TLV produced by
// [Scanner.Scan]. The underlying array may point to data that will be
// overwritten by a subsequent call to Scan.
func (s *Scanner) Bytes() []byte {
	return s.buf.Bytes()
}

// InputOffset returns the number of input bytes consumed by completed TLVs.
func (s *Scanner) InputOffset() int64 {
	return s.offset
}

// Err returns the first non-EOF error that was encountered by s.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}
