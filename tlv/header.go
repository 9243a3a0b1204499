package tlv

import (
	"errors"
	"io"

	"codello.dev/asn1codec"
	"codello.dev/asn1codec/internal/vlq"
)

// ParseHeader parses the identifier and length octets at the beginning of b.
// It returns the header and the number of bytes it occupies. The content octets
// indicated by the header are guaranteed to be available in b, that is
// headerLen+h.Length <= len(b).
//
// If b is too short for the header or its content, the returned error is
// [ErrTruncated]. Tag numbers and lengths exceeding [MaxLength] result in
// [ErrLengthOverflow]. The indefinite-length form is rejected.
func ParseHeader(b []byte) (h Header, headerLen int, err error) {
	h, headerLen, err = parseHeader(b)
	if err != nil {
		return h, headerLen, err
	}
	if h.Length > len(b)-headerLen {
		return h, headerLen, ErrTruncated
	}
	return h, headerLen, nil
}

// parseHeader implements [ParseHeader] without checking that the content octets
// are available.
func parseHeader(b []byte) (h Header, n int, err error) {
	if len(b) < 2 {
		return Header{}, 0, ErrTruncated
	}
	h.Tag = asn1.Tag{Class: asn1.Class(b[0] >> 6), Number: uint(b[0] & 0x1f)}
	h.Constructed = b[0]&0x20 == 0x20
	n = 1

	// If the bottom five bits are set, then the tag number is actually base 128
	// encoded afterward
	if b[0]&0x1f == 0x1f {
		num, l, err := vlq.Parse(b[n:], MaxLength)
		switch {
		case errors.Is(err, vlq.ErrOverflow):
			return h, n, ErrLengthOverflow
		case err != nil:
			return h, n, ErrTruncated
		}
		h.Tag.Number = uint(num)
		n += l
	}

	if n >= len(b) {
		return h, n, ErrTruncated
	}
	c := b[n]
	n++
	switch {
	case c&0x80 == 0:
		// The length is encoded in the bottom 7 bits.
		h.Length = int(c)
	case c == 0x80:
		return h, n, errIndefinite
	case c == 0xff:
		return h, n, errReservedLength
	default:
		// Bottom 7 bits give the number of length bytes to follow.
		numBytes := int(c & 0x7f)
		if numBytes > len(b)-n {
			return h, n, ErrTruncated
		}
		var l uint64
		for _, c := range b[n : n+numBytes] {
			l = l<<8 | uint64(c)
			if l > MaxLength {
				return h, n, ErrLengthOverflow
			}
		}
		n += numBytes
		if uint64(int(l)) != l {
			return h, n, ErrLengthOverflow
		}
		h.Length = int(l)
	}
	return h, n, nil
}

// readHeader reads the identifier and length octets of a single header from r
// and returns them as a slice. At most the bytes belonging to the header are
// consumed from r. If r is at EOF before the first byte, io.EOF is returned.
func readHeader(r io.ByteReader) ([]byte, error) {
	c, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	buf := append(make([]byte, 0, 16), c)
	if c&0x1f == 0x1f {
		for {
			if c, err = r.ReadByte(); err != nil {
				return buf, noEOF(err)
			}
			buf = append(buf, c)
			if c&0x80 == 0 {
				break
			}
			if len(buf) > 1+vlq.Length(MaxLength) {
				return buf, ErrLengthOverflow
			}
		}
	}
	if c, err = r.ReadByte(); err != nil {
		return buf, noEOF(err)
	}
	buf = append(buf, c)
	if c&0x80 != 0 && c != 0x80 && c != 0xff {
		for range c & 0x7f {
			if c, err = r.ReadByte(); err != nil {
				return buf, noEOF(err)
			}
			buf = append(buf, c)
		}
	}
	return buf, nil
}

// HeaderSize returns the number of bytes [AppendHeader] appends for h.
func HeaderSize(h Header) int {
	l := 1 // class, constructed, tag
	if h.Tag.Number >= 31 {
		// tag does not fit
		l += vlq.Length(uint64(h.Tag.Number))
	}
	l++ // length
	if h.Length < 128 {
		return l
	}
	// multi-byte length
	for hl := h.Length; hl > 0; hl >>= 8 {
		l++
	}
	return l
}

// AppendHeader appends the minimal BER-encoding of h to dst and returns the
// extended slice. A negative length is encoded as zero.
func AppendHeader(dst []byte, h Header) []byte {
	b := byte(h.Tag.Class&0b11) << 6
	if h.Constructed {
		b |= 0x20
	}
	if h.Tag.Number < 31 {
		dst = append(dst, b|byte(h.Tag.Number))
	} else {
		dst = append(dst, b|0x1f)
		dst = vlq.Append(dst, uint64(h.Tag.Number))
	}

	switch {
	case h.Length < 0:
		dst = append(dst, 0)
	case h.Length < 128:
		dst = append(dst, byte(h.Length))
	default:
		numBytes := 0
		for l := h.Length; l > 0; l >>= 8 {
			numBytes++
		}
		dst = append(dst, 0x80|byte(numBytes))
		for ; numBytes > 0; numBytes-- {
			dst = append(dst, byte(h.Length>>uint((numBytes-1)*8)))
		}
	}
	return dst
}

// noEOF returns err, unless err == io.EOF, in which case it returns ErrTruncated.
func noEOF(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return err
}
