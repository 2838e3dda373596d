package bits

import "io"

// Reader reads MSB-first bit fields from a byte slice.
// The zero value reads from an empty buffer.
type Reader struct {
	buf []byte
	pos uint // next bit to read
}

func NewReader(buf []byte) Reader {
	return Reader{buf: buf}
}

// ReadBits reads n bits (n <= 32) and returns them right aligned.
// It returns io.ErrUnexpectedEOF without consuming anything when fewer than n bits are left.
func (r *Reader) ReadBits(n uint) (bits uint, err error) {
	if n > 32 { //nolint:mnd
		return 0, ErrTooManyBits
	}
	if n > r.BitsLeft() {
		return 0, io.ErrUnexpectedEOF
	}
	for range n {
		b := r.buf[r.pos>>3] >> (7 - r.pos&7) & 1 //nolint:mnd
		bits = bits<<1 | uint(b)
		r.pos++
	}
	return
}

func (r *Reader) ReadBit() (bool, error) {
	b, err := r.ReadBits(1)
	return b == 1, err
}

// BitsLeft returns the number of unread bits.
func (r *Reader) BitsLeft() uint {
	return uint(len(r.buf))*8 - r.pos //nolint:mnd
}
