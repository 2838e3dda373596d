package bits

import (
	"errors"
	"io"
)

var ErrTooManyBits = errors.New("bits: at most 32 bits per call")

// Writer packs MSB-first bit fields into bytes written to W.
type Writer struct {
	W    io.Writer
	n    uint
	bits uint64
}

func (w *Writer) WriteBits(bits uint, n uint) (err error) {
	if n > 32 { //nolint:mnd
		return ErrTooManyBits
	}
	w.bits = w.bits<<n | uint64(bits)&(1<<n-1)
	w.n += n
	var b [4]byte
	var cnt int
	for w.n >= 8 {
		w.n -= 8
		b[cnt] = byte(w.bits >> w.n)
		cnt++
	}
	w.bits &= 1<<w.n - 1
	if cnt > 0 {
		_, err = w.W.Write(b[:cnt])
	}
	return
}

func (w *Writer) WriteBit(b bool) error {
	if b {
		return w.WriteBits(1, 1)
	}
	return w.WriteBits(0, 1)
}

// FlushBits writes any pending partial byte, zero padded on the right.
func (w *Writer) FlushBits() (err error) {
	if w.n > 0 {
		b := [1]byte{byte(w.bits << (8 - w.n))}
		_, err = w.W.Write(b[:])
		w.n = 0
		w.bits = 0
	}
	return
}
