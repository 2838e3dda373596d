package bits

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReader_ReadBits(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{0xff, 0xfb, 0x90, 0x64})
	require.Equal(t, uint(32), r.BitsLeft())

	widths := []uint{11, 2, 2, 1, 4, 2, 1, 1, 2, 6}
	expected := []uint{0x7ff, 3, 1, 1, 9, 0, 0, 0, 1, 0x24}
	for i, n := range widths {
		v, err := r.ReadBits(n)
		require.NoError(t, err, "field %d", i)
		require.Equal(t, expected[i], v, "field %d", i)
	}
	require.Zero(t, r.BitsLeft())
}

func TestReader_ShortRead(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{0xab})
	_, err := r.ReadBits(9)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, uint(8), r.BitsLeft(), "failed read must not consume")

	v, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, uint(0xab), v)

	_, err = r.ReadBit()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReader_ZeroValue(t *testing.T) {
	t.Parallel()

	var r Reader
	_, err := r.ReadBits(1)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	v, err := r.ReadBits(0)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestReader_TooManyBits(t *testing.T) {
	t.Parallel()

	r := NewReader(make([]byte, 8))
	_, err := r.ReadBits(33)
	require.ErrorIs(t, err, ErrTooManyBits)
}

func TestWriter_WriteBits(t *testing.T) {
	t.Parallel()

	b := new(bytes.Buffer)
	w := &Writer{W: b}
	require.NoError(t, w.WriteBits(0x7ff, 11))
	require.NoError(t, w.WriteBits(3, 2))
	require.NoError(t, w.WriteBits(1, 2))
	require.NoError(t, w.WriteBit(true))
	require.NoError(t, w.WriteBits(9, 4))
	require.NoError(t, w.WriteBits(0, 2))
	require.NoError(t, w.WriteBit(false))
	require.NoError(t, w.WriteBit(false))
	require.NoError(t, w.WriteBits(1, 2))
	require.NoError(t, w.WriteBits(0x24, 6))
	require.NoError(t, w.FlushBits())
	require.Equal(t, []byte{0xff, 0xfb, 0x90, 0x64}, b.Bytes())
}

func TestWriter_MasksAndPads(t *testing.T) {
	t.Parallel()

	b := new(bytes.Buffer)
	w := &Writer{W: b}
	// only the low 3 bits of 0xff are written
	require.NoError(t, w.WriteBits(0xff, 3))
	require.NoError(t, w.WriteBits(0, 2))
	require.NoError(t, w.FlushBits())
	require.Equal(t, []byte{0xe0}, b.Bytes())

	require.NoError(t, w.FlushBits())
	require.Len(t, b.Bytes(), 1)

	require.ErrorIs(t, w.WriteBits(0, 33), ErrTooManyBits)
}

func TestWriterReaderWideFields(t *testing.T) {
	t.Parallel()

	b := new(bytes.Buffer)
	w := &Writer{W: b}
	require.NoError(t, w.WriteBits(0x5, 3))
	require.NoError(t, w.WriteBits(0xdeadbeef, 32))
	require.NoError(t, w.FlushBits())

	r := NewReader(b.Bytes())
	v, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint(0x5), v)
	v, err = r.ReadBits(32)
	require.NoError(t, err)
	require.Equal(t, uint(0xdeadbeef), v)
}
