package buffer

import "sync"

// MPEG audio frames never exceed 2881 bytes (padded Layer II, 160 kbps, 8 kHz),
// so default sized buffers are never reallocated for them.
const (
	defaultBufSize = 4 * 1024
	maxBufSize     = 64 * 1024 // buffers grown beyond this are left to the GC
)

var bufPool = sync.Pool{
	New: func() any {
		return &memBuffer{
			buf: make([]byte, 0, defaultBufSize),
		}
	},
}

// Get returns a pooled buffer of length size.
func Get(size int) PooledBuffer {
	b, _ := bufPool.Get().(*memBuffer)
	if cap(b.buf) < size {
		b.buf = make([]byte, size)
	}
	b.buf = b.buf[:size]
	return b
}

// GetCopy returns a pooled buffer holding a copy of data.
func GetCopy(data []byte) PooledBuffer {
	b := Get(len(data))
	copy(b.Data(), data)
	return b
}

type memBuffer struct {
	buf []byte
}

func (b *memBuffer) Data() []byte {
	return b.buf
}

func (b *memBuffer) Len() int {
	return len(b.buf)
}

func (b *memBuffer) Cap() int {
	return cap(b.buf)
}

// Resize changes the length, reallocating only when the capacity is too small.
func (b *memBuffer) Resize(size int) {
	if size > cap(b.buf) {
		newBuf := make([]byte, size)
		copy(newBuf, b.buf)
		b.buf = newBuf
	} else {
		b.buf = b.buf[:size]
	}
}

func (b *memBuffer) Release() {
	if cap(b.buf) > maxBufSize {
		return
	}
	b.buf = b.buf[:0]
	bufPool.Put(b)
}
