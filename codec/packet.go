package codec

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ugparu/gomp3"
	"github.com/ugparu/gomp3/utils/buffer"
)

// sharedBuffer holds the buffer and its reference count, shared between packet clones.
type sharedBuffer struct {
	buf buffer.PooledBuffer
	ref atomic.Int32
}

func newSharedBuffer(buf buffer.PooledBuffer) *sharedBuffer {
	s := &sharedBuffer{buf: buf}
	s.ref.Store(1)
	return s
}

type BasePacket[T gomp3.CodecParameters] struct {
	Idx          uint8
	RelativeTime time.Duration
	Dur          time.Duration
	shared       *sharedBuffer
	CodecPar     T
}

// NewBasePacket creates a BasePacket owning one reference to buf.
func NewBasePacket[T gomp3.CodecParameters](
	idx uint8,
	relativeTime time.Duration,
	dur time.Duration,
	buf buffer.PooledBuffer,
	codecPar T,
) BasePacket[T] {
	return BasePacket[T]{
		Idx:          idx,
		RelativeTime: relativeTime,
		Dur:          dur,
		shared:       newSharedBuffer(buf),
		CodecPar:     codecPar,
	}
}

func (pkt *BasePacket[T]) Clone(copyData bool) BasePacket[T] {
	newPkt := BasePacket[T]{
		Idx:          pkt.Idx,
		RelativeTime: pkt.RelativeTime,
		Dur:          pkt.Dur,
		CodecPar:     pkt.CodecPar,
	}
	if copyData {
		newPkt.shared = newSharedBuffer(buffer.GetCopy(pkt.Data()))
	} else {
		pkt.shared.ref.Add(1)
		newPkt.shared = pkt.shared
	}
	return newPkt
}

func (pkt *BasePacket[T]) Data() []byte {
	if pkt.shared == nil {
		return nil
	}
	return pkt.shared.buf.Data()
}

func (pkt *BasePacket[T]) Len() int {
	if pkt.shared == nil {
		return 0
	}
	return pkt.shared.buf.Len()
}

func (pkt *BasePacket[T]) StreamIndex() uint8 {
	return pkt.Idx
}

func (pkt *BasePacket[T]) SetStreamIndex(idx uint8) {
	pkt.Idx = idx
}

func (pkt *BasePacket[T]) Timestamp() time.Duration {
	return pkt.RelativeTime
}

func (pkt *BasePacket[T]) SetTimestamp(ts time.Duration) {
	pkt.RelativeTime = ts
}

func (pkt *BasePacket[T]) Duration() time.Duration {
	return pkt.Dur
}

func (pkt *BasePacket[T]) SetDuration(dur time.Duration) {
	pkt.Dur = dur
}

func (pkt *BasePacket[T]) String() string {
	if pkt == nil || pkt.shared == nil {
		return "EMPTY_PACKET"
	}
	return fmt.Sprintf("PACKET sz=%d ts=%v", pkt.shared.buf.Len(), pkt.RelativeTime)
}

// Retain increases the reference count. Use this when you need to keep a reference
// to the packet beyond its original scope.
func (pkt *BasePacket[T]) Retain() {
	pkt.shared.ref.Add(1)
}

func (pkt *BasePacket[T]) Close() {
	if pkt.shared == nil {
		return
	}
	count := pkt.shared.ref.Add(-1)
	if count == 0 {
		pkt.shared.buf.Release()
	} else if count < 0 {
		panic("packet reference count is negative")
	}
}

type AudioPacket[T gomp3.AudioCodecParameters] struct {
	BasePacket[T]
}

func (pkt *AudioPacket[T]) Clone(copyData bool) AudioPacket[T] {
	return AudioPacket[T]{
		BasePacket: pkt.BasePacket.Clone(copyData),
	}
}

func (pkt *AudioPacket[T]) CodecParameters() gomp3.AudioCodecParameters {
	return pkt.CodecPar
}
