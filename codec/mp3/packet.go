package mp3

import (
	"time"

	"github.com/ugparu/gomp3"
	"github.com/ugparu/gomp3/codec"
	"github.com/ugparu/gomp3/utils/buffer"
)

// Packet stores one complete MPEG audio frame, header included.
type Packet struct {
	codec.AudioPacket[*CodecParameters]
}

var _ gomp3.AudioPacket = (*Packet)(nil)

// NewPacket copies frame into a pooled buffer. The duration is the frame duration of codecPar.
func NewPacket(frame []byte, ts time.Duration, codecPar *CodecParameters) *Packet {
	return &Packet{
		AudioPacket: codec.AudioPacket[*CodecParameters]{
			BasePacket: codec.NewBasePacket(
				codecPar.StreamIndex(), ts, codecPar.FrameDuration(), buffer.GetCopy(frame), codecPar),
		},
	}
}

func (p *Packet) Clone(copyData bool) gomp3.Packet {
	return &Packet{
		AudioPacket: p.AudioPacket.Clone(copyData),
	}
}
