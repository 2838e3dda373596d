package mp3

import (
	"time"

	"github.com/ugparu/gomp3"
	"github.com/ugparu/gomp3/codec"
)

// RFC 6381 object type indications for MPEG audio in MP4.
const (
	tagMPEG1Audio = "mp4a.6B"
	tagMPEG2Audio = "mp4a.69"
)

type CodecParameters struct {
	codec.BaseParameters
	Header FrameHeader
}

var _ gomp3.AudioCodecParameters = (*CodecParameters)(nil)

// NewCodecParameters describes the stream a parsed frame header belongs to.
func NewCodecParameters(hdr FrameHeader) *CodecParameters {
	const bitsPerKbit = 1000
	return &CodecParameters{
		BaseParameters: codec.BaseParameters{
			BRate:     uint(hdr.Bitrate) * bitsPerKbit, //nolint:gosec // table values are small and positive
			CodecType: hdr.CodecType(),
		},
		Header: hdr,
	}
}

func (p *CodecParameters) SampleRate() uint64 {
	return uint64(p.Header.SampleRate) //nolint:gosec // table values are positive
}

func (p *CodecParameters) Channels() uint8 {
	return uint8(p.Header.ChannelLayout.Count()) //nolint:gosec // at most 2
}

func (p *CodecParameters) ChannelLayout() gomp3.ChannelLayout {
	return p.Header.ChannelLayout
}

func (p *CodecParameters) SamplesPerFrame() int {
	return p.Header.SampleCount
}

func (p *CodecParameters) FrameDuration() time.Duration {
	return p.Header.Duration()
}

func (p *CodecParameters) Tag() string {
	if p.Header.Version == Version1 {
		return tagMPEG1Audio
	}
	return tagMPEG2Audio
}

// Matches reports whether hdr can continue the stream described by p.
// Bitrate and padding vary per frame and are not compared.
func (p *CodecParameters) Matches(hdr FrameHeader) bool {
	return p.Header.Version == hdr.Version &&
		p.Header.Layer == hdr.Layer &&
		p.Header.SampleRate == hdr.SampleRate &&
		p.Header.ChannelLayout == hdr.ChannelLayout
}
