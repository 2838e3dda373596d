package mp3

import (
	"fmt"
	"time"

	"github.com/ugparu/gomp3"
)

const (
	// HeaderLength is the size of an MPEG audio frame header in bytes.
	HeaderLength = 4
	// SyncWord is the 11-bit pattern every frame header starts with.
	SyncWord = 0x7ff
)

// Version is the raw 2-bit MPEG audio version ID.
type Version uint8

const (
	Version25 Version = iota
	VersionReserved
	Version2
	Version1
)

func (v Version) String() string {
	switch v {
	case Version25:
		return "MPEG-2.5"
	case Version2:
		return "MPEG-2"
	case Version1:
		return "MPEG-1"
	}
	return "reserved"
}

// Layer is the raw 2-bit layer description. Note the inverted encoding: 3 is Layer I.
type Layer uint8

const (
	LayerReserved Layer = iota
	Layer3
	Layer2
	Layer1
)

func (l Layer) String() string {
	switch l {
	case Layer1:
		return "Layer I"
	case Layer2:
		return "Layer II"
	case Layer3:
		return "Layer III"
	}
	return "reserved"
}

// ChannelMode is the raw 2-bit channel mode.
type ChannelMode uint8

const (
	Stereo ChannelMode = iota
	JointStereo
	DualChannel
	Mono
)

func (m ChannelMode) String() string {
	switch m {
	case Stereo:
		return "stereo"
	case JointStereo:
		return "joint stereo"
	case DualChannel:
		return "dual channel"
	case Mono:
		return "mono"
	}
	return fmt.Sprintf("ChannelMode(%d)", uint8(m))
}

// Layout collapses the mode to the output layout. Joint stereo and dual channel are reported as stereo.
func (m ChannelMode) Layout() gomp3.ChannelLayout {
	if m == Mono {
		return gomp3.ChMono
	}
	return gomp3.ChStereo
}

// FrameHeader describes one MPEG audio frame.
//
// FrameLength, SampleRate, ChannelLayout and SampleCount are the values a stream parser
// needs to delimit and time frames. The remaining fields are the decoded header bits;
// ModeExtension, Copyright, Original and Emphasis are carried as-is and never validated.
type FrameHeader struct {
	FrameLength   int                 // bytes, header included
	SampleRate    int                 // Hz
	ChannelLayout gomp3.ChannelLayout // mono or stereo
	SampleCount   int                 // samples per channel in the frame

	Version         Version
	Layer           Layer
	Protected       bool // a CRC-16 follows the header
	BitrateIndex    uint8
	Bitrate         int // kbps
	SampleRateIndex uint8
	Padding         bool
	Private         bool
	ChannelMode     ChannelMode
	ModeExtension   uint8
	Copyright       bool
	Original        bool
	Emphasis        uint8
}

// PayloadLength returns the number of bytes following the header.
func (h FrameHeader) PayloadLength() int {
	return h.FrameLength - HeaderLength
}

// Duration returns the playback time of the frame.
func (h FrameHeader) Duration() time.Duration {
	if h.SampleRate == 0 {
		return 0
	}
	return time.Duration(h.SampleCount) * time.Second / time.Duration(h.SampleRate)
}

// CodecType maps the layer to MP1, MP2 or MP3.
func (h FrameHeader) CodecType() gomp3.CodecType {
	switch h.Layer {
	case Layer1:
		return gomp3.MP1
	case Layer2:
		return gomp3.MP2
	case Layer3:
		return gomp3.MP3
	}
	return 0
}

func (h FrameHeader) String() string {
	return fmt.Sprintf("%v %v %dkbps %dHz %v len=%d samples=%d",
		h.Version, h.Layer, h.Bitrate, h.SampleRate, h.ChannelMode, h.FrameLength, h.SampleCount)
}
