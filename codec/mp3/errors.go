package mp3

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData means fewer than HeaderLength bytes were available. Buffer more and retry.
	ErrInsufficientData = errors.New("mp3parser: insufficient data for frame header")
	// ErrMalformedHeader means no frame starts at this offset. Resynchronise at the next byte.
	ErrMalformedHeader = errors.New("mp3parser: malformed frame header")
)

// Check names the validation a header failed.
type Check uint8

const (
	CheckSync Check = iota + 1
	CheckVersion
	CheckLayer
	CheckBitrateIndex
	CheckSampleRateIndex
	CheckLayer2ChannelMode
	CheckBitrate
	CheckSampleRate
)

func (c Check) String() string {
	switch c {
	case CheckSync:
		return "sync"
	case CheckVersion:
		return "version"
	case CheckLayer:
		return "layer"
	case CheckBitrateIndex:
		return "bitrate_index"
	case CheckSampleRateIndex:
		return "sample_rate_index"
	case CheckLayer2ChannelMode:
		return "(bitrate_index, channel_mode)"
	case CheckBitrate:
		return "bitrate"
	case CheckSampleRate:
		return "sample_rate"
	}
	return "unknown"
}

// MalformedHeaderError reports which check rejected a header and the offending raw value.
// For CheckLayer2ChannelMode, CheckBitrate and CheckSampleRate the value is the index that
// failed the table lookup (channel mode, bitrate index and sample rate index respectively).
type MalformedHeaderError struct {
	Check  Check
	Value  uint
	Header uint32 // the 32 raw header bits
}

func (e *MalformedHeaderError) Error() string {
	if e.Check == CheckLayer2ChannelMode {
		return fmt.Sprintf("mp3parser: invalid %v (0x%x, 0x%x) (header 0x%08x)",
			e.Check, e.Header>>12&0xf, e.Value, e.Header) //nolint:mnd
	}
	return fmt.Sprintf("mp3parser: invalid %v 0x%x (header 0x%08x)", e.Check, e.Value, e.Header)
}

func (e *MalformedHeaderError) Is(target error) bool {
	return target == ErrMalformedHeader
}
