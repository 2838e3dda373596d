package mp3

import (
	"encoding/binary"
	"fmt"

	"github.com/ugparu/gomp3/utils/bits"
	"github.com/ugparu/gomp3/utils/logger"
)

const parserName = "mp3parser"

// rawHeader holds the header fields in stream order, MSB first.
type rawHeader struct {
	sync            uint
	version         uint
	layer           uint
	protection      uint
	bitrateIndex    uint
	sampleRateIndex uint
	padding         uint
	private         uint
	channelMode     uint
	otherFlags      uint
}

func readRawHeader(data []byte) (raw rawHeader, err error) {
	r := bits.NewReader(data)
	fields := [...]struct {
		dst   *uint
		width uint
	}{
		{&raw.sync, 11},
		{&raw.version, 2},
		{&raw.layer, 2},
		{&raw.protection, 1},
		{&raw.bitrateIndex, 4},
		{&raw.sampleRateIndex, 2},
		{&raw.padding, 1},
		{&raw.private, 1},
		{&raw.channelMode, 2},
		{&raw.otherFlags, 6},
	}
	for _, f := range fields {
		if *f.dst, err = r.ReadBits(f.width); err != nil {
			return
		}
	}
	return
}

// validate applies the checks that need no table lookup.
func (raw rawHeader) validate() (check Check, value uint) {
	switch {
	case raw.sync != SyncWord:
		return CheckSync, raw.sync
	case Version(raw.version) == VersionReserved:
		return CheckVersion, raw.version
	case Layer(raw.layer) == LayerReserved:
		return CheckLayer, raw.layer
	case raw.bitrateIndex == 0 || raw.bitrateIndex == 0xf:
		return CheckBitrateIndex, raw.bitrateIndex
	case raw.sampleRateIndex == 3:
		return CheckSampleRateIndex, raw.sampleRateIndex
	}
	return 0, 0
}

func (raw rawHeader) String() string {
	return fmt.Sprintf("sync 0x%x version 0x%x layer 0x%x bitrate_index 0x%x sample_rate_index 0x%x channel_mode 0x%x",
		raw.sync, raw.version, raw.layer, raw.bitrateIndex, raw.sampleRateIndex, raw.channelMode)
}

// ParseFrameHeader interprets the first HeaderLength bytes of data as an MPEG audio frame header.
//
// On success hdrlen is HeaderLength and hdr describes the whole frame; hdr.FrameLength is the
// distance to the next frame. With fewer than HeaderLength bytes it returns ErrInsufficientData.
// Any other failure is a *MalformedHeaderError matching ErrMalformedHeader, meaning no frame
// starts at data[0]. hdr is the zero value whenever err is not nil.
//
// ParseFrameHeader keeps no state and may be called concurrently.
func ParseFrameHeader(data []byte) (hdr FrameHeader, hdrlen int, err error) {
	if len(data) < HeaderLength {
		err = fmt.Errorf("%w: need %d bytes, got %d", ErrInsufficientData, HeaderLength, len(data))
		return
	}
	data = data[:HeaderLength]

	raw, err := readRawHeader(data)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInsufficientData, err)
		return
	}
	if logger.TraceEnabled() {
		logger.Tracef(parserName, "header data: %v", raw)
	}

	reject := func(check Check, value uint) error {
		e := &MalformedHeaderError{Check: check, Value: value, Header: binary.BigEndian.Uint32(data)}
		if logger.DebugEnabled() {
			logger.Debugf(parserName, "%v: %v", e, raw)
		}
		return e
	}

	if check, value := raw.validate(); check != 0 {
		err = reject(check, value)
		return
	}

	version := Version(raw.version)
	layer := Layer(raw.layer)

	if layer == Layer2 && allowedBitrateChannelMode[raw.bitrateIndex][raw.channelMode] {
		err = reject(CheckLayer2ChannelMode, raw.channelMode)
		return
	}

	bitrate := bitrateTable[raw.bitrateIndex][versionLayerToBitrateColumn[raw.version][raw.layer]]
	if bitrate == 0 {
		err = reject(CheckBitrate, raw.bitrateIndex)
		return
	}

	sampleRate := sampleRateTable[raw.sampleRateIndex][raw.version]
	if sampleRate == 0 {
		err = reject(CheckSampleRate, raw.sampleRateIndex)
		return
	}

	samples := samplesPerFrame(version, layer)
	if samples == 0 {
		err = reject(CheckLayer, raw.layer)
		return
	}

	const bitsPerByte = 8
	var frameLength int
	if layer == Layer1 {
		// Layer I counts 4 byte slots, so truncation happens before scaling.
		frameLength = 4 * (12 * bitrate * 1000 / sampleRate) //nolint:mnd
	} else {
		frameLength = (samples / bitsPerByte) * bitrate * 1000 / sampleRate //nolint:mnd
	}
	if raw.padding == 1 {
		if layer == Layer1 {
			frameLength += 4 //nolint:mnd
		} else {
			frameLength++
		}
	}

	mode := ChannelMode(raw.channelMode)
	hdr = FrameHeader{
		FrameLength:   frameLength,
		SampleRate:    sampleRate,
		ChannelLayout: mode.Layout(),
		SampleCount:   samples,

		Version:         version,
		Layer:           layer,
		Protected:       raw.protection == 0,
		BitrateIndex:    uint8(raw.bitrateIndex),    //nolint:gosec // 4 bits
		Bitrate:         bitrate,
		SampleRateIndex: uint8(raw.sampleRateIndex), //nolint:gosec // 2 bits
		Padding:         raw.padding == 1,
		Private:         raw.private == 1,
		ChannelMode:     mode,
		ModeExtension:   uint8(raw.otherFlags >> 4 & 0x3), //nolint:gosec,mnd
		Copyright:       raw.otherFlags>>3&1 == 1,         //nolint:mnd
		Original:        raw.otherFlags>>2&1 == 1,         //nolint:mnd
		Emphasis:        uint8(raw.otherFlags & 0x3),      //nolint:gosec,mnd
	}
	hdrlen = HeaderLength
	return
}
