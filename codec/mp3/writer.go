package mp3

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ugparu/gomp3/utils/bits"
)

// WriteFrameHeader encodes the raw fields of hdr (indices, flags, modes) as a 4 byte header.
// Derived fields such as FrameLength and Bitrate are ignored. The header is written only if it
// would parse back successfully.
func WriteFrameHeader(w io.Writer, hdr FrameHeader) (err error) {
	if w == nil {
		return errors.New("mp3parser: writer is nil")
	}

	b := bytes.NewBuffer(make([]byte, 0, HeaderLength))
	bw := &bits.Writer{W: b}
	fields := [...]struct {
		value uint
		width uint
	}{
		{SyncWord, 11},
		{uint(hdr.Version), 2},
		{uint(hdr.Layer), 2},
		{boolBit(!hdr.Protected), 1},
		{uint(hdr.BitrateIndex), 4},
		{uint(hdr.SampleRateIndex), 2},
		{boolBit(hdr.Padding), 1},
		{boolBit(hdr.Private), 1},
		{uint(hdr.ChannelMode), 2},
		{uint(hdr.ModeExtension), 2},
		{boolBit(hdr.Copyright), 1},
		{boolBit(hdr.Original), 1},
		{uint(hdr.Emphasis), 2},
	}
	for _, f := range fields {
		if f.value >= 1<<f.width {
			return fmt.Errorf("mp3parser: field value 0x%x does not fit %d bits", f.value, f.width)
		}
		if err = bw.WriteBits(f.value, f.width); err != nil {
			return
		}
	}

	if _, _, err = ParseFrameHeader(b.Bytes()); err != nil {
		return fmt.Errorf("mp3parser: refusing to write header: %w", err)
	}
	if _, err = w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("mp3parser: failed to write header: %w", err)
	}
	return
}

func boolBit(b bool) uint {
	if b {
		return 1
	}
	return 0
}
