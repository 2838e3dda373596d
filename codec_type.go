package gomp3

// CodecType represents the type of a codec.
type CodecType uint32

// avCodecTypeMagic is a magic number used to create unique codec types.
const avCodecTypeMagic = 233333

// makeAudioCodecType creates an audio CodecType based on the provided base.
func makeAudioCodecType(base uint32) (c CodecType) {
	c = CodecType(base)<<codecTypeOtherBits | CodecType(codecTypeAudioBit)
	return
}

// MPEG audio codec types, one per layer.
var (
	MP1 = makeAudioCodecType(avCodecTypeMagic + 1) //nolint:mnd
	MP2 = makeAudioCodecType(avCodecTypeMagic + 2) //nolint:mnd
	MP3 = makeAudioCodecType(avCodecTypeMagic + 3) //nolint:mnd
)

const (
	codecTypeAudioBit  = 0x1
	codecTypeOtherBits = 1
)

// String returns the human-readable string representation of a CodecType.
func (ct CodecType) String() string {
	switch ct {
	case MP1:
		return "MP1"
	case MP2:
		return "MP2"
	case MP3:
		return "MP3"
	}
	return "UNKNOWN"
}

// IsAudio returns true if the CodecType represents an audio codec.
func (ct CodecType) IsAudio() bool {
	return ct&codecTypeAudioBit != 0
}
