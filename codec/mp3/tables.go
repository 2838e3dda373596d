package mp3

// Tables derived from http://mpgedit.org/mpgedit/mpeg_format/MP3Format.html.

// allowedBitrateChannelMode is indexed by [bitrate index][channel mode] and is consulted for
// Layer II only. A true entry rejects the pair.
var allowedBitrateChannelMode = [16][4]bool{
	{true, true, true, true},     // free
	{true, false, false, false},  // 32
	{true, false, false, false},  // 48
	{true, false, false, false},  // 56
	{true, true, true, true},     // 64
	{true, false, false, false},  // 80
	{true, true, true, true},     // 96
	{true, true, true, true},     // 112
	{true, true, true, true},     // 128
	{true, true, true, true},     // 160
	{true, true, true, true},     // 192
	{false, true, true, true},    // 224
	{false, true, true, true},    // 256
	{false, true, true, true},    // 320
	{false, true, true, true},    // 384
	{false, false, false, false}, // bad
}

// versionLayerToBitrateColumn maps [version][layer] to a column of bitrateTable.
var versionLayerToBitrateColumn = [4][4]int{
	// reserved, L3, L2, L1
	{5, 4, 4, 3}, // MPEG 2.5
	{5, 5, 5, 5}, // reserved
	{5, 4, 4, 3}, // MPEG 2
	{5, 2, 1, 0}, // MPEG 1
}

// bitrateTable holds kbps values indexed by [bitrate index][column]. 0 is invalid.
var bitrateTable = [16][6]int{
	// V1L1, V1L2, V1L3, V2L1, V2L2 & V2L3, reserved
	{0, 0, 0, 0, 0, 0},
	{32, 32, 32, 32, 8, 0},
	{64, 48, 40, 48, 16, 0},
	{96, 56, 48, 56, 24, 0},
	{128, 64, 56, 64, 32, 0},
	{160, 80, 64, 80, 40, 0},
	{192, 96, 80, 96, 48, 0},
	{224, 112, 96, 112, 56, 0},
	{256, 128, 112, 128, 64, 0},
	{288, 160, 128, 144, 80, 0},
	{320, 192, 160, 160, 96, 0},
	{352, 224, 192, 176, 112, 0},
	{384, 256, 224, 192, 128, 0},
	{416, 320, 256, 224, 144, 0},
	{448, 384, 320, 256, 160, 0},
	{0, 0, 0, 0, 0, 0},
}

// sampleRateTable holds Hz values indexed by [sample rate index][version]. 0 is invalid.
var sampleRateTable = [4][4]int{
	// V2.5, reserved, V2, V1
	{11025, 0, 22050, 44100},
	{12000, 0, 24000, 48000},
	{8000, 0, 16000, 32000},
	{0, 0, 0, 0},
}

// samplesPerFrame per ISO/IEC 11172-3 and 13818-3: the LSF extensions halve Layer III frames.
func samplesPerFrame(version Version, layer Layer) int {
	switch layer {
	case Layer1:
		return 384 //nolint:mnd
	case Layer2:
		return 1152 //nolint:mnd
	case Layer3:
		if version == Version2 || version == Version25 {
			return 576 //nolint:mnd
		}
		return 1152 //nolint:mnd
	}
	return 0
}
