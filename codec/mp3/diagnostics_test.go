package mp3

import (
	"fmt"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/ugparu/gomp3/utils/logger"
)

// Sequential: it owns the global logrus level and hook.
func TestParseFrameHeader_RejectionDiagnostics(t *testing.T) {
	logrus.SetOutput(io.Discard)
	hook := test.NewGlobal()
	defer logrus.SetLevel(logrus.InfoLevel)

	tests := []struct {
		name  string
		data  []byte
		check Check
		want  string
	}{
		{"sync", []byte{0xff, 0x1b, 0x90, 0x00}, CheckSync, "invalid sync 0x7f8"},
		{"version", makeHeader(VersionReserved, Layer3, 9, 0, false, Stereo), CheckVersion, "invalid version 0x1"},
		{"layer", makeHeader(Version1, LayerReserved, 9, 0, false, Stereo), CheckLayer, "invalid layer 0x0"},
		{"bitrate_index", makeHeader(Version1, Layer3, 15, 0, false, Stereo), CheckBitrateIndex, "invalid bitrate_index 0xf"},
		{"sample_rate_index", makeHeader(Version1, Layer3, 9, 3, false, Stereo), CheckSampleRateIndex, "invalid sample_rate_index 0x3"},
		{"layer2_channel_mode", makeHeader(Version1, Layer2, 11, 1, false, Mono), CheckLayer2ChannelMode,
			"invalid (bitrate_index, channel_mode) (0xb, 0x3)"},
	}

	type result struct {
		hdr    FrameHeader
		hdrlen int
		err    string
	}
	parse := func(data []byte) result {
		hdr, hdrlen, err := ParseFrameHeader(data)
		require.Error(t, err)
		return result{hdr, hdrlen, err.Error()}
	}

	logrus.SetLevel(logrus.InfoLevel)
	quiet := make([]result, len(tests))
	for i, tt := range tests {
		quiet[i] = parse(tt.data)
	}
	require.Empty(t, hook.AllEntries())

	logger.Init(logrus.DebugLevel)
	for i, tt := range tests {
		hook.Reset()
		got := parse(tt.data)
		logger.Flush()

		require.Equal(t, quiet[i], got, tt.name)
		require.Zero(t, got.hdr, tt.name)
		require.Zero(t, got.hdrlen, tt.name)

		entries := hook.AllEntries()
		require.Len(t, entries, 1, tt.name)
		require.Equal(t, logrus.DebugLevel, entries[0].Level, tt.name)
		require.Contains(t, entries[0].Message, "|"+fmt.Sprintf("%20s", parserName)+"|", tt.name)
		require.Contains(t, entries[0].Message, tt.want, tt.name)
		require.Contains(t, entries[0].Message, tt.check.String(), tt.name)
	}

	// Accepted headers log nothing at debug level.
	hook.Reset()
	_, _, err := ParseFrameHeader(knownVectors[0].data)
	require.NoError(t, err)
	logger.Flush()
	require.Empty(t, hook.AllEntries())
}
