package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/gomp3"
	"github.com/ugparu/gomp3/utils/buffer"
)

type testParameters struct {
	BaseParameters
}

func (*testParameters) Tag() string                        { return "test" }
func (*testParameters) SampleRate() uint64                 { return 44100 }
func (*testParameters) Channels() uint8                    { return 2 }
func (*testParameters) ChannelLayout() gomp3.ChannelLayout { return gomp3.ChStereo }

func TestBaseParameters(t *testing.T) {
	t.Parallel()

	var nilPar *BaseParameters
	require.Equal(t, "EMPTY_CODEC_PARAMETERS", nilPar.String())
	require.Zero(t, nilPar.Bitrate())
	require.Equal(t, uint8(255), nilPar.StreamIndex())

	par := &BaseParameters{CodecType: gomp3.MP2}
	par.SetBitrate(192000)
	par.SetStreamIndex(4)
	require.Equal(t, gomp3.MP2, par.Type())
	require.Equal(t, uint(192000), par.Bitrate())
	require.Equal(t, uint8(4), par.StreamIndex())
	require.Equal(t, "CODEC_PARAMETERS stream=4 codec=MP2 bitrate=192kbps", par.String())
}

func TestAudioPacket(t *testing.T) {
	t.Parallel()

	par := &testParameters{BaseParameters{Index: 1, CodecType: gomp3.MP3}}
	pkt := AudioPacket[*testParameters]{
		BasePacket: NewBasePacket(par.StreamIndex(), time.Second, 26*time.Millisecond,
			buffer.GetCopy([]byte{1, 2, 3}), par),
	}
	require.Equal(t, "PACKET sz=3 ts=1s", pkt.String())
	require.Equal(t, par, pkt.CodecParameters())

	clone := pkt.Clone(false)
	require.Equal(t, pkt.Data(), clone.Data())
	require.Equal(t, 26*time.Millisecond, clone.Duration())

	pkt.Close()
	require.Equal(t, []byte{1, 2, 3}, clone.Data())
	clone.Close()

	var empty BasePacket[*testParameters]
	require.Equal(t, "EMPTY_PACKET", empty.String())
	require.Nil(t, empty.Data())
	require.Zero(t, empty.Len())
	empty.Close()
}
