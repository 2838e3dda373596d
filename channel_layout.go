package gomp3

import "fmt"

// ChannelLayout represents the audio channel layout.
type ChannelLayout uint16

// String returns the human-readable string representation of a ChannelLayout.
func (ch ChannelLayout) String() string {
	switch ch {
	case ChMono:
		return "mono"
	case ChStereo:
		return "stereo"
	}
	return fmt.Sprintf("%dch", ch.Count())
}

// Constants representing audio channel positions and layouts.
const (
	ChFrontCenter = ChannelLayout(1 << iota)
	ChFrontLeft
	ChFrontRight

	ChMono   = ChFrontCenter
	ChStereo = ChFrontLeft | ChFrontRight
)

// Count returns the number of channels in the ChannelLayout.
func (ch ChannelLayout) Count() (n int) {
	for ch != 0 {
		n++
		ch = (ch - 1) & ch
	}
	return
}
