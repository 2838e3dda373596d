// Package gomp3 holds the types shared by the MPEG audio codec packages:
// codec parameters, packets, channel layouts and codec types.
package gomp3

import "time"

// CodecParameters defines the interface for codec configuration.
type CodecParameters interface {
	Type() CodecType      // Returns the codec type.
	Tag() string          // Returns the codec identifier string.
	StreamIndex() uint8   // Returns the index of the stream in a container.
	SetStreamIndex(uint8) // Sets the stream index value.
	Bitrate() uint        // Returns the codec's bitrate in bits per second.
	SetBitrate(uint)      // Sets the codec's bitrate.
}

// AudioCodecParameters extends CodecParameters with audio-specific properties.
type AudioCodecParameters interface {
	CodecParameters
	SampleRate() uint64           // Returns the audio sampling frequency in Hz.
	Channels() uint8              // Returns the number of audio channels.
	ChannelLayout() ChannelLayout // Returns the channel layout.
}

// Packet defines the interface for delimited media data.
type Packet interface {
	Clone(copyData bool) Packet // Creates a packet copy, optionally copying the underlying data.
	StreamIndex() uint8         // Returns the stream index this packet belongs to.
	SetStreamIndex(uint8)       // Sets the stream index for this packet.
	Timestamp() time.Duration   // Returns the presentation timestamp.
	SetTimestamp(time.Duration) // Sets the presentation timestamp.
	Duration() time.Duration    // Returns the duration of the packet content.
	SetDuration(time.Duration)  // Sets the duration of the packet content.
	Data() []byte               // Returns the raw packet data.
	Len() int                   // Returns the raw packet size in bytes.
	Close()                     // Releases the packet's reference to its data.
}

// AudioPacket extends Packet with audio-specific functionality.
type AudioPacket interface {
	Packet
	CodecParameters() AudioCodecParameters // Returns the associated audio codec configuration.
}
