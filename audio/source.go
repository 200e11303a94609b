// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Source is a pull stream of interleaved float32 PCM.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved samples in [-1,1] and returns
	// the number of float32 values written, not frames. (0, io.EOF) means
	// the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// BufSize is a read size, in samples, that suits the stream.
	BufSize() int
	Close() error
}

// SeekableSource is a Source with a known length that can be repositioned
// by frame index.
type SeekableSource interface {
	Source

	// Frames is the total number of frames in the stream.
	Frames() int64
	// Position is the index of the frame the next ReadSamples starts at.
	Position() int64
	// SeekFrame moves the read position to frame.
	SeekFrame(frame int64) error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(r io.Reader) (Source, error)

func (f DecoderFunc) Decode(r io.Reader) (Source, error) {
	return f(r)
}
