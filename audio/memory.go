// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
)

// MemorySource is a SeekableSource over interleaved samples held in memory.
type MemorySource struct {
	samples    []float32
	sampleRate int
	channels   int
	frame      int64
	closed     bool
}

// NewMemorySource wraps interleaved samples. A trailing partial frame is
// ignored.
func NewMemorySource(samples []float32, sampleRate, channels int) (*MemorySource, error) {
	if channels < 1 {
		return nil, ErrNoChannels
	}

	whole := len(samples) - len(samples)%channels

	return &MemorySource{
		samples:    samples[:whole],
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

func (m *MemorySource) SampleRate() int { return m.sampleRate }
func (m *MemorySource) Channels() int   { return m.channels }
func (m *MemorySource) BufSize() int    { return len(m.samples) }
func (m *MemorySource) Frames() int64   { return int64(len(m.samples) / m.channels) }
func (m *MemorySource) Position() int64 { return m.frame }

// Samples returns the underlying interleaved buffer.
func (m *MemorySource) Samples() []float32 { return m.samples }

func (m *MemorySource) SeekFrame(frame int64) error {
	if m.closed {
		return ErrClosed
	}
	if frame < 0 || frame > m.Frames() {
		return fmt.Errorf("%w: frame %d of %d", ErrSeekOutOfRange, frame, m.Frames())
	}

	m.frame = frame
	return nil
}

func (m *MemorySource) ReadSamples(dst []float32) (int, error) {
	if m.closed {
		return 0, ErrClosed
	}
	if len(dst) == 0 {
		return 0, nil
	}

	offset := int(m.frame) * m.channels
	if offset >= len(m.samples) {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	n := copy(dst[:frames*m.channels], m.samples[offset:])
	m.frame += int64(n / m.channels)

	if offset+n >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}

func (m *MemorySource) Close() error {
	m.closed = true
	m.samples = nil
	return nil
}

// Buffer drains src into a MemorySource and closes src.
func Buffer(src Source) (*MemorySource, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	defer src.Close()

	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	size := src.BufSize()
	if size < channels {
		size = 4096
	}
	size -= size % channels

	buf := make([]float32, size)
	var samples []float32

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("buffer source: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return NewMemorySource(samples, src.SampleRate(), channels)
}
