// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"math"
	"sync/atomic"
)

var ErrSeekRange = errors.New("audiotest: seek out of range")

// MockSource is a test helper that generates audio data for testing.
// It satisfies audio.SeekableSource (without importing it to avoid cycles).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) float32

	// FailAt makes ReadSamples return FailErr once the read position
	// reaches this frame. Negative disables it.
	FailAt  int
	FailErr error

	// MaxFramesPerRead caps how many frames one ReadSamples returns.
	// Zero means no cap.
	MaxFramesPerRead int

	seeks  atomic.Int64
	closes atomic.Int64
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
// waveform is a function that generates sample values given sample index and channel.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample int, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
		FailAt:       -1,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return 0.0
	})
}

// NewSineSource creates a mock source that generates a sine wave.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource creates a mock source with constant value.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return value
	})
}

// NewRampSource creates a mock source whose every channel holds the frame
// index, so frame i reads as [i, i, ...]. Interpolated output then equals
// the fractional cursor position.
func NewRampSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample int, channel int) float32 {
		return float32(sample)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Frames() int64   { return int64(m.totalSamples) }
func (m *MockSource) Position() int64 { return int64(m.generated) }

func (m *MockSource) Close() error {
	m.closes.Add(1)
	return nil
}

// Closes reports how many times Close was called.
func (m *MockSource) Closes() int { return int(m.closes.Load()) }

// Seeks reports how many times SeekFrame was called.
func (m *MockSource) Seeks() int { return int(m.seeks.Load()) }

// Reset resets the generated sample counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) SeekFrame(frame int64) error {
	m.seeks.Add(1)
	if frame < 0 || frame > int64(m.totalSamples) {
		return ErrSeekRange
	}
	m.generated = int(frame)
	return nil
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.FailAt >= 0 && m.generated >= m.FailAt {
		return 0, m.FailErr
	}

	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	// Calculate how many frames we can write
	framesToWrite := min(len(dst)/m.channels, m.totalSamples-m.generated)
	if m.MaxFramesPerRead > 0 {
		framesToWrite = min(framesToWrite, m.MaxFramesPerRead)
	}

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	samplesWritten := framesToWrite * m.channels

	if m.generated >= m.totalSamples {
		return samplesWritten, io.EOF
	}

	return samplesWritten, nil
}
