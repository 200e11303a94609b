// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/noteshift/internal/audiotest"
)

func TestNewMemorySource(t *testing.T) {
	t.Parallel()

	if _, err := NewMemorySource(nil, 44100, 0); !errors.Is(err, ErrNoChannels) {
		t.Errorf("NewMemorySource(channels=0) error = %v, want ErrNoChannels", err)
	}

	// trailing half frame is dropped
	m, err := NewMemorySource([]float32{1, 2, 3, 4, 5}, 8000, 2)
	if err != nil {
		t.Fatalf("NewMemorySource() error = %v", err)
	}

	if m.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", m.Frames())
	}

	if !slices.Equal(m.Samples(), []float32{1, 2, 3, 4}) {
		t.Errorf("Samples() = %v, want [1 2 3 4]", m.Samples())
	}
}

func TestMemorySource_ReadAndSeek(t *testing.T) {
	t.Parallel()

	m, err := NewMemorySource([]float32{0, 0, 1, 1, 2, 2, 3, 3}, 8000, 2)
	if err != nil {
		t.Fatalf("NewMemorySource() error = %v", err)
	}

	buf := make([]float32, 4)
	n, err := m.ReadSamples(buf)
	if n != 4 || err != nil {
		t.Fatalf("ReadSamples() = (%d, %v), want (4, nil)", n, err)
	}

	if m.Position() != 2 {
		t.Errorf("Position() = %d, want 2", m.Position())
	}

	n, err = m.ReadSamples(buf)
	if n != 4 || err != io.EOF {
		t.Fatalf("ReadSamples() at tail = (%d, %v), want (4, io.EOF)", n, err)
	}

	if !slices.Equal(buf, []float32{2, 2, 3, 3}) {
		t.Errorf("tail = %v, want [2 2 3 3]", buf)
	}

	if n, err := m.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() past end = (%d, %v), want (0, io.EOF)", n, err)
	}

	if err := m.SeekFrame(1); err != nil {
		t.Fatalf("SeekFrame(1) error = %v", err)
	}

	n, _ = m.ReadSamples(buf[:2])
	if n != 2 || buf[0] != 1 {
		t.Errorf("read after SeekFrame(1) = %v, want frame 1", buf[:n])
	}

	// seeking to the end is allowed and reads as EOF
	if err := m.SeekFrame(4); err != nil {
		t.Errorf("SeekFrame(4) error = %v", err)
	}

	for _, frame := range []int64{-1, 5} {
		if err := m.SeekFrame(frame); !errors.Is(err, ErrSeekOutOfRange) {
			t.Errorf("SeekFrame(%d) error = %v, want ErrSeekOutOfRange", frame, err)
		}
	}
}

func TestMemorySource_Close(t *testing.T) {
	t.Parallel()

	m, _ := NewMemorySource([]float32{1, 2}, 8000, 1)

	if err := m.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := m.ReadSamples(make([]float32, 2)); !errors.Is(err, ErrClosed) {
		t.Errorf("ReadSamples() after Close error = %v, want ErrClosed", err)
	}

	if err := m.SeekFrame(0); !errors.Is(err, ErrClosed) {
		t.Errorf("SeekFrame() after Close error = %v, want ErrClosed", err)
	}
}

func TestBuffer(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(22050, 2, 1000)
	src.MaxFramesPerRead = 37

	m, err := Buffer(src)
	if err != nil {
		t.Fatalf("Buffer() error = %v", err)
	}

	if src.Closes() != 1 {
		t.Errorf("source closed %d times, want 1", src.Closes())
	}

	if m.Frames() != 1000 || m.SampleRate() != 22050 || m.Channels() != 2 {
		t.Errorf("buffered = %d frames, %d Hz, %d ch; want 1000, 22050, 2", m.Frames(), m.SampleRate(), m.Channels())
	}

	samples := m.Samples()
	if samples[2*999] != 999 || samples[2*999+1] != 999 {
		t.Errorf("last frame = %v, want [999 999]", samples[2*999:])
	}
}

func TestBuffer_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Buffer(nil); !errors.Is(err, ErrNilSource) {
		t.Errorf("Buffer(nil) error = %v, want ErrNilSource", err)
	}

	errBroken := errors.New("broken stream")
	src := audiotest.NewRampSource(8000, 1, 100)
	src.FailAt = 10
	src.FailErr = errBroken
	src.MaxFramesPerRead = 5

	if _, err := Buffer(src); !errors.Is(err, errBroken) {
		t.Errorf("Buffer() error = %v, want %v", err, errBroken)
	}

	if src.Closes() != 1 {
		t.Errorf("source closed %d times after failure, want 1", src.Closes())
	}
}
