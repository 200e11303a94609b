// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"

	"github.com/ik5/noteshift/internal/audiotest"
)

// oversizedSource reports more frames than its generator holds, which is
// how a stream whose header overstates its length looks to Varispeed.
type oversizedSource struct {
	*audiotest.MockSource
	frames int64
}

func (s *oversizedSource) Frames() int64 { return s.frames }

// readAllSamples pulls src to exhaustion with a buffer of bufFrames frames.
// It fails the test if the stream does not end within maxCalls reads.
func readAllSamples(t *testing.T, src Source, bufFrames, maxCalls int) []float32 {
	t.Helper()

	buf := make([]float32, bufFrames*src.Channels())
	var out []float32

	for range maxCalls {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}

	t.Fatalf("stream did not end after %d reads", maxCalls)
	return nil
}

func newTestVarispeed(t *testing.T, src SeekableSource, rate float64) *Varispeed {
	t.Helper()

	v, err := NewVarispeed(src, rate)
	if err != nil {
		t.Fatalf("NewVarispeed() error = %v", err)
	}
	t.Cleanup(func() { v.Close() })

	return v
}
