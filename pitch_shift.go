// SPDX-License-Identifier: EPL-2.0

package noteshift

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/noteshift/audio"
	"github.com/ik5/noteshift/utils"
)

// PitchShift reads src to the end, shifts it by cents and returns the result
// as interleaved 16-bit PCM together with its sample rate.
//
// The sample rate is the source's own; the pitch change comes from the
// number of frames, not from the label. cents is clamped to one octave
// either way. src is closed before PitchShift returns.
//
// Example:
//
//	pcm16, rate, err := noteshift.PitchShift(src, 700, 4096)
//	if err != nil {
//	    return err
//	}
//	// pcm16 is a fifth higher and two thirds as long
func PitchShift(src audio.Source, cents int, bufferSize int) ([]int16, int, error) {
	mem, err := audio.Buffer(src)
	if err != nil {
		return nil, 0, fmt.Errorf("pitch shift: %w", err)
	}

	v, err := audio.NewVarispeed(mem, audio.CentsToRate(audio.ClampCents(cents)))
	if err != nil {
		return nil, 0, fmt.Errorf("pitch shift: %w", err)
	}
	defer v.Close()

	channels := v.Channels()
	if bufferSize < channels {
		bufferSize = 4096
	}
	buf := make([]float32, bufferSize-bufferSize%channels)

	var pcm16 []int16
	for {
		n, err := v.ReadSamples(buf)
		for i := range n {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, v.SampleRate(), fmt.Errorf("pitch shift: %w", err)
		}
	}

	return pcm16, v.SampleRate(), nil
}
