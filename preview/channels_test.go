// SPDX-License-Identifier: EPL-2.0

package preview

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/noteshift/audio"
	"github.com/ik5/noteshift/internal/audiotest"
)

func TestFitChannels(t *testing.T) {
	t.Parallel()

	stereo := audiotest.NewSilentSource(8000, 2, 10)
	assert.Same(t, audio.Source(stereo), fitChannels(stereo, 2))

	assert.IsType(t, &audio.Downmix{}, fitChannels(stereo, 1))
	assert.IsType(t, &spread{}, fitChannels(stereo, 6))
}

func TestSpread(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 3, func(frame, ch int) float32 {
		return float32(frame*10 + ch)
	})
	s := fitChannels(src, 4)
	require.Equal(t, 4, s.Channels())

	buf := make([]float32, 12)
	n, err := s.ReadSamples(buf)
	assert.Equal(t, io.EOF, err)
	require.Equal(t, 12, n)

	assert.Equal(t, []float32{0, 1, 0, 1, 10, 11, 10, 11, 20, 21, 20, 21}, buf)

	_, err = s.ReadSamples(make([]float32, 3))
	assert.ErrorIs(t, err, audio.ErrInvalidDstSize)
}
