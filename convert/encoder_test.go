// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFFmpeg_Args(t *testing.T) {
	t.Parallel()

	args := DefaultFFmpeg().Args("/out/a.wav", "/out/a.ogg")
	assert.Equal(t, []string{"-y", "-i", "/out/a.wav", "-c:a", "libvorbis", "-qscale:a", "10", "/out/a.ogg"}, args)

	args = FFmpeg{Quality: 4}.Args("in.wav", "out.ogg")
	assert.Contains(t, args, "libvorbis")
	assert.Contains(t, args, "4")
}

func TestFFmpeg_MissingBinary(t *testing.T) {
	t.Parallel()

	enc := FFmpeg{Binary: "noteshift-no-such-encoder"}
	err := enc.Encode(context.Background(), "a.wav", "a.ogg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "noteshift-no-such-encoder")
}

func TestEncoderFunc(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	var got [2]string

	var enc Encoder = EncoderFunc(func(ctx context.Context, wavPath, oggPath string) error {
		got = [2]string{wavPath, oggPath}
		return errBoom
	})

	err := enc.Encode(context.Background(), "x.wav", "x.ogg")
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, [2]string{"x.wav", "x.ogg"}, got)
}

func TestLastLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", lastLine(""))
	assert.Equal(t, "Unknown encoder 'libvorbis'", lastLine("ffmpeg version 6\n  built with gcc\nUnknown encoder 'libvorbis'\n\n"))
}
