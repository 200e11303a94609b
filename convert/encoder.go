// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Encoder turns an intermediate WAV file into an Ogg Vorbis file.
// Encode returns once the output is complete.
type Encoder interface {
	Encode(ctx context.Context, wavPath, oggPath string) error
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(ctx context.Context, wavPath, oggPath string) error

func (f EncoderFunc) Encode(ctx context.Context, wavPath, oggPath string) error {
	return f(ctx, wavPath, oggPath)
}

// FFmpeg encodes with an ffmpeg binary found on PATH or at Binary.
type FFmpeg struct {
	Binary  string
	Codec   string
	Quality int
}

// DefaultFFmpeg is ffmpeg with libvorbis at the highest quality.
func DefaultFFmpeg() FFmpeg {
	return FFmpeg{Binary: "ffmpeg", Codec: "libvorbis", Quality: 10}
}

// Args returns the command line passed to the binary.
func (f FFmpeg) Args(wavPath, oggPath string) []string {
	codec := f.Codec
	if codec == "" {
		codec = "libvorbis"
	}

	return []string{
		"-y",
		"-i", wavPath,
		"-c:a", codec,
		"-qscale:a", strconv.Itoa(f.Quality),
		oggPath,
	}
}

func (f FFmpeg) Encode(ctx context.Context, wavPath, oggPath string) error {
	binary := f.Binary
	if binary == "" {
		binary = "ffmpeg"
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, f.Args(wavPath, oggPath)...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := lastLine(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", binary, err, msg)
		}
		return fmt.Errorf("%s: %w", binary, err)
	}

	return nil
}

// lastLine keeps the final non-empty stderr line, where ffmpeg puts the
// actual failure.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
