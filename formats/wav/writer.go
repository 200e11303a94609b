// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/noteshift/audio"
	"github.com/ik5/noteshift/utils"
)

const bitDepth16 = 16

// Writer streams interleaved float32 samples into a 16-bit PCM WAV file.
// Samples are clamped to [-1, 1]. The header sizes are patched on Close,
// which is why the destination must be seekable.
type Writer struct {
	enc      *wav.Encoder
	buf      *goaudio.IntBuffer
	channels int
	samples  int64
	closed   bool
}

func NewWriter(w io.WriteSeeker, sampleRate, channels int) (*Writer, error) {
	if channels < 1 {
		return nil, audio.ErrNoChannels
	}

	format := &goaudio.Format{NumChannels: channels, SampleRate: sampleRate}
	wr := &Writer{
		enc:      wav.NewEncoder(w, sampleRate, bitDepth16, channels, formatPCM),
		buf:      &goaudio.IntBuffer{Format: format, SourceBitDepth: bitDepth16},
		channels: channels,
	}

	// header and data chunk go out now so an empty clip is still a valid file
	if err := wr.enc.Write(wr.buf); err != nil {
		return nil, fmt.Errorf("writing wav header: %w", err)
	}

	return wr, nil
}

// WriteSamples appends interleaved samples. len(samples) must be a multiple
// of the channel count.
func (w *Writer) WriteSamples(samples []float32) error {
	if w.closed {
		return ErrWriterClosed
	}
	if len(samples)%w.channels != 0 {
		return audio.ErrInvalidDstSize
	}
	if len(samples) == 0 {
		return nil
	}

	if cap(w.buf.Data) < len(samples) {
		w.buf.Data = make([]int, len(samples))
	}
	w.buf.Data = w.buf.Data[:len(samples)]

	for i, s := range samples {
		w.buf.Data[i] = int(utils.Float32ToInt16(s))
	}

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("wav: write samples: %w", err)
	}

	w.samples += int64(len(samples))
	return nil
}

// Samples is the number of samples written so far.
func (w *Writer) Samples() int64 { return w.samples }

// Close finalizes the header. The underlying writer is not closed.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("wav: finalize header: %w", err)
	}
	return nil
}

// WriteFrom drains src into w, reading chunkSamples at a time, and stops
// after limit samples when limit > 0. It returns the number of samples
// written and whether the limit cut the stream short, which is only the
// case when src still had samples left.
func WriteFrom(w *Writer, src audio.Source, chunkSamples int, limit int64) (int64, bool, error) {
	channels := src.Channels()
	if chunkSamples < channels {
		chunkSamples = 4096
	}
	chunkSamples -= chunkSamples % channels

	buf := make([]float32, chunkSamples)
	var total int64

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			if werr := w.WriteSamples(buf[:n]); werr != nil {
				return total, false, werr
			}
			total += int64(n)
		}

		if err != nil && !errors.Is(err, io.EOF) {
			return total, false, fmt.Errorf("wav: read source: %w", err)
		}
		if err != nil || n == 0 {
			return total, false, nil
		}

		if limit > 0 && total >= limit {
			more, err := hasMore(src, buf)
			return total, more, err
		}
	}
}

// hasMore reports whether src would still yield samples.
func hasMore(src audio.Source, buf []float32) (bool, error) {
	n, err := src.ReadSamples(buf)
	if n > 0 {
		return true, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("wav: read source: %w", err)
	}
	return false, nil
}
