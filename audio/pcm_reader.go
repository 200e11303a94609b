// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/ik5/noteshift/utils"
)

// PCMReader exposes a Source as a byte stream of signed 16-bit little-endian
// interleaved PCM, the format audio output libraries consume.
type PCMReader struct {
	src     Source
	samples []float32
	pending []byte
	backing []byte
	err     error
}

// NewPCMReader reads from src in chunks of bufSamples samples.
func NewPCMReader(src Source, bufSamples int) *PCMReader {
	channels := max(src.Channels(), 1)
	if bufSamples < channels {
		bufSamples = 4096
	}
	bufSamples -= bufSamples % channels

	return &PCMReader{
		src:     src,
		samples: make([]float32, bufSamples),
		backing: make([]byte, bufSamples*2),
	}
}

func (r *PCMReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		r.fill()
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

func (r *PCMReader) fill() {
	n, err := r.src.ReadSamples(r.samples)
	for i := range n {
		binary.LittleEndian.PutUint16(r.backing[i*2:], uint16(utils.Float32ToInt16(r.samples[i])))
	}
	r.pending = r.backing[:n*2]

	switch {
	case errors.Is(err, io.EOF):
		r.err = io.EOF
	case err != nil:
		r.err = err
	case n == 0:
		r.err = io.EOF
	}
}
