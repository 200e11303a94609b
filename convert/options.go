// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/ik5/noteshift/audio"
)

const (
	DefaultChunkFrames = 32768
	DefaultMaxSamples  = 100_000_000
)

// Option configures a Converter.
type Option func(*Converter)

// WithFs sets the file system inputs are read from and outputs written to.
func WithFs(fs afero.Fs) Option {
	return func(c *Converter) {
		if fs != nil {
			c.fs = fs
		}
	}
}

// WithRegistry sets the decoders, keyed by file extension.
func WithRegistry(r *audio.Registry) Option {
	return func(c *Converter) {
		if r != nil {
			c.registry = r
		}
	}
}

func WithEncoder(e Encoder) Option {
	return func(c *Converter) {
		if e != nil {
			c.encoder = e
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

// WithChunkFrames sets how many frames are pulled from the resampler per
// write.
func WithChunkFrames(n int) Option {
	return func(c *Converter) {
		if n > 0 {
			c.chunkFrames = n
		}
	}
}

// WithMaxSamples caps the samples written per file. Output beyond the cap
// is dropped and the result is marked truncated.
func WithMaxSamples(n int64) Option {
	return func(c *Converter) {
		if n > 0 {
			c.maxSamples = n
		}
	}
}
