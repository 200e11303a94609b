// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrInvalidChunkFrames = errors.New("convert.chunk_frames must be > 0")
	ErrInvalidMaxSamples  = errors.New("convert.max_samples must be > 0")
	ErrInvalidQuality     = errors.New("encoder.quality must be between 0 and 10")
	ErrInvalidDevice      = errors.New("preview sample rate and channels must be > 0")
)
