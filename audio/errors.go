// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrInvalidRate    = errors.New("playback rate must be > 0")
	ErrInvalidCents   = errors.New("cents must be an integer")
	ErrNilSource      = errors.New("source is nil")
	ErrClosed         = errors.New("source is closed")
	ErrSeekOutOfRange = errors.New("seek position out of range")
	ErrNoChannels     = errors.New("channel count must be at least 1")
)
