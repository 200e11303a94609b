// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotVorbis indicates the input is not a readable Ogg Vorbis stream
	ErrNotVorbis = errors.New("not an Ogg Vorbis stream")

	// ErrNoChannels indicates a stream header with no channels
	ErrNoChannels = errors.New("vorbis stream has no channels")
)
