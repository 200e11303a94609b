// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files,
// the container noteblock instrument samples ship in.
//
// # Streaming
//
// Decoder implements audio.Decoder and yields an audio.Source that reads
// interleaved float32 samples in [-1.0, 1.0] straight from the stream:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Loading into memory
//
// Pitch shifting repositions the source on nearly every output frame, which
// is expensive on a compressed stream. Load decodes the whole clip once and
// returns an *audio.MemorySource that seeks in constant time:
//
//	clip, err := vorbis.Load(file)
//	vs, err := audio.NewVarispeed(clip, audio.CentsToRate(-500))
//
// Noteblock samples are a few seconds long, so holding them in memory is
// cheap.
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: as encoded (mono or stereo typically)
//   - Sample rate: as encoded (commonly 44.1kHz or 48kHz)
package vorbis
