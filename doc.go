// SPDX-License-Identifier: EPL-2.0

// Package noteshift changes the pitch of recorded audio by playing it back
// faster or slower.
//
// The technique is varispeed, the digital form of changing a tape's speed:
// pitch and duration move together. Raising a clip by 1200 cents (one
// octave) halves its length.
//
// # Supported Formats
//
//   - Ogg Vorbis input via formats/vorbis
//   - WAV input and 16-bit PCM output via formats/wav
//
// # Quick Start
//
//	file, _ := os.Open("bell.ogg")
//	src, _ := vorbis.Decoder{}.Decode(file)
//
//	// one whole tone down, as 16-bit PCM at the original rate label
//	pcm, rate, _ := noteshift.PitchShift(src, -200, 4096)
//
// # Packages
//
//   - audio: Varispeed, cents helpers and the Source pipeline
//   - convert: batch conversion of a folder of Ogg files
//   - preview: live playback with an adjustable pitch
//
// The noteshift command ties these together with a CLI and a terminal UI.
package noteshift
