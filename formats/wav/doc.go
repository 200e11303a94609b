// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// It uses the github.com/go-audio library for robust WAV file handling.
// WAV is the uncompressed intermediate of a conversion: pitched audio is
// written here first and then handed to an external Ogg Vorbis encoder. If
// that encoder is missing, the WAV file is the result.
//
// # Supported Formats
//
// Decoding:
//   - PCM 8, 16, 24 and 32-bit
//   - Any channel count
//   - Any sample rate
//
// Encoding:
//   - PCM 16-bit, any channel count and sample rate
//
// # Decoding WAV Files
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Writing WAV Files
//
// Writer appends interleaved float32 chunks and patches the header sizes on
// Close, so the destination must implement io.WriteSeeker:
//
//	f, _ := os.Create("output.wav")
//	w, err := wav.NewWriter(f, 44100, 2)
//	err = w.WriteSamples(chunk)
//	err = w.Close()
//
// WriteFrom drains a whole audio.Source into a Writer with an optional
// sample ceiling.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a valid WAV file
//   - ErrOnlyPCMSupported: compressed or float WAV data
//   - ErrUnsupportedBitDepth: a PCM depth other than 8/16/24/32
//   - ErrWriterClosed: writing after Close
package wav
