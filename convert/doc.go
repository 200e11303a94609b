// SPDX-License-Identifier: EPL-2.0

// Package convert pitch shifts a batch of audio files and saves them as
// Ogg Vorbis.
//
// Every input is decoded into memory, read through an audio.Varispeed at the
// requested rate and written as a 16-bit WAV file into a pitch_shifted
// folder under the output directory. An Encoder then turns that WAV into an
// Ogg file; the default one runs ffmpeg. When encoding works the WAV is
// deleted, when it fails the WAV stays behind as the result.
//
//	c := convert.New(convert.WithLogger(log))
//	files, _ := convert.ListFiles(afero.NewOsFs(), "samples", "ogg")
//	results, err := c.Run(ctx, convert.Job{
//	    Inputs:    convert.Select(files, 0, true),
//	    OutputDir: "out",
//	    Cents:     -200,
//	})
//
// Files are converted one at a time. A failing file is recorded in its
// Result and in the combined error, and the batch moves on.
package convert
