// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives behind pitch shifting.
//
// The building blocks are:
//   - Source and SeekableSource, the pull interfaces every stage implements
//   - Varispeed, a variable-rate linear interpolating reader
//   - MemorySource and Buffer, for random access to a decoded clip
//   - RateConverter, a cubic sample rate converter used for playback
//   - Downmix, which averages channels into one
//   - PCMReader, which turns a Source into 16-bit PCM bytes
//   - Registry, which maps file extensions to decoders
//
// # Pitch Shifting
//
// Varispeed reads its source faster or slower than real time but keeps the
// source's sample rate label, so a consumer plays the result at a different
// pitch and duration. The amount is usually given in cents:
//
//	mem, _ := audio.Buffer(decoded)
//	v, _ := audio.NewVarispeed(mem, audio.CentsToRate(-300))
//	defer v.Close()
//
// A rate of 2 is an octave up, 0.5 an octave down. The rate can be changed
// while another goroutine is reading.
//
// # Sample Format
//
// Samples are interleaved float32 values in [-1.0, 1.0]. Counts returned by
// ReadSamples are in samples, not frames.
//
// # Error Handling
//
// ReadSamples returns io.EOF when no more data is available. A stage may
// return the last samples together with io.EOF, so callers should consume
// n before looking at err:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    process(buf[:n])
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
