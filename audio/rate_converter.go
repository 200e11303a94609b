// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/noteshift/utils"
)

// RateConverter streams src at a different sample rate using cubic
// interpolation. Unlike Varispeed it changes the rate label together with
// the sample count, so pitch is preserved. The preview player uses it to
// bring a clip to the fixed rate of the output device.
//
// Works on interleaved samples; preserves channel count.
// Applies a one-pole low-pass when downsampling.
type RateConverter struct {
	src      Source
	dstRate  int
	ratio    float64 // source frames per output frame
	channels int

	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames   [4][]float32
	hasFrame [4]bool
	primed   bool

	// position between frames[1] and frames[2]
	pos float64

	srcBuf []float32
	eof    bool

	lowPass     []float32
	useLowPass  bool
	lowPassGain float32
}

func NewRateConverter(src Source, dstRate int) *RateConverter {
	channels := src.Channels()
	ratio := float64(src.SampleRate()) / float64(dstRate)

	c := &RateConverter{
		src:         src,
		dstRate:     dstRate,
		ratio:       ratio,
		channels:    channels,
		srcBuf:      make([]float32, channels),
		useLowPass:  ratio > 1.0,
		lowPassGain: 0.5,
		lowPass:     make([]float32, channels),
	}

	for i := range c.frames {
		c.frames[i] = make([]float32, channels)
	}

	return c
}

func (c *RateConverter) SampleRate() int { return c.dstRate }
func (c *RateConverter) Channels() int   { return c.channels }
func (c *RateConverter) BufSize() int    { return c.src.BufSize() }

func (c *RateConverter) Close() error {
	if err := c.src.Close(); err != nil {
		return fmt.Errorf("rate converter: close source: %w", err)
	}
	return nil
}

// readFrame reads one source frame into dst. ok is false once the source is
// exhausted.
func (c *RateConverter) readFrame(dst []float32, filter bool) (bool, error) {
	if c.eof {
		return false, nil
	}

	n, err := c.src.ReadSamples(c.srcBuf)
	if errors.Is(err, io.EOF) {
		c.eof = true
	} else if err != nil {
		return false, fmt.Errorf("rate converter: read: %w", err)
	}

	if n < c.channels {
		c.eof = true
		return false, nil
	}

	copy(dst, c.srcBuf)
	if filter && c.useLowPass {
		for ch := range c.channels {
			dst[ch] = c.lowPassGain*dst[ch] + (1-c.lowPassGain)*c.lowPass[ch]
			c.lowPass[ch] = dst[ch]
		}
	}

	return true, nil
}

// prime loads the first three frames, unfiltered. The frame before the
// first one does not exist, so frames[0] stays unset.
func (c *RateConverter) prime() error {
	c.primed = true

	for i := 1; i < len(c.frames); i++ {
		ok, err := c.readFrame(c.frames[i], false)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		c.hasFrame[i] = true

		if i == 1 {
			// seed the filter to avoid a ramp from silence
			copy(c.lowPass, c.frames[1])
		}
	}

	return nil
}

// advance shifts the window one frame forward.
func (c *RateConverter) advance() (bool, error) {
	if !c.hasFrame[2] {
		return false, nil
	}

	first := c.frames[0]
	copy(c.frames[:], c.frames[1:])
	c.frames[3] = first
	copy(c.hasFrame[:], c.hasFrame[1:])

	ok, err := c.readFrame(c.frames[3], true)
	if err != nil {
		return false, err
	}
	if !ok {
		copy(c.frames[3], c.frames[2])
	}
	c.hasFrame[3] = ok

	return true, nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length should be a multiple of the channel count.
func (c *RateConverter) ReadSamples(dst []float32) (int, error) {
	if len(dst)%c.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !c.primed {
		if err := c.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesNeeded := len(dst) / c.channels

	for written < framesNeeded {
		for c.pos >= 1.0 {
			c.pos -= 1.0
			ok, err := c.advance()
			if err != nil {
				return written * c.channels, err
			}
			if !ok {
				return c.finish(written)
			}
		}

		if !c.hasFrame[1] || !c.hasFrame[2] {
			return c.finish(written)
		}

		alpha := float32(c.pos)
		for ch := range c.channels {
			y0 := c.frames[1][ch]
			if c.hasFrame[0] {
				y0 = c.frames[0][ch]
			}
			y3 := c.frames[2][ch]
			if c.hasFrame[3] {
				y3 = c.frames[3][ch]
			}

			dst[written*c.channels+ch] = utils.CubicInterpolate(y0, c.frames[1][ch], c.frames[2][ch], y3, alpha)
		}

		written++
		c.pos += c.ratio
	}

	return written * c.channels, nil
}

func (c *RateConverter) finish(written int) (int, error) {
	return written * c.channels, io.EOF
}
