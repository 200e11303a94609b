// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Downmix averages every frame of src into a single channel.
// A mono source passes through untouched.
type Downmix struct {
	src Source
	tmp []float32
}

func NewDownmix(src Source) *Downmix {
	return &Downmix{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (d *Downmix) SampleRate() int { return d.src.SampleRate() }
func (d *Downmix) Channels() int   { return 1 }
func (d *Downmix) BufSize() int    { return d.src.BufSize() }

func (d *Downmix) Close() error {
	if err := d.src.Close(); err != nil {
		return fmt.Errorf("downmix: close source: %w", err)
	}
	return nil
}

// ReadSamples writes up to len(dst) mono samples.
func (d *Downmix) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := d.src.Channels()
	if channels == 1 {
		return d.src.ReadSamples(dst)
	}
	if channels < 1 {
		return 0, ErrNoChannels
	}

	need := len(dst) * channels
	if cap(d.tmp) < need {
		d.tmp = make([]float32, max(need, 8192))
	}
	d.tmp = d.tmp[:need]

	n, err := d.src.ReadSamples(d.tmp)
	frames := n / channels
	scale := 1 / float32(channels)

	if channels == 2 {
		for f := range frames {
			dst[f] = (d.tmp[2*f] + d.tmp[2*f+1]) * 0.5
		}
	} else {
		for f := range frames {
			var sum float32
			for _, s := range d.tmp[f*channels : (f+1)*channels] {
				sum += s
			}
			dst[f] = sum * scale
		}
	}

	return frames, err
}
