// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/noteshift/audio"
	"github.com/ik5/noteshift/internal/audiotest"
)

// Example_varispeed plays a four frame ramp at double speed.
func Example_varispeed() {
	// frame i holds [i, i]
	source := audiotest.NewRampSource(44100, 2, 4)

	v, err := audio.NewVarispeed(source, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer v.Close()

	buf := make([]float32, 4)
	n, err := v.ReadSamples(buf)
	fmt.Println(buf[:n], err)

	n, err = v.ReadSamples(buf)
	fmt.Println(n, err)
	// Output:
	// [0 0 2 2] <nil>
	// 0 EOF
}

// Example_pitchShift raises a one second tone by an octave.
func Example_pitchShift() {
	source := audiotest.NewSineSource(44100, 1, 44100, 440.0)

	rate := audio.CentsToRate(1200)

	v, err := audio.NewVarispeed(source, rate)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer v.Close()

	buf := make([]float32, 4096)
	total := 0
	for {
		n, err := v.ReadSamples(buf)
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println(err)
			return
		}
	}

	fmt.Printf("Rate: %.1f\n", rate)
	fmt.Printf("Sample rate label: %d Hz\n", v.SampleRate())
	fmt.Printf("Output samples: %d\n", total)
	// Output:
	// Rate: 2.0
	// Sample rate label: 44100 Hz
	// Output samples: 22050
}

// Example_cents shows how cents map to playback rates.
func Example_cents() {
	for _, cents := range []int{-1200, -700, 0, 700, 1200} {
		fmt.Printf("%5d cents -> %.4f\n", cents, audio.CentsToRate(cents))
	}

	cents, err := audio.ParseCents(" 5000 ")
	fmt.Println(cents, err)
	// Output:
	// -1200 cents -> 0.5000
	//  -700 cents -> 0.6674
	//     0 cents -> 1.0000
	//   700 cents -> 1.4983
	//  1200 cents -> 2.0000
	// 1200 <nil>
}

// Example_downmix mixes a 5.1 stream to mono.
func Example_downmix() {
	source := audiotest.NewConstantSource(48000, 6, 48000, 0.5)
	mono := audio.NewDownmix(source)

	buf := make([]float32, 1)
	n, _ := mono.ReadSamples(buf)

	fmt.Printf("Channels: %d -> %d\n", source.Channels(), mono.Channels())
	fmt.Printf("Read %d sample: %.1f\n", n, buf[0])
	// Output:
	// Channels: 6 -> 1
	// Read 1 sample: 0.5
}

type toneDecoder struct{}

func (toneDecoder) Decode(r io.Reader) (audio.Source, error) {
	return audiotest.NewSineSource(16000, 1, 1000, 440.0), nil
}

// Example_registry looks decoders up by file extension.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("ogg", toneDecoder{})

	decoder, ok := registry.ForPath("samples/Harp.OGG")
	fmt.Printf("%T %v\n", decoder, ok)

	_, ok = registry.ForPath("samples/harp.flac")
	fmt.Println(ok)

	fmt.Println(registry.Formats())
	// Output:
	// audio_test.toneDecoder true
	// false
	// [ogg]
}
