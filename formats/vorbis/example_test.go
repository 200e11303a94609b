// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/noteshift/audio"
	"github.com/ik5/noteshift/formats/vorbis"
)

// ExampleLoad decodes a clip into memory and plays it back a fifth higher.
func ExampleLoad() {
	f, err := os.Open("harp.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	clip, err := vorbis.Load(f)
	if err != nil {
		log.Fatal(err)
	}

	vs, err := audio.NewVarispeed(clip, audio.CentsToRate(700))
	if err != nil {
		log.Fatal(err)
	}
	defer vs.Close()

	fmt.Printf("%d frames at %d Hz, rate %.3f\n", clip.Frames(), vs.SampleRate(), vs.Rate())
}

// ExampleDecoder_Decode registers the decoder and streams a file through it.
func ExampleDecoder_Decode() {
	reg := audio.NewRegistry()
	reg.Register("ogg", vorbis.Decoder{})

	dec, ok := reg.Get(".OGG")
	if !ok {
		log.Fatal("no decoder")
	}

	f, err := os.Open("bass.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	buf := make([]float32, src.BufSize())
	n, err := src.ReadSamples(buf)
	fmt.Println(n, err)
}
