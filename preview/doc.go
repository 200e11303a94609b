// SPDX-License-Identifier: EPL-2.0

// Package preview plays a clip through the sound card at an adjustable
// pitch.
//
// A Player holds one decoded clip in memory. Play starts it from the top
// through an audio.Varispeed; the stream is converted to the device's rate
// and channel layout and handed to the device as 16-bit PCM. The pitch can
// be changed while playing with SetCents.
//
//	dev, err := preview.NewOtoDevice(44100, 2)
//	p := preview.New(dev)
//	defer p.Close()
//
//	_ = p.Load("bell.ogg")
//	_ = p.Play(-500)
package preview
