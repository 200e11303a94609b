// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/noteshift/internal/audiotest"
)

func TestPCMReader_Encoding(t *testing.T) {
	t.Parallel()

	src, err := NewMemorySource([]float32{0, 1, -1, 0.5}, 8000, 2)
	if err != nil {
		t.Fatalf("NewMemorySource() error = %v", err)
	}

	data, err := io.ReadAll(NewPCMReader(src, 4))
	if err != nil {
		t.Fatalf("io.ReadAll() error = %v", err)
	}

	if len(data) != 8 {
		t.Fatalf("read %d bytes, want 8", len(data))
	}

	got := make([]int16, 4)
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, got); err != nil {
		t.Fatalf("binary.Read() error = %v", err)
	}

	want := []int16{0, 32767, -32767, 16383}
	if !slices.Equal(got, want) {
		t.Errorf("decoded PCM = %v, want %v", got, want)
	}
}

func TestPCMReader_SmallReads(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 2, 100)
	r := NewPCMReader(src, 64)

	var out bytes.Buffer
	p := make([]byte, 3)
	for {
		n, err := r.Read(p)
		out.Write(p[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
	}

	if out.Len() != 100*2*2 {
		t.Errorf("read %d bytes, want %d", out.Len(), 100*2*2)
	}

	if n, err := r.Read(p); n != 0 || err != io.EOF {
		t.Errorf("Read() after end = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestPCMReader_SourceError(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("broken")
	src := audiotest.NewSilentSource(8000, 1, 1000)
	src.FailAt = 10
	src.FailErr = errBroken
	src.MaxFramesPerRead = 10

	_, err := io.ReadAll(NewPCMReader(src, 16))
	if !errors.Is(err, errBroken) {
		t.Errorf("io.ReadAll() error = %v, want %v", err, errBroken)
	}
}
