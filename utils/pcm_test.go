// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float32
		want int16
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{0.5, 16383},
		{-0.5, -16383},
		{0.25, 8191},
		{0.001, 32},
		{-0.001, -32},
		{1.5, 32767},
		{-100, -32767},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Float32ToInt16(tt.in), "Float32ToInt16(%v)", tt.in)
	}
}

func TestFloat32ToInt16_SymmetricAndMonotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1)
	for i := -99; i <= 100; i++ {
		f := float32(i) / 100

		cur := Float32ToInt16(f)
		assert.GreaterOrEqual(t, cur, prev, "at %v", f)
		assert.Equal(t, -cur, Float32ToInt16(-f), "at %v", f)

		prev = cur
	}
}

func BenchmarkFloat32ToInt16(b *testing.B) {
	in := make([]float32, 4096)
	out := make([]int16, len(in))
	for i := range in {
		in[i] = float32(i%200)/100 - 1
	}

	b.ReportAllocs()
	for b.Loop() {
		for i, s := range in {
			out[i] = Float32ToInt16(s)
		}
	}
}
