// SPDX-License-Identifier: EPL-2.0

package utils

// FullScale16 is the int16 value a float sample of 1.0 maps to.
const FullScale16 = 32767

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16 bits, truncating
// toward zero. The scale is symmetric, so -1 maps to -32767.
func Float32ToInt16(x float32) int16 {
	x = min(max(x, -1), 1)
	return int16(x * FullScale16)
}
