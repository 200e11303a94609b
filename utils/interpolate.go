// SPDX-License-Identifier: EPL-2.0

// Package utils holds the per-sample arithmetic shared by the audio stages.
package utils

// Lerp linearly interpolates between a and b.
// t is the fractional position (0 <= t < 1); t == 0 returns a exactly.
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// CubicInterpolate evaluates the Catmull-Rom spline through y0..y3 at x,
// where x in [0, 1] runs from y1 to y2. x == 0 returns y1 exactly.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	a := 0.5 * (y3 - y0 + 3*(y1-y2))
	b := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c := 0.5 * (y2 - y0)

	return ((a*x+b)*x+c)*x + y1
}
