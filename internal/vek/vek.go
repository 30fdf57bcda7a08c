// Package vek provides the vector kernels used by propagation code: dot
// products, multiply-accumulate, and scaling over contiguous float64
// buffers.
//
// Lengths are caller contracts. The kernels perform no validation beyond
// what gonum enforces; mismatched slices are precondition violations.
package vek

import "gonum.org/v1/gonum/floats"

// Dot returns the dot product of a and b. The slices must have equal length.
func Dot(a, b []float64) float64 {
	return floats.Dot(a, b)
}

// MulAdd accumulates dst[k] += s[k] * alpha for every k. dst and s must have
// equal length.
func MulAdd(dst, s []float64, alpha float64) {
	floats.AddScaled(dst, alpha, s)
}

// Scale multiplies every element of dst by alpha in place.
func Scale(dst []float64, alpha float64) {
	floats.Scale(alpha, dst)
}
