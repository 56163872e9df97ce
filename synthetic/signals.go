// SPDX-License-Identifier: MIT

package synthetic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Transition returns the two-regime particle-count profile over r = 1…length.
//
// Stage 1: 1/r³ for i < ⌊0.9T⌋, 1/r² for i ≥ ⌊1.1T⌋, linear blend in between.
// Stage 2: add the residual, normalize to unit sum, scale to the total.
// Stage 3: round half to even, unless WithoutRounding.
func Transition(length int, opts ...Option) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("Transition: length=%d: %w", length, ErrBadLength)
	}
	c := newConfig(opts)
	start := int(float64(c.transition) * transitionLow)
	end := int(float64(c.transition) * transitionHigh)

	out := make([]float64, length)
	for i := range out {
		r := float64(i + 1)
		cubic, square := 1/(r*r*r), 1/(r*r)
		switch {
		case i < start:
			out[i] = cubic
		case i >= end:
			out[i] = square
		default:
			alpha := float64(i-start) / float64(end-start)
			out[i] = (1-alpha)*cubic + alpha*square
		}
	}

	floats.AddConst(c.residual, out)
	floats.Scale(c.total/floats.Sum(out), out)
	if c.round {
		for i, v := range out {
			out[i] = math.RoundToEven(v)
		}
	}
	return out, nil
}

// Sine returns offset + A·sin(2π·f0·i) + N(0, σ²) for i = 0…n−1.
func Sine(n int, f0 float64, opts ...Option) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Sine: n=%d: %w", n, ErrBadLength)
	}
	if f0 < 0 || math.IsNaN(f0) || math.IsInf(f0, 0) {
		return nil, fmt.Errorf("Sine: f0=%g: %w", f0, ErrBadFrequency)
	}
	c := newConfig(opts)
	out := make([]float64, n)
	for i := range out {
		out[i] = c.offset + c.amplitude*math.Sin(2*math.Pi*f0*float64(i))
		if c.sigma > 0 {
			out[i] += c.sigma * c.rng.NormFloat64()
		}
	}
	return out, nil
}
