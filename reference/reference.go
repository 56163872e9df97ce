// SPDX-License-Identifier: MIT

package reference

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// ErrBadLength indicates a non-positive number of points.
var ErrBadLength = errors.New("reference: length must be > 0")

const (
	cycloidRadius  = 0.5  // a
	cycloidSamples = 100  // θ samples over [0, π]
	inverseMinX    = 0.01 // first abscissa of the 1/x² curve
	inverseMaxX    = 1.0
)

// linspace fills n points over [lo, hi]; a single point sits at lo.
func linspace(n int, lo, hi float64) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	return floats.Span(out, lo, hi)
}

// Axis returns the normalized spatial axis: n points over [0,1].
func Axis(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Axis(%d): %w", n, ErrBadLength)
	}
	return linspace(n, 0, 1), nil
}

// Brachistochrone returns the cycloid-derived curve sampled on Axis(n).
//
// Implementation:
//   - Stage 1: sample θ over [0, π] and build the cycloid (x, y).
//   - Stage 2: normalize x to [0,1] (x is strictly increasing on (0, π]).
//   - Stage 3: piecewise-linear interpolation onto the axis, then y+1.
func Brachistochrone(n int) ([]float64, error) {
	axis, err := Axis(n)
	if err != nil {
		return nil, fmt.Errorf("Brachistochrone: %w", err)
	}

	// Stage 1: cycloid.
	theta := linspace(cycloidSamples, 0, math.Pi)
	xs := make([]float64, cycloidSamples)
	ys := make([]float64, cycloidSamples)
	for i, th := range theta {
		xs[i] = cycloidRadius * (th - math.Sin(th))
		ys[i] = -cycloidRadius * (1 - math.Cos(th))
	}

	// Stage 2: min-max normalization of x.
	lo, hi := floats.Min(xs), floats.Max(xs)
	for i := range xs {
		xs[i] = (xs[i] - lo) / (hi - lo)
	}

	// Stage 3: interpolate; Predict clamps outside the sampled range.
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("Brachistochrone: %w", err)
	}
	out := make([]float64, n)
	for i, x := range axis {
		out[i] = pl.Predict(x) + 1
	}
	return out, nil
}

// InverseQuadratic returns 1/x² over n points in [0.01, 1], scaled so the maximum is 1.
func InverseQuadratic(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("InverseQuadratic(%d): %w", n, ErrBadLength)
	}
	xs := linspace(n, inverseMinX, inverseMaxX)
	out := make([]float64, n)
	for i, x := range xs {
		out[i] = 1 / (x * x)
	}
	maxV := floats.Max(out)
	for i := range out {
		out[i] /= maxV
	}
	return out, nil
}
