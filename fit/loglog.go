// SPDX-License-Identifier: MIT

package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// LogLogSlope regresses log(y) on log(x) over the samples where both are
// positive and finite. At least two such samples are required.
func LogLogSlope(x, y []float64) (LogLog, error) {
	if len(x) != len(y) {
		return LogLog{}, fmt.Errorf("LogLogSlope: %w", ErrLengthMismatch)
	}
	lx := make([]float64, 0, len(x))
	ly := make([]float64, 0, len(y))
	for i := range x {
		if x[i] > 0 && y[i] > 0 && finite(x[i]) && finite(y[i]) {
			lx = append(lx, math.Log(x[i]))
			ly = append(ly, math.Log(y[i]))
		}
	}
	if len(lx) < 2 {
		return LogLog{}, fmt.Errorf("LogLogSlope: %d usable points: %w", len(lx), ErrInsufficientData)
	}
	intercept, slope := stat.LinearRegression(lx, ly, nil, false)
	if !finite(slope) {
		return LogLog{}, fmt.Errorf("LogLogSlope: %w", ErrNonFinite)
	}
	return LogLog{Slope: slope, Intercept: intercept, Points: len(lx)}, nil
}

// CrossCheck removes the fitted offset from y and estimates the exponent by a
// log-log regression on the same nudged axis Curve used. For a pure power law
// the slope equals −res.A.
func CrossCheck(x, y []float64, res *Result, opts Options) (LogLog, error) {
	if res == nil {
		return LogLog{}, fmt.Errorf("CrossCheck: nil result: %w", ErrBadOptions)
	}
	if len(x) != len(y) {
		return LogLog{}, fmt.Errorf("CrossCheck: %w", ErrLengthMismatch)
	}
	if len(x) == 0 {
		return LogLog{}, fmt.Errorf("CrossCheck: %w", ErrInsufficientData)
	}
	xs := append([]float64(nil), x...)
	xs[0] += opts.Epsilon
	ys := make([]float64, len(y))
	for i := range y {
		ys[i] = y[i] - res.C
	}
	ll, err := LogLogSlope(xs, ys)
	if err != nil {
		return LogLog{}, fmt.Errorf("CrossCheck: %w", err)
	}
	return ll, nil
}
