// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// RMSE returns sqrt(Σ(a_i − b_i)² / n).
func RMSE(a, b []float64) (float64, error) {
	if err := pointwise(a, b); err != nil {
		return 0, fmt.Errorf("RMSE: %w", err)
	}
	d := floats.Distance(a, b, 2)
	return d / math.Sqrt(float64(len(a))), nil
}

// MaxAbs returns max |a_i − b_i|.
func MaxAbs(a, b []float64) (float64, error) {
	if err := pointwise(a, b); err != nil {
		return 0, fmt.Errorf("MaxAbs: %w", err)
	}
	return floats.Distance(a, b, math.Inf(1)), nil
}

// Against computes every metric of curve against ref. DTW uses opts with
// ReturnPath forced off.
func Against(curve, ref []float64, opts Options) (Metrics, error) {
	var m Metrics
	var err error
	if m.RMSE, err = RMSE(curve, ref); err != nil {
		return Metrics{}, fmt.Errorf("Against: %w", err)
	}
	if m.MaxAbs, err = MaxAbs(curve, ref); err != nil {
		return Metrics{}, fmt.Errorf("Against: %w", err)
	}
	opts.ReturnPath = false
	if m.DTW, _, err = DTW(curve, ref, opts); err != nil {
		return Metrics{}, fmt.Errorf("Against: %w", err)
	}
	return m, nil
}

func pointwise(a, b []float64) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyInput
	}
	if len(a) != len(b) {
		return ErrLengthMismatch
	}
	return nil
}
