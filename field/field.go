// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linear builds a field of length values linearly spaced over [0, gradient].
//
// Implementation:
//   - Stage 1: validate length and gradient.
//   - Stage 2: fill with floats.Span (inclusive endpoints); a single position holds 0.
//   - Stage 3: optionally divide by the maximum.
//
// Errors:
//   - ErrBadLength   if length <= 0.
//   - ErrBadGradient if gradient is NaN or ±Inf.
//   - ErrDegenerate  if WithNormalize is set and max(field) <= 0.
func Linear(length int, gradient float64, opts ...Option) (Field, error) {
	// Stage 1: validate.
	if length <= 0 {
		return Field{}, fmt.Errorf("Linear(%d): %w", length, ErrBadLength)
	}
	if math.IsNaN(gradient) || math.IsInf(gradient, 0) {
		return Field{}, fmt.Errorf("Linear: %w", ErrBadGradient)
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 2: linspace(0, gradient, length).
	values := make([]float64, length)
	if length > 1 {
		floats.Span(values, 0, gradient)
	}

	// Stage 3: normalize by the maximum.
	if cfg.normalize {
		maxV := floats.Max(values)
		if maxV <= 0 {
			return Field{}, fmt.Errorf("Linear: max=%g: %w", maxV, ErrDegenerate)
		}
		for i := range values {
			values[i] /= maxV // exact 1.0 at the argmax
		}
	}

	return Field{values: values, gradient: gradient, normalized: cfg.normalize}, nil
}
