// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"math"
)

var (
	// ErrLengthMismatch indicates x and y of different lengths.
	ErrLengthMismatch = errors.New("fit: x and y lengths differ")

	// ErrInsufficientData indicates fewer usable points than the model needs.
	ErrInsufficientData = errors.New("fit: not enough data points")

	// ErrNonFinite indicates a NaN or ±Inf sample.
	ErrNonFinite = errors.New("fit: NaN or Inf in input")

	// ErrDomain indicates a non-positive abscissa after the epsilon nudge.
	ErrDomain = errors.New("fit: x must be > 0")

	// ErrBadOptions indicates inconsistent initial guess or bounds.
	ErrBadOptions = errors.New("fit: invalid options")

	// ErrNoConvergence indicates the evaluation budget ran out before convergence.
	ErrNoConvergence = errors.New("fit: no convergence within evaluation budget")
)

// Defaults shared by DefaultOptions and PowerLawOptions.
const (
	DefaultMaxEvaluations = 10000
	DefaultEpsilon        = 1e-6
	DefaultTolerance      = 1e-12
)

// Options configures Curve.
type Options struct {
	Offset         bool      // fit b/x^a + c instead of b/x^a
	Initial        []float64 // (a, b[, c])
	Lower, Upper   []float64 // per-parameter bounds, same length as Initial
	MaxEvaluations int       // model evaluations budget
	Epsilon        float64   // added to the first abscissa
	FTol           float64   // relative cost reduction
	XTol           float64   // relative step size
	GTol           float64   // gradient infinity norm
}

// DefaultOptions is the offset model with a ∈ [1,3], b,c ≥ 0, guess (2, 1, 0.1).
func DefaultOptions() Options {
	inf := math.Inf(1)
	return Options{
		Offset:         true,
		Initial:        []float64{2, 1, 0.1},
		Lower:          []float64{1, 0, 0},
		Upper:          []float64{3, inf, inf},
		MaxEvaluations: DefaultMaxEvaluations,
		Epsilon:        DefaultEpsilon,
		FTol:           DefaultTolerance,
		XTol:           DefaultTolerance,
		GTol:           DefaultTolerance,
	}
}

// PowerLawOptions is the simpler model b/x^a with a, b ≥ 0 and guess (2, 1).
func PowerLawOptions() Options {
	inf := math.Inf(1)
	return Options{
		Offset:         false,
		Initial:        []float64{2, 1},
		Lower:          []float64{0, 0},
		Upper:          []float64{inf, inf},
		MaxEvaluations: DefaultMaxEvaluations,
		Epsilon:        DefaultEpsilon,
		FTol:           DefaultTolerance,
		XTol:           DefaultTolerance,
		GTol:           DefaultTolerance,
	}
}

// Result holds fitted parameters and diagnostics.
type Result struct {
	A, B, C     float64     // exponent, scale, offset (C = 0 without offset)
	Offset      bool        // whether C was fitted
	Params      []float64   // raw parameter vector (a, b[, c])
	Covariance  [][]float64 // s²·(JᵀJ)⁻¹ at the optimum; nil if singular or m == n
	Residual    float64     // Σ (f(x_i) − y_i)²
	Evaluations int         // model evaluations used
	Iterations  int         // accepted and rejected LM iterations
}

// Eval returns the fitted model at x.
func (r *Result) Eval(x float64) float64 {
	return r.B*math.Pow(x, -r.A) + r.C
}

// StdErr returns the standard error of parameter i, or NaN when unavailable.
func (r *Result) StdErr(i int) float64 {
	if r.Covariance == nil || i < 0 || i >= len(r.Covariance) {
		return math.NaN()
	}
	return math.Sqrt(r.Covariance[i][i])
}

// LogLog is the result of a log-log linear regression.
type LogLog struct {
	Slope     float64
	Intercept float64
	Points    int // samples that survived the positivity filter
}
