// SPDX-License-Identifier: MIT

package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Levenberg–Marquardt damping schedule.
const (
	initialDamping = 1e-3
	maxDamping     = 1e32
	minScale       = 1e-12 // floor for the Marquardt diagonal
	stallCosine    = 1e-6  // largest residual/column cosine accepted as stationary
)

// problem binds data to the power-law model.
type problem struct {
	x, y   []float64
	offset bool
}

func (pr *problem) nParams() int {
	if pr.offset {
		return 3
	}
	return 2
}

// residuals writes f(x_i; p) − y_i into r and returns ½Σr².
func (pr *problem) residuals(p, r []float64) float64 {
	var cost float64
	for i, x := range pr.x {
		f := p[1] * math.Pow(x, -p[0])
		if pr.offset {
			f += p[2]
		}
		r[i] = f - pr.y[i]
		cost += r[i] * r[i]
	}
	return cost / 2
}

// jacobian fills J (m×k, row-major) with ∂f/∂a, ∂f/∂b[, ∂f/∂c].
func (pr *problem) jacobian(p, jac []float64) {
	k := pr.nParams()
	for i, x := range pr.x {
		pw := math.Pow(x, -p[0])
		row := jac[i*k : (i+1)*k]
		row[0] = -p[1] * pw * math.Log(x)
		row[1] = pw
		if pr.offset {
			row[2] = 1
		}
	}
}

// normal builds JᵀJ (as k×k row-major) and Jᵀr.
func normal(jac, r []float64, m, k int) ([]float64, []float64) {
	jtj := make([]float64, k*k)
	jtr := make([]float64, k)
	for i := 0; i < m; i++ {
		row := jac[i*k : (i+1)*k]
		for a := 0; a < k; a++ {
			jtr[a] += row[a] * r[i]
			for b := a; b < k; b++ {
				jtj[a*k+b] += row[a] * row[b]
			}
		}
	}
	for a := 0; a < k; a++ {
		for b := 0; b < a; b++ {
			jtj[a*k+b] = jtj[b*k+a]
		}
	}
	return jtj, jtr
}

// Curve fits the power-law model to (x, y) by bounded nonlinear least squares.
//
// Implementation:
//   - Stage 1: validate inputs and options; copy x and nudge x[0] by Epsilon.
//   - Stage 2: Levenberg–Marquardt with (JᵀJ + μ·diag(JᵀJ))δ = −Jᵀr, solved by Cholesky
//     on the column-scaled system. Parameters pinned at a bound with the gradient pointing
//     outward are frozen for the step. Trial points are clamped to the bounds. μ shrinks
//     on success and grows on failure.
//   - Stage 3: stop on gradient, step or relative cost tolerance; build the covariance.
//     When μ outgrows every useful step the fit is accepted only if the residual is
//     orthogonal to the free Jacobian columns (see stationary).
//
// Errors:
//   - ErrLengthMismatch, ErrInsufficientData, ErrNonFinite, ErrDomain, ErrBadOptions
//   - ErrNoConvergence when MaxEvaluations model evaluations did not suffice.
func Curve(x, y []float64, opts Options) (*Result, error) {
	// Stage 1: validate.
	pr, p0, err := prepare(x, y, opts)
	if err != nil {
		return nil, fmt.Errorf("Curve: %w", err)
	}
	m, k := len(pr.x), pr.nParams()

	p := p0
	r := make([]float64, m)
	jac := make([]float64, m*k)
	trial := make([]float64, k)
	rTrial := make([]float64, m)

	cost := pr.residuals(p, r)
	evals := 1
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return nil, fmt.Errorf("Curve: initial guess: %w", ErrNonFinite)
	}

	// Stage 2: iterate.
	damping := initialDamping
	growth := 2.0
	iterations := 0
	converged := false
	for evals < opts.MaxEvaluations && !converged {
		iterations++
		pr.jacobian(p, jac)
		jtj, jtr := normal(jac, r, m, k)
		free := freeParams(p, jtr, opts)

		if projectedNorm(jtr, free) <= opts.GTol {
			converged = true
			break
		}

		step, ok := solveDamped(jtj, jtr, free, damping)
		if !ok {
			damping *= growth
			growth *= 2
			if damping > maxDamping {
				break
			}
			continue
		}

		var stepNorm, pNorm float64
		for i := 0; i < k; i++ {
			trial[i] = clamp(p[i]+step[i], opts.Lower[i], opts.Upper[i])
			d := trial[i] - p[i]
			stepNorm += d * d
			pNorm += p[i] * p[i]
		}
		if math.Sqrt(stepNorm) <= opts.XTol*(math.Sqrt(pNorm)+opts.XTol) {
			converged = true
			break
		}

		trialCost := pr.residuals(trial, rTrial)
		evals++
		if trialCost < cost {
			reduction := cost - trialCost
			copy(p, trial)
			copy(r, rTrial)
			cost = trialCost
			damping = math.Max(damping/3, 1e-15)
			growth = 2
			if reduction <= opts.FTol*(cost+reduction) {
				converged = true
			}
			continue
		}
		damping *= growth
		growth *= 2
		if damping > maxDamping {
			break
		}
	}

	// A damping blow-up only counts when no descent direction is left inside the bounds.
	if !converged && damping > maxDamping {
		pr.jacobian(p, jac)
		jtj, jtr := normal(jac, r, m, k)
		converged = stationary(jtj, jtr, freeParams(p, jtr, opts), cost)
	}
	if !converged {
		return nil, fmt.Errorf("Curve: %d evaluations: %w", evals, ErrNoConvergence)
	}

	// Stage 3: assemble the result.
	res := &Result{
		A:           p[0],
		B:           p[1],
		Offset:      pr.offset,
		Params:      append([]float64(nil), p...),
		Residual:    2 * cost,
		Evaluations: evals,
		Iterations:  iterations,
	}
	if pr.offset {
		res.C = p[2]
	}
	pr.jacobian(p, jac)
	jtj, _ := normal(jac, r, m, k)
	res.Covariance = covariance(jtj, k, 2*cost, m)
	return res, nil
}

// prepare validates inputs and returns the bound problem and a clamped copy of the guess.
func prepare(x, y []float64, opts Options) (*problem, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, ErrLengthMismatch
	}
	k := 2
	if opts.Offset {
		k = 3
	}
	if len(opts.Initial) != k || len(opts.Lower) != k || len(opts.Upper) != k {
		return nil, nil, ErrBadOptions
	}
	if opts.MaxEvaluations <= 0 {
		return nil, nil, ErrBadOptions
	}
	for i := 0; i < k; i++ {
		if opts.Lower[i] > opts.Upper[i] || math.IsNaN(opts.Initial[i]) {
			return nil, nil, ErrBadOptions
		}
	}
	if len(x) < k {
		return nil, nil, ErrInsufficientData
	}

	xs := append([]float64(nil), x...)
	xs[0] += opts.Epsilon
	for i := range xs {
		if !finite(xs[i]) || !finite(y[i]) {
			return nil, nil, ErrNonFinite
		}
		if xs[i] <= 0 {
			return nil, nil, ErrDomain
		}
	}

	p0 := make([]float64, k)
	for i := 0; i < k; i++ {
		p0[i] = clamp(opts.Initial[i], opts.Lower[i], opts.Upper[i])
	}
	return &problem{x: xs, y: append([]float64(nil), y...), offset: opts.Offset}, p0, nil
}

// freeParams marks the parameters allowed to move this iteration. A parameter
// sitting on a bound whose descent direction −Jᵀr points outside is frozen.
func freeParams(p, jtr []float64, opts Options) []bool {
	free := make([]bool, len(p))
	for i := range p {
		atLower := p[i] <= opts.Lower[i] && jtr[i] > 0
		atUpper := p[i] >= opts.Upper[i] && jtr[i] < 0
		free[i] = !atLower && !atUpper
	}
	return free
}

// projectedNorm is the infinity norm of the gradient over free parameters.
func projectedNorm(jtr []float64, free []bool) float64 {
	var m float64
	for i, g := range jtr {
		if free[i] {
			m = math.Max(m, math.Abs(g))
		}
	}
	return m
}

// stationary reports whether the largest cosine between the residual vector and a
// free Jacobian column is below stallCosine. A zero residual is always stationary.
func stationary(jtj, jtr []float64, free []bool, cost float64) bool {
	if cost == 0 {
		return true
	}
	k := len(free)
	rnorm := math.Sqrt(2 * cost)
	for i := 0; i < k; i++ {
		col := math.Sqrt(jtj[i*k+i])
		if !free[i] || col == 0 {
			continue
		}
		if math.Abs(jtr[i])/(col*rnorm) > stallCosine {
			return false
		}
	}
	return true
}

// solveDamped solves (JᵀJ + μ·D)δ = −Jᵀr with D = max(diag(JᵀJ), minScale)
// restricted to the free parameters; frozen ones get δ = 0.
//
// The system is solved in the scaled variables z = S·δ with S = √D, where the
// matrix has a unit diagonal plus μ. Power-law columns can differ by twelve
// orders of magnitude once x[0] sits near zero.
func solveDamped(jtj, jtr []float64, free []bool, damping float64) ([]float64, bool) {
	k := len(free)
	scale := make([]float64, k)
	for i := 0; i < k; i++ {
		scale[i] = math.Sqrt(math.Max(jtj[i*k+i], minScale))
	}
	a := mat.NewSymDense(k, nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			switch {
			case !free[i] || !free[j]:
				if i == j {
					a.SetSym(i, i, 1)
				}
			case i == j:
				a.SetSym(i, i, jtj[i*k+i]/(scale[i]*scale[i])+damping)
			default:
				a.SetSym(i, j, jtj[i*k+j]/(scale[i]*scale[j]))
			}
		}
	}
	var chol mat.Cholesky
	if !chol.Factorize(a) {
		return nil, false
	}
	rhs := mat.NewVecDense(k, nil)
	for i := 0; i < k; i++ {
		if free[i] {
			rhs.SetVec(i, -jtr[i]/scale[i])
		}
	}
	var sol mat.VecDense
	if err := chol.SolveVecTo(&sol, rhs); err != nil {
		// A Condition error still carries a usable solution; the cost test rejects bad ones.
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, false
		}
	}
	out := make([]float64, k)
	for i := 0; i < k; i++ {
		out[i] = sol.AtVec(i) / scale[i]
		if !finite(out[i]) {
			return nil, false
		}
	}
	return out, true
}

// covariance returns s²·(JᵀJ)⁻¹ with s² = Σr²/(m−k), or nil when undefined.
func covariance(jtj []float64, k int, sumSq float64, m int) [][]float64 {
	if m <= k {
		return nil
	}
	var chol mat.Cholesky
	if !chol.Factorize(mat.NewSymDense(k, jtj)) {
		return nil
	}
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return nil
	}
	s2 := sumSq / float64(m-k)
	out := make([][]float64, k)
	for i := 0; i < k; i++ {
		out[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			out[i][j] = inv.At(i, j) * s2
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
