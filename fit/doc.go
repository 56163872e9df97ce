// Package fit estimates the power-law exponent of a normalized occupancy curve.
//
// 🚀 Model
//
//	f(x) = b / x^a          (PowerLawOptions: a ≥ 0, b ≥ 0, initial guess (2, 1))
//	f(x) = b / x^a + c      (DefaultOptions: a ∈ [1,3], b,c ≥ 0, initial guess (2, 1, 0.1))
//
// Curve runs a bounded Levenberg–Marquardt least-squares fit with analytic
// Jacobian and Marquardt diagonal scaling; trial points are projected back onto
// the bounds. The first abscissa is nudged by Options.Epsilon (1e-6) so x = 0 on
// a normalized axis does not divide by zero. A fit that does not converge within
// Options.MaxEvaluations (10000) model evaluations returns ErrNoConvergence: the
// caller keeps its histogram and reports the fit as abandoned.
//
// CrossCheck removes the fitted offset and regresses log(y) on log(x), an
// independent estimate of the exponent (the slope is −a for a pure power law).
//
// Example:
//
//	res, err := fit.Curve(axis, normalized, fit.DefaultOptions())
//	if errors.Is(err, fit.ErrNoConvergence) {
//	  // non-fatal: skip the overlay
//	}
package fit
