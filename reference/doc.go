// Package reference computes the closed-form curves the normalized occupancy
// distribution is compared against, on the same normalized spatial axis.
//
//	Axis(n)               n points linearly spaced over [0,1]
//	Brachistochrone(n)    cycloid x = a(θ − sin θ), y = −a(1 − cos θ), a = 0.5, θ ∈ [0,π],
//	                      x normalized to [0,1], y interpolated onto Axis(n), shifted by +1
//	InverseQuadratic(n)   y = 1/x² over x ∈ [0.01, 1], divided by its maximum
//
// All functions are pure and depend only on n.
package reference
