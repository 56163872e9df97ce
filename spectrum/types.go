// SPDX-License-Identifier: MIT

package spectrum

import "errors"

var (
	// ErrEmptySignal indicates a signal too short to have a positive frequency.
	ErrEmptySignal = errors.New("spectrum: signal needs at least 3 samples")

	// ErrNonFinite indicates a NaN or ±Inf sample.
	ErrNonFinite = errors.New("spectrum: NaN or Inf in signal")

	// ErrBadBand indicates cutoffs with Low >= High or a negative Low.
	ErrBadBand = errors.New("spectrum: invalid frequency band")

	// ErrInsufficientBand indicates fewer than two usable bins inside the band.
	ErrInsufficientBand = errors.New("spectrum: fewer than 2 points in band")
)

// Default band cutoffs for FitSlope.
const (
	DefaultLowCut  = 4e-3
	DefaultHighCut = 0.4
)

// PowerSpectrum is the positive half of a real signal's spectrum,
// sorted by ascending frequency. Both slices have the same length.
type PowerSpectrum struct {
	Frequencies []float64 // cycles per sample, in (0, 0.5)
	Power       []float64 // |X_k|²
}

// Len returns the number of retained bins.
func (ps *PowerSpectrum) Len() int { return len(ps.Frequencies) }

// SlopeOptions selects the open band Low < f < High used by FitSlope.
type SlopeOptions struct {
	Low  float64
	High float64
}

// DefaultSlopeOptions returns the band (4e-3, 0.4).
func DefaultSlopeOptions() SlopeOptions {
	return SlopeOptions{Low: DefaultLowCut, High: DefaultHighCut}
}

// Slope is a log-log fit of power against frequency.
type Slope struct {
	Exponent  float64 // slope of log(power) vs log(frequency)
	Intercept float64 // log(power) at f = 1
	Points    int     // bins used by the regression
}
