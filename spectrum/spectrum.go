// SPDX-License-Identifier: MIT

package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// Compute returns the positive-frequency power spectrum of signal.
//
// Bins k = 1 … ⌊(n−1)/2⌋ carry frequency k/n and power |X_k|². For even n the
// Nyquist bin is a negative frequency in the two-sided convention and is dropped.
func Compute(signal []float64) (*PowerSpectrum, error) {
	n := len(signal)
	if n < 3 {
		return nil, fmt.Errorf("Compute: n=%d: %w", n, ErrEmptySignal)
	}
	for _, v := range signal {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Compute: %w", ErrNonFinite)
		}
	}

	coeffs := fft.FFTReal(signal)
	half := (n - 1) / 2
	ps := &PowerSpectrum{
		Frequencies: make([]float64, half),
		Power:       make([]float64, half),
	}
	for k := 1; k <= half; k++ {
		a := cmplx.Abs(coeffs[k])
		ps.Frequencies[k-1] = float64(k) / float64(n)
		ps.Power[k-1] = a * a
	}
	return ps, nil
}

// Peak returns the frequency and power of the strongest bin.
// An empty spectrum returns (0, 0).
func (ps *PowerSpectrum) Peak() (freq, power float64) {
	best := -1
	for i, p := range ps.Power {
		if best < 0 || p > ps.Power[best] {
			best = i
		}
	}
	if best < 0 {
		return 0, 0
	}
	return ps.Frequencies[best], ps.Power[best]
}

// Band returns copies of the bins with Low < f < High.
func (ps *PowerSpectrum) Band(opts SlopeOptions) (freqs, power []float64) {
	for i, f := range ps.Frequencies {
		if f > opts.Low && f < opts.High {
			freqs = append(freqs, f)
			power = append(power, ps.Power[i])
		}
	}
	return freqs, power
}

// FitSlope fits log(power) = Exponent·log(f) + Intercept over the band.
//
// Errors:
//   - ErrBadBand if Low < 0 or Low >= High.
//   - ErrInsufficientBand if fewer than two bins with positive power lie in the band.
func FitSlope(ps *PowerSpectrum, opts SlopeOptions) (Slope, error) {
	if ps == nil {
		return Slope{}, fmt.Errorf("FitSlope: nil spectrum: %w", ErrInsufficientBand)
	}
	if opts.Low < 0 || opts.Low >= opts.High {
		return Slope{}, fmt.Errorf("FitSlope: (%g, %g): %w", opts.Low, opts.High, ErrBadBand)
	}

	freqs, power := ps.Band(opts)
	lf := make([]float64, 0, len(freqs))
	lp := make([]float64, 0, len(freqs))
	for i, p := range power {
		if p > 0 {
			lf = append(lf, math.Log(freqs[i]))
			lp = append(lp, math.Log(p))
		}
	}
	if len(lf) < 2 {
		return Slope{}, fmt.Errorf("FitSlope: %d usable bins in (%g, %g): %w",
			len(lf), opts.Low, opts.High, ErrInsufficientBand)
	}

	intercept, slope := stat.LinearRegression(lf, lp, nil, false)
	return Slope{Exponent: slope, Intercept: intercept, Points: len(lf)}, nil
}
