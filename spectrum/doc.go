// Package spectrum computes the power spectrum of an occupancy histogram and
// the log-log slope of that spectrum.
//
// 🚀 Pipeline
//
//  1. Compute: real DFT of the histogram (unit sample spacing), power = |X_k|²,
//     frequency k/n; only strictly positive frequencies are kept (zero and the
//     mirrored/Nyquist half are discarded), sorted ascending.
//  2. FitSlope: degree-1 least squares of log(power) against log(frequency) over
//     the band Low < f < High (defaults 4e-3 and 0.4). The slope is the spectral
//     exponent.
//
// ✨ Notes
//   - A band holding fewer than two usable bins yields ErrInsufficientBand rather
//     than a meaningless slope. Bins with zero power have no logarithm and are
//     left out of the regression.
//   - Peak reports the frequency of maximal power; for a pure sinusoid it is the
//     bin closest to the sinusoid's frequency.
//
// Example:
//
//	ps, err := spectrum.Compute(hist.Values())
//	sl, err := spectrum.FitSlope(ps, spectrum.DefaultSlopeOptions())
//	fmt.Println(sl.Exponent)
package spectrum
