// Package timewalk simulates particles walking through a time-dilation field
// and analyzes where they spend their time.
//
// 🚀 What is timewalk?
//
//	A 1-D biased random walk where the bias at each position comes from a
//	linear "time" field. An ensemble of walks fills an occupancy histogram,
//	which is then compared with reference curves, fitted with a power law and
//	transformed into a power spectrum whose log-log slope is reported.
//
// ✨ Packages
//
//	field/        linear time-dilation field, optionally normalized
//	walk/         step function, walker, ensemble driver, occupancy histogram
//	reference/    normalized axis, brachistochrone and inverse-quadratic curves
//	fit/          bounded power-law least squares + log-log cross-check
//	spectrum/     positive-frequency power spectrum + band-limited slope
//	compare/      RMSE, max deviation and DTW against a reference
//	synthetic/    two-regime occupancy profile and sinusoid test signals
//	experiment/   end-to-end run and YAML report
//	render/       PNG charts of occupancy and spectrum
//	cmd/          the timewalk CLI (simulate, spectrum, version)
//
// ⚙️ Quick start:
//
//	go run ./cmd/timewalk simulate --length 80 --iterations 10000 --gradient 0.5
//
// Every stochastic component takes an explicit seed or *rand.Rand, so runs are
// reproducible.
package timewalk
