// Package synthetic builds deterministic test signals for the spectral analyzer.
//
// 🚀 Signals
//
//   - Transition: a particle-count profile that decays as 1/r³ at short range
//     and as 1/r² at long range, blended linearly across [0.9·T, 1.1·T), plus a
//     flat residual, normalized to a total particle count and rounded.
//   - Sine: offset + A·sin(2π·f0·i), with optional seeded Gaussian noise.
//
// ⚙️ Options follow the functional style: constructors validate and panic on
// meaningless values, the builders themselves return errors.
//
//	h, err := synthetic.Transition(10000, synthetic.WithTransition(5000))
//	s, err := synthetic.Sine(256, 0.1, synthetic.WithOffset(5), synthetic.WithNoise(0.1), synthetic.WithSeed(7))
package synthetic
