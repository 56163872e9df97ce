// Package walk runs the Monte Carlo random walk of particles through a bias
// field and accumulates their visits into an occupancy histogram.
//
// 🚀 Components
//
//	Stepper:   draws one biased ±1 step from a uniform draw and the local field value.
//	Walker:    drives one particle from its start position until it leaves the domain,
//	            adding every in-bounds visit to a Histogram.
//	Ensemble:  repeats Walker for ITERATIONS independent particles sharing one Histogram.
//	Histogram: explicit accumulator (never a package-level singleton).
//
// ✨ Modes
//
//	Unidirectional: p = u + field[pos]; move +1 if p > 0.5. The particle exits once
//	pos >= LENGTH. Negative transients are allowed and read the field with
//	wrap-around indexing (field[LENGTH+pos]); below -LENGTH the step is a fair coin
//	(p = u, which exceeds 0.5 half the time).
//
//	Bidirectional: p = u - field[pos] + LAMBDA*pos/LENGTH on [0, LENGTH); on (-LENGTH, 0)
//	the field index and the attraction term are mirrored: p = u - field[-pos] +
//	LAMBDA*(-pos)/LENGTH. Anywhere else the step is a fair coin. The particle starts
//	at +LENGTH and exits once pos < -LENGTH.
//
// In both modes only positions in [0, LENGTH) are counted; everything else is a
// silent skip reported through Histogram.Add's boolean result.
//
// Termination:
//
//	Outside the field every step is a fair coin, and a fair walk on the integers is
//	recurrent: from any position it returns to the field with probability 1. Inside the
//	field a positive gradient drifts the unidirectional walk toward LENGTH, and drifts the
//	bidirectional walk down toward -LENGTH as long as the field term outweighs LAMBDA.
//	Every walk with such a drift therefore exits with probability 1. The fair stretches
//	give the exit time a heavy tail, and on a zero field its mean is infinite, so
//	Options.MaxSteps (DefaultMaxSteps unless overridden) bounds every walk and counts
//	the abandoned ones in Stats.Truncated.
//
// Determinism:
//
//	All randomness flows through an explicit *rand.Rand (Options.Rand or Options.Seed).
//	Workers > 1 splits particles statically across workers, each with a derived stream
//	and a private histogram merged at the end, so a (seed, workers) pair is reproducible.
package walk
