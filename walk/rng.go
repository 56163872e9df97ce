// SPDX-License-Identifier: MIT
// Package walk - deterministic RNG streams for the ensemble.
//
// Goals:
//   - Determinism: same seed ⇒ identical histograms.
//   - No time-based sources anywhere; seed==0 maps to a fixed default.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each worker owns a derived stream.

package walk

import "math/rand"

// defaultSeed replaces seed==0 so the zero value stays reproducible.
const defaultSeed int64 = 1

// newRand returns a deterministic *rand.Rand for seed (0 ⇒ defaultSeed).
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed turns (parent, worker index) into the seed of that worker's stream.
// Neighbouring worker indices land on unrelated seeds, so workers never replay
// each other's draws; the mixing constants are the SplitMix64 ones.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRand hands worker `stream` its own generator. It draws exactly one value
// from base, so the ensemble must derive workers before any walk starts and always
// in worker order; that keeps a (seed, workers) pair reproducible.
func deriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
