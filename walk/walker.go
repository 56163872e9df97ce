// SPDX-License-Identifier: MIT

package walk

import "math/rand"

// Walker drives a single particle until it leaves the domain.
type Walker struct {
	stepper  *Stepper
	maxSteps int64
}

// NewWalker binds a Stepper with an optional step budget (0 ⇒ unlimited).
func NewWalker(s *Stepper, maxSteps int64) *Walker {
	if maxSteps < 0 {
		maxSteps = 0
	}
	return &Walker{stepper: s, maxSteps: maxSteps}
}

// DefaultStart returns the start position used for StartAuto.
func (w *Walker) DefaultStart() int {
	if w.stepper.mode == Bidirectional {
		return w.stepper.length
	}
	return 1
}

// inside reports whether pos has not yet satisfied the exit condition.
func (w *Walker) inside(pos int) bool {
	if w.stepper.mode == Bidirectional {
		return pos >= -w.stepper.length
	}
	return pos < w.stepper.length
}

// Walk steps from start until exit (or MaxSteps), adding each new in-bounds
// position to hist. onStep, when non-nil, receives the running step count.
func (w *Walker) Walk(start int, hist *Histogram, rng *rand.Rand, onStep func(steps int64)) Result {
	res := Result{Start: start}
	pos := start
	for w.inside(pos) {
		if w.maxSteps > 0 && res.Steps >= w.maxSteps {
			res.Truncated = true
			break
		}
		pos = w.stepper.Step(pos, rng)
		res.Steps++
		if hist.Add(pos) {
			res.Counted++
		} else {
			res.Skipped++
		}
		if onStep != nil {
			onStep(res.Steps)
		}
	}
	res.End = pos
	return res
}
