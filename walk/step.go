// SPDX-License-Identifier: MIT

package walk

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/timewalk/field"
)

// threshold is the decision boundary: p > threshold moves +1.
const threshold = 0.5

// Stepper draws biased ±1 steps over a fixed field.
type Stepper struct {
	field  field.Field
	length int
	mode   Mode
	lambda float64
}

// NewStepper validates the mode and attraction coefficient and binds them to f.
func NewStepper(f field.Field, mode Mode, lambda float64) (*Stepper, error) {
	if f.Len() == 0 {
		return nil, fmt.Errorf("NewStepper: %w", ErrBadLength)
	}
	if mode != Unidirectional && mode != Bidirectional {
		return nil, fmt.Errorf("NewStepper: %v: %w", mode, ErrUnknownMode)
	}
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return nil, fmt.Errorf("NewStepper: %w", ErrBadLambda)
	}
	return &Stepper{field: f, length: f.Len(), mode: mode, lambda: lambda}, nil
}

// Length returns LENGTH, the size of the bound field.
func (s *Stepper) Length() int { return s.length }

// Mode returns the step rule in use.
func (s *Stepper) Mode() Mode { return s.mode }

// Probability combines the uniform draw u with the field at pos.
// The combination is additive, so values outside [0,1] are expected and saturate
// the decision. Where the field has no value Probability returns u itself, which
// crosses the threshold with probability ½: a fair coin.
func (s *Stepper) Probability(pos int, u float64) float64 {
	if s.mode == Bidirectional {
		return s.bidirectional(pos, u)
	}
	return s.unidirectional(pos, u)
}

func (s *Stepper) unidirectional(pos int, u float64) float64 {
	v, ok := s.field.At(pos)
	if !ok && pos < 0 && pos >= -s.length {
		v, ok = s.field.At(s.length + pos) // wrap-around for negative transients
	}
	if !ok {
		return u
	}
	return u + v
}

func (s *Stepper) bidirectional(pos int, u float64) float64 {
	dist := pos
	if dist < 0 {
		dist = -pos // mirrored index and attraction on the negative side
	}
	v, ok := s.field.At(dist)
	if !ok {
		return u
	}
	return u - v + s.lambda*float64(dist)/float64(s.length)
}

// Step draws u ∈ [0,1) from rng and returns pos+1 if the adjusted probability
// exceeds 0.5, else pos-1.
func (s *Stepper) Step(pos int, rng *rand.Rand) int {
	if s.Probability(pos, rng.Float64()) > threshold {
		return pos + 1
	}
	return pos - 1
}
