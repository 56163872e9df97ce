// SPDX-License-Identifier: MIT

package walk

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
)

var (
	// ErrBadIterations indicates a non-positive particle count.
	ErrBadIterations = errors.New("walk: iterations must be > 0")

	// ErrBadLength indicates a non-positive domain length.
	ErrBadLength = errors.New("walk: length must be > 0")

	// ErrBadIncrement indicates a non-positive or non-finite increment unit.
	ErrBadIncrement = errors.New("walk: increment must be finite and > 0")

	// ErrBadLambda indicates a NaN or ±Inf attraction coefficient.
	ErrBadLambda = errors.New("walk: lambda must be finite")

	// ErrUnknownMode indicates an unsupported Mode value or name.
	ErrUnknownMode = errors.New("walk: unknown mode")

	// ErrShapeMismatch indicates a histogram whose length differs from the field.
	ErrShapeMismatch = errors.New("walk: histogram length does not match field length")

	// ErrEmptyHistogram indicates normalization of a histogram with no positive entry.
	ErrEmptyHistogram = errors.New("walk: histogram has no positive entry")
)

// Mode selects the step rule and exit condition.
type Mode int

const (
	// Unidirectional adds the field to the draw and exits at pos >= LENGTH.
	Unidirectional Mode = iota

	// Bidirectional subtracts the field, adds the attraction term and exits at pos < -LENGTH.
	Bidirectional
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Unidirectional:
		return "unidirectional"
	case Bidirectional:
		return "bidirectional"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "unidirectional"/"uni" and "bidirectional"/"bi" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unidirectional", "uni", "":
		return Unidirectional, nil
	case "bidirectional", "bi":
		return Bidirectional, nil
	}
	return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}

// StartAuto selects the mode's default start position: 1 for Unidirectional,
// +LENGTH for Bidirectional.
const StartAuto = math.MinInt

// Progress is the read-only snapshot handed to a ProgressFunc.
type Progress struct {
	Particle int   // 0-based index of the particle being walked
	Total    int   // ITERATIONS
	Steps    int64 // steps taken so far by this particle
	Done     bool  // true on the final call for this particle
}

// ProgressFunc consumes diagnostic counters. It must not retain or mutate engine state.
type ProgressFunc func(Progress)

// Options configures an Ensemble. Start from DefaultOptions.
type Options struct {
	Mode      Mode
	Lambda    float64 // attraction coefficient, Bidirectional only
	Increment float64 // histogram increment unit
	Start     int     // start position or StartAuto

	Seed int64      // 0 ⇒ fixed default seed
	Rand *rand.Rand // overrides Seed when non-nil

	Workers  int   // <=1 ⇒ strictly sequential
	MaxSteps int64 // per-walk step budget, 0 ⇒ unlimited

	ReportEvery int64        // emit a Progress every N steps inside a walk, 0 ⇒ only at walk end
	Progress    ProgressFunc // optional
}

// DefaultMaxSteps bounds a single walk unless Options.MaxSteps says otherwise.
// Fair-coin stretches exit almost surely but with an infinite mean, so the
// defaults never leave a walk unbounded.
const DefaultMaxSteps int64 = 10_000_000

// DefaultOptions returns the reference configuration: unidirectional, no
// attraction, unit increment, automatic start, sequential, DefaultMaxSteps per walk.
func DefaultOptions() Options {
	return Options{
		Mode:      Unidirectional,
		Lambda:    0,
		Increment: 1,
		Start:     StartAuto,
		Workers:   1,
		MaxSteps:  DefaultMaxSteps,
	}
}

// Stats are diagnostic counters of a run. They never influence the histogram.
type Stats struct {
	Particles int   // walks completed (or truncated)
	Steps     int64 // total steps over all walks
	Counted   int64 // in-bounds visits added to the histogram
	Skipped   int64 // out-of-range positions silently not counted
	Truncated int   // walks abandoned at MaxSteps
	MaxWalk   int64 // longest single walk in steps
}

func (s *Stats) add(r Result) {
	s.Particles++
	s.Steps += r.Steps
	s.Counted += r.Counted
	s.Skipped += r.Skipped
	if r.Truncated {
		s.Truncated++
	}
	if r.Steps > s.MaxWalk {
		s.MaxWalk = r.Steps
	}
}

func (s *Stats) merge(o Stats) {
	s.Particles += o.Particles
	s.Steps += o.Steps
	s.Counted += o.Counted
	s.Skipped += o.Skipped
	s.Truncated += o.Truncated
	if o.MaxWalk > s.MaxWalk {
		s.MaxWalk = o.MaxWalk
	}
}

// Result summarizes a single walk.
type Result struct {
	Start     int
	End       int
	Steps     int64
	Counted   int64
	Skipped   int64
	Truncated bool
}
