// SPDX-License-Identifier: MIT

package walk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Histogram is the occupancy accumulator: one non-negative counter per position
// in [0, Len()). It only grows during a run and is not safe for concurrent use;
// parallel ensembles give every worker its own Histogram and Merge them.
type Histogram struct {
	counts  []float64
	unit    float64
	counted int64
}

// NewHistogram allocates a zeroed histogram of length positions that adds unit per visit.
func NewHistogram(length int, unit float64) (*Histogram, error) {
	if length <= 0 {
		return nil, fmt.Errorf("NewHistogram(%d): %w", length, ErrBadLength)
	}
	if !(unit > 0) || math.IsInf(unit, 0) {
		return nil, fmt.Errorf("NewHistogram: unit=%g: %w", unit, ErrBadIncrement)
	}
	return &Histogram{counts: make([]float64, length), unit: unit}, nil
}

// Add increments the counter at pos by the unit and reports whether pos was counted.
// Positions outside [0, Len()) are skipped and return false.
func (h *Histogram) Add(pos int) bool {
	if pos < 0 || pos >= len(h.counts) {
		return false
	}
	h.counts[pos] += h.unit
	h.counted++
	return true
}

// Len returns the number of positions.
func (h *Histogram) Len() int { return len(h.counts) }

// Unit returns the increment applied per counted visit.
func (h *Histogram) Unit() float64 { return h.unit }

// Counted returns the number of visits added so far.
func (h *Histogram) Counted() int64 { return h.counted }

// At returns the accumulated value at pos.
func (h *Histogram) At(pos int) (float64, bool) {
	if pos < 0 || pos >= len(h.counts) {
		return 0, false
	}
	return h.counts[pos], true
}

// Values returns a copy of the counters.
func (h *Histogram) Values() []float64 {
	out := make([]float64, len(h.counts))
	copy(out, h.counts)
	return out
}

// Sum returns the total accumulated occupancy.
func (h *Histogram) Sum() float64 { return floats.Sum(h.counts) }

// Max returns the largest counter.
func (h *Histogram) Max() float64 { return floats.Max(h.counts) }

// Merge adds other into h position by position. Addition is commutative, so
// merge order does not change the final sums beyond float rounding.
func (h *Histogram) Merge(other *Histogram) error {
	if other == nil {
		return nil
	}
	if len(other.counts) != len(h.counts) {
		return fmt.Errorf("Merge: %d vs %d: %w", len(h.counts), len(other.counts), ErrShapeMismatch)
	}
	floats.Add(h.counts, other.counts)
	h.counted += other.counted
	return nil
}

// Normalized divides every counter by the maximum. The result lies in [0,1]
// with at least one entry exactly 1.
func (h *Histogram) Normalized() ([]float64, error) {
	maxV := h.Max()
	if !(maxV > 0) {
		return nil, fmt.Errorf("Normalized: %w", ErrEmptyHistogram)
	}
	out := h.Values()
	for i := range out {
		out[i] /= maxV
	}
	return out, nil
}
