// SPDX-License-Identifier: MIT

package compare

import "errors"

var (
	// ErrEmptyInput indicates an empty sequence.
	ErrEmptyInput = errors.New("compare: input sequences must be non-empty")

	// ErrLengthMismatch indicates pointwise metrics on sequences of different length.
	ErrLengthMismatch = errors.New("compare: sequences differ in length")

	// ErrBadInput indicates invalid options (Window < -1, negative penalty).
	ErrBadInput = errors.New("compare: invalid options")

	// ErrPathNeedsMatrix indicates ReturnPath without FullMatrix.
	ErrPathNeedsMatrix = errors.New("compare: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its table.
type MemoryMode int

const (
	// FullMatrix stores every row and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps only the previous and current rows.
	TwoRows
)

// NoWindow disables the Sakoe–Chiba band.
const NoWindow = -1

// Options configures DTW.
//
//   - Window:       maximum |i−j|; NoWindow (−1) means unconstrained.
//   - SlopePenalty: added to every insertion or deletion step.
//   - ReturnPath:   backtrack and return the optimal alignment.
//   - MemoryMode:   FullMatrix or TwoRows.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns an unconstrained, penalty-free, distance-only DTW.
func DefaultOptions() Options {
	return Options{
		Window:     NoWindow,
		MemoryMode: TwoRows,
	}
}

// Coord is one cell (I in a, J in b) of an alignment path.
type Coord struct {
	I, J int
}

// Metrics groups the distances between a curve and one reference.
type Metrics struct {
	RMSE   float64 `yaml:"rmse"`
	MaxAbs float64 `yaml:"max_abs"`
	DTW    float64 `yaml:"dtw"`
}
