// SPDX-License-Identifier: MIT

package field

import "errors"

var (
	// ErrBadLength indicates a non-positive LENGTH.
	ErrBadLength = errors.New("field: length must be > 0")

	// ErrBadGradient indicates a NaN or ±Inf gradient.
	ErrBadGradient = errors.New("field: gradient must be finite")

	// ErrDegenerate indicates that normalization was requested for a field whose
	// maximum is not strictly positive (e.g. GRADIENT <= 0 or LENGTH == 1).
	ErrDegenerate = errors.New("field: cannot normalize a field with non-positive maximum")
)

// Option customizes Linear.
type Option func(*config)

type config struct {
	normalize bool
}

// WithNormalize divides the generated field by its maximum so values lie in [0,1].
func WithNormalize() Option {
	return func(c *config) {
		c.normalize = true
	}
}

// Field is an immutable bias field indexed by integer position.
type Field struct {
	values     []float64
	gradient   float64
	normalized bool
}

// Len returns the number of positions covered by the field.
func (f Field) Len() int { return len(f.values) }

// Gradient returns the GRADIENT the field was built with.
func (f Field) Gradient() float64 { return f.gradient }

// Normalized reports whether the field was scaled to [0,1].
func (f Field) Normalized() bool { return f.normalized }

// At returns the field value at pos and whether pos is inside [0, Len()).
func (f Field) At(pos int) (float64, bool) {
	if pos < 0 || pos >= len(f.values) {
		return 0, false
	}
	return f.values[pos], true
}

// Values returns a copy of the underlying sequence.
func (f Field) Values() []float64 {
	out := make([]float64, len(f.values))
	copy(out, f.values)
	return out
}
