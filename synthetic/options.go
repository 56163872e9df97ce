// SPDX-License-Identifier: MIT

package synthetic

import (
	"errors"
	"math/rand"
)

var (
	// ErrBadLength indicates a non-positive signal length.
	ErrBadLength = errors.New("synthetic: length must be > 0")

	// ErrBadFrequency indicates a negative or non-finite frequency.
	ErrBadFrequency = errors.New("synthetic: frequency must be finite and >= 0")
)

// Defaults of the transition profile.
const (
	DefaultTransition = 5000
	DefaultResidual   = 1e-4
	DefaultTotal      = 1e6

	transitionLow  = 0.9
	transitionHigh = 1.1
)

// Option customizes a builder.
type Option func(*config)

type config struct {
	transition int
	residual   float64
	total      float64
	round      bool

	amplitude float64
	offset    float64
	sigma     float64
	rng       *rand.Rand
}

func newConfig(opts []Option) config {
	c := config{
		transition: DefaultTransition,
		residual:   DefaultResidual,
		total:      DefaultTotal,
		round:      true,
		amplitude:  1,
	}
	for _, o := range opts {
		o(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(1))
	}
	return c
}

// WithTransition sets the crossover distance T. Panics if T < 1.
func WithTransition(t int) Option {
	if t < 1 {
		panic("synthetic: WithTransition(<1)")
	}
	return func(c *config) { c.transition = t }
}

// WithResidual sets the flat residual added before normalization. Panics if negative.
func WithResidual(r float64) Option {
	if r < 0 {
		panic("synthetic: WithResidual(<0)")
	}
	return func(c *config) { c.residual = r }
}

// WithTotal sets the particle count the profile is scaled to. Panics if ≤ 0.
func WithTotal(n float64) Option {
	if n <= 0 {
		panic("synthetic: WithTotal(<=0)")
	}
	return func(c *config) { c.total = n }
}

// WithoutRounding keeps fractional counts.
func WithoutRounding() Option {
	return func(c *config) { c.round = false }
}

// WithAmplitude sets the sinusoid amplitude.
func WithAmplitude(a float64) Option {
	return func(c *config) { c.amplitude = a }
}

// WithOffset sets the constant added to the sinusoid.
func WithOffset(o float64) Option {
	return func(c *config) { c.offset = o }
}

// WithNoise adds Gaussian noise with standard deviation sigma. Panics if negative.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic("synthetic: WithNoise(<0)")
	}
	return func(c *config) { c.sigma = sigma }
}

// WithSeed seeds the noise generator.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shares an existing generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synthetic: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}
