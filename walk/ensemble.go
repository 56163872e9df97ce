// SPDX-License-Identifier: MIT

package walk

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/katalvlaran/timewalk/field"
	"golang.org/x/sync/errgroup"
)

// Ensemble repeats independent walks over one field and one histogram.
type Ensemble struct {
	walker     *Walker
	iterations int
	start      int
	opts       Options
}

// NewEnsemble validates the configuration. Every error returned here is a
// configuration error and must abort the run before any histogram work.
func NewEnsemble(f field.Field, iterations int, opts Options) (*Ensemble, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("NewEnsemble(%d): %w", iterations, ErrBadIterations)
	}
	if !(opts.Increment > 0) || math.IsInf(opts.Increment, 0) {
		return nil, fmt.Errorf("NewEnsemble: increment=%g: %w", opts.Increment, ErrBadIncrement)
	}
	s, err := NewStepper(f, opts.Mode, opts.Lambda)
	if err != nil {
		return nil, fmt.Errorf("NewEnsemble: %w", err)
	}
	w := NewWalker(s, opts.MaxSteps)
	start := opts.Start
	if start == StartAuto {
		start = w.DefaultStart()
	}
	return &Ensemble{walker: w, iterations: iterations, start: start, opts: opts}, nil
}

// Iterations returns the particle count.
func (e *Ensemble) Iterations() int { return e.iterations }

// Start returns the resolved start position.
func (e *Ensemble) Start() int { return e.start }

// NewHistogram allocates an empty histogram matching the field and increment.
func (e *Ensemble) NewHistogram() *Histogram {
	h, _ := NewHistogram(e.walker.stepper.length, e.opts.Increment) // validated in NewEnsemble
	return h
}

// Run walks all particles and accumulates them into hist. The histogram is
// never reset; running twice into the same histogram adds both ensembles.
//
// Context cancellation is checked between particles; on cancellation the
// partial Stats are returned together with ctx.Err().
func (e *Ensemble) Run(ctx context.Context, hist *Histogram) (Stats, error) {
	if hist == nil || hist.Len() != e.walker.stepper.length {
		return Stats{}, fmt.Errorf("Run: %w", ErrShapeMismatch)
	}
	if hist.Unit() != e.opts.Increment {
		return Stats{}, fmt.Errorf("Run: unit %g, want %g: %w", hist.Unit(), e.opts.Increment, ErrBadIncrement)
	}

	base := e.opts.Rand
	if base == nil {
		base = newRand(e.opts.Seed)
	}
	report := e.reporter()

	if e.opts.Workers <= 1 || e.iterations == 1 {
		return e.runSequential(ctx, hist, base, report)
	}
	return e.runParallel(ctx, hist, base, report)
}

// runSequential is the reference semantics: one particle after another.
func (e *Ensemble) runSequential(ctx context.Context, hist *Histogram, rng *rand.Rand, report ProgressFunc) (Stats, error) {
	var st Stats
	for i := 0; i < e.iterations; i++ {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		st.add(e.walkOne(i, hist, rng, report))
	}
	return st, nil
}

// runParallel assigns particle i to worker i % workers. Each worker owns an RNG
// derived from base and a private histogram; the private histograms are merged
// into hist only after every worker finished successfully.
func (e *Ensemble) runParallel(ctx context.Context, hist *Histogram, base *rand.Rand, report ProgressFunc) (Stats, error) {
	workers := e.opts.Workers
	if workers > e.iterations {
		workers = e.iterations
	}

	locals := make([]*Histogram, workers)
	stats := make([]Stats, workers)
	rngs := make([]*rand.Rand, workers)
	for w := 0; w < workers; w++ {
		locals[w] = e.NewHistogram()
		rngs[w] = deriveRand(base, uint64(w))
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := w; i < e.iterations; i += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				stats[w].add(e.walkOne(i, locals[w], rngs[w], report))
			}
			return nil
		})
	}
	err := g.Wait()

	var st Stats
	for w := 0; w < workers; w++ {
		st.merge(stats[w])
	}
	if err != nil {
		return st, err
	}
	for w := 0; w < workers; w++ {
		if mErr := hist.Merge(locals[w]); mErr != nil {
			return st, mErr
		}
	}
	return st, nil
}

func (e *Ensemble) walkOne(i int, hist *Histogram, rng *rand.Rand, report ProgressFunc) Result {
	var onStep func(int64)
	if report != nil && e.opts.ReportEvery > 0 {
		every := e.opts.ReportEvery
		onStep = func(steps int64) {
			if steps%every == 0 {
				report(Progress{Particle: i, Total: e.iterations, Steps: steps})
			}
		}
	}
	res := e.walker.Walk(e.start, hist, rng, onStep)
	if report != nil {
		report(Progress{Particle: i, Total: e.iterations, Steps: res.Steps, Done: true})
	}
	return res
}

// reporter serializes the user callback so workers may share it.
func (e *Ensemble) reporter() ProgressFunc {
	fn := e.opts.Progress
	if fn == nil {
		return nil
	}
	if e.opts.Workers <= 1 {
		return fn
	}
	var mu sync.Mutex
	return func(p Progress) {
		mu.Lock()
		defer mu.Unlock()
		fn(p)
	}
}
