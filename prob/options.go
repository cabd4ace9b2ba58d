package prob

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for probabilistic scoring.
var (
	// ErrNilFramework is returned when a nil framework is passed.
	ErrNilFramework = errors.New("prob: framework is nil")

	// ErrNilFinder is returned when no extension finder is supplied.
	ErrNilFinder = errors.New("prob: extension finder is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("prob: invalid option supplied")
)

// Defaults for the probabilistic dispatcher.
const (
	// DefaultProbability is the uniform existence probability p.
	DefaultProbability = 0.5

	// DefaultSamples is the Monte-Carlo sample budget.
	DefaultSamples = 10000

	// DefaultSeed is the base seed; worker w derives seed+w.
	DefaultSeed = 1

	// ScoreTolerance groups scores into one equivalence class.
	ScoreTolerance = 1e-9

	// fixedSizeThreshold is the argument count beyond which the
	// fixed-size sampling heuristic applies.
	fixedSizeThreshold = 30

	// fixedSampleSize is the subgraph size drawn by the heuristic.
	fixedSampleSize = 16
)

// Option configures probabilistic scoring via functional arguments.
type Option func(*Options)

// Options holds the dispatcher parameters.
type Options struct {
	// Ctx allows cancellation between samples or enumerated subgraphs.
	Ctx context.Context

	// P is the per-argument existence probability, in (0, 1).
	P float64

	// Samples is the Monte-Carlo budget; exact enumeration replaces
	// sampling whenever 2ⁿ < Samples.
	Samples int

	// Workers bounds the sampling pool. Zero means max(1, cores/2).
	Workers int

	// Seed is the base RNG seed.
	Seed int64

	// FixedSizeSampling enables the min(16, n) uniform draw for
	// frameworks beyond 30 arguments.
	FixedSizeSampling bool

	err error
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		P:                 DefaultProbability,
		Samples:           DefaultSamples,
		Workers:           0,
		Seed:              DefaultSeed,
		FixedSizeSampling: true,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithProbability sets the existence probability; must lie in (0, 1).
func WithProbability(p float64) Option {
	return func(o *Options) {
		if p <= 0 || p >= 1 {
			o.err = fmt.Errorf("%w: probability must lie in (0,1), got %g", ErrOptionViolation, p)

			return
		}
		o.P = p
	}
}

// WithSamples sets the Monte-Carlo budget; must be positive.
func WithSamples(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: sample budget must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.Samples = n
	}
}

// WithWorkers bounds the sampling pool.
//
//	w > 0: exactly w workers
//	w == 0: explicit default, max(1, cores/2)
//	w < 0: invalid option → ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, w)

			return
		}
		o.Workers = w
	}
}

// WithSeed sets the base RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithFixedSizeSampling toggles the large-graph heuristic.
func WithFixedSizeSampling(on bool) Option {
	return func(o *Options) { o.FixedSizeSampling = on }
}

// poolWidth resolves the effective worker count.
func (o Options) poolWidth() int {
	if o.Workers > 0 {
		return o.Workers
	}
	half := runtime.NumCPU() / 2
	if half < 1 {
		return 1
	}

	return half
}
