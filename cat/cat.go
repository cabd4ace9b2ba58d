package cat

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/rank"
)

// Sentinel errors for Cat execution.
var (
	// ErrNilFramework is returned when a nil framework is passed.
	ErrNilFramework = errors.New("cat: framework is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cat: invalid option supplied")
)

// Defaults for the fixed-point iteration.
const (
	// DefaultTolerance is the convergence threshold on the ∞-norm of
	// the step delta, and the grouping tolerance of the ranking.
	DefaultTolerance = 1e-8

	// DefaultMaxIterations caps the iteration count.
	DefaultMaxIterations = 1000
)

// Option configures Cat via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Rank is invoked.
type Option func(*Options)

// Options holds the Cat solver parameters.
type Options struct {
	// Ctx allows cancellation between iterations.
	Ctx context.Context

	// Tolerance is the convergence and grouping threshold.
	Tolerance float64

	// MaxIterations bounds the fixed-point loop.
	MaxIterations int

	err error
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
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

// WithTolerance sets the convergence threshold; must be positive.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			o.err = fmt.Errorf("%w: tolerance must be positive (%g)", ErrOptionViolation, tol)

			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the iteration cap; must be positive.
func WithMaxIterations(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: max iterations must be positive (%d)", ErrOptionViolation, k)

			return
		}
		o.MaxIterations = k
	}
}

// Result holds the computed strengths and the induced ranking.
type Result struct {
	// Strengths maps each argument to its fixed-point strength in (0, 1].
	Strengths map[af.Argument]float64

	// Ranking groups arguments whose strengths are within the
	// tolerance, best first.
	Ranking rank.Ranking

	// Iterations is the number of steps performed.
	Iterations int

	// Converged is false when the iteration cap was reached before the
	// delta dropped below the tolerance; the last iterate is returned
	// regardless.
	Converged bool
}

// Rank computes the categoriser strengths of f and the induced ranking.
// Complexity: O(iterations · (N + |R|)).
func Rank(f *af.AF, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrNilFramework
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := f.Len()
	adjT := f.AttackMatrixT()

	// s⁽⁰⁾ = 0; s⁽ᵏ⁺¹⁾ = 1 / (1 + Mᵀ·s⁽ᵏ⁾) element-wise.
	s := make([]float64, n)
	res := &Result{Converged: false}
	for res.Iterations < o.MaxIterations {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		attackerSums := adjT.MulVec(s)
		next := make([]float64, n)
		delta := 0.0
		for i := 0; i < n; i++ {
			next[i] = 1 / (1 + attackerSums[i])
			if d := abs(next[i] - s[i]); d > delta {
				delta = d
			}
		}
		s = next
		res.Iterations++
		if delta < o.Tolerance {
			res.Converged = true

			break
		}
	}

	res.Strengths = make(map[af.Argument]float64, n)
	for i := 0; i < n; i++ {
		res.Strengths[af.Argument(i+1)] = s[i]
	}
	res.Ranking = rank.FromScores(res.Strengths, o.Tolerance)

	return res, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
