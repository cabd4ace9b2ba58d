package ser

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/rank"
)

// Sentinel errors for Ser execution.
var (
	// ErrNilFramework is returned when a nil framework is passed.
	ErrNilFramework = errors.New("ser: framework is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ser: invalid option supplied")
)

// DefaultMaxDepth bounds the serialisation recursion.
const DefaultMaxDepth = 15

// Infinite is the index of arguments outside every serialisation
// sequence.
var Infinite = math.Inf(1)

// Option configures Ser via functional arguments.
type Option func(*Options)

// Options holds the Ser solver parameters.
type Options struct {
	// Ctx allows cancellation between SAT queries.
	Ctx context.Context

	// MaxDepth bounds the recursion over serialisation steps.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with the documented defaults.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: DefaultMaxDepth}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth sets the recursion bound; must be positive.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: MaxDepth must be positive (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// Result holds the serialisation indices and the induced ranking.
type Result struct {
	// Indices maps each argument to its serialisation index, a
	// natural number or +Inf.
	Indices map[af.Argument]float64

	// Ranking orders arguments ascending by index, +Inf last, equal
	// indices grouped.
	Ranking rank.Ranking
}

// walker carries the recursion state of one Rank invocation.
type walker struct {
	framework *af.AF
	opts      Options
	indices   map[af.Argument]float64
}

// Rank computes the serialisation index of every argument of f and the
// induced ranking.
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

	w := &walker{
		framework: f,
		opts:      o,
		indices:   make(map[af.Argument]float64, f.Len()),
	}
	for _, a := range f.Arguments() {
		w.indices[a] = Infinite
	}

	first, err := initialSets(f)
	if err != nil {
		return nil, err
	}
	for _, s := range first {
		for _, a := range s.Members() {
			w.indices[a] = 1
		}
	}
	for _, s := range first {
		if err = w.explore(s, 2); err != nil {
			return nil, err
		}
	}

	return &Result{Indices: w.indices, Ranking: w.buildRanking()}, nil
}

// explore recurses over serialisation sequences with accepted as the
// union of the initial sets chosen so far, at the given step.
func (w *walker) explore(accepted *af.ArgSet, step int) error {
	if step > w.opts.MaxDepth {
		return nil
	}
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// reduct: drop everything accepted or attacked by the accepted set
	remaining := af.NewArgSet(w.framework.Len())
	for _, a := range w.framework.Arguments() {
		remaining.Add(a)
	}
	for _, a := range accepted.Members() {
		remaining.Remove(a)
		for _, t := range w.framework.Attackees(a) {
			remaining.Remove(t)
		}
	}

	// prune: recursing cannot help once every remaining argument
	// already carries an index ≤ step
	improvable := false
	for _, a := range remaining.Members() {
		if w.indices[a] > float64(step) {
			improvable = true

			break
		}
	}
	if !improvable {
		return nil
	}

	reduct := w.framework.Induced(remaining)
	sets, err := initialSets(reduct)
	if err != nil {
		return err
	}
	for _, s := range sets {
		for _, a := range s.Members() {
			if float64(step) < w.indices[a] {
				w.indices[a] = float64(step)
			}
		}
	}
	for _, s := range sets {
		if err = w.explore(accepted.Union(s), step+1); err != nil {
			return err
		}
	}

	return nil
}

// buildRanking groups arguments by index, ascending, +Inf last.
func (w *walker) buildRanking() rank.Ranking {
	args := w.framework.Arguments()
	sort.Slice(args, func(i, j int) bool {
		ii, ij := w.indices[args[i]], w.indices[args[j]]
		if ii != ij {
			return ii < ij
		}

		return args[i] < args[j]
	})

	var classes [][]af.Argument
	for i, a := range args {
		if i > 0 && w.indices[args[i-1]] == w.indices[a] {
			last := len(classes) - 1
			classes[last] = append(classes[last], a)

			continue
		}
		classes = append(classes, []af.Argument{a})
	}

	return rank.FromClasses(classes)
}
