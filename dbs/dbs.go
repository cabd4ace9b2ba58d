package dbs

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/rank"
)

// Sentinel errors for Dbs execution.
var (
	// ErrNilFramework is returned when a nil framework is passed.
	ErrNilFramework = errors.New("dbs: framework is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dbs: invalid option supplied")
)

// Option configures Dbs via functional arguments.
type Option func(*Options)

// Options holds the Dbs solver parameters.
type Options struct {
	// Ctx allows cancellation between matrix multiplications.
	Ctx context.Context

	// MaxLength is the maximum attack-path length L considered.
	// Zero means |A|, the framework's argument count.
	MaxLength int

	err error
}

// DefaultOptions returns Options with MaxLength = |A| semantics.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxLength: 0}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxLength bounds the considered path length.
//
//	l > 0: use exactly l
//	l == 0: explicit "use |A|"
//	l < 0: invalid option → ErrOptionViolation
func WithMaxLength(l int) Option {
	return func(o *Options) {
		if l < 0 {
			o.err = fmt.Errorf("%w: MaxLength cannot be negative (%d)", ErrOptionViolation, l)

			return
		}
		o.MaxLength = l
	}
}

// Result holds the discussion vectors and the induced ranking.
type Result struct {
	// Vectors maps each argument to its signed path-count vector of
	// length L.
	Vectors map[af.Argument][]int64

	// Ranking orders arguments ascending by lexicographic vector
	// comparison, equal vectors grouped.
	Ranking rank.Ranking

	// Saturated is true when any path count clamped at MaxInt64.
	Saturated bool
}

// Rank computes the discussion vectors of f and the induced ranking.
// Complexity: O(L · cost of one sparse power) in the worst case.
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
	maxLen := o.MaxLength
	if maxLen == 0 {
		maxLen = n
	}

	vectors := make([][]int64, n)
	for i := range vectors {
		vectors[i] = make([]int64, maxLen)
	}

	res := &Result{}
	adjT := f.AttackMatrixT()
	power := adjT
	for k := 1; k <= maxLen; k++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		sums, sat := power.RowSums()
		res.Saturated = res.Saturated || sat
		for i := 0; i < n; i++ {
			if k%2 == 1 {
				vectors[i][k-1] = sums[i]
			} else {
				vectors[i][k-1] = -sums[i]
			}
		}

		// once no paths of length k exist, none of length k+1 do either;
		// the remaining positions stay zero
		if power.NNZ() == 0 {
			break
		}
		if k < maxLen {
			var satMul bool
			power, satMul = power.Mul(adjT)
			res.Saturated = res.Saturated || satMul
		}
	}

	res.Vectors = make(map[af.Argument][]int64, n)
	order := make([]af.Argument, n)
	for i := 0; i < n; i++ {
		res.Vectors[af.Argument(i+1)] = vectors[i]
		order[i] = af.Argument(i + 1)
	}

	sort.Slice(order, func(i, j int) bool {
		vi, vj := res.Vectors[order[i]], res.Vectors[order[j]]
		if c := compareVectors(vi, vj); c != 0 {
			return c < 0
		}

		return order[i] < order[j]
	})

	var classes [][]af.Argument
	for i, a := range order {
		if i > 0 && compareVectors(res.Vectors[order[i-1]], res.Vectors[a]) == 0 {
			last := len(classes) - 1
			classes[last] = append(classes[last], a)

			continue
		}
		classes = append(classes, []af.Argument{a})
	}
	res.Ranking = rank.FromClasses(classes)

	return res, nil
}

// compareVectors orders discussion vectors lexicographically.
func compareVectors(a, b []int64) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}
