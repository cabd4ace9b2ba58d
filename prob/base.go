package prob

import (
	"math"
	"math/bits"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/extensions"
	"github.com/marcelljawhari/ArgRankLab/rank"
)

// Result holds probabilistic scores and the induced ranking.
type Result struct {
	// Scores maps each argument to its credulous-acceptance
	// probability (or log-probability for the stable scorer).
	Scores map[af.Argument]float64

	// Ranking groups arguments whose scores agree within
	// ScoreTolerance, best first.
	Ranking rank.Ranking

	// Exact is true when the scores are closed-form or come from full
	// subgraph enumeration rather than sampling.
	Exact bool
}

// Rank scores every argument of f as the probability of credulous
// acceptance under the semantics embodied by finder.
//
// With n = |A|, all 2ⁿ induced subgraphs are enumerated exactly when
// 2ⁿ < Samples; otherwise Samples independent subgraphs are drawn in
// parallel. See the package comment for the large-graph heuristic.
func Rank(f *af.AF, finder extensions.Finder, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrNilFramework
	}
	if finder == nil {
		return nil, ErrNilFinder
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := f.Len()
	var (
		scores map[af.Argument]float64
		exact  = n < 63 && (uint64(1)<<uint(n)) < uint64(o.Samples)
		err    error
	)
	if exact {
		scores, err = enumerate(f, finder, o)
	} else {
		scores, err = sample(f, finder, o)
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Scores:  scores,
		Ranking: rank.FromScores(scores, ScoreTolerance),
		Exact:   exact,
	}, nil
}

// enumerate walks every induced subgraph, weighting each by
// p^|G'|·(1−p)^(n−|G'|), and sums the weights of the subgraphs in
// which each argument is credulously accepted.
func enumerate(f *af.AF, finder extensions.Finder, o Options) (map[af.Argument]float64, error) {
	n := f.Len()
	scores := make(map[af.Argument]float64, n)
	for _, a := range f.Arguments() {
		scores[a] = 0
	}

	for mask := uint64(1); mask < uint64(1)<<uint(n); mask++ {
		if mask%1024 == 0 {
			select {
			case <-o.Ctx.Done():
				return nil, o.Ctx.Err()
			default:
			}
		}

		members := af.NewArgSet(n)
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				members.Add(af.Argument(i + 1))
			}
		}
		accepted, err := credulous(f, finder, members)
		if err != nil {
			return nil, err
		}
		if accepted.Empty() {
			continue
		}

		size := bits.OnesCount64(mask)
		weight := math.Pow(o.P, float64(size)) * math.Pow(1-o.P, float64(n-size))
		for _, a := range accepted.Members() {
			scores[a] += weight
		}
	}

	return scores, nil
}

// sample draws o.Samples independent subgraphs across the worker pool
// and divides the per-argument acceptance counts by the budget.
// Worker w seeds its own RNG with Seed+w, so results are reproducible
// for a fixed (seed, worker count) pair; they are not guaranteed to be
// identical across pool widths.
func sample(f *af.AF, finder extensions.Finder, o Options) (map[af.Argument]float64, error) {
	n := f.Len()
	width := o.poolWidth()
	if width > o.Samples {
		width = o.Samples
	}

	counts := make([]int64, n+1)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(o.Ctx)
	for w := 0; w < width; w++ {
		quota := o.Samples / width
		if w < o.Samples%width {
			quota++
		}
		rng := rand.New(rand.NewSource(o.Seed + int64(w)))
		g.Go(func() error {
			local := make([]int64, n+1)
			for s := 0; s < quota; s++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				members := drawSubgraph(f, rng, o)
				accepted, err := credulous(f, finder, members)
				if err != nil {
					return err
				}
				for _, a := range accepted.Members() {
					local[a]++
				}
			}
			mu.Lock()
			for i := range counts {
				counts[i] += local[i]
			}
			mu.Unlock()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	scores := make(map[af.Argument]float64, n)
	for _, a := range f.Arguments() {
		scores[a] = float64(counts[a]) / float64(o.Samples)
	}

	return scores, nil
}

// drawSubgraph picks one random member set: Bernoulli(p) per argument,
// or the fixed-size uniform draw for large frameworks.
func drawSubgraph(f *af.AF, rng *rand.Rand, o Options) *af.ArgSet {
	n := f.Len()
	members := af.NewArgSet(n)
	if o.FixedSizeSampling && n > fixedSizeThreshold {
		size := fixedSampleSize
		if n < size {
			size = n
		}
		for _, i := range rng.Perm(n)[:size] {
			members.Add(af.Argument(i + 1))
		}

		return members
	}

	for i := 1; i <= n; i++ {
		if rng.Float64() < o.P {
			members.Add(af.Argument(i))
		}
	}

	return members
}

// credulous returns the union of the extensions of the subgraph of f
// induced by members.
func credulous(f *af.AF, finder extensions.Finder, members *af.ArgSet) (*af.ArgSet, error) {
	if members.Empty() {
		return af.NewArgSet(f.Len()), nil
	}
	exts, err := finder.Extensions(f.Induced(members))
	if err != nil {
		return nil, err
	}
	union := af.NewArgSet(f.Len())
	for _, e := range exts {
		union = union.Union(e)
	}

	return union, nil
}
