package bench

import (
	"context"
	"fmt"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/cat"
	"github.com/marcelljawhari/ArgRankLab/dbs"
	"github.com/marcelljawhari/ArgRankLab/prob"
	"github.com/marcelljawhari/ArgRankLab/rank"
	"github.com/marcelljawhari/ArgRankLab/runner"
	"github.com/marcelljawhari/ArgRankLab/ser"
)

// Semantics pairs a display name with a harnessable solver.
type Semantics struct {
	Name  string
	Solve runner.Solver
}

// FastSemantics returns the four cheap semantics run on every corpus:
// Cat, Dbs and the two analytical probabilistic scorers.
func FastSemantics(cfg Config) []Semantics {
	return []Semantics{
		{Name: "Cat", Solve: func(ctx context.Context, f *af.AF) (rank.Ranking, error) {
			res, err := cat.Rank(f, cat.WithContext(ctx))
			if err != nil {
				return rank.Ranking{}, err
			}

			return validated(f, res.Ranking)
		}},
		{Name: "Dbs", Solve: func(ctx context.Context, f *af.AF) (rank.Ranking, error) {
			res, err := dbs.Rank(f, dbs.WithContext(ctx))
			if err != nil {
				return rank.Ranking{}, err
			}

			return validated(f, res.Ranking)
		}},
		{Name: "p-Stable", Solve: func(_ context.Context, f *af.AF) (rank.Ranking, error) {
			res, err := prob.Stable(f, prob.WithProbability(cfg.Probability))
			if err != nil {
				return rank.Ranking{}, err
			}

			return validated(f, res.Ranking)
		}},
		{Name: "p-Admissible", Solve: func(_ context.Context, f *af.AF) (rank.Ranking, error) {
			res, err := prob.Admissible(f, prob.WithProbability(cfg.Probability))
			if err != nil {
				return rank.Ranking{}, err
			}

			return validated(f, res.Ranking)
		}},
	}
}

// SlowSemantics returns the SAT- and simulation-heavy semantics, run
// only on the corpus that can afford them.
func SlowSemantics(cfg Config) []Semantics {
	mc := func(name string, samples int,
		run func(f *af.AF, opts ...prob.Option) (*prob.Result, error)) Semantics {
		return Semantics{Name: name, Solve: func(ctx context.Context, f *af.AF) (rank.Ranking, error) {
			res, err := run(f,
				prob.WithContext(ctx),
				prob.WithProbability(cfg.Probability),
				prob.WithSamples(samples),
				prob.WithSeed(cfg.Seed),
				prob.WithWorkers(cfg.Workers),
			)
			if err != nil {
				return rank.Ranking{}, err
			}

			return validated(f, res.Ranking)
		}}
	}

	return []Semantics{
		{Name: "Ser", Solve: func(ctx context.Context, f *af.AF) (rank.Ranking, error) {
			res, err := ser.Rank(f, ser.WithContext(ctx))
			if err != nil {
				return rank.Ranking{}, err
			}

			return validated(f, res.Ranking)
		}},
		mc("p-Complete", cfg.SlowSamples, prob.Complete),
		mc("p-Ideal", cfg.SlowSamples, prob.Ideal),
		mc("p-Grounded", cfg.Samples, prob.Grounded),
		mc("p-Preferred", cfg.SlowSamples, prob.Preferred),
	}
}

// AllSemantics returns the full set of nine.
func AllSemantics(cfg Config) []Semantics {
	return append(FastSemantics(cfg), SlowSemantics(cfg)...)
}

// validated enforces the partition invariant before a ranking leaves
// the solver layer: a ranking that drops or duplicates an argument
// aborts the run instead of silently truncating.
func validated(f *af.AF, r rank.Ranking) (rank.Ranking, error) {
	if err := r.Validate(f.Arguments()); err != nil {
		return rank.Ranking{}, fmt.Errorf("invariant violation: %w", err)
	}

	return r, nil
}
