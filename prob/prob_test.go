package prob_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/extensions"
	"github.com/marcelljawhari/ArgRankLab/prob"
	"github.com/marcelljawhari/ArgRankLab/rank"
)

func afEx() *af.AF {
	return af.MustNew(8, []af.Attack{
		{From: 1, To: 2}, {From: 1, To: 4}, {From: 1, To: 5},
		{From: 2, To: 3}, {From: 6, To: 3}, {From: 7, To: 4},
		{From: 5, To: 8}, {From: 4, To: 8}, {From: 8, To: 7},
	})
}

func TestRank_Errors(t *testing.T) {
	if _, err := prob.Rank(nil, extensions.Grounded{}); !errors.Is(err, prob.ErrNilFramework) {
		t.Errorf("nil framework: want ErrNilFramework, got %v", err)
	}
	f := af.MustNew(1, nil)
	if _, err := prob.Rank(f, nil); !errors.Is(err, prob.ErrNilFinder) {
		t.Errorf("nil finder: want ErrNilFinder, got %v", err)
	}
	if _, err := prob.Rank(f, extensions.Grounded{}, prob.WithProbability(1)); !errors.Is(err, prob.ErrOptionViolation) {
		t.Errorf("p=1: want ErrOptionViolation, got %v", err)
	}
	if _, err := prob.Rank(f, extensions.Grounded{}, prob.WithSamples(0)); !errors.Is(err, prob.ErrOptionViolation) {
		t.Errorf("zero samples: want ErrOptionViolation, got %v", err)
	}
	if _, err := prob.Rank(f, extensions.Grounded{}, prob.WithWorkers(-1)); !errors.Is(err, prob.ErrOptionViolation) {
		t.Errorf("negative workers: want ErrOptionViolation, got %v", err)
	}
}

// TestGrounded_ExactOnReferenceFramework enumerates all 256 subgraphs
// of the eight-argument example; the scores are exact rationals.
func TestGrounded_ExactOnReferenceFramework(t *testing.T) {
	res, err := prob.Grounded(afEx())
	require.NoError(t, err)
	require.True(t, res.Exact, "2^8 < sample budget must dispatch to enumeration")

	want := map[af.Argument]float64{
		1: 128.0 / 256, 2: 64.0 / 256, 3: 48.0 / 256, 4: 32.0 / 256,
		5: 64.0 / 256, 6: 128.0 / 256, 7: 80.0 / 256, 8: 80.0 / 256,
	}
	for a, score := range want {
		assert.InDelta(t, score, res.Scores[a], 1e-12, "score of %d", a)
	}
}

func TestComplete_ExactOnSimpleAttack(t *testing.T) {
	f := af.MustNew(2, []af.Attack{{From: 1, To: 2}})
	res, err := prob.Complete(f)
	require.NoError(t, err)
	require.True(t, res.Exact)

	assert.InDelta(t, 0.5, res.Scores[1], 1e-12)
	assert.InDelta(t, 0.25, res.Scores[2], 1e-12)
}

func TestPreferred_ExactOnMutualAttack(t *testing.T) {
	f := af.MustNew(2, []af.Attack{{From: 1, To: 2}, {From: 2, To: 1}})
	res, err := prob.Preferred(f)
	require.NoError(t, err)

	// each argument is credulously accepted whenever it exists
	assert.InDelta(t, 0.5, res.Scores[1], 1e-12)
	assert.InDelta(t, 0.5, res.Scores[2], 1e-12)
}

func TestIdeal_ExactOnMutualAttack(t *testing.T) {
	f := af.MustNew(2, []af.Attack{{From: 1, To: 2}, {From: 2, To: 1}})
	res, err := prob.Ideal(f)
	require.NoError(t, err)

	// the ideal extension is empty only when both arguments exist
	assert.InDelta(t, 0.25, res.Scores[1], 1e-12)
	assert.InDelta(t, 0.25, res.Scores[2], 1e-12)
}

// TestRank_ScoresWithinUnitInterval checks the quantified invariant
// over several frameworks and finders.
func TestRank_ScoresWithinUnitInterval(t *testing.T) {
	frameworks := []*af.AF{
		afEx(),
		af.MustNew(3, []af.Attack{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}}),
	}
	finders := []extensions.Finder{
		extensions.Grounded{}, extensions.Complete{},
		extensions.Preferred{}, extensions.Ideal{},
	}
	for _, f := range frameworks {
		for _, finder := range finders {
			res, err := prob.Rank(f, finder, prob.WithProbability(0.3))
			require.NoError(t, err, finder.Name())
			require.NoError(t, res.Ranking.Validate(f.Arguments()))
			for a, s := range res.Scores {
				assert.GreaterOrEqual(t, s, 0.0, "%s score of %d", finder.Name(), a)
				assert.LessOrEqual(t, s, 1.0, "%s score of %d", finder.Name(), a)
			}
		}
	}
}

// TestRank_SamplingPathOnThreeCycle forces the sampling path with a
// tiny budget threshold, checks that the result is marked inexact, and
// checks that the sampled preferred scores stay within [0, 1].
func TestRank_SamplingPathOnThreeCycle(t *testing.T) {
	f := af.MustNew(3, []af.Attack{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}})
	res, err := prob.Rank(f, extensions.Grounded{},
		prob.WithSamples(8), // 2^3 = 8 is not < 8, so sampling is used
		prob.WithSeed(7),
		prob.WithWorkers(2),
	)
	require.NoError(t, err)
	assert.False(t, res.Exact)

	res, err = prob.Rank(f, extensions.Preferred{},
		prob.WithSamples(8),
		prob.WithSeed(7),
		prob.WithWorkers(2),
	)
	require.NoError(t, err)
	for _, s := range res.Scores {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

// TestRank_SamplingIsReproducible: identical (seed, workers) pairs
// must agree sample for sample.
func TestRank_SamplingIsReproducible(t *testing.T) {
	f := afEx()
	first, err := prob.Rank(f, extensions.Grounded{},
		prob.WithSamples(200), prob.WithSeed(42), prob.WithWorkers(3))
	require.NoError(t, err)
	second, err := prob.Rank(f, extensions.Grounded{},
		prob.WithSamples(200), prob.WithSeed(42), prob.WithWorkers(3))
	require.NoError(t, err)

	assert.Equal(t, first.Scores, second.Scores)
}

func TestRank_SampledEstimateNearExact(t *testing.T) {
	f := afEx()
	exact, err := prob.Grounded(f)
	require.NoError(t, err)

	sampled, err := prob.Rank(f, extensions.Grounded{},
		prob.WithSamples(256), // equals 2^8, so the sampler runs
		prob.WithSeed(11),
		prob.WithWorkers(4),
	)
	require.NoError(t, err)
	require.False(t, sampled.Exact)

	for _, a := range f.Arguments() {
		assert.InDelta(t, exact.Scores[a], sampled.Scores[a], 0.15,
			"sampled score of %d drifted too far", a)
	}
}

func TestRank_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := prob.Rank(afEx(), extensions.Grounded{},
		prob.WithContext(ctx),
		prob.WithSamples(64), // force the sampling path
	)
	assert.Error(t, err)
}

func TestAdmissible_ReferenceValues(t *testing.T) {
	res, err := prob.Admissible(afEx())
	require.NoError(t, err)
	require.True(t, res.Exact)

	want := map[af.Argument]float64{
		1: 0.5, 2: 0.25, 3: 0.125, 4: 0.125,
		5: 0.25, 6: 0.5, 7: 0.25, 8: 0.125,
	}
	for a, score := range want {
		assert.InDelta(t, score, res.Scores[a], 1e-12, "score of %d", a)
	}
}

func TestAdmissible_SelfDefenceCounts(t *testing.T) {
	// mutual attack: each singleton defends itself
	f := af.MustNew(2, []af.Attack{{From: 1, To: 2}, {From: 2, To: 1}})
	res, err := prob.Admissible(f)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.Scores[1], 1e-12)
	assert.InDelta(t, 0.5, res.Scores[2], 1e-12)
}

func TestAdmissible_SelfAttackerScoresZero(t *testing.T) {
	f := af.MustNew(1, []af.Attack{{From: 1, To: 1}})
	res, err := prob.Admissible(f)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Scores[1])
}

func TestStable_ReferenceValues(t *testing.T) {
	f := afEx()
	res, err := prob.Stable(f)
	require.NoError(t, err)

	logHalf := math.Log(0.5)
	n := float64(f.Len())
	want := map[af.Argument]float64{
		1: logHalf * (n - 3), // out-degree 3
		2: logHalf * (n - 1),
		3: logHalf * n, // attacks nothing
		4: logHalf * (n - 1),
		5: logHalf * (n - 1),
		6: logHalf * (n - 1),
		7: logHalf * (n - 1),
		8: logHalf * (n - 1),
	}
	for a, score := range want {
		assert.InDelta(t, score, res.Scores[a], 1e-12, "log-score of %d", a)
		assert.Less(t, res.Scores[a], 0.0, "log-domain scores are negative")
	}
}

func TestStable_SelfAttackerIsMinusInf(t *testing.T) {
	f := af.MustNew(2, []af.Attack{{From: 1, To: 1}, {From: 1, To: 2}})
	res, err := prob.Stable(f)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Scores[1], -1))
	assert.False(t, math.IsInf(res.Scores[2], -1))
}

func TestStable_RankingDescendsByLogScore(t *testing.T) {
	f := af.MustNew(3, []af.Attack{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 2}})
	res, err := prob.Stable(f)
	require.NoError(t, err)

	// 1 attacks both others; 3 attacks nothing; 2 self-attacks
	want := []rank.Class{{1}, {3}, {2}}
	assert.Equal(t, want, res.Ranking.Classes)
}
