package rank_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/rank"
)

func TestFromScores_GroupsWithinTolerance(t *testing.T) {
	scores := map[af.Argument]float64{
		1: 1.0,
		2: 0.5,
		3: 0.5 + 1e-10,
		4: 0.2,
	}
	r := rank.FromScores(scores, 1e-9)

	want := []rank.Class{{1}, {2, 3}, {4}}
	assert.Equal(t, want, r.Classes)
}

func TestFromScores_NegativeInfinitiesShareAClass(t *testing.T) {
	scores := map[af.Argument]float64{
		1: -2.0,
		2: math.Inf(-1),
		3: math.Inf(-1),
	}
	r := rank.FromScores(scores, 1e-9)

	want := []rank.Class{{1}, {2, 3}}
	assert.Equal(t, want, r.Classes)
}

func TestValidate_Partition(t *testing.T) {
	all := []af.Argument{1, 2, 3}

	ok := rank.FromClasses([][]af.Argument{{2}, {1, 3}})
	require.NoError(t, ok.Validate(all))

	missing := rank.FromClasses([][]af.Argument{{1, 2}})
	if err := missing.Validate(all); !errors.Is(err, rank.ErrIncompletePartition) {
		t.Errorf("missing argument: want ErrIncompletePartition, got %v", err)
	}

	duplicated := rank.FromClasses([][]af.Argument{{1, 2}, {2, 3}})
	if err := duplicated.Validate(all); !errors.Is(err, rank.ErrIncompletePartition) {
		t.Errorf("duplicated argument: want ErrIncompletePartition, got %v", err)
	}

	extra := rank.FromClasses([][]af.Argument{{1, 2, 3, 4}})
	if err := extra.Validate(all); !errors.Is(err, rank.ErrIncompletePartition) {
		t.Errorf("extra argument: want ErrIncompletePartition, got %v", err)
	}
}

func TestNormalize_TotalOrderAndIdempotence(t *testing.T) {
	all := []af.Argument{1, 2, 3, 4, 5}
	r := rank.FromClasses([][]af.Argument{{3, 1}, {5}})

	order := r.Normalize(all)
	assert.Equal(t, []af.Argument{1, 3, 5, 2, 4}, order, "classes flatten, missing append in id order")

	// re-grouping the flattened order one class each and normalizing
	// again must not change the total order
	again := make([][]af.Argument, len(order))
	for i, a := range order {
		again[i] = []af.Argument{a}
	}
	assert.Equal(t, order, rank.FromClasses(again).Normalize(all))
}

func TestNormalizeScores_TieBreaksByIdentifier(t *testing.T) {
	scores := map[af.Argument]float64{3: 0.5, 1: 0.5, 2: 0.9}
	order := rank.NormalizeScores(scores, []af.Argument{1, 2, 3, 4})
	assert.Equal(t, []af.Argument{2, 1, 3, 4}, order)
}

func TestCorrelation_IdenticalAndReversed(t *testing.T) {
	a := []af.Argument{1, 2, 3, 4, 5}
	b := []af.Argument{5, 4, 3, 2, 1}

	tau, err := rank.Kendall(a, a)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, tau, 1e-12)

	tau, err = rank.Kendall(a, b)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, tau, 1e-12)

	rho, err := rank.Spearman(a, a)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rho, 1e-12)

	rho, err = rank.Spearman(a, b)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, rho, 1e-12)
}

func TestCorrelation_LengthMismatch(t *testing.T) {
	_, err := rank.Kendall([]af.Argument{1}, []af.Argument{1, 2})
	assert.ErrorIs(t, err, rank.ErrLengthMismatch)
}

func TestCorrelation_PartialAgreement(t *testing.T) {
	a := []af.Argument{1, 2, 3, 4}
	b := []af.Argument{1, 2, 4, 3}

	tau, err := rank.Kendall(a, b)
	require.NoError(t, err)
	// one discordant pair out of six
	assert.InDelta(t, 4.0/6.0, tau, 1e-12)

	rho, err := rank.Spearman(a, b)
	require.NoError(t, err)
	assert.Greater(t, rho, 0.0)
	assert.Less(t, rho, 1.0)
}
