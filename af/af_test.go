package af_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelljawhari/ArgRankLab/af"
)

// afEx builds the eight-argument reference framework used throughout
// the semantics tests.
func afEx(t *testing.T) *af.AF {
	t.Helper()
	f, err := af.New(8, []af.Attack{
		{From: 1, To: 2}, {From: 1, To: 4}, {From: 1, To: 5},
		{From: 2, To: 3}, {From: 6, To: 3}, {From: 7, To: 4},
		{From: 5, To: 8}, {From: 4, To: 8}, {From: 8, To: 7},
	})
	require.NoError(t, err)

	return f
}

func TestNew_Errors(t *testing.T) {
	if _, err := af.New(0, nil); !errors.Is(err, af.ErrBadArgumentCount) {
		t.Errorf("zero arguments: want ErrBadArgumentCount, got %v", err)
	}
	if _, err := af.New(2, []af.Attack{{From: 1, To: 3}}); !errors.Is(err, af.ErrUnknownArgument) {
		t.Errorf("out-of-range attack: want ErrUnknownArgument, got %v", err)
	}
	if _, err := af.New(2, []af.Attack{{From: 0, To: 1}}); !errors.Is(err, af.ErrUnknownArgument) {
		t.Errorf("zero attacker: want ErrUnknownArgument, got %v", err)
	}
}

func TestAF_Adjacency(t *testing.T) {
	f := afEx(t)

	assert.Equal(t, 8, f.Len())
	assert.Equal(t, 9, f.AttackCount())

	assert.Empty(t, f.Attackers(1), "1 is unattacked")
	assert.Equal(t, []af.Argument{2, 6}, f.Attackers(3))
	assert.Equal(t, []af.Argument{4, 5}, f.Attackers(8))
	assert.Equal(t, []af.Argument{2, 4, 5}, f.Attackees(1))

	assert.True(t, f.HasAttack(8, 7))
	assert.False(t, f.HasAttack(7, 8))
	assert.False(t, f.SelfAttacking(1))

	assert.Equal(t, 3, f.OutDegree(1))
	assert.Equal(t, 2, f.InDegree(4))
}

func TestAF_DuplicateAttacksCollapse(t *testing.T) {
	f, err := af.New(2, []af.Attack{{From: 1, To: 2}, {From: 1, To: 2}})
	require.NoError(t, err)
	assert.Equal(t, 1, f.AttackCount())
	assert.Equal(t, []af.Argument{1}, f.Attackers(2))
}

func TestAF_SelfLoop(t *testing.T) {
	f := af.MustNew(1, []af.Attack{{From: 1, To: 1}})
	assert.True(t, f.SelfAttacking(1))
	assert.Equal(t, []af.Argument{1}, f.Attackers(1))
}

func TestSubgraph_RestrictsRelation(t *testing.T) {
	f := afEx(t)
	g := f.InducedOf(3, 6, 7, 8)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []af.Argument{3, 6, 7, 8}, g.Arguments())

	// 2 attacks 3 in the parent but 2 is not a member
	assert.Equal(t, []af.Argument{6}, g.Attackers(3))
	assert.True(t, g.HasAttack(8, 7))
	assert.False(t, g.HasAttack(7, 4), "4 is outside the subgraph")
	assert.Nil(t, g.Attackers(4), "non-member adjacency is empty")
}

func TestSubgraph_RestrictShrinksFurther(t *testing.T) {
	f := afEx(t)
	g := f.InducedOf(3, 6, 7, 8)
	keep := af.SetOf(f.Len(), 6, 3)
	h := g.Restrict(keep)

	assert.Equal(t, []af.Argument{3, 6}, h.Arguments())
	assert.True(t, h.HasAttack(6, 3))
}

func TestArgSet_Algebra(t *testing.T) {
	s := af.SetOf(8, 1, 3, 5)
	u := af.SetOf(8, 3, 5)

	assert.Equal(t, 3, s.Len())
	assert.True(t, u.SubsetOf(s))
	assert.True(t, u.ProperSubsetOf(s))
	assert.False(t, s.ProperSubsetOf(s))
	assert.Equal(t, []af.Argument{1, 3, 5}, s.Members())

	union := u.Union(af.SetOf(8, 1))
	assert.True(t, union.Equal(s))

	diff := s.Difference(u)
	assert.Equal(t, []af.Argument{1}, diff.Members())
}

func TestMatrix_RowSumsAndMulVec(t *testing.T) {
	f := afEx(t)
	adjT := f.AttackMatrixT()

	// row sums of Mᵀ are the in-degrees
	sums, saturated := adjT.RowSums()
	assert.False(t, saturated)
	assert.Equal(t, []int64{0, 1, 2, 2, 1, 0, 1, 2}, sums)

	// Mᵀ · 1 must also equal the in-degrees
	ones := make([]float64, f.Len())
	for i := range ones {
		ones[i] = 1
	}
	product := adjT.MulVec(ones)
	for i, want := range sums {
		assert.InDelta(t, float64(want), product[i], 1e-12)
	}
}

func TestMatrix_PowerCountsPaths(t *testing.T) {
	f := afEx(t)
	adjT := f.AttackMatrixT()

	// (Mᵀ)² row sums count inbound paths of length two
	squared, saturated := adjT.Mul(adjT)
	assert.False(t, saturated)
	sums, _ := squared.RowSums()
	assert.Equal(t, []int64{0, 0, 1, 1, 0, 0, 2, 3}, sums)
}
