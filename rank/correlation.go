package rank

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/marcelljawhari/ArgRankLab/af"
)

// ErrLengthMismatch indicates two orders of different length were
// passed to a correlation measure.
var ErrLengthMismatch = errors.New("rank: orders have different lengths")

// Kendall returns Kendall's τ between two normalized total orders over
// the same argument set. Each order is read as the paired sequence of
// argument identifiers per rank position, matching how the benchmark
// study correlates semantics.
func Kendall(a, b []af.Argument) (float64, error) {
	x, y, err := pairSequences(a, b)
	if err != nil {
		return 0, err
	}

	return stat.Kendall(x, y, nil), nil
}

// Spearman returns Spearman's ρ between two normalized total orders:
// the Pearson correlation of the rank-transformed identifier
// sequences.
func Spearman(a, b []af.Argument) (float64, error) {
	x, y, err := pairSequences(a, b)
	if err != nil {
		return 0, err
	}

	return stat.Correlation(rankTransform(x), rankTransform(y), nil), nil
}

func pairSequences(a, b []af.Argument) ([]float64, []float64, error) {
	if len(a) != len(b) {
		return nil, nil, ErrLengthMismatch
	}
	x := make([]float64, len(a))
	y := make([]float64, len(b))
	for i := range a {
		x[i] = float64(a[i])
		y[i] = float64(b[i])
	}

	return x, y, nil
}

// rankTransform replaces each value with its 1-based rank, averaging
// ties so equal values share a fractional rank.
func rankTransform(xs []float64) []float64 {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return xs[idx[i]] < xs[idx[j]] })

	ranks := make([]float64, len(xs))
	for i := 0; i < len(idx); {
		j := i
		for j < len(idx) && xs[idx[j]] == xs[idx[i]] {
			j++
		}
		// average rank across the tie run [i, j)
		avg := (float64(i+1) + float64(j)) / 2
		for k := i; k < j; k++ {
			ranks[idx[k]] = avg
		}
		i = j
	}

	return ranks
}
