package dbs_test

import (
	"math/rand"
	"testing"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/cat"
	"github.com/marcelljawhari/ArgRankLab/dbs"
)

// randomFramework builds a sparse random AF with n arguments and
// roughly density·n·(n−1) attacks.
func randomFramework(n int, density float64, seed int64) *af.AF {
	rng := rand.New(rand.NewSource(seed))
	var attacks []af.Attack
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if i != j && rng.Float64() < density {
				attacks = append(attacks, af.Attack{From: af.Argument(i), To: af.Argument(j)})
			}
		}
	}

	return af.MustNew(n, attacks)
}

// BenchmarkDbs_Sparse measures the matrix-power loop on a sparse
// 200-argument framework at the default path length.
func BenchmarkDbs_Sparse(b *testing.B) {
	f := randomFramework(200, 0.02, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dbs.Rank(f); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCat_Sparse measures the fixed-point iteration on the same
// class of framework for comparison.
func BenchmarkCat_Sparse(b *testing.B) {
	f := randomFramework(200, 0.02, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cat.Rank(f); err != nil {
			b.Fatal(err)
		}
	}
}
