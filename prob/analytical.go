package prob

import (
	"math"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/rank"
)

// Admissible scores each argument with the closed-form probability
// that its singleton is admissible:
//
//	p · 𝟙[no self-attack] · ∏_{b attacks a, b≠a} ((1−p) + p·𝟙[a attacks b])
//
// Each attacker either fails to exist or is counter-attacked by a
// itself; no simulation is needed.
func Admissible(f *af.AF, opts ...Option) (*Result, error) {
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

	scores := make(map[af.Argument]float64, f.Len())
	for _, a := range f.Arguments() {
		if f.SelfAttacking(a) {
			scores[a] = 0

			continue
		}
		score := o.P
		for _, b := range f.Attackers(a) {
			if b == a {
				continue
			}
			counter := 1 - o.P
			if f.HasAttack(a, b) {
				counter += o.P
			}
			score *= counter
		}
		scores[a] = score
	}

	return &Result{
		Scores:  scores,
		Ranking: rank.FromScores(scores, ScoreTolerance),
		Exact:   true,
	}, nil
}

// Stable scores each argument with the log-probability that its
// singleton is a stable extension: the argument exists, is
// conflict-free, and attacks every other existing argument, so
//
//	log p + ((n−1) − out_degree(a)) · log(1−p)
//
// and −∞ for self-attackers. Scores stay in log-domain throughout;
// larger (less negative) is better.
func Stable(f *af.AF, opts ...Option) (*Result, error) {
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
	logP := math.Log(o.P)
	logQ := math.Log(1 - o.P)

	scores := make(map[af.Argument]float64, n)
	for _, a := range f.Arguments() {
		if f.SelfAttacking(a) {
			scores[a] = math.Inf(-1)

			continue
		}
		nonAttacked := (n - 1) - f.OutDegree(a)
		scores[a] = logP + float64(nonAttacked)*logQ
	}

	return &Result{
		Scores:  scores,
		Ranking: rank.FromScores(scores, ScoreTolerance),
		Exact:   true,
	}, nil
}
