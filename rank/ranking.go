package rank

import (
	"errors"
	"fmt"
	"sort"

	"github.com/marcelljawhari/ArgRankLab/af"
)

// ErrIncompletePartition indicates a ranking that does not partition
// the argument set: a missing or duplicated argument. Callers must
// treat this as fatal rather than truncating the ranking.
var ErrIncompletePartition = errors.New("rank: ranking does not partition the argument set")

// Class is one equivalence class of a ranking, ascending by identifier.
type Class []af.Argument

// Ranking is an ordered sequence of equivalence classes, best first.
type Ranking struct {
	Classes []Class
}

// FromClasses builds a Ranking from raw classes, sorting each class by
// identifier. Empty classes are dropped.
func FromClasses(classes [][]af.Argument) Ranking {
	r := Ranking{Classes: make([]Class, 0, len(classes))}
	for _, c := range classes {
		if len(c) == 0 {
			continue
		}
		cl := make(Class, len(c))
		copy(cl, c)
		sort.Slice(cl, func(i, j int) bool { return cl[i] < cl[j] })
		r.Classes = append(r.Classes, cl)
	}

	return r
}

// FromScores groups a score map into a Ranking, best (highest) score
// first. Consecutive arguments in descending score order join one
// class when their scores are exactly equal or differ by less than
// tol. Exact equality is tested first so that identical infinities
// (p-Stable's −∞ self-attackers) share a class.
func FromScores(scores map[af.Argument]float64, tol float64) Ranking {
	args := make([]af.Argument, 0, len(scores))
	for a := range scores {
		args = append(args, a)
	}
	sort.Slice(args, func(i, j int) bool {
		si, sj := scores[args[i]], scores[args[j]]
		if si != sj {
			return si > sj
		}

		return args[i] < args[j]
	})

	var classes [][]af.Argument
	for i, a := range args {
		if i == 0 {
			classes = append(classes, []af.Argument{a})

			continue
		}
		prev := args[i-1]
		sp, sa := scores[prev], scores[a]
		same := sp == sa || diff(sp, sa) < tol
		if same {
			last := len(classes) - 1
			classes[last] = append(classes[last], a)
		} else {
			classes = append(classes, []af.Argument{a})
		}
	}

	return FromClasses(classes)
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}

	return b - a
}

// Arguments returns every argument of the ranking in class order.
func (r Ranking) Arguments() []af.Argument {
	var out []af.Argument
	for _, c := range r.Classes {
		out = append(out, c...)
	}

	return out
}

// Validate checks that the ranking partitions all: every argument in
// exactly one class, nothing extra. Returns ErrIncompletePartition
// with a description of the first violation found.
func (r Ranking) Validate(all []af.Argument) error {
	seen := make(map[af.Argument]int, len(all))
	for _, c := range r.Classes {
		for _, a := range c {
			seen[a]++
			if seen[a] > 1 {
				return fmt.Errorf("%w: argument %d appears twice", ErrIncompletePartition, a)
			}
		}
	}
	for _, a := range all {
		if seen[a] == 0 {
			return fmt.Errorf("%w: argument %d missing", ErrIncompletePartition, a)
		}
		delete(seen, a)
	}
	for a := range seen {
		return fmt.Errorf("%w: unexpected argument %d", ErrIncompletePartition, a)
	}

	return nil
}

// Normalize flattens the ranking into a total order: classes in rank
// order, each class sorted ascending by identifier, and any argument
// of all absent from the ranking appended afterwards in identifier
// order. Normalizing twice yields the same order.
func (r Ranking) Normalize(all []af.Argument) []af.Argument {
	order := make([]af.Argument, 0, len(all))
	present := make(map[af.Argument]bool, len(all))
	for _, c := range r.Classes {
		for _, a := range c {
			if !present[a] {
				present[a] = true
				order = append(order, a)
			}
		}
	}
	missing := make([]af.Argument, 0)
	for _, a := range all {
		if !present[a] {
			missing = append(missing, a)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })

	return append(order, missing...)
}

// NormalizeScores converts a score map directly into a total order:
// descending score, ties broken by ascending identifier, arguments of
// all without a score appended last in identifier order.
func NormalizeScores(scores map[af.Argument]float64, all []af.Argument) []af.Argument {
	order := make([]af.Argument, 0, len(all))
	var missing []af.Argument
	for _, a := range all {
		if _, ok := scores[a]; ok {
			order = append(order, a)
		} else {
			missing = append(missing, a)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		si, sj := scores[order[i]], scores[order[j]]
		if si != sj {
			return si > sj
		}

		return order[i] < order[j]
	})
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })

	return append(order, missing...)
}
