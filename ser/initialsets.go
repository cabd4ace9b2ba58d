package ser

import (
	"sort"

	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/sat"
)

// initialSets enumerates every initial set — ⊂-minimal non-empty
// admissible set — of the view.
//
// Admissibility over one boolean per argument (true ⇒ in the set):
// conflict-freeness excludes both endpoints of every attack, defence
// requires some counter-attacker per attacker of a member, and a final
// clause excludes the empty set. Each SAT model is probed for
// minimality with a secondary instance confined to its proper subsets:
// satisfiable means a smaller admissible set exists, so the model is
// merely blocked; otherwise it is recorded as initial and all its
// supersets are blocked at once.
//
// The returned sets are sorted by their member lists so that callers
// iterate deterministically regardless of solver enumeration order.
func initialSets(v af.View) ([]*af.ArgSet, error) {
	nodes := v.Arguments()
	if len(nodes) == 0 {
		return nil, nil
	}
	index := make(map[af.Argument]int, len(nodes))
	for i, a := range nodes {
		index[a] = i
	}
	varOf := func(a af.Argument) int { return index[a] + 1 }

	base := sat.NewFormula(len(nodes))
	for _, a := range nodes {
		for _, b := range v.Attackees(a) {
			if a == b {
				base.Add(-varOf(a))

				continue
			}
			base.Add(-varOf(a), -varOf(b))
		}
	}
	for _, a := range nodes {
		for _, b := range v.Attackers(a) {
			clause := []int{-varOf(a)}
			for _, c := range v.Attackers(b) {
				clause = append(clause, varOf(c))
			}
			base.Add(clause...)
		}
	}
	nonEmpty := make([]int, len(nodes))
	for i := range nodes {
		nonEmpty[i] = i + 1
	}
	base.Add(nonEmpty...)

	var out []*af.ArgSet
	enum := sat.NewSolver(base)
	for {
		assign, ok := enum.Next()
		if !ok {
			break
		}
		members := make([]af.Argument, 0, len(nodes))
		for i, a := range nodes {
			if assign[i+1] {
				members = append(members, a)
			}
		}

		if len(members) > 1 && !isMinimal(base, nodes, assign) {
			// not minimal: block only this exact model and keep looking
			blocking := make([]int, len(nodes))
			for i := range nodes {
				if assign[i+1] {
					blocking[i] = -(i + 1)
				} else {
					blocking[i] = i + 1
				}
			}
			enum.Block(blocking...)

			continue
		}

		set := af.NewArgSet(v.Capacity())
		blocking := make([]int, 0, len(members))
		for _, a := range members {
			set.Add(a)
			blocking = append(blocking, -varOf(a))
		}
		out = append(out, set)
		// block the set and all of its supersets
		enum.Block(blocking...)
	}

	sort.Slice(out, func(i, j int) bool {
		return lessMembers(out[i].Members(), out[j].Members())
	})

	return out, nil
}

// isMinimal reports whether no proper non-empty admissible subset of
// the model exists.
func isMinimal(base *sat.Formula, nodes []af.Argument, assign []bool) bool {
	var extra [][]int
	properSubset := make([]int, 0, len(nodes))
	for i := range nodes {
		if assign[i+1] {
			// at least one current member must be dropped
			properSubset = append(properSubset, -(i + 1))
		} else {
			// nothing outside the current set may enter
			extra = append(extra, []int{-(i + 1)})
		}
	}
	extra = append(extra, properSubset)

	return !sat.Sat(base, extra...)
}

func lessMembers(a, b []af.Argument) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
