package extensions

import (
	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/sat"
)

// Ideal finds the unique ideal extension: the ⊂-maximal admissible
// set contained in every preferred extension. It uses the CDIS
// procedure, which avoids enumerating the preferred extensions.
type Ideal struct{}

// Name implements Finder.
func (Ideal) Name() string { return "ideal" }

// Extensions implements Finder.
//
// Phase A starts from the full node set P and repeatedly asks the SAT
// solver for any complete labelling whose IN set attacks some member
// of P; everything that set attacks leaves P. An argument is attacked
// by an admissible set iff it is attacked by a complete extension, so
// on exit P is exactly the set of arguments no admissible set attacks.
//
// Phase B grows the maximal complete extension contained in P: with
// membership outside P forbidden, each SAT call must place some
// not-yet-accepted member of P IN. Every complete extension inside P
// is a subset of the ideal extension, so the accumulated union is the
// ideal extension when the growth clause becomes unsatisfiable.
func (Ideal) Extensions(v af.View) ([]*af.ArgSet, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if v.Len() == 0 {
		return []*af.ArgSet{af.NewArgSet(v.Capacity())}, nil
	}

	enc := newLabelling(v)

	// Phase A: shrink the candidate superset.
	candidate := af.NewArgSet(v.Capacity())
	for _, a := range v.Arguments() {
		candidate.Add(a)
	}
	for {
		attacker, found := findAdmissibleAttacker(v, enc, candidate)
		if !found {
			break
		}
		for _, t := range AttackedBy(v, attacker).Members() {
			candidate.Remove(t)
		}
	}

	// Phase B: union of the complete extensions inside the candidate.
	var restrict [][]int
	for _, a := range v.Arguments() {
		if !candidate.Contains(a) {
			restrict = append(restrict, []int{-enc.in(enc.index[a])})
		}
	}
	best := af.NewArgSet(v.Capacity())
	for {
		var growth []int
		for _, a := range candidate.Members() {
			if !best.Contains(a) {
				growth = append(growth, enc.in(enc.index[a]))
			}
		}
		if len(growth) == 0 {
			break
		}
		extra := append(append([][]int{}, restrict...), growth)
		assign, ok := sat.SolveOne(enc.formula, extra...)
		if !ok {
			break
		}
		best = best.Union(enc.extension(v.Capacity(), assign))
	}

	return []*af.ArgSet{best}, nil
}

// findAdmissibleAttacker looks for a complete labelling whose IN set
// attacks at least one member of candidate, and returns that IN set.
func findAdmissibleAttacker(v af.View, enc *labelling, candidate *af.ArgSet) (*af.ArgSet, bool) {
	seen := make(map[int]bool)
	var attackerLits []int
	for _, p := range candidate.Members() {
		for _, b := range v.Attackers(p) {
			lit := enc.in(enc.index[b])
			if !seen[lit] {
				seen[lit] = true
				attackerLits = append(attackerLits, lit)
			}
		}
	}
	if len(attackerLits) == 0 {
		return nil, false
	}

	assign, ok := sat.SolveOne(enc.formula, attackerLits)
	if !ok {
		return nil, false
	}

	return enc.extension(v.Capacity(), assign), true
}
