package extensions

import (
	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/sat"
)

// labelling maps a view onto the three-valued complete-labelling CNF:
// per argument the variables IN, OUT and UNDEC with exactly-one
// constraints, OUT_a ⇔ some attacker IN, IN_a ⇔ all attackers OUT.
// Models of the formula are exactly the complete labellings, whose IN
// projections are the complete extensions.
type labelling struct {
	nodes   []af.Argument
	index   map[af.Argument]int // argument → 0-based node index
	formula *sat.Formula
}

func (e *labelling) in(i int) int    { return 3*i + 1 }
func (e *labelling) out(i int) int   { return 3*i + 2 }
func (e *labelling) undec(i int) int { return 3*i + 3 }

// newLabelling builds the encoding for v.
func newLabelling(v af.View) *labelling {
	nodes := v.Arguments()
	e := &labelling{
		nodes:   nodes,
		index:   make(map[af.Argument]int, len(nodes)),
		formula: sat.NewFormula(3 * len(nodes)),
	}
	for i, a := range nodes {
		e.index[a] = i
	}

	for i, a := range nodes {
		in, out, und := e.in(i), e.out(i), e.undec(i)

		// exactly one label per argument
		e.formula.Add(in, out, und)
		e.formula.Add(-in, -out)
		e.formula.Add(-in, -und)
		e.formula.Add(-out, -und)

		attackers := v.Attackers(a)
		if len(attackers) == 0 {
			// no attacker: never out, always in
			e.formula.Add(-out)
			e.formula.Add(in)

			continue
		}

		// OUT_a ⇔ ∃ attacker b with IN_b
		forward := make([]int, 0, len(attackers)+1)
		forward = append(forward, -out)
		for _, b := range attackers {
			bi := e.index[b]
			forward = append(forward, e.in(bi))
			e.formula.Add(-e.in(bi), out)
		}
		e.formula.Add(forward...)

		// IN_a ⇔ ∀ attackers b: OUT_b
		backward := make([]int, 0, len(attackers)+1)
		backward = append(backward, in)
		for _, b := range attackers {
			bi := e.index[b]
			e.formula.Add(-in, e.out(bi))
			backward = append(backward, -e.out(bi))
		}
		e.formula.Add(backward...)
	}

	return e
}

// extension projects a model onto its IN-labelled arguments.
func (e *labelling) extension(capacity int, assign []bool) *af.ArgSet {
	set := af.NewArgSet(capacity)
	for i, a := range e.nodes {
		if assign[e.in(i)] {
			set.Add(a)
		}
	}

	return set
}

// blockModel returns the clause excluding exactly this labelling.
func (e *labelling) blockModel(assign []bool) []int {
	lits := make([]int, 0, e.formula.NumVars)
	for v := 1; v <= e.formula.NumVars; v++ {
		if assign[v] {
			lits = append(lits, -v)
		} else {
			lits = append(lits, v)
		}
	}

	return lits
}
