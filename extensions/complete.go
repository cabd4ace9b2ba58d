package extensions

import (
	"github.com/marcelljawhari/ArgRankLab/af"
	"github.com/marcelljawhari/ArgRankLab/sat"
)

// Complete finds every complete extension: conflict-free sets that
// defend all of their members and contain every argument they defend.
type Complete struct{}

// Name implements Finder.
func (Complete) Name() string { return "complete" }

// Extensions implements Finder by enumerating the models of the
// complete-labelling CNF with successive blocking clauses and
// projecting each model onto its IN set.
func (Complete) Extensions(v af.View) ([]*af.ArgSet, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if v.Len() == 0 {
		return []*af.ArgSet{af.NewArgSet(v.Capacity())}, nil
	}

	enc := newLabelling(v)
	solver := sat.NewSolver(enc.formula)

	var out []*af.ArgSet
	for {
		assign, ok := solver.Next()
		if !ok {
			break
		}
		out = append(out, enc.extension(v.Capacity(), assign))
		solver.Block(enc.blockModel(assign)...)
	}

	return out, nil
}
