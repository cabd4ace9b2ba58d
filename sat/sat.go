package sat

import (
	"github.com/crillab/gophersat/solver"
)

// Formula accumulates CNF clauses over variables 1…NumVars in
// DIMACS-style integer literals.
type Formula struct {
	NumVars int
	Clauses [][]int
}

// NewFormula returns an empty formula over nVars variables.
func NewFormula(nVars int) *Formula {
	return &Formula{NumVars: nVars}
}

// Add appends one clause. The literal slice is copied.
func (f *Formula) Add(lits ...int) {
	clause := make([]int, len(lits))
	copy(clause, lits)
	f.Clauses = append(f.Clauses, clause)
}

// Solver enumerates models of a formula incrementally.
type Solver struct {
	inner *solver.Solver
	nVars int
	done  bool
}

// NewSolver builds an incremental solver over the formula's clauses.
// Extra clauses may be appended between solves via Block.
func NewSolver(f *Formula) *Solver {
	return &Solver{
		inner: solver.New(solver.ParseSlice(f.Clauses)),
		nVars: f.NumVars,
	}
}

// Next returns the next model as a truth assignment indexed by
// variable (index 0 unused), or ok=false when the formula is
// exhausted. Callers must Block the returned model (or a subsuming
// clause) before calling Next again, or the same model repeats.
func (s *Solver) Next() ([]bool, bool) {
	if s.done {
		return nil, false
	}
	if s.inner.Solve() != solver.Sat {
		s.done = true

		return nil, false
	}

	model := s.inner.Model()
	assign := make([]bool, s.nVars+1)
	for i := 0; i < s.nVars && i < len(model); i++ {
		assign[i+1] = model[i]
	}

	return assign, true
}

// Block appends a clause to the solver, typically the negation of a
// previously returned model.
func (s *Solver) Block(lits ...int) {
	converted := make([]solver.Lit, len(lits))
	for i, l := range lits {
		converted[i] = solver.IntToLit(int32(l))
	}
	s.inner.AppendClause(solver.NewClause(converted))
}

// Sat reports whether the formula extended by the given assumptions
// has any model, using a fresh single-shot instance.
func Sat(f *Formula, extra ...[]int) bool {
	clauses := make([][]int, 0, len(f.Clauses)+len(extra))
	clauses = append(clauses, f.Clauses...)
	clauses = append(clauses, extra...)
	s := solver.New(solver.ParseSlice(clauses))

	return s.Solve() == solver.Sat
}

// SolveOne returns a single model of the formula extended by extra
// clauses, or ok=false when unsatisfiable.
func SolveOne(f *Formula, extra ...[]int) ([]bool, bool) {
	clauses := make([][]int, 0, len(f.Clauses)+len(extra))
	clauses = append(clauses, f.Clauses...)
	clauses = append(clauses, extra...)
	s := solver.New(solver.ParseSlice(clauses))
	if s.Solve() != solver.Sat {
		return nil, false
	}
	model := s.Model()
	assign := make([]bool, f.NumVars+1)
	for i := 0; i < f.NumVars && i < len(model); i++ {
		assign[i+1] = model[i]
	}

	return assign, true
}
