// Package sat is a thin incremental wrapper around the gophersat CDCL
// solver, shaped for model enumeration.
//
// Callers build a CNF as slices of DIMACS-style literals (positive int
// = variable true, negative = false), then alternate Next, which
// returns the next model, with Block, which appends a blocking clause
// before the following Next. Secondary instances over the same clause
// base support the subset-minimality probes used by the serialisation
// solver.
//
// The encoding conventions (which variable means what) belong to the
// callers; this package only owns the solver lifecycle.
package sat
