// Package cat implements the categoriser ranking semantics (Cat).
//
// The strength of an argument is 1 when it has no attackers and
// 1 / (1 + Σ strength(attackers)) otherwise. The unique fixed point of
// that system is found by vectorised iteration: one sparse
// matrix-vector product per step over the transposed attack matrix,
// terminating when the ∞-norm of the step delta falls below the
// tolerance or the iteration cap is reached. The cap case is reported
// on the result rather than logged; the last iterate is still
// returned.
//
// Strengths lie in (0, 1]; arguments whose strengths differ by less
// than the tolerance share one equivalence class of the induced
// ranking.
package cat
