// Package arglab (ArgRankLab) computes rankings over arguments in
// abstract argumentation frameworks and studies how those rankings
// correlate across benchmark corpora.
//
// Nine ranking-based semantics are implemented:
//
//   - Cat          — categoriser strengths by fixed-point iteration
//   - Dbs          — discussion vectors by sparse matrix powers
//   - Ser          — serialisation indices by SAT-enumerated initial sets
//   - p-Admissible — closed-form singleton admissibility probability
//   - p-Stable     — closed-form singleton stability, log-domain
//   - p-Grounded, p-Complete, p-Preferred, p-Ideal
//     — credulous-acceptance probabilities under the
//     constellation model, exact or Monte-Carlo
//
// The packages, leaves first:
//
//	af/         — immutable AF model, subgraphs, CSR adjacency, .af parser
//	sat/        — thin incremental wrapper over the gophersat CDCL solver
//	rank/       — equivalence-class rankings, normalisation, Kendall/Spearman
//	extensions/ — grounded, complete, preferred and ideal extension finders
//	cat/ dbs/ ser/ prob/ — the semantics engines
//	runner/     — wall-clock timeout harness around any solver
//	bench/      — corpus discovery, classification, correlation CSVs, reports
//	cmd/argrank — the classify / run / report command line
//
// Solvers are pure and share frameworks read-only; Monte-Carlo
// sampling parallelises across a bounded worker pool with
// deterministic per-worker seeding.
package arglab
