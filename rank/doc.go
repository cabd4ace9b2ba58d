// Package rank turns solver output into canonical rankings and
// compares rankings across semantics.
//
// A Ranking is an ordered sequence of non-empty, disjoint equivalence
// classes of arguments, best class first, partitioning the argument
// set. Solvers produce one either directly (Dbs, Ser group by exact
// vector / index equality) or via FromScores, which groups a score map
// by descending value within a tolerance.
//
// Normalize flattens either form into a single total order with
// deterministic tie-breaking (ascending argument identifier), the
// shape consumed by the correlation measures. Kendall's τ and
// Spearman's ρ operate on two normalized orders over the same
// argument set.
package rank
