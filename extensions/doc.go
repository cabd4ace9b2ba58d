// Package extensions computes Dung-style extensions of argumentation
// frameworks and their induced subgraphs.
//
// The central capability is Finder: given a read view of a framework,
// return its set of extensions as a finite list of argument sets. Four
// finders are provided:
//
//   - Grounded  - the unique least fixed point of the characteristic
//     function, by iterative accretion.
//   - Complete  - every complete extension, by SAT enumeration of the
//     three-valued in/out/undec labelling encoding.
//   - Preferred - the ⊂-maximal complete extensions, by filtering.
//   - Ideal     - the unique ideal extension, by the CDIS procedure
//     (shrink a candidate superset via SAT-found admissible attackers,
//     then grow the maximal complete extension inside it).
//
// The probabilistic semantics in package prob are generic over Finder;
// each concrete semantics differs only in the finder it plugs in.
//
// Every finder treats the empty view as having exactly one extension,
// the empty set, so credulous-acceptance bookkeeping stays uniform.
package extensions
