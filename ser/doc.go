// Package ser implements the serialisation-based ranking semantics
// (Ser).
//
// A serialisation sequence accepts one initial set — a ⊂-minimal
// non-empty admissible set — at a time, each drawn from the reduct of
// the framework by everything accepted or attacked so far. The
// serialisation index of an argument is the earliest step at which it
// belongs to an initial set of some reduct; arguments never appearing
// in one keep index +∞. Arguments rank ascending by index.
//
// Initial sets are enumerated with an incremental SAT solver:
// admissibility plus non-emptiness as CNF, each model probed for
// subset-minimality by a secondary instance restricted to its proper
// subsets, then blocked. The recursion over serialisation sequences
// prunes any branch whose reduct can no longer improve an index.
package ser
