// Package af provides the immutable argumentation-framework model that
// every ranking semantics in this repository operates on.
//
// An AF is a finite directed graph (A, R) whose vertices are arguments
// identified by consecutive integers 1…N and whose edges are attacks.
// Self-loops are permitted. After construction the framework is
// read-only, so it can be shared across goroutines without locking.
//
// The package exposes:
//
//   - AF          - the framework itself, with O(1) amortised access to
//     attackers, attackees, edge membership and counts.
//   - Subgraph    - an induced subgraph over a subset of arguments,
//     sharing the parent's edge relation.
//   - View        - the read interface implemented by both, consumed by
//     extension finders and the serialisation solver.
//   - ArgSet      - a bitset-backed argument set used for extensions,
//     subgraph membership and set algebra.
//   - Matrix      - a CSR sparse matrix over the attack relation, with
//     saturating int64 products for path counting and a float matvec
//     for fixed-point iteration.
//   - Parse / ParseFile - the ICCMA ".af" text format reader.
//
// Construction errors use the package sentinels (ErrBadArgumentCount,
// ErrUnknownArgument, ErrParse); malformed attack lines in a parsed
// file are skipped with a warning rather than failing the whole file.
package af
