// Package dbs implements the discussion-based ranking semantics (Dbs).
//
// For each argument the solver builds a discussion vector of length L
// whose k-th entry is the number of length-k attack paths terminating
// at the argument — row sums of (Mᵀ)ᵏ — signed positive for odd k
// (attacking sequences) and negative for even k (defending ones).
// Powers are computed by repeated sparse multiplication; once a power
// is all-zero the remaining positions are padded with zeros and the
// multiplication stops.
//
// Arguments are ranked ascending by lexicographic comparison of their
// vectors: fewer inbound attack sequences first. Equal vectors share
// an equivalence class.
//
// Path counts can grow exponentially. Entries saturate at MaxInt64
// rather than wrapping; saturation is sticky for the rest of the run
// and reported on the Result, and the lexicographic order stays total.
package dbs
