// Package prob implements the probabilistic ranking semantics.
//
// Under the constellation model every argument exists independently
// with probability p; an argument's score is the probability that it
// is credulously accepted — a member of some extension — in the random
// induced subgraph, under a chosen extension semantics.
//
// The Monte-Carlo semantics (p-Grounded, p-Complete, p-Preferred,
// p-Ideal) share one dispatcher, Rank, generic over an
// extensions.Finder. When 2ⁿ is below the sample budget the dispatcher
// enumerates every subgraph and weights it by p^|G'|·(1−p)^(n−|G'|),
// yielding exact scores; otherwise it draws independent samples across
// a bounded worker pool (default width max(1, cores/2)) with
// deterministic per-worker seeding. For frameworks beyond 30 arguments
// a documented fixed-size heuristic replaces Bernoulli sampling with a
// uniform draw of min(16, n) arguments; it trades formal correctness
// for tractability under SAT-heavy semantics and defaults on.
//
// p-Admissible and p-Stable have closed forms and skip simulation
// entirely. p-Stable scores live in log-domain — singleton stability
// underflows linear probability on sparse graphs — so larger (less
// negative) is better and self-attackers score −∞.
package prob
