// Package bench orchestrates the empirical correlation study over a
// benchmark corpus of .af files.
//
// It discovers frameworks under the configured benchmark roots, runs
// the named semantics on each under a wall-clock bound, normalises
// the resulting rankings, and writes one Kendall and one Spearman
// correlation matrix CSV per framework. A timeout leaves a sentinel
// file beside the results so reruns skip the framework; existing
// result files are likewise skipped, making the study resumable.
//
// Classify scans the corpus and emits structural metadata per
// framework (cyclicity, size and density groups, connectivity,
// processing status). Report aggregates the per-framework matrices
// into mean, median and standard-deviation summaries, optionally
// stratified by a structural class, and can render the averages as a
// bar chart.
package bench
