// Package incremental drives the matcher as a curve streams in point by
// point, rather than all at once: each partial scenario carries a
// DelayedScenario schedule of curve-length thresholds, one per letter it
// might expand into next, and expansion for a given letter is deferred
// until the curve has grown far enough (or the curve has ended) to make
// that attempt meaningful. It reuses package scenario for expansion and
// package beam's scoring, pruning and duplicate-elimination helpers so
// that a one-shot and an incremental run of the same curve converge on
// the same candidate set.
package incremental
