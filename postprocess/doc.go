// Package postprocess scores a finished scenario's turn-matching quality,
// checks it for reverse turns, flat/straight/loop stroke patterns and a
// handful of small bonuses, and computes an alternative "new-distance"
// metric used by the final ranker. It runs once a beam-search or
// incremental candidate is marked finished, after scenario expansion has
// already produced the distance/cosine/curve component scores.
package postprocess
