// Package curvestore implements the columnar storage of a swipe curve:
// raw (x, y, t) samples plus the per-point attributes derived by package
// preprocess (turn angle, smoothed turn angle, speed, cumulative arc
// length, special-point classification, sharp-turn normal vector,
// end-of-curve marker).
//
// Storage is columnar (parallel slices rather than a slice of structs)
// because the matcher re-reads individual columns (e.g. "all turn angles")
// far more often than whole records, and because package preprocess
// mutates single columns in place over a suffix of the curve as new
// points arrive.
package curvestore
