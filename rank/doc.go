// Package rank applies the final cross-candidate ranking pass: given the
// pruned candidate pool either driver (package beam or package
// incremental) produces, it computes an adjusted score per candidate that
// rewards low misc/turn penalties and a small new-distance tie-break
// margin over the pool's best raw score, and returns candidates sorted by
// that adjusted score, descending.
package rank
