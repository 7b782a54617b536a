// Package preprocess computes the per-point derived attributes a raw
// swipe curve needs before scenario expansion can run: turn angle,
// smoothed turn angle, speed, and the special-point classification
// (sharp turn, U-turn, slow-down, inflection).
//
// Run is idempotent: calling it twice over the same range with the same
// curve leaves every derived column unchanged, because each pass
// recomputes its column from the raw (x, y, t) samples and from columns
// that earlier passes of the same call have just recomputed, and the
// detection passes mark the same indices again.
package preprocess
