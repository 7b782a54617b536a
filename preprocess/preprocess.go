package preprocess

import (
	"math"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/params"
)

// WindowBackoff is how many points before the curve's previous "last valid"
// index a subsequent Run call rewinds to, so that windowed features
// (5-point speed average, 3-point turn sums) near the boundary get fully
// recomputed once their neighbors exist.
const WindowBackoff = 6

// Run refines the derived columns of store over the suffix starting at
// max(0, fromIndex-WindowBackoff). Passing fromIndex == 0 (or a negative
// value) reprocesses the whole curve. The operations run in the fixed
// fixed order: raw turn, smoothed turn, speed, sharp-turn/U-turn
// detection, slow-down detection, inflection detection.
func Run(store *curvestore.Store, p params.Params, fromIndex int) {
	n := store.Size()
	if n == 0 {
		return
	}
	start := fromIndex - WindowBackoff
	if start < 0 {
		start = 0
	}

	computeRawTurn(store, start, n)
	computeSmoothedTurn(store, start, n)
	computeSpeed(store, start, n)
	detectSharpTurns(store, p, start, n)
	detectSlowDowns(store, p, start, n)
	detectInflections(store, p, start, n)
}

// computeRawTurn fills the raw signed turn angle (degrees) at every
// interior index in [start, end).
func computeRawTurn(store *curvestore.Store, start, end int) {
	n := store.Size()
	for i := start; i < end; i++ {
		if i <= 0 || i >= n-1 {
			store.SetRawTurn(i, 0)
			continue
		}
		prev := store.PositionVec(i - 1)
		cur := store.PositionVec(i)
		next := store.PositionVec(i + 1)
		in := cur.Sub(prev)
		out := next.Sub(cur)
		store.SetRawTurn(i, geom.AngleVec(in, out)*180/math.Pi)
	}
}

// computeSmoothedTurn applies the 0.5/0.25/0.25 neighbor-weighted average
// to the raw turn column.
func computeSmoothedTurn(store *curvestore.Store, start, end int) {
	n := store.Size()
	for i := start; i < end; i++ {
		switch {
		case n == 1:
			store.SetSmoothTurn(i, 0)
		case i == 0:
			store.SetSmoothTurn(i, store.RawTurn(i)*0.75+store.RawTurn(i+1)*0.25)
		case i == n-1:
			store.SetSmoothTurn(i, store.RawTurn(i)*0.75+store.RawTurn(i-1)*0.25)
		default:
			store.SetSmoothTurn(i, store.RawTurn(i)*0.5+store.RawTurn(i-1)*0.25+store.RawTurn(i+1)*0.25)
		}
	}
}

// speedWindow is the half-width of the window averaged to compute speed;
// the full window spans 2*speedWindow+1 points when available.
const speedWindow = 2

// computeSpeed divides arc length by elapsed time over a (clipped)
// five-point window centered on each index.
func computeSpeed(store *curvestore.Store, start, end int) {
	n := store.Size()
	for i := start; i < end; i++ {
		lo := i - speedWindow
		if lo < 0 {
			lo = 0
		}
		hi := i + speedWindow
		if hi > n-1 {
			hi = n - 1
		}
		if lo == hi {
			store.SetSpeed(i, 0)
			continue
		}
		dLen := store.CumLength(hi) - store.CumLength(lo)
		dt := store.Timestamp(hi) - store.Timestamp(lo)
		if dt <= 0 {
			// Zero-duration window: fall back to the previous index's
			// value rather than producing +Inf.
			if i > 0 {
				store.SetSpeed(i, store.Speed(i-1))
			} else {
				store.SetSpeed(i, 0)
			}
			continue
		}
		store.SetSpeed(i, dLen/(float64(dt)/1000.0))
	}
}
