package preprocess

import (
	"math"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/params"
)

// detectSharpTurns scans [start, end) for local maxima of the absolute sum
// of three consecutive raw turn angles, marking a sharp turn (class 1,
// promoted to U-turn class 2 when the sum also exceeds TurnThreshold2) at
// the index carrying the single largest contribution. A cooldown window
// suppresses immediate re-detection so a single broad turn is not reported
// twice.
func detectSharpTurns(store *curvestore.Store, p params.Params, start, end int) {
	n := store.Size()
	// sum3 needs turn[i-1..i+1], each of which needs i in [1, n-2]; so i
	// itself must be in [2, n-3].
	lo, hi := start, end
	if lo < 2 {
		lo = 2
	}
	if hi > n-2 {
		hi = n - 2
	}
	if lo >= hi {
		return
	}

	sum3 := func(i int) float64 {
		return store.RawTurn(i-1) + store.RawTurn(i) + store.RawTurn(i+1)
	}

	cooldown := int(p.SharpTurnCooldown)
	if cooldown < 0 {
		cooldown = 0
	}

	for i := lo; i < hi; i++ {
		cur := math.Abs(sum3(i))
		if cur <= p.TurnThreshold {
			continue
		}
		prevAbs := math.Abs(sum3(i - 1))
		nextAbs := math.Abs(sum3(i + 1))
		if cur < prevAbs || cur < nextAbs {
			continue // not a local maximum
		}

		// Pick the index among {i-1, i, i+1} with the single largest
		// |raw turn|, per spec: "mark ... at the index that carries the
		// largest single contribution".
		best := i
		bestAbs := math.Abs(store.RawTurn(i))
		for _, j := range [2]int{i - 1, i + 1} {
			if a := math.Abs(store.RawTurn(j)); a > bestAbs {
				best, bestAbs = j, a
			}
		}

		class := curvestore.SpecialSharpTurn
		if cur > p.TurnThreshold2 {
			class = curvestore.SpecialUTurn
		}
		store.SetSpecial(best, class)
		store.SetNormal(best, sharpTurnNormal(store, best))

		i += cooldown // suppress immediate re-detection
	}
}

// sharpTurnNormal computes the bias normal vector at index i: the
// difference of the unit tangents immediately before and after i, scaled
// by 100.
func sharpTurnNormal(store *curvestore.Store, i int) geom.Vec {
	n := store.Size()
	if i <= 0 || i >= n-1 {
		return geom.Vec{}
	}
	before := store.PositionVec(i).Sub(store.PositionVec(i - 1)).Normalized()
	after := store.PositionVec(i + 1).Sub(store.PositionVec(i)).Normalized()
	return after.Sub(before).Scale(100)
}

// detectSlowDowns scans [start, end) for local speed minima that fall by a
// factor >= SlowDownRatio on both sides, marking class 3 at indices not
// already classified as a sharp turn or U-turn.
func detectSlowDowns(store *curvestore.Store, p params.Params, start, end int) {
	n := store.Size()
	window := int(p.SlowDownWindow)
	if window < 1 {
		window = 1
	}
	lo, hi := start, end
	if lo < window {
		lo = window
	}
	if hi > n-window {
		hi = n - window
	}

	for i := lo; i < hi; i++ {
		if store.Special(i, false).IsMandatory() {
			continue
		}
		speed := store.Speed(i)
		leftMax := maxSpeedIn(store, i-window, i)
		rightMax := maxSpeedIn(store, i+1, i+window+1)
		if leftMax <= 0 || rightMax <= 0 {
			continue
		}
		if speed > leftMax*p.SlowDownRatio || speed > rightMax*p.SlowDownRatio {
			continue
		}
		if !isLocalMin(store, i, window) {
			continue
		}
		store.SetSpecial(i, curvestore.SpecialSlowDown)
	}
}

func maxSpeedIn(store *curvestore.Store, lo, hi int) float64 {
	max := 0.0
	for i := lo; i < hi; i++ {
		if v := store.Speed(i); v > max {
			max = v
		}
	}
	return max
}

func isLocalMin(store *curvestore.Store, i, window int) bool {
	v := store.Speed(i)
	for j := i - window; j <= i+window; j++ {
		if j == i {
			continue
		}
		if store.Speed(j) < v {
			return false
		}
	}
	return true
}

// detectInflections scans [start, end) for sign changes of the triangular
// (1,2,1-weighted) local sum of raw turn angles, bounded by TurnMinAngle
// and TurnMaxAngle, marking class 4 at indices with no classification yet.
func detectInflections(store *curvestore.Store, p params.Params, start, end int) {
	n := store.Size()
	lo, hi := start, end
	if lo < 2 {
		lo = 2
	}
	if hi > n-2 {
		hi = n - 2
	}
	if lo >= hi {
		return
	}

	triSum := func(i int) float64 {
		return store.RawTurn(i-1) + 2*store.RawTurn(i) + store.RawTurn(i+1)
	}

	for i := lo; i < hi; i++ {
		a, b := triSum(i-1), triSum(i)
		if (a >= 0) == (b >= 0) {
			continue // no sign change
		}
		mag := math.Abs(b - a)
		if mag < p.TurnMinAngle || mag > p.TurnMaxAngle {
			continue
		}
		if store.Special(i, false) == curvestore.SpecialNone {
			store.SetSpecial(i, curvestore.SpecialInflection)
		}
	}
}
