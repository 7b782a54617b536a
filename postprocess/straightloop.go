package postprocess

import (
	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
)

// straightness is a ratio-like quantity in [0, +inf): 0 for a perfectly
// straight stroke (arc length equals the chord length between the first
// and last matched curve point), growing as the path wanders relative to
// its endpoints.
func straightness(curve *curvestore.Store, indices []int) float64 {
	n := len(indices)
	if n < 2 {
		return 0
	}
	arc := curve.SegmentLength(indices[0], indices[n-1])
	chord := geom.Distance(curve.Position(indices[0]), curve.Position(indices[n-1]))
	if chord <= 0 {
		return 0
	}
	return arc/chord - 1
}

// hasRealTurn reports whether any interior turn step exceeds the
// sharp-turn detection threshold, i.e. the scenario genuinely changes
// direction rather than just following sensor noise.
func hasRealTurn(steps []turnStep, p params.Params) bool {
	for _, st := range steps {
		if absF(st.final) > p.TurnThreshold {
			return true
		}
	}
	return false
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// straightPenalty implements the straightness-vs-turn-count consistency
// check and the stroke-direction-vs-chord alignment score.
func straightPenalty(keys *keystore.Store, curve *curvestore.Store, letters []keystore.LetterID, indices []int, steps []turnStep, p params.Params) float64 {
	n := len(indices)
	if n < 2 {
		return 0
	}
	s := straightness(curve, indices)
	real := hasRealTurn(steps, p)

	var penalty float64
	if s < p.StraightThresholdLow && real {
		penalty += 0.1 * float64(len(steps))
	}
	if s > p.StraightThresholdHigh && !real {
		penalty += 0.2
	}

	strokeDir := curve.PositionVec(indices[n-1]).Sub(curve.PositionVec(indices[0]))
	chordDir := geom.VecOf(keys.Center(letters[n-1])).Sub(geom.VecOf(keys.Center(letters[0])))
	cos := geom.CosAngle(strokeDir.X, strokeDir.Y, chordDir.X, chordDir.Y)
	penalty += (1 - cos) * 0.1

	return penalty
}

// loopPenalty flags a matched span that doubles back close to itself
// without traveling far enough, or without being bracketed by opposing
// turns, to justify reading it as a deliberate loop letter (e.g. the
// stroke for a cursive-style loop shape) rather than jitter.
func loopPenalty(curve *curvestore.Store, indices []int, steps []turnStep, p params.Params) float64 {
	n := len(indices)
	if n < 3 {
		return 0
	}
	var penalty float64
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			gap := geom.Distance(curve.Position(indices[i]), curve.Position(indices[j]))
			arc := curve.SegmentLength(indices[i], indices[j])
			if arc <= 0 || gap > arc*0.15 {
				continue
			}
			// A candidate loop: does it travel far enough, or sit between
			// opposite-signed turns, to be deliberate?
			if arc > p.TurnOptim {
				continue
			}
			bracketed := false
			if i > 0 && i-1 < len(steps) && j-1 >= 0 && j-1 < len(steps) {
				if sign(steps[i-1].final) != 0 && sign(steps[i-1].final) == -sign(steps[j-1].final) {
					bracketed = true
				}
			}
			if !bracketed {
				penalty += p.LoopPenalty
			}
		}
	}
	return penalty
}
