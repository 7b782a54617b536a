package postprocess

import (
	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
)

// smallTipPenalty is charged when a tip segment collapses to essentially
// no curve travel at all; there is no dedicated tunable for this in
// params.Params, so a small fixed constant is used.
const smallTipPenalty = 0.15

// matchWindow is how close a curve index must be to a matched index to
// count as "covered" by the alignment, for the unmatched-special-point
// check below.
const matchWindow = 1

// miscBonuses folds together the small-tip penalty, unmatched soft
// special-point penalties, and the bad tip-tangent check into one total
// to subtract from the scenario's misc score.
func miscBonuses(keys *keystore.Store, curve *curvestore.Store, letters []keystore.LetterID, indices []int, p params.Params) float64 {
	n := len(indices)
	if n < 2 {
		return 0
	}
	var penalty float64

	if indices[1]-indices[0] <= 1 {
		penalty += smallTipPenalty
	}
	if indices[n-1]-indices[n-2] <= 1 {
		penalty += smallTipPenalty
	}

	covered := make(map[int]bool, n)
	for _, idx := range indices {
		for d := -matchWindow; d <= matchWindow; d++ {
			covered[idx+d] = true
		}
	}
	for j := indices[0]; j <= indices[n-1]; j++ {
		if covered[j] {
			continue
		}
		switch curve.Special(j, false) {
		case curvestore.SpecialSlowDown:
			penalty += p.SpeedPenalty
		case curvestore.SpecialSmallTurn:
			penalty += p.St5Score
		}
	}

	tangent := curve.PositionVec(indices[1]).Sub(curve.PositionVec(indices[0]))
	chord := geom.VecOf(keys.Center(letters[1])).Sub(geom.VecOf(keys.Center(letters[0])))
	cos := geom.CosAngle(tangent.X, tangent.Y, chord.X, chord.Y)
	if cos < 0 {
		penalty += -p.BadTangentScore * cos
	}

	return penalty
}
