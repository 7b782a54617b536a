package postprocess

import (
	"math"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
)

// classCoef picks the per-class weight for a curve index's new-distance
// contribution, falling back to the plain sharp-turn coefficient for
// anything not explicitly called out.
func classCoef(class curvestore.SpecialClass, p params.Params) float64 {
	switch class {
	case curvestore.SpecialUTurn:
		return p.NewDistCoefClass2
	case curvestore.SpecialSlowDown:
		return p.NewDistCoefClass3
	case curvestore.SpecialSmallTurn:
		return p.NewDistCoefClass5
	case curvestore.SpecialMovableTurn:
		return p.NewDistCoefClass6
	default:
		return p.NewDistCoefClass1
	}
}

// perpSubstitute reports whether class-5/6 special points should be scored
// against the local chord (perpendicular deviation) instead of straight-line
// distance to the matched key's center.
func perpSubstitute(class curvestore.SpecialClass) bool {
	return class == curvestore.SpecialSmallTurn || class == curvestore.SpecialMovableTurn
}

// newDistance computes the length-biased power-mean distance metric used
// as a tie-breaker between otherwise close-scoring candidates: letters
// matched at a kinematically significant curve point are weighted more (or
// less) heavily than a plain pass-through letter, and fast segments are
// down-weighted relative to slow, deliberate ones.
func newDistance(keys *keystore.Store, curve *curvestore.Store, letters []keystore.LetterID, indices []int, p params.Params) float64 {
	n := len(letters)
	if n == 0 {
		return 0
	}

	var weightedSum, weightSum float64
	for i := 0; i < n; i++ {
		idx := indices[i]
		class := curve.Special(idx, false)

		var d float64
		if perpSubstitute(class) && i > 0 && i < n-1 {
			a := geom.VecOf(keys.Center(letters[i-1]))
			b := geom.VecOf(keys.Center(letters[i+1]))
			d = geom.DistLinePoint(geom.Point{X: int(a.X), Y: int(a.Y)}, geom.Point{X: int(b.X), Y: int(b.Y)}, curve.Position(idx))
		} else {
			d = geom.Distance(curve.Position(idx), keys.Center(letters[i]))
		}

		coef := classCoef(class, p)
		if i == 0 || i == n-1 {
			coef *= p.NewDistCoefTip
		}
		coef /= 1 + p.NewDistSpeedCoef*curve.Speed(idx)/1000

		weightedSum += coef * math.Pow(d, p.NewDistPow)
		weightSum += coef
	}

	if weightSum <= 0 {
		return 0
	}
	mean := math.Pow(weightedSum/weightSum, 1/p.NewDistPow)
	return math.Pow(float64(n), p.NewDistLengthBiasPow) * mean
}
