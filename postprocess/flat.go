package postprocess

import (
	"math"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
)

// flatSegmentPenalty checks every interior letter whose expected turn is
// within flat_max_angle of 0 or 180 degrees: the curve between its
// neighbors should trace (close to) a straight chord. Only the turn at
// that letter is tested, not the turns at its neighbors. It returns one
// total penalty for the scenario; the penalty is not split onto the rows
// adjacent to each offending step (Run spreads it over all rows).
func flatSegmentPenalty(curve *curvestore.Store, indices []int, steps []turnStep, p params.Params) float64 {
	isFlatAngle := func(a float64) bool {
		a = math.Mod(math.Abs(a), 360)
		return a <= p.FlatMaxAngle || math.Abs(a-180) <= p.FlatMaxAngle
	}

	var total float64
	for i, st := range steps {
		if !isFlatAngle(st.expected) {
			continue
		}
		lo, hi := indices[i], indices[i+2]
		if hi <= lo {
			continue
		}
		a, b := curve.Position(lo), curve.Position(hi)
		var maxDev float64
		for j := lo; j <= hi; j++ {
			d := geom.DistLinePoint(a, b, curve.Position(j))
			if d > maxDev {
				maxDev = d
			}
		}
		if maxDev > p.FlatMaxDeviation {
			total += p.FlatScore * (maxDev/p.FlatMaxDeviation - 1)
		}
	}
	return total
}

// flatRowPenalty checks contiguous prefixes/suffixes of letters sharing a
// keyboard row: the curve across their x-range should stay nearly flat
// too. Rows are grouped by each key's raw Y center.
func flatRowPenalty(keys *keystore.Store, curve *curvestore.Store, letters []keystore.LetterID, indices []int, p params.Params) float64 {
	n := len(letters)
	if n < 2 {
		return 0
	}

	var total float64
	i := 0
	for i < n {
		row := keys.Center(letters[i]).Y
		j := i
		for j+1 < n && keys.Center(letters[j+1]).Y == row {
			j++
		}
		if j > i && (i == 0 || j == n-1) {
			lo, hi := indices[i], indices[j]
			var minY, maxY int
			minY, maxY = curve.Position(lo).Y, curve.Position(lo).Y
			for k := lo; k <= hi; k++ {
				y := curve.Position(k).Y
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
			height := float64(maxY - minY)
			if height > p.Flat2MaxHeight {
				total += p.Flat2ScoreMax / float64(j-i+1)
			}
		}
		i = j + 1
	}
	return total
}
