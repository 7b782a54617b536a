package postprocess

import (
	"math"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/params"
)

// reverseTurnPenalty sums, over the curve span before the first turn
// block, between every adjacent pair, and after the last, how much the
// raw turn-rate ran against the block's own direction — weighted more
// heavily away from the curve tips, where a wobble is more likely to be
// deliberate than noise.
func reverseTurnPenalty(curve *curvestore.Store, indices []int, blocks []turnBlock, p params.Params) float64 {
	n := len(indices)
	if n < 3 || len(blocks) == 0 {
		return 0
	}

	type window struct {
		lo, hi   int // curve indices, inclusive
		expected float64
		isTip    bool
	}
	var windows []window

	blockIndex := func(stepPos int) int { return indices[stepPos+1] }

	windows = append(windows, window{lo: indices[0], hi: blockIndex(blocks[0].start), expected: blocks[0].sign, isTip: true})
	for i := 0; i+1 < len(blocks); i++ {
		a, b := blocks[i], blocks[i+1]
		expected := a.sign
		if expected == 0 {
			expected = b.sign
		}
		windows = append(windows, window{lo: blockIndex(a.end), hi: blockIndex(b.start), expected: expected})
	}
	last := blocks[len(blocks)-1]
	windows = append(windows, window{lo: blockIndex(last.end), hi: indices[n-1], expected: last.sign, isTip: true})

	var total float64
	for _, w := range windows {
		if w.hi <= w.lo {
			continue
		}
		width := w.hi - w.lo + 1
		var bad int
		var runs, flatRuns int
		prevKind := -1 // 0 neg, 1 flat, 2 pos; the -1 start sentinel forces a new run
		for j := w.lo; j <= w.hi; j++ {
			t := curve.SmoothTurn(j)
			kind := 1
			switch {
			case t > p.TurnMinAngle:
				kind = 2
			case t < -p.TurnMinAngle:
				kind = 0
			}
			if kind != prevKind {
				runs++
				if kind == 1 {
					flatRuns++
				}
				prevKind = kind
			}
			if w.expected != 0 {
				s := sign(t)
				if s != 0 && s != w.expected {
					bad++
				}
			}
		}

		coef := p.RTScoreCoef
		if w.isTip {
			coef = p.RTScoreCoefTip
		}
		penalty := coef * float64(bad) / float64(width)
		if runs > int(p.RT2MaxParts) {
			penalty += 0.1 * float64(runs-int(p.RT2MaxParts))
		}
		if flatRuns > 1 {
			penalty += 0.1 * float64(flatRuns-1)
		}
		total += penalty
	}
	return math.Max(total, 0)
}
