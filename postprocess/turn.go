package postprocess

import (
	"math"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
)

// turnStep is the per-interior-letter turn geometry computed from three
// consecutive key positions and the corresponding three curve points.
type turnStep struct {
	expected  float64 // degrees, from raw key centers
	corrected float64 // degrees, from corrected key centers
	actual    float64 // degrees, from curve points
	final     float64 // whichever of expected/corrected is closer to actual
	lenBefore float64
	lenAfter  float64
	isTip     bool
}

// computeTurnSteps computes one turnStep per interior letter (positions
// 1..n-2 of the matched letter sequence).
func computeTurnSteps(keys *keystore.Store, curve *curvestore.Store, letters []keystore.LetterID, indices []int) []turnStep {
	n := len(letters)
	if n < 3 {
		return nil
	}
	out := make([]turnStep, n-2)
	for i := 1; i < n-1; i++ {
		rawA, rawB, rawC := keys.Center(letters[i-1]), keys.Center(letters[i]), keys.Center(letters[i+1])
		corA := keys.CorrectedCenter(letters[i-1])
		corB := keys.CorrectedCenter(letters[i])
		corC := keys.CorrectedCenter(letters[i+1])
		curA, curB, curC := curve.PositionVec(indices[i-1]), curve.PositionVec(indices[i]), curve.PositionVec(indices[i+1])

		expected := angleDeg(geom.VecOf(rawB).Sub(geom.VecOf(rawA)), geom.VecOf(rawC).Sub(geom.VecOf(rawB)))
		corrected := angleDeg(geom.VecOf(corB).Sub(geom.VecOf(corA)), geom.VecOf(corC).Sub(geom.VecOf(corB)))
		actual := angleDeg(curB.Sub(curA), curC.Sub(curB))

		expected = foldUTurn(expected, actual)
		corrected = foldUTurn(corrected, actual)

		final := expected
		if math.Abs(actual-corrected) < math.Abs(actual-expected) {
			final = corrected
		}

		out[i-1] = turnStep{
			expected:  expected,
			corrected: corrected,
			actual:    actual,
			final:     final,
			lenBefore: curve.SegmentLength(indices[i-1], indices[i]),
			lenAfter:  curve.SegmentLength(indices[i], indices[i+1]),
			isTip:     i == 1 || i == n-2,
		}
	}
	return out
}

func angleDeg(in, out geom.Vec) float64 {
	return geom.AngleVec(in, out) * 180 / math.Pi
}

// foldUTurn resolves the ±180° ambiguity of a near-U-turn expected angle
// by flipping its sign to agree with actual, so expected·actual > 0 for
// turns that are "the same U-turn" up to sign convention.
func foldUTurn(expected, actual float64) float64 {
	if math.Abs(math.Abs(expected)-180) < 30 && expected*actual < 0 {
		return -expected
	}
	return expected
}

// turnBlock groups consecutive turnSteps that share a turn sign into one
// unit for transfer and scoring purposes.
type turnBlock struct {
	start, end int // inclusive indices into the turnStep slice
	sign       float64
	matched    bool
}

func sign(v float64) float64 {
	switch {
	case v > 1e-6:
		return 1
	case v < -1e-6:
		return -1
	default:
		return 0
	}
}

func groupTurnBlocks(steps []turnStep) []turnBlock {
	if len(steps) == 0 {
		return nil
	}
	var blocks []turnBlock
	cur := turnBlock{start: 0, end: 0, sign: sign(steps[0].final)}
	for i := 1; i < len(steps); i++ {
		s := sign(steps[i].final)
		if s == cur.sign {
			cur.end = i
			continue
		}
		blocks = append(blocks, cur)
		cur = turnBlock{start: i, end: i, sign: s}
	}
	blocks = append(blocks, cur)
	for bi := range blocks {
		matchedCount := 0
		b := blocks[bi]
		for i := b.start; i <= b.end; i++ {
			if steps[i].actual*steps[i].final >= 0 {
				matchedCount++
			}
		}
		blocks[bi].matched = matchedCount*2 >= (b.end - b.start + 1)
	}
	return blocks
}

// applyTurnTransfer redistributes a bounded fraction of a block's
// corrected turn onto its immediate neighbor, favoring short arcs (a
// tight user-drawn corner splits across two letters but should still
// read as one matched turn). Operates on a copy of steps; the caller's
// slice is left untouched.
func applyTurnTransfer(steps []turnStep, blocks []turnBlock, p params.Params) []turnStep {
	out := append([]turnStep(nil), steps...)
	for bi := 0; bi+1 < len(blocks); bi++ {
		a, b := blocks[bi], blocks[bi+1]
		gapLen := out[a.end].lenAfter
		transferable := p.TurnMaxTransfer * (1 - gapLen/p.TurnOptim)
		if transferable <= 0 {
			continue
		}
		if transferable > p.TurnMaxTransfer {
			transferable = p.TurnMaxTransfer
		}
		deficit := out[b.start].final - out[b.start].actual
		out[a.end].actual += deficit * transferable
	}
	return out
}

// turnScore2 implements the y/y0/y1/y2 piecewise turn-matching score.
func turnScore2(st turnStep, matched bool, p params.Params) float64 {
	if st.actual*st.final < 0 {
		return 0
	}
	if st.lenBefore < 5 && st.lenAfter < 5 {
		return 1 // degenerate zig-zag over a near-zero arc: ignore
	}

	y0 := 5.0
	if math.Abs(st.final) > p.Turn2LargeThreshold {
		y0 += 10
	}
	if st.isTip && (st.lenBefore < 15 || st.lenAfter < 15) {
		y0 += 10
	}
	y1 := p.Turn2YScale
	y2 := maxF(y1*p.Turn2YScaleRatio, y1+p.Turn2MinY2)

	y := math.Abs(st.actual - st.final)

	var score float64
	switch {
	case y <= y0:
		score = 1
	case y-y0 <= y1:
		score = 1 - p.Turn2Score1*(y-y0)/y1
	default:
		frac := (y - y0 - y1) / (y2 - y1)
		score = 1 - p.Turn2Score1 - (1-p.Turn2Score1)*math.Pow(frac, p.Turn2ScorePow)
	}
	if !matched {
		score -= p.TurnScoreUnmatched
	}
	if score < 0.01 {
		score = 0.01
	}
	return score
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// turnMatchScores scores every interior letter's turn and also returns
// the average cross-check penalty against class-2 special points.
func turnMatchScores(keys *keystore.Store, curve *curvestore.Store, letters []keystore.LetterID, indices []int, p params.Params) ([]float64, float64) {
	steps := computeTurnSteps(keys, curve, letters, indices)
	if len(steps) == 0 {
		return nil, 0
	}
	blocks := groupTurnBlocks(steps)
	transferred := applyTurnTransfer(steps, blocks, p)

	scores := make([]float64, len(steps))
	blockOf := make([]int, len(steps))
	for bi, b := range blocks {
		for i := b.start; i <= b.end; i++ {
			blockOf[i] = bi
		}
	}
	for i, st := range transferred {
		scores[i] = turnScore2(st, blocks[blockOf[i]].matched, p)
	}

	penalty := crossCheckUTurns(steps, curve, indices, p)
	return scores, penalty
}

// crossCheckUTurns penalizes an expected sharp turn with no nearby class-2
// special point, and a class-2 special point with no corresponding
// expected sharp turn.
func crossCheckUTurns(steps []turnStep, curve *curvestore.Store, indices []int, p params.Params) float64 {
	if len(steps) == 0 {
		return 0
	}
	const window = 2
	var mismatches, checks int

	hasClass2Near := func(idx int) bool {
		n := curve.Size()
		lo, hi := idx-window, idx+window
		if lo < 0 {
			lo = 0
		}
		if hi > n-1 {
			hi = n - 1
		}
		for j := lo; j <= hi; j++ {
			if curve.Special(j, false) == curvestore.SpecialUTurn {
				return true
			}
		}
		return false
	}

	for i, st := range steps {
		checks++
		idx := indices[i+1]
		if math.Abs(st.final) > p.St2Max && !hasClass2Near(idx) {
			mismatches++
		}
	}

	from, to := indices[0], indices[len(indices)-1]
	for j := from; j <= to; j++ {
		if curve.Special(j, false) != curvestore.SpecialUTurn {
			continue
		}
		if math.Abs(curve.SmoothTurn(j)) < 5 {
			continue // near-zero local turn rate: not a real U-turn miss
		}
		near := false
		for _, idx := range indices {
			if idx >= j-window && idx <= j+window {
				near = true
				break
			}
		}
		if !near {
			checks++
			mismatches++
		}
	}

	if checks == 0 {
		return 0
	}
	return p.SharpTurnPenalty * float64(mismatches) / float64(checks)
}
