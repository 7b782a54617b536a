package postprocess

import (
	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/scenario"
)

// neutralScore fills a ScoreSet cell that has no dedicated computation for
// a given row (e.g. a tip letter has no interior turn angle of its own).
const neutralScore = 1.0

// Run scores a finished scenario's turn geometry, flatness, straightness,
// looping and miscellaneous checks, and computes its new-distance metric.
// It returns one ScoreSet per matched letter (Distance/Cos/Curve are
// carried over from the scenario unchanged; Length/Turn/Misc are filled in
// here) plus the scalar new-distance value used as a final tie-breaker.
func Run(keys *keystore.Store, curve *curvestore.Store, s scenario.Scenario) ([]scenario.ScoreSet, float64, error) {
	letters := s.Letters()
	indices := s.Indices()
	n := len(letters)
	if n == 0 {
		return nil, 0, ErrTooShort
	}
	p := s.Params()

	rows := append([]scenario.ScoreSet(nil), s.Steps()...)
	for i := range rows {
		// No per-letter length formula is specified beyond the
		// scenario-level length_penalty applied at final combination, so
		// every row carries a neutral length score.
		rows[i].Length = neutralScore
		rows[i].Turn = neutralScore
	}

	var totalPenalty float64
	if n >= 2 {
		totalPenalty += miscBonuses(keys, curve, letters, indices, p)
		totalPenalty += flatRowPenalty(keys, curve, letters, indices, p)
	}

	if n >= 3 {
		steps := computeTurnSteps(keys, curve, letters, indices)
		blocks := groupTurnBlocks(steps)
		transferred := applyTurnTransfer(steps, blocks, p)

		blockOf := make([]int, len(steps))
		for bi, b := range blocks {
			for i := b.start; i <= b.end; i++ {
				blockOf[i] = bi
			}
		}
		for i, st := range transferred {
			rows[i+1].Turn = turnScore2(st, blocks[blockOf[i]].matched, p)
		}

		totalPenalty += crossCheckUTurns(steps, curve, indices, p)
		totalPenalty += reverseTurnPenalty(curve, indices, blocks, p)
		totalPenalty += flatSegmentPenalty(curve, indices, steps, p)
		totalPenalty += straightPenalty(keys, curve, letters, indices, steps, p)
		totalPenalty += loopPenalty(curve, indices, steps, p)
	}

	miscPerRow := neutralScore - totalPenalty/float64(n)
	if miscPerRow < 0.01 {
		miscPerRow = 0.01
	}
	for i := range rows {
		rows[i].Misc = miscPerRow
	}

	dist := newDistance(keys, curve, letters, indices, p)
	return rows, dist, nil
}
