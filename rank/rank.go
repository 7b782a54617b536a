package rank

import (
	"math"
	"sort"

	"github.com/katalvlaran/swipematch/beam"
	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/scenario"
)

// Ranked is a candidate plus the adjusted score it was ordered by.
type Ranked struct {
	beam.Candidate
	Adj float64
}

// Run ranks candidates by an adjusted score that rewards a low average
// misc/turn penalty and penalizes falling far behind the pool's best raw
// score or new-distance, then shifts every adjusted score so the maximum
// lands on the pool's quality baseline (the highest raw score after
// discounting each candidate by its own error count, capped at 2) before
// sorting descending.
func Run(candidates []beam.Candidate, p params.Params) []Ranked {
	if len(candidates) == 0 {
		return nil
	}

	minDist := math.Inf(1)
	maxScoreV1 := math.Inf(-1)
	for _, c := range candidates {
		if c.NewDistance < minDist {
			minDist = c.NewDistance
		}
		if c.Score > maxScoreV1 {
			maxScoreV1 = c.Score
		}
	}

	quality := math.Inf(-1)
	for _, c := range candidates {
		q := c.Score - p.CoefError*math.Min(2, float64(c.Scenario.ErrorCount()))
		if q > quality {
			quality = q
		}
	}

	out := make([]Ranked, len(candidates))
	maxAdj := math.Inf(-1)
	for i, c := range candidates {
		avgMisc, avgTurn := averageMiscTurn(c.Rows)

		turnTerm := p.FinalCoefTurn * math.Pow(math.Max(0, avgTurn), p.FinalCoefTurnExp)
		overshoot := math.Max(0, maxScoreV1-p.FinalScoreV1Threshold-c.Score)
		distTerm := 0.1 * math.Pow((c.NewDistance-minDist)/p.FinalNewDistRange, p.FinalNewDistPow)

		numerator := p.FinalCoefMisc*avgMisc + turnTerm - p.FinalScoreV1Coef*overshoot - distTerm
		adj := numerator/(1+p.FinalCoefTurn) - p.CoefError*float64(c.Scenario.ErrorCount())

		out[i] = Ranked{Candidate: c, Adj: adj}
		if adj > maxAdj {
			maxAdj = adj
		}
	}

	shift := quality - maxAdj
	for i := range out {
		out[i].Adj += shift
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Adj > out[j].Adj })
	return out
}

// averageMiscTurn returns the mean Misc and Turn component scores across
// a candidate's rows.
func averageMiscTurn(rows []scenario.ScoreSet) (misc, turn float64) {
	if len(rows) == 0 {
		return 0, 0
	}
	var sumMisc, sumTurn float64
	for _, r := range rows {
		sumMisc += r.Misc
		sumTurn += r.Turn
	}
	n := float64(len(rows))
	return sumMisc / n, sumTurn / n
}
