package scoring

import (
	"fmt"
	"io"

	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/scenario"
)

// Sheet accumulates one row of component scores per matched letter and
// combines them into a single final score at Finalize.
type Sheet struct {
	p       params.Params
	letters []rune
	rows    []scenario.ScoreSet
	debug   io.Writer
}

// NewSheet returns an empty Sheet configured with p's column weights.
func NewSheet(p params.Params) *Sheet {
	return &Sheet{p: p}
}

// SetDebugWriter installs a writer that Finalize renders one aligned
// column line to per row, letter-by-letter, when non-nil.
func (s *Sheet) SetDebugWriter(w io.Writer) { s.debug = w }

// AddRow appends one matched letter's component scores.
func (s *Sheet) AddRow(letter rune, set scenario.ScoreSet) {
	s.letters = append(s.letters, letter)
	s.rows = append(s.rows, set)
}

// Len returns the number of rows accumulated so far.
func (s *Sheet) Len() int { return len(s.rows) }

// column extracts one component's values across all rows, skipping cells
// equal to scenario.NoScore (an absent measurement, not a zero score).
func (s *Sheet) column(get func(scenario.ScoreSet) float64) []float64 {
	out := make([]float64, 0, len(s.rows))
	for _, r := range s.rows {
		if v := get(r); v != scenario.NoScore {
			out = append(out, v)
		}
	}
	return out
}

func avg(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func minOf(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// blended combines a column's average and worst-case value, half and
// half: a scenario with one badly matched letter should score worse than
// its average alone would suggest, but not collapse to the worst letter.
func blended(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	return 0.5*avg(vs) + 0.5*minOf(vs)
}

type weightedColumn struct {
	name   string
	weight float64
	values []float64
}

// Finalize combines the accumulated rows into a single score: each
// non-empty column contributes weight*blended(column), normalized by the
// sum of weights of columns that actually had data, then the error and
// length penalties are subtracted. errorCount and length are supplied by
// the caller (scenario.ErrorCount, scenario.Count) since Sheet itself
// does not track them.
func (s *Sheet) Finalize(errorCount, length int) (float64, error) {
	if len(s.rows) == 0 {
		return 0, ErrEmptySheet
	}

	cols := []weightedColumn{
		{"distance", s.p.WeightDistance, s.column(func(r scenario.ScoreSet) float64 { return r.Distance })},
		{"cos", s.p.WeightCos, s.column(func(r scenario.ScoreSet) float64 { return r.Cos })},
		{"curve", s.p.WeightCurve, s.column(func(r scenario.ScoreSet) float64 { return r.Curve })},
		{"length", s.p.WeightLength, s.column(func(r scenario.ScoreSet) float64 { return r.Length })},
		{"turn", s.p.WeightTurn, s.column(func(r scenario.ScoreSet) float64 { return r.Turn })},
		{"misc", s.p.WeightMisc, s.column(func(r scenario.ScoreSet) float64 { return r.Misc })},
	}

	var weighted, weightSum float64
	for _, c := range cols {
		if len(c.values) == 0 {
			continue
		}
		weighted += c.weight * blended(c.values)
		weightSum += c.weight
	}

	var score float64
	if weightSum > 0 {
		score = weighted / weightSum
	}
	score -= s.p.CoefError * float64(errorCount)
	score -= s.p.LengthPenalty * float64(length)

	if s.debug != nil {
		s.writeDebug()
	}
	return score, nil
}

func (s *Sheet) writeDebug() {
	for i, letter := range s.letters {
		fmt.Fprintf(s.debug, "%c: dist=%.3f cos=%.3f curve=%.3f length=%.3f turn=%.3f misc=%.3f\n",
			letter,
			s.rows[i].Distance, s.rows[i].Cos, s.rows[i].Curve,
			s.rows[i].Length, s.rows[i].Turn, s.rows[i].Misc)
	}
}
