package beam

import (
	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/postprocess"
	"github.com/katalvlaran/swipematch/scenario"
	"github.com/katalvlaran/swipematch/scoring"
)

// Candidate is a finished scenario paired with the score it was admitted
// to the pool with and the new-distance metric package rank uses to
// break close ties.
type Candidate struct {
	Scenario    scenario.Scenario
	Score       float64
	NewDistance float64
	Rows        []scenario.ScoreSet
}

// Word renders the candidate's matched letters as a string, delegating to
// the scenario's own rendering.
func (c Candidate) Word() string { return c.Scenario.Name() }

// Score post-processes a finished scenario into a final Candidate: its
// per-letter component scores are filled in, folded into one weighted
// score, and combined with the new-distance metric. Package incremental
// reuses this exact path so both drivers score a finished scenario
// identically.
func Score(keys *keystore.Store, curve *curvestore.Store, s scenario.Scenario) (Candidate, error) {
	rows, dist, err := postprocess.Run(keys, curve, s)
	if err != nil {
		return Candidate{}, err
	}

	sheet := scoring.NewSheet(s.Params())
	letters := s.Letters()
	for i, row := range rows {
		sheet.AddRow(keys.Label(letters[i]), row)
	}
	final, err := sheet.Finalize(s.ErrorCount(), s.Count())
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{Scenario: s, Score: final, NewDistance: dist, Rows: rows}, nil
}
