package swipe

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/swipematch/beam"
	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/incremental"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/preprocess"
	"github.com/katalvlaran/swipematch/rank"
	"github.com/katalvlaran/swipematch/scenario"
)

// Matcher is the one-shot entry point: it takes a complete stroke and
// returns every candidate in a single call.
type Matcher struct {
	trie         dictionary.Trie
	base         params.Params
	minDotLength float64
	nextID       int64
}

// NewMatcher returns a Matcher serving trie, using base as the parameter
// set before any per-request override is applied.
func NewMatcher(trie dictionary.Trie, base params.Params, minDotLength float64) *Matcher {
	return &Matcher{trie: trie, base: base, minDotLength: minDotLength}
}

// Match decodes in.Params as overrides over m's base parameters, builds
// the keyboard layout and stroke it describes, and returns the ranked
// candidate pool.
func (m *Matcher) Match(in Input) (Output, error) {
	p, err := resolveParams(m.base, in.Params)
	if err != nil {
		return Output{}, err
	}

	keys := buildKeystore(in.Keys)
	curve := buildCurve(in.Curve, m.minDotLength)
	preprocess.Run(curve, p, 0)

	start := time.Now()
	candidates, stats, err := beam.RunWithStats(m.trie, keys, curve, p)
	if err != nil {
		return Output{}, err
	}
	ranked := rank.Run(candidates, p)
	elapsed := time.Since(start)

	return Output{
		ID:         int(atomic.AddInt64(&m.nextID, 1)),
		Input:      &in,
		Candidates: buildCandidates(keys, ranked),
		Stats:      statsOf(stats, elapsed),
	}, nil
}

// StreamMatcher is the streaming entry point: a caller feeds curve points
// one at a time as the user's finger moves and asks for the current
// candidate pool whenever it needs one, without waiting for the stroke to
// finish.
type StreamMatcher struct {
	keys *keystore.Store
	m    *incremental.Matcher
	p    params.Params
	nextID int64
}

// NewStreamMatcher starts a streaming match against trie/keys/p, with an
// empty curve classified as a dot below minDotLength of arc length.
func NewStreamMatcher(trie dictionary.Trie, keys *keystore.Store, p params.Params, minDotLength float64) *StreamMatcher {
	return &StreamMatcher{keys: keys, m: incremental.NewMatcher(trie, keys, p, minDotLength), p: p}
}

// AddPoint feeds one stroke sample.
func (m *StreamMatcher) AddPoint(pt PointInput) {
	m.m.AddPoint(curvestore.CurvePoint{Point: geom.Point{X: pt.X, Y: pt.Y}, Timestamp: pt.T})
}

// Clear discards all in-flight state, ready for a fresh stroke.
func (m *StreamMatcher) Clear() { m.m.Clear() }

// EndCurve finalizes the stroke and returns the ranked candidate pool.
func (m *StreamMatcher) EndCurve() Output {
	start := time.Now()
	candidates := m.m.EndCurve()
	ranked := rank.Run(candidates, m.p)
	elapsed := time.Since(start)

	return Output{
		ID:         int(atomic.AddInt64(&m.nextID, 1)),
		Candidates: buildCandidates(m.keys, ranked),
		Stats:      statsOf(beam.Stats{}, elapsed),
	}
}

// Snapshot returns the ranked candidate pool accumulated from the points
// fed so far, without finalizing the stroke: a caller streaming a curve
// can use it to print an evolving score as the user's finger keeps moving.
func (m *StreamMatcher) Snapshot() Output {
	ranked := rank.Run(m.m.Snapshot(), m.p)
	return Output{
		ID:         int(atomic.AddInt64(&m.nextID, 1)),
		Candidates: buildCandidates(m.keys, ranked),
		Stats:      statsOf(beam.Stats{}, 0),
	}
}

func resolveParams(base params.Params, overrides map[string]float64) (params.Params, error) {
	if len(overrides) == 0 {
		return base, nil
	}
	return base.ApplyJSON(overrides)
}

func buildKeystore(keys []KeyInput) *keystore.Store {
	out := make([]keystore.Key, len(keys))
	for i, k := range keys {
		label := rune(0)
		for _, r := range k.K {
			label = r
			break
		}
		out[i] = keystore.Key{X: k.X, Y: k.Y, Width: k.W, Height: k.H, Label: label}
	}
	return keystore.NewStore(out)
}

func buildCurve(pts []PointInput, minDotLength float64) *curvestore.Store {
	out := make([]curvestore.CurvePoint, len(pts))
	for i, pt := range pts {
		out[i] = curvestore.CurvePoint{Point: geom.Point{X: pt.X, Y: pt.Y}, Timestamp: pt.T}
	}
	return curvestore.NewStore(out, minDotLength)
}

func statsOf(s beam.Stats, elapsed time.Duration) Stats {
	return Stats{
		TimeMicros:    elapsed.Microseconds(),
		Count:         s.Count,
		Fork:          s.Fork,
		Skim:          s.Skim,
		CorrelationID: uuid.NewString(),
	}
}

func buildCandidates(keys *keystore.Store, ranked []rank.Ranked) []CandidateOutput {
	out := make([]CandidateOutput, len(ranked))
	for i, r := range ranked {
		letters := r.Scenario.Letters()
		indices := r.Scenario.Indices()
		detail := make([]DetailRow, len(r.Rows))
		for j, row := range r.Rows {
			detail[j] = DetailRow{
				Letter:        string(keys.Label(letters[j])),
				Index:         indices[j],
				ScoreDistance: row.Distance,
				ScoreCos:      row.Cos,
				ScoreTurn:     row.Turn,
				ScoreCurve:    row.Curve,
				ScoreLength:   row.Length,
				ScoreMisc:     row.Misc,
			}
		}

		out[i] = CandidateOutput{
			Name:     r.Word(),
			Score:    r.Adj,
			Finished: r.Scenario.IsFinished(),
			Distance: int(math.Round(r.NewDistance)),
			Error:    r.Scenario.ErrorCount(),
			Words:    r.Scenario.WordList(),
			Detail:   detail,
			AvgScore: averageOf(r.Rows),
			MinScore: minOf(r.Rows),
		}
	}
	return out
}

func averageOf(rows []scenario.ScoreSet) ScoreAvg {
	if len(rows) == 0 {
		return ScoreAvg{}
	}
	var sum ScoreAvg
	for _, r := range rows {
		sum.Distance += r.Distance
		sum.Cos += r.Cos
		sum.Turn += r.Turn
		sum.Curve += r.Curve
		sum.Length += r.Length
		sum.Misc += r.Misc
	}
	n := float64(len(rows))
	return ScoreAvg{
		Distance: sum.Distance / n,
		Cos:      sum.Cos / n,
		Turn:     sum.Turn / n,
		Curve:    sum.Curve / n,
		Length:   sum.Length / n,
		Misc:     sum.Misc / n,
	}
}

func minOf(rows []scenario.ScoreSet) ScoreAvg {
	if len(rows) == 0 {
		return ScoreAvg{}
	}
	min := ScoreAvg{
		Distance: rows[0].Distance,
		Cos:      rows[0].Cos,
		Turn:     rows[0].Turn,
		Curve:    rows[0].Curve,
		Length:   rows[0].Length,
		Misc:     rows[0].Misc,
	}
	for _, r := range rows[1:] {
		min.Distance = math.Min(min.Distance, r.Distance)
		min.Cos = math.Min(min.Cos, r.Cos)
		min.Turn = math.Min(min.Turn, r.Turn)
		min.Curve = math.Min(min.Curve, r.Curve)
		min.Length = math.Min(min.Length, r.Length)
		min.Misc = math.Min(min.Misc, r.Misc)
	}
	return min
}
