package incremental

import (
	"math"

	"github.com/katalvlaran/swipematch/beam"
	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/preprocess"
	"github.com/katalvlaran/swipematch/scenario"
)

// Matcher drives expansion against a curve that grows one point (or one
// batch of points) at a time. It is not safe for concurrent use: the
// concurrency model is a single caller feeding AddPoint/EndCurve/Clear in
// sequence, exactly as package scenario's single-threaded cooperative
// model expects.
type Matcher struct {
	trie dictionary.Trie
	keys *keystore.Store
	p    params.Params

	minDotLength float64
	curve        *curvestore.Store

	delayed    []DelayedScenario
	candidates []beam.Candidate

	nextIterationLength float64
	preprocessedUpTo    int
}

// NewMatcher returns a Matcher ready to receive curve points for trie
// against keys, with an empty curve classified as a dot below
// minDotLength of total arc length.
func NewMatcher(trie dictionary.Trie, keys *keystore.Store, p params.Params, minDotLength float64) *Matcher {
	m := &Matcher{trie: trie, keys: keys, p: p, minDotLength: minDotLength}
	m.reset()
	return m
}

func (m *Matcher) reset() {
	m.curve = curvestore.NewStore(nil, m.minDotLength)
	m.delayed = []DelayedScenario{rootDelayed(scenario.Root(m.trie, m.keys, m.curve, m.p))}
	m.candidates = nil
	m.nextIterationLength = 0
	m.preprocessedUpTo = 0
}

// Clear discards all in-flight scenarios and the current curve, safe to
// call at any boundary between AddPoint/EndCurve calls.
func (m *Matcher) Clear() { m.reset() }

// AddPoint appends one raw sample to the curve and, once its cumulative
// length has crossed the previously computed next_iteration_length,
// runs an incremental match-update pass.
func (m *Matcher) AddPoint(pt curvestore.CurvePoint) {
	m.curve.AppendPoints([]curvestore.CurvePoint{pt})
	if m.curve.TotalLength() >= m.nextIterationLength {
		m.update(false)
	}
}

// EndCurve runs a final match-update pass with every pending threshold
// ignored, and returns the pruned, scored candidate pool.
func (m *Matcher) EndCurve() []beam.Candidate {
	m.update(true)
	return beam.PruneCandidates(m.candidates, m.p.MaxCandidates, m.p.ScoreRatio)
}

// Snapshot returns the candidates scored so far without finalizing the
// in-flight scenarios the way EndCurve does, for a caller that wants to
// print an evolving score as a stroke is still being fed in.
func (m *Matcher) Snapshot() []beam.Candidate {
	return append([]beam.Candidate(nil), m.candidates...)
}

// childNode looks up node's child labeled letter, or nil if none exists
// (the dictionary no longer offers that continuation).
func childNode(node dictionary.Node, letter byte) dictionary.Node {
	for _, c := range node.Children() {
		if c.Letter == letter {
			return c.Node
		}
	}
	return nil
}

// update is the incrementalMatchUpdate pass: re-preprocess the curve's
// tail, attempt every delayed scenario's ready letters, reschedule or
// finalize the results, and prune the surviving frontier.
func (m *Matcher) update(finished bool) {
	preprocess.Run(m.curve, m.p, m.preprocessedUpTo)
	m.preprocessedUpTo = m.curve.Size()

	aggressive := m.p.AggressiveMode != 0
	totalLength := m.curve.TotalLength()

	var nextFrontier []DelayedScenario
	minPending := math.Inf(1)
	track := func(pl pendingLetter) {
		if t := pl.threshold(aggressive); t < minPending {
			minPending = t
		}
	}

	for _, ds := range m.delayed {
		stillPending := false
		for letter, pl := range ds.pending {
			if !finished && totalLength < pl.threshold(aggressive) {
				stillPending = true
				track(pl)
				continue
			}

			child := childNode(ds.Node(), letter)
			if child == nil {
				continue
			}

			kids, err := ds.Scenario.ExpandChild(letter, child)
			if err != nil {
				if err == scenario.ErrNoAlignment && !finished {
					pl.minLength = totalLength + m.p.IncrRetry
					ds.pending[letter] = pl
					stillPending = true
					track(pl)
				}
				continue
			}
			delete(ds.pending, letter)

			for _, k := range kids {
				if k.IsFinished() {
					if cand, err := beam.Score(m.keys, m.curve, k); err == nil {
						m.candidates = append(m.candidates, cand)
					}
				}
				if !child.IsLeaf() {
					nextDS := DelayedScenario{Scenario: k, pending: nextPending(m.keys, m.curve, k, m.p)}
					for _, pl := range nextDS.pending {
						track(pl)
					}
					nextFrontier = append(nextFrontier, nextDS)
				}
			}
		}
		if stillPending {
			nextFrontier = append(nextFrontier, ds)
		}
	}

	nextFrontier = dedupeDelayed(nextFrontier)
	nextFrontier = pruneDelayed(nextFrontier, m.p.MaxActiveScenarios)
	m.delayed = nextFrontier

	if math.IsInf(minPending, 1) {
		minPending = totalLength
	}
	m.nextIterationLength = minPending
}

// nextPending computes the scheduling window for every letter reachable
// from child's trie position, using the distance between child's last
// matched curve point and each candidate key as the delay driver: a
// letter far from where the stroke currently sits is given more curve
// length to arrive before its expansion is attempted.
func nextPending(keys *keystore.Store, curve *curvestore.Store, child scenario.Scenario, p params.Params) map[byte]pendingLetter {
	out := make(map[byte]pendingLetter)
	lastIdx := child.CurveIndex()
	if lastIdx < 0 {
		return out
	}
	parentLength := curve.CumLength(lastIdx)
	point := curve.Position(lastIdx)

	for _, c := range child.Node().Children() {
		ids := keys.LettersFor(rune(c.Letter))
		if len(ids) == 0 {
			continue
		}
		dist := math.Inf(1)
		for _, id := range ids {
			if d := geom.Distance(point, keys.Center(id)); d < dist {
				dist = d
			}
		}

		maxLen := parentLength + (1+dist/p.DistMaxNext/20)*(p.IncrementalLengthLag+dist)
		minLen := parentLength + math.Max(0, dist-p.IncrementalLengthLag/2)
		out[c.Letter] = pendingLetter{minLength: minLen, maxLength: maxLen}
	}
	return out
}
