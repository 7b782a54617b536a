package scenario

import (
	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
)

// ScoreSet holds the six per-step component scores a single expansion step
// produces: distance, cosine (direction), curve (deviation),
// length, turn and misc. A missing component is represented as NoScore.
type ScoreSet struct {
	Distance float64
	Cos      float64
	Curve    float64
	Length   float64
	Turn     float64
	Misc     float64
}

// NoScore marks an absent score-sheet cell.
const NoScore = 0.0

// Scenario is a partial alignment of a word prefix to a non-decreasing
// sequence of curve indices. It is built by cloning: Root starts
// an empty scenario; ExpandChild (scenario/expand.go) grows it by one
// trie-child letter at a time. Scenario is intentionally a plain struct
// with slice fields, not a pointer-receiver class: clone/value-passing is
// the copy mechanism, so that a parent's later mutation never affects an
// already-emitted child.
type Scenario struct {
	keys  *keystore.Store
	curve *curvestore.Store
	trie  dictionary.Trie
	p     params.Params

	node dictionary.Node

	letters []keystore.LetterID
	indices []int
	steps   []ScoreSet

	sumSqDist float64 // running squared distance accumulator

	tempScore  float64
	finalScore float64

	lastFork   int
	errorCount int
	finished   bool
	debug      bool

	// subCache memoizes this scenario's ExpandChild results per child
	// letter and starting curve index, so repeating an expansion returns
	// the same children without recomputing them. The cache is shared by
	// reference across clones of this scenario (its children start their
	// own) and never mutated after an entry is first populated, so sharing
	// it is safe.
	subCache *expansionCache
}

// Root returns a fresh Scenario anchored at the trie root, with an empty
// letter history, ready for expansion.
func Root(trie dictionary.Trie, keys *keystore.Store, curve *curvestore.Store, p params.Params) Scenario {
	return Scenario{
		keys:     keys,
		curve:    curve,
		trie:     trie,
		p:        p,
		node:     trie.Root(),
		subCache: newExpansionCache(),
	}
}

// SetDebug toggles verbose score-sheet rendering.
func (s *Scenario) SetDebug(d bool) { s.debug = d }

// Debug reports the current debug flag.
func (s Scenario) Debug() bool { return s.debug }

// Node returns the scenario's current trie node (its prefix descent).
func (s Scenario) Node() dictionary.Node { return s.node }

// Params returns the tunable parameter set the scenario was built with, so
// a later post-processing pass can score it with the same constants.
func (s Scenario) Params() params.Params { return s.p }

// Count returns the number of letters matched so far.
func (s Scenario) Count() int { return len(s.letters) }

// Letters returns the matched internal letter ids, in order. The slice is
// owned by the Scenario; callers must not mutate it.
func (s Scenario) Letters() []keystore.LetterID { return s.letters }

// Indices returns the matched curve indices, in order. The slice is owned
// by the Scenario; callers must not mutate it.
func (s Scenario) Indices() []int { return s.indices }

// Steps returns the per-step component scores, in order. The slice is
// owned by the Scenario; callers must not mutate it.
func (s Scenario) Steps() []ScoreSet { return s.steps }

// CurveIndex returns the curve index of the most recently matched letter,
// or -1 for an empty scenario.
func (s Scenario) CurveIndex() int {
	if len(s.indices) == 0 {
		return -1
	}
	return s.indices[len(s.indices)-1]
}

// LastLetter returns the most recently matched internal letter id and
// whether the scenario has matched at least one letter.
func (s Scenario) LastLetter() (keystore.LetterID, bool) {
	if len(s.letters) == 0 {
		return 0, false
	}
	return s.letters[len(s.letters)-1], true
}

// IsFinished reports whether the scenario was marked finished (its trie
// node is a leaf or carries a payload).
func (s Scenario) IsFinished() bool { return s.finished }

// ErrorCount returns the number of steps accepted via the error-ignore
// rescue rule.
func (s Scenario) ErrorCount() int { return s.errorCount }

// TempScore returns the pruning score used during expansion.
func (s Scenario) TempScore() float64 { return s.tempScore }

// FinalScore returns the score installed by SetFinalScore; zero until
// SetFinalScore is called.
func (s Scenario) FinalScore() float64 { return s.finalScore }

// SetFinalScore installs a final score. No package in this module calls
// it; the drivers keep the final score on beam.Candidate instead.
func (s *Scenario) SetFinalScore(v float64) { s.finalScore = v }

// LastFork returns the most recent step index at which expansion produced
// more than one successor.
func (s Scenario) LastFork() int { return s.lastFork }

// ForkLast reports whether the scenario is within the "fork window": any
// fork within the last two expansion levels suppresses name-based
// deduplication (see DESIGN.md for the reasoning behind this choice).
func (s Scenario) ForkLast() bool {
	return s.lastFork > 0 && s.Count()-s.lastFork <= 1
}

// RMSDistance returns the root-mean-square distance between matched curve
// points and key centers accumulated so far.
func (s Scenario) RMSDistance() float64 {
	if len(s.letters) == 0 {
		return 0
	}
	return sqrt(s.sumSqDist / float64(len(s.letters)))
}

// Name renders the matched letter history as a string of key labels, using
// the key store to translate each internal id back to its rune label.
func (s Scenario) Name() string {
	out := make([]rune, len(s.letters))
	for i, id := range s.letters {
		out[i] = s.keys.Label(id)
	}
	return string(out)
}

// WordList returns the dictionary payload string attached to the
// scenario's current trie node, or "=" when
// the node has a payload equal to exactly the node's own spelling, or ""
// when the node carries no payload at all.
func (s Scenario) WordList() string {
	if s.node == nil || !s.node.HasPayload() {
		return ""
	}
	raw := s.node.Payload()
	if len(raw) > 0 && raw[len(raw)-1] == 0 {
		raw = raw[:len(raw)-1]
	}
	return string(raw)
}
