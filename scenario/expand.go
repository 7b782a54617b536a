package scenario

import (
	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/keystore"
)

// ExpandChild grows the scenario by one trie edge (letter, child), trying
// every internal LetterID that can satisfy the logical letter and every curve index nextKeyMatch offers for each.
// It returns the surviving child scenarios (zero, one, or several — a fork)
// and never mutates s itself. A returned empty slice with a nil error means
// nextKeyMatch offered indices but tryAccept refused every one of them
// (backward or collapsed history, the same-point rule, or a negative score
// with error correction off); a non-nil error means the letter could
// not be matched anywhere and the caller should drop this branch of search.
func (s Scenario) ExpandChild(letter byte, child dictionary.Node) ([]Scenario, error) {
	ids := s.keys.LettersFor(rune(letter))
	if len(ids) == 0 {
		return nil, ErrNoAlignment
	}

	isFirst := s.Count() == 0
	isLast := child.IsLeaf()
	prevIndex := s.CurveIndex()

	cacheIndex := prevIndex
	if cached, ok := s.subCache.get(letter, cacheIndex); ok {
		out := make([]Scenario, 0, len(cached))
		for _, proto := range cached {
			c := proto.clone()
			c.node = child
			c.finished = child.HasPayload() || child.IsLeaf()
			out = append(out, c)
		}
		return out, nil
	}

	var children []Scenario
	var lastErr error
	for _, id := range ids {
		candidates, err := s.nextKeyMatch(id, isFirst, isLast)
		if err != nil {
			lastErr = err
			continue
		}
		for _, cand := range candidates {
			next, ok := s.tryAccept(id, child, prevIndex, cand)
			if ok {
				children = append(children, next)
			}
		}
	}

	if len(children) == 0 && lastErr != nil {
		return nil, lastErr
	}

	if len(children) > 1 {
		for i := range children {
			children[i].lastFork = children[i].Count()
		}
	}

	cached := make([]Scenario, len(children))
	copy(cached, children)
	s.subCache.put(letter, cacheIndex, cached)

	return children, nil
}

// tryAccept evaluates one (letterID, curve index) rendezvous candidate,
// applying the same-point rule, the error-ignore rescue rule and the
// collapsed-history invariant, and returns the resulting clone if accepted.
func (s Scenario) tryAccept(id keystore.LetterID, childNode dictionary.Node, prevIndex int, cand indexCandidate) (Scenario, bool) {
	idx := cand.index
	if idx < prevIndex {
		return Scenario{}, false
	}
	if len(s.indices) >= 2 && s.indices[len(s.indices)-1] == idx && s.indices[len(s.indices)-2] == idx {
		return Scenario{}, false
	}

	score := cand.dist
	cos := 1.0
	curve := 0.0
	if prevIndex >= 0 && idx == prevIndex {
		// Same-point rule: reusing the previous index is allowed only when
		// the local turn angle is small.
		if absF(s.curve.SmoothTurn(idx)) > s.p.SamePointMaxAngle {
			return Scenario{}, false
		}
		score = s.p.SamePointScore
	} else {
		cos = s.cosScore(id, prevIndex, idx)
		curve = s.curveScore(id, prevIndex, idx)
	}

	errored := false
	if score < 0 {
		if s.p.ErrorCorrect == 0 {
			return Scenario{}, false
		}
		errored = true
	}

	c := s.clone()
	// The child's history differs from s's, so it starts its own cache.
	c.subCache = newExpansionCache()
	c.letters = append(c.letters, id)
	c.indices = append(c.indices, idx)
	c.steps = append(c.steps, ScoreSet{Distance: score, Cos: cos, Curve: curve})
	c.node = childNode
	c.finished = childNode.HasPayload() || childNode.IsLeaf()

	diff := s.curve.PositionVec(idx).Sub(geom.VecOf(s.keys.CorrectedCenter(id)))
	c.sumSqDist += diff.Dot(diff)

	if errored {
		c.errorCount++
	}
	c.tempScore = 1/(1+c.sumSqDist/900) - s.p.CoefErrorTmp*float64(c.errorCount)

	return c, true
}
