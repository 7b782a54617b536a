package scenario

import "github.com/katalvlaran/swipematch/keystore"

// clone returns a value copy of s with its own backing arrays for the
// per-step history slices, so appending a new step to the returned copy
// never mutates s or any other clone taken from the same parent. Pointer
// fields (keys, curve, trie, subCache) are shared: they are read-only or
// append-only from a Scenario's point of view.
func (s Scenario) clone() Scenario {
	c := s
	c.letters = append([]keystore.LetterID(nil), s.letters...)
	c.indices = append([]int(nil), s.indices...)
	c.steps = append([]ScoreSet(nil), s.steps...)
	return c
}
