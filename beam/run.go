package beam

import (
	"sort"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/scenario"
)

// frontierPruneDepth is the expansion depth at which the frontier first
// becomes subject to max_active_scenarios pruning: scenarios shorter than
// this are kept unconditionally, since a premature width cut this early
// would discard prefixes that only diverge later.
const frontierPruneDepth = 3

// Stats reports coarse counters about a completed search, for surfacing in
// a caller's own diagnostics (it has no bearing on the candidate pool
// itself).
type Stats struct {
	// Count is the number of scenarios produced by ExpandChild across the
	// whole search, finished or not.
	Count int
	// Fork is the number of ExpandChild calls that produced more than one
	// child scenario.
	Fork int
	// Skim is the number of scenarios discarded by frontier or candidate
	// pruning.
	Skim int
}

// Run performs a one-shot breadth-first search over trie against the
// fully preprocessed curve held by keys/curve, and returns the pruned,
// scored pool of finished candidates.
func Run(trie dictionary.Trie, keys *keystore.Store, curve *curvestore.Store, p params.Params) ([]Candidate, error) {
	candidates, _, err := RunWithStats(trie, keys, curve, p)
	return candidates, err
}

// RunWithStats is Run plus the search's coarse counters.
func RunWithStats(trie dictionary.Trie, keys *keystore.Store, curve *curvestore.Store, p params.Params) ([]Candidate, Stats, error) {
	frontier := []scenario.Scenario{scenario.Root(trie, keys, curve, p)}
	var candidates []Candidate
	var stats Stats

	for depth := 0; len(frontier) > 0; depth++ {
		var next []scenario.Scenario
		for _, s := range frontier {
			node := s.Node()
			for _, child := range node.Children() {
				kids, err := s.ExpandChild(child.Letter, child.Node)
				if err != nil {
					continue
				}
				stats.Count += len(kids)
				if len(kids) > 1 {
					stats.Fork++
				}
				for _, k := range kids {
					if k.IsFinished() {
						cand, err := Score(keys, curve, k)
						if err == nil {
							candidates = append(candidates, cand)
						}
					}
					if !child.Node.IsLeaf() {
						next = append(next, k)
					}
				}
			}
		}

		next = Deduplicate(next)
		if depth+1 >= frontierPruneDepth {
			before := len(next)
			next = PruneFrontier(next, p.MaxActiveScenarios)
			stats.Skim += before - len(next)
		}
		frontier = next
	}

	beforeCand := len(candidates)
	candidates = PruneCandidates(candidates, p.MaxCandidates, p.ScoreRatio)
	stats.Skim += beforeCand - len(candidates)

	return candidates, stats, nil
}

// Deduplicate collapses scenarios with identical spelling down to the
// higher-scoring one, but only among pairs where neither is still within
// its fork window: a scenario whose most recent branch was one of the
// last two expansion steps is left untouched, so siblings that differ
// only in alignment choice aren't merged away before they've had a
// chance to diverge further. Package incremental calls this directly so
// both drivers apply the exact same duplicate policy.
func Deduplicate(in []scenario.Scenario) []scenario.Scenario {
	best := make(map[string]int, len(in)) // name -> index into out
	var out []scenario.Scenario
	for _, s := range in {
		if s.ForkLast() {
			out = append(out, s)
			continue
		}
		name := s.Name()
		if idx, ok := best[name]; ok {
			if s.TempScore() > out[idx].TempScore() {
				out[idx] = s
			}
			continue
		}
		best[name] = len(out)
		out = append(out, s)
	}
	return out
}

// PruneFrontier keeps at most max scenarios, the ones with the highest
// pruning (temp) score.
func PruneFrontier(in []scenario.Scenario, max float64) []scenario.Scenario {
	limit := int(max)
	if limit <= 0 || len(in) <= limit {
		return in
	}
	sort.SliceStable(in, func(i, j int) bool { return in[i].TempScore() > in[j].TempScore() })
	return in[:limit]
}

// PruneCandidates keeps at most maxCandidates entries, then drops any
// candidate scoring below scoreRatio of the best remaining score.
func PruneCandidates(in []Candidate, maxCandidates, scoreRatio float64) []Candidate {
	if len(in) == 0 {
		return in
	}
	sort.SliceStable(in, func(i, j int) bool { return in[i].Score > in[j].Score })

	limit := int(maxCandidates)
	if limit > 0 && len(in) > limit {
		in = in[:limit]
	}

	best := in[0].Score
	threshold := best * scoreRatio
	out := in[:0:0]
	for _, c := range in {
		if c.Score >= threshold {
			out = append(out, c)
		}
	}
	return out
}
