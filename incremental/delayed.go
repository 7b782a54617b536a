package incremental

import (
	"sort"

	"github.com/katalvlaran/swipematch/scenario"
)

// pendingLetter is the curve-length trigger window for one candidate next
// letter of a DelayedScenario: the expansion attempt is skipped until the
// curve's cumulative length reaches the active threshold (maxLength
// ordinarily, minLength under aggressive_mode), and a letter that
// overflowed (no admissible curve index existed yet) has its minLength
// bumped forward by incr_retry. Only minLength is bumped, so the bump
// delays the retry under aggressive_mode only; otherwise the letter is
// attempted again on the next update pass.
type pendingLetter struct {
	minLength float64
	maxLength float64
}

// threshold returns the curve length at or above which this letter should
// be attempted, given whether the driver is running in aggressive mode.
func (p pendingLetter) threshold(aggressive bool) float64 {
	if aggressive {
		return p.minLength
	}
	return p.maxLength
}

// DelayedScenario pairs a partial scenario with the set of letters it
// might expand into next and each one's scheduling window.
type DelayedScenario struct {
	scenario.Scenario
	pending map[byte]pendingLetter
}

// rootDelayed wraps a freshly created root scenario, scheduling every one
// of its trie children for an immediate attempt: the very first letter of
// a word has no predecessor curve point to measure a distance-based delay
// from.
func rootDelayed(s scenario.Scenario) DelayedScenario {
	ds := DelayedScenario{Scenario: s}
	ds.pending = make(map[byte]pendingLetter)
	for _, child := range s.Node().Children() {
		ds.pending[child.Letter] = pendingLetter{}
	}
	return ds
}

// dedupeDelayed applies beam.Deduplicate's exact duplicate policy — keep
// the higher temp_score of two identically spelled scenarios, unless
// either is still within its fork window — to the delayed frontier,
// carrying each survivor's pending schedule along with it.
func dedupeDelayed(in []DelayedScenario) []DelayedScenario {
	best := make(map[string]int, len(in))
	var out []DelayedScenario
	for _, ds := range in {
		if ds.Scenario.ForkLast() {
			out = append(out, ds)
			continue
		}
		name := ds.Scenario.Name()
		if idx, ok := best[name]; ok {
			if ds.Scenario.TempScore() > out[idx].Scenario.TempScore() {
				out[idx] = ds
			}
			continue
		}
		best[name] = len(out)
		out = append(out, ds)
	}
	return out
}

// pruneDelayed keeps at most max delayed scenarios, the ones with the
// highest temp_score, mirroring beam.PruneFrontier.
func pruneDelayed(in []DelayedScenario, max float64) []DelayedScenario {
	limit := int(max)
	if limit <= 0 || len(in) <= limit {
		return in
	}
	sort.SliceStable(in, func(i, j int) bool {
		return in[i].Scenario.TempScore() > in[j].Scenario.TempScore()
	})
	return in[:limit]
}
