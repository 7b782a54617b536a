package beam_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/swipematch/beam"
	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/preprocess"
)

var dictWords = []string{"hi", "hio", "oh", "hop", "hit", "tip", "toy"}

func rowLayout() *keystore.Store {
	letters := []rune{'h', 'i', 'o', 'p', 't', 'y'}
	keys := make([]keystore.Key, len(letters))
	for i, l := range letters {
		keys[i] = keystore.Key{X: i * 40, Y: 0, Width: 40, Height: 40, Label: l}
	}
	return keystore.NewStore(keys)
}

func genStroke(t *rapid.T, keys *keystore.Store) *curvestore.Store {
	n := rapid.IntRange(3, 60).Draw(t, "n")
	pts := make([]curvestore.CurvePoint, n)
	ts := 0
	x0 := rapid.IntRange(-20, 20).Draw(t, "x0")
	for i := 0; i < n; i++ {
		ts += rapid.IntRange(4, 20).Draw(t, "dt")
		x := x0 + i*4 + rapid.IntRange(-2, 2).Draw(t, "jitter")
		pts[i] = curvestore.CurvePoint{Point: geom.Point{X: x, Y: 0}, Timestamp: ts}
	}
	return curvestore.NewStore(pts, 10)
}

// TestRun_CandidatesSatisfyScenarioInvariants checks that every finished
// scenario in a candidate pool has a non-decreasing index history with no
// three consecutive equal indices, and that its matched-letter count
// matches its index-history length.
func TestRun_CandidatesSatisfyScenarioInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rowLayout()
		curve := genStroke(t, keys)
		p := params.Default()
		preprocess.Run(curve, p, 0)

		candidates, err := beam.Run(dictionary.NewMemTrie(dictWords), keys, curve, p)
		require.NoError(t, err)

		for _, c := range candidates {
			indices := c.Scenario.Indices()
			require.Equal(t, c.Scenario.Count(), len(indices))
			require.GreaterOrEqual(t, c.Scenario.Count(), 1)

			for k := 1; k < len(indices); k++ {
				require.GreaterOrEqual(t, indices[k], indices[k-1])
			}
			for k := 2; k < len(indices); k++ {
				require.False(t, indices[k] == indices[k-1] && indices[k-1] == indices[k-2])
			}
		}
	})
}
