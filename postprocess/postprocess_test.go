package postprocess_test

import (
	"testing"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/postprocess"
	"github.com/katalvlaran/swipematch/scenario"
	"github.com/stretchr/testify/require"
)

// threeKeyRow builds a flat 'h','i','o' row and a straight left-to-right
// swipe across all three key centers.
func threeKeyRow(t *testing.T) (*keystore.Store, *curvestore.Store) {
	t.Helper()
	keys := keystore.NewStore([]keystore.Key{
		{X: 0, Y: 0, Width: 40, Height: 40, Label: 'h'},
		{X: 40, Y: 0, Width: 40, Height: 40, Label: 'i'},
		{X: 80, Y: 0, Width: 40, Height: 40, Label: 'o'},
	})
	var pts []curvestore.CurvePoint
	for x := 0; x <= 80; x += 4 {
		pts = append(pts, curvestore.CurvePoint{Point: geom.Point{X: x, Y: 0}, Timestamp: x * 4})
	}
	return keys, curvestore.NewStore(pts, 10)
}

func expandFull(t *testing.T, keys *keystore.Store, curve *curvestore.Store, word string) scenario.Scenario {
	t.Helper()
	trie := dictionary.NewMemTrie([]string{word})
	p := params.Default()
	cur := scenario.Root(trie, keys, curve, p)
	node := cur.Node()
	for _, l := range []byte(word) {
		var child dictionary.Node
		for _, c := range node.Children() {
			if c.Letter == l {
				child = c.Node
				break
			}
		}
		require.NotNil(t, child)
		kids, err := cur.ExpandChild(l, child)
		require.NoError(t, err)
		require.NotEmpty(t, kids)
		cur = kids[0]
		node = cur.Node()
	}
	return cur
}

func TestRun_StraightSwipeScoresWell(t *testing.T) {
	keys, curve := threeKeyRow(t)
	s := expandFull(t, keys, curve, "hio")

	rows, dist, err := postprocess.Run(keys, curve, s)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.GreaterOrEqual(t, dist, 0.0)
	for _, r := range rows {
		require.Greater(t, r.Misc, 0.0)
		require.Greater(t, r.Turn, 0.0)
	}
}

func TestRun_EmptyScenarioFails(t *testing.T) {
	keys, curve := threeKeyRow(t)
	trie := dictionary.NewMemTrie([]string{"hio"})
	empty := scenario.Root(trie, keys, curve, params.Default())

	_, _, err := postprocess.Run(keys, curve, empty)
	require.ErrorIs(t, err, postprocess.ErrTooShort)
}

func TestRun_SingleLetterScenarioSucceeds(t *testing.T) {
	keys, curve := threeKeyRow(t)
	s := expandFull(t, keys, curve, "h")

	rows, _, err := postprocess.Run(keys, curve, s)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
