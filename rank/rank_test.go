package rank_test

import (
	"testing"

	"github.com/katalvlaran/swipematch/beam"
	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/rank"
	"github.com/stretchr/testify/require"
)

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

func TestRun_OrdersByAdjustedScoreDescending(t *testing.T) {
	keys, curve := threeKeyRow(t)
	trie := dictionary.NewMemTrie([]string{"hi", "hio", "oh"})
	p := params.Default()

	candidates, err := beam.Run(trie, keys, curve, p)
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	ranked := rank.Run(candidates, p)
	require.Len(t, ranked, len(candidates))
	for i := 1; i < len(ranked); i++ {
		require.GreaterOrEqual(t, ranked[i-1].Adj, ranked[i].Adj)
	}
}

func TestRun_EmptyPoolYieldsNil(t *testing.T) {
	p := params.Default()
	require.Nil(t, rank.Run(nil, p))
}
