package beam_test

import (
	"testing"

	"github.com/katalvlaran/swipematch/beam"
	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
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

func TestRun_FindsExactWord(t *testing.T) {
	keys, curve := threeKeyRow(t)
	trie := dictionary.NewMemTrie([]string{"hi", "hio", "oh"})
	p := params.Default()

	candidates, err := beam.Run(trie, keys, curve, p)
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	var words []string
	for _, c := range candidates {
		words = append(words, c.Word())
	}
	require.Contains(t, words, "hio")
}

func TestRun_EmptyDictionaryYieldsNoCandidates(t *testing.T) {
	keys, curve := threeKeyRow(t)
	trie := dictionary.NewMemTrie(nil)
	p := params.Default()

	candidates, err := beam.Run(trie, keys, curve, p)
	require.NoError(t, err)
	require.Empty(t, candidates)
}
