package incremental_test

import (
	"testing"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/incremental"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
	"github.com/stretchr/testify/require"
)

func threeKeyRow(t *testing.T) *keystore.Store {
	t.Helper()
	return keystore.NewStore([]keystore.Key{
		{X: 0, Y: 0, Width: 40, Height: 40, Label: 'h'},
		{X: 40, Y: 0, Width: 40, Height: 40, Label: 'i'},
		{X: 80, Y: 0, Width: 40, Height: 40, Label: 'o'},
	})
}

func streamPoints(m *incremental.Matcher) {
	for x := 0; x <= 80; x += 4 {
		m.AddPoint(curvestore.CurvePoint{Point: geom.Point{X: x, Y: 0}, Timestamp: x * 4})
	}
}

func TestMatcher_StreamedSwipeFindsWord(t *testing.T) {
	keys := threeKeyRow(t)
	trie := dictionary.NewMemTrie([]string{"hi", "hio", "oh"})
	p := params.Default()

	m := incremental.NewMatcher(trie, keys, p, 10)
	streamPoints(m)
	candidates := m.EndCurve()

	require.NotEmpty(t, candidates)
	var words []string
	for _, c := range candidates {
		words = append(words, c.Word())
	}
	require.Contains(t, words, "hio")
}

func TestMatcher_ClearDiscardsInFlightState(t *testing.T) {
	keys := threeKeyRow(t)
	trie := dictionary.NewMemTrie([]string{"hio"})
	p := params.Default()

	m := incremental.NewMatcher(trie, keys, p, 10)
	m.AddPoint(curvestore.CurvePoint{Point: geom.Point{X: 0, Y: 0}})
	m.AddPoint(curvestore.CurvePoint{Point: geom.Point{X: 4, Y: 0}, Timestamp: 16})

	m.Clear()
	streamPoints(m)
	candidates := m.EndCurve()

	var words []string
	for _, c := range candidates {
		words = append(words, c.Word())
	}
	require.Contains(t, words, "hio")
}

func TestMatcher_EmptyCurveYieldsNoCandidates(t *testing.T) {
	keys := threeKeyRow(t)
	trie := dictionary.NewMemTrie([]string{"hio"})
	p := params.Default()

	m := incremental.NewMatcher(trie, keys, p, 10)
	candidates := m.EndCurve()
	require.Empty(t, candidates)
}
