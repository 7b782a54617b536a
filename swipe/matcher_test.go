package swipe_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/katalvlaran/swipematch/keystore"
	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/swipe"
)

func threeKeyInput() swipe.Input {
	var curve []swipe.PointInput
	for x := 0; x <= 80; x += 4 {
		curve = append(curve, swipe.PointInput{X: x, Y: 0, T: x * 4})
	}
	return swipe.Input{
		Keys: []swipe.KeyInput{
			{X: 0, Y: 0, W: 40, H: 40, K: "h"},
			{X: 40, Y: 0, W: 40, H: 40, K: "i"},
			{X: 80, Y: 0, W: 40, H: 40, K: "o"},
		},
		Curve: curve,
	}
}

func TestMatcher_MatchFindsExactWord(t *testing.T) {
	trie := dictionary.NewMemTrie([]string{"hi", "hio", "oh"})
	m := swipe.NewMatcher(trie, params.Default(), 10)

	out, err := m.Match(threeKeyInput())
	require.NoError(t, err)
	require.NotEmpty(t, out.Candidates)
	require.NotEmpty(t, out.Stats.CorrelationID)

	var names []string
	for _, c := range out.Candidates {
		names = append(names, c.Name)
	}
	require.Contains(t, names, "hio")
}

func TestMatcher_MatchAppliesParamOverrides(t *testing.T) {
	trie := dictionary.NewMemTrie([]string{"hio"})
	m := swipe.NewMatcher(trie, params.Default(), 10)

	in := threeKeyInput()
	in.Params = map[string]float64{"max_candidates": 1}
	out, err := m.Match(in)
	require.NoError(t, err)
	require.LessOrEqual(t, len(out.Candidates), 1)
}

func TestMatcher_MatchRejectsUnknownParam(t *testing.T) {
	trie := dictionary.NewMemTrie([]string{"hio"})
	m := swipe.NewMatcher(trie, params.Default(), 10)

	in := threeKeyInput()
	in.Params = map[string]float64{"not_a_real_param": 1}
	_, err := m.Match(in)
	require.Error(t, err)
}

func TestStreamMatcher_EndCurveFindsExactWord(t *testing.T) {
	trie := dictionary.NewMemTrie([]string{"hi", "hio", "oh"})
	keys := keystore.NewStore([]keystore.Key{
		{X: 0, Y: 0, Width: 40, Height: 40, Label: 'h'},
		{X: 40, Y: 0, Width: 40, Height: 40, Label: 'i'},
		{X: 80, Y: 0, Width: 40, Height: 40, Label: 'o'},
	})

	in := threeKeyInput()
	sm := swipe.NewStreamMatcher(trie, keys, params.Default(), 10)
	for _, pt := range in.Curve {
		sm.AddPoint(pt)
	}
	out := sm.EndCurve()

	var names []string
	for _, c := range out.Candidates {
		names = append(names, c.Name)
	}
	require.Contains(t, names, "hio")
}

func TestDecodeInput_AcceptsBareAndWrapped(t *testing.T) {
	bare := []byte(`{"keys":[],"curve":[]}`)
	wrapped := []byte(`{"input":{"keys":[],"curve":[]}}`)

	in1, err := swipe.DecodeInput(bare)
	require.NoError(t, err)
	in2, err := swipe.DecodeInput(wrapped)
	require.NoError(t, err)
	require.Equal(t, in1, in2)

	raw, err := json.Marshal(in1)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"keys"`)
}
