package swipe_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/swipematch/swipe"
)

var letters = []string{"a", "b", "c", "h", "i", "o", "q", "p", "t", "y"}

func genKey(t *rapid.T) swipe.KeyInput {
	return swipe.KeyInput{
		X: rapid.IntRange(0, 1000).Draw(t, "x"),
		Y: rapid.IntRange(0, 1000).Draw(t, "y"),
		W: rapid.IntRange(1, 200).Draw(t, "w"),
		H: rapid.IntRange(1, 200).Draw(t, "h"),
		K: rapid.SampledFrom(letters).Draw(t, "k"),
	}
}

func genPoint(t *rapid.T) swipe.PointInput {
	return swipe.PointInput{
		X: rapid.IntRange(-500, 500).Draw(t, "x"),
		Y: rapid.IntRange(-500, 500).Draw(t, "y"),
		T: rapid.IntRange(0, 100000).Draw(t, "t"),
	}
}

func genInput(t *rapid.T) swipe.Input {
	n := rapid.IntRange(0, 5).Draw(t, "nkeys")
	keys := make([]swipe.KeyInput, n)
	for i := range keys {
		keys[i] = genKey(t)
	}
	m := rapid.IntRange(0, 10).Draw(t, "npts")
	curve := make([]swipe.PointInput, m)
	for i := range curve {
		curve[i] = genPoint(t)
	}
	return swipe.Input{Keys: keys, Curve: curve}
}

// TestDecodeInput_RoundTripsThroughJSON checks that marshaling an Input and
// decoding it back (whether bare or wrapped in an outer "input" key)
// reproduces the same fields.
func TestDecodeInput_RoundTripsThroughJSON(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := genInput(t)

		raw, err := json.Marshal(in)
		require.NoError(t, err)
		got, err := swipe.DecodeInput(raw)
		require.NoError(t, err)
		require.Equal(t, in, got)

		wrapped, err := json.Marshal(map[string]swipe.Input{"input": in})
		require.NoError(t, err)
		gotWrapped, err := swipe.DecodeInput(wrapped)
		require.NoError(t, err)
		require.Equal(t, in, gotWrapped)
	})
}
