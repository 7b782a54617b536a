package preprocess_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/preprocess"
)

// genCurve builds a random curve of 2-40 points with strictly increasing
// timestamps, so Run never sees a zero-duration leading segment.
func genCurve(t *rapid.T) []curvestore.CurvePoint {
	n := rapid.IntRange(2, 40).Draw(t, "n")
	pts := make([]curvestore.CurvePoint, n)
	ts := 0
	for i := 0; i < n; i++ {
		x := rapid.IntRange(-200, 200).Draw(t, "x")
		y := rapid.IntRange(-200, 200).Draw(t, "y")
		ts += rapid.IntRange(1, 50).Draw(t, "dt")
		pts[i] = curvestore.CurvePoint{Point: geom.Point{X: x, Y: y}, Timestamp: ts}
	}
	return pts
}

func snapshot(s *curvestore.Store) []float64 {
	n := s.Size()
	out := make([]float64, 0, n*4)
	for i := 0; i < n; i++ {
		out = append(out, s.RawTurn(i), s.SmoothTurn(i), s.Speed(i), float64(s.Special(i, false)))
	}
	return out
}

// TestRun_IsIdempotent checks that running the preprocessor twice over the
// same curve from scratch leaves every derived column identical.
func TestRun_IsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pts := genCurve(t)
		p := params.Default()

		store := curvestore.NewStore(pts, 10)
		preprocess.Run(store, p, 0)
		first := snapshot(store)

		preprocess.Run(store, p, 0)
		second := snapshot(store)

		if len(first) != len(second) {
			t.Fatalf("column length changed: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("column %d changed on rerun: %v vs %v", i, first[i], second[i])
			}
		}
	})
}
