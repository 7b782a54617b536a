package preprocess_test

import (
	"testing"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/katalvlaran/swipematch/params"
	"github.com/katalvlaran/swipematch/preprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straight(n int, dt int) []curvestore.CurvePoint {
	pts := make([]curvestore.CurvePoint, 0, n)
	for i := 0; i < n; i++ {
		pts = append(pts, curvestore.CurvePoint{Point: geom.Point{X: i * 10, Y: 0}, Timestamp: i * dt})
	}
	return pts
}

// vShape traces a sharp downward-then-upward V through the origin, which
// should be detected as a U-turn.
func vShape() []curvestore.CurvePoint {
	pts := []curvestore.CurvePoint{}
	for i := 0; i <= 5; i++ {
		pts = append(pts, curvestore.CurvePoint{Point: geom.Point{X: -50 + i*10, Y: -50 + i*10}, Timestamp: i * 16})
	}
	for i := 1; i <= 5; i++ {
		pts = append(pts, curvestore.CurvePoint{Point: geom.Point{X: i * 10, Y: 50 - i*10}, Timestamp: (5 + i) * 16})
	}
	return pts
}

func TestRun_StraightLineHasNoTurn(t *testing.T) {
	s := curvestore.NewStore(straight(10, 16), 0)
	preprocess.Run(s, params.Default(), 0)
	for i := 1; i < s.Size()-1; i++ {
		assert.InDelta(t, 0.0, s.RawTurn(i), 1e-6, "index %d", i)
		assert.Equal(t, curvestore.SpecialNone, s.Special(i, false))
	}
}

func TestRun_Idempotent(t *testing.T) {
	s := curvestore.NewStore(vShape(), 0)
	p := params.Default()
	preprocess.Run(s, p, 0)

	turnsBefore := make([]float64, s.Size())
	specialBefore := make([]curvestore.SpecialClass, s.Size())
	for i := 0; i < s.Size(); i++ {
		turnsBefore[i] = s.RawTurn(i)
		specialBefore[i] = s.Special(i, false)
	}

	preprocess.Run(s, p, 0)
	for i := 0; i < s.Size(); i++ {
		assert.Equal(t, turnsBefore[i], s.RawTurn(i), "turn at %d changed on re-run", i)
		assert.Equal(t, specialBefore[i], s.Special(i, false), "special at %d changed on re-run", i)
	}
}

func TestRun_VShapeDetectsUTurn(t *testing.T) {
	s := curvestore.NewStore(vShape(), 0)
	preprocess.Run(s, params.Default(), 0)

	found := false
	for i := 0; i < s.Size(); i++ {
		if s.Special(i, false) == curvestore.SpecialUTurn {
			found = true
			break
		}
	}
	require.True(t, found, "sharp V should classify as a U-turn somewhere along the curve")
}

func TestRun_ZeroDurationFallsBackToPreviousSpeed(t *testing.T) {
	pts := straight(6, 16)
	// Points 1..5 share one timestamp, so the five-point window [1, 5]
	// around index 3 has zero duration.
	for i := 2; i < len(pts); i++ {
		pts[i].Timestamp = pts[1].Timestamp
	}
	s := curvestore.NewStore(pts, 0)
	preprocess.Run(s, params.Default(), 0)
	assert.Equal(t, s.Speed(2), s.Speed(3), "index 3 reuses index 2's speed")
	// No NaN/Inf should leak through; values must stay finite.
	for i := 0; i < s.Size(); i++ {
		assert.False(t, isInfOrNaN(s.Speed(i)))
	}
}

func isInfOrNaN(v float64) bool {
	return v != v || v > 1e18 || v < -1e18
}
