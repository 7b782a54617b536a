package curvestore_test

import (
	"testing"

	"github.com/katalvlaran/swipematch/curvestore"
	"github.com/katalvlaran/swipematch/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightLine() []curvestore.CurvePoint {
	pts := make([]curvestore.CurvePoint, 0, 11)
	for i := 0; i <= 10; i++ {
		pts = append(pts, curvestore.CurvePoint{
			Point:     geom.Point{X: i * 10, Y: 0},
			Timestamp: i * 16,
		})
	}
	return pts
}

func TestStore_CumulativeLength(t *testing.T) {
	s := curvestore.NewStore(straightLine(), 0)
	require.Equal(t, 11, s.Size())
	assert.Equal(t, 100.0, s.TotalLength())
	assert.Equal(t, 50.0, s.CumLength(5))
}

func TestStore_DotClassification(t *testing.T) {
	s := curvestore.NewStore(straightLine(), 1000)
	assert.True(t, s.IsDot(), "total length 100 < minLength 1000")

	s2 := curvestore.NewStore(straightLine(), 50)
	assert.False(t, s2.IsDot())
}

func TestStore_AppendPoints(t *testing.T) {
	pts := straightLine()
	s := curvestore.NewStore(pts[:5], 0)
	before := s.TotalLength()
	s.AppendPoints(pts[5:])
	assert.Greater(t, s.TotalLength(), before)
	assert.Equal(t, 11, s.Size())
}

func TestStore_SmoothedOverride(t *testing.T) {
	pts := straightLine()
	pts[3].HasSmoothed = true
	pts[3].Smoothed.X, pts[3].Smoothed.Y = 999, 999
	s := curvestore.NewStore(pts, 0)
	pos := s.Position(3)
	assert.Equal(t, 999, pos.X)
	assert.Equal(t, 999, pos.Y)
}

func TestStore_SegmentLength(t *testing.T) {
	s := curvestore.NewStore(straightLine(), 0)
	assert.Equal(t, 30.0, s.SegmentLength(2, 5))
	assert.Equal(t, 0.0, s.SegmentLength(5, 2), "reversed span is invalid -> 0")
}
