package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/swipematch/geom"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	p := geom.Point{X: 0, Y: 0}
	q := geom.Point{X: 3, Y: 4}
	assert.Equal(t, 5.0, geom.Distance(p, q), "3-4-5 triangle")
}

func TestAngle_RightAngle(t *testing.T) {
	// (1,0) -> (0,1) is a +90 degree turn in this convention.
	a := geom.Angle(1, 0, 0, 1)
	assert.InDelta(t, math.Pi/2, a, 1e-9)
}

func TestAngle_Opposite(t *testing.T) {
	a := geom.Angle(1, 0, -1, 0)
	assert.InDelta(t, math.Pi, math.Abs(a), 1e-9, "opposite vectors subtend pi")
}

func TestAngle_DegenerateVector(t *testing.T) {
	assert.Equal(t, 0.0, geom.Angle(0, 0, 1, 1), "zero-length vector yields 0")
}

func TestDistLinePoint_OnLine(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	p := geom.Point{X: 5, Y: 0}
	assert.Equal(t, 0.0, geom.DistLinePoint(a, b, p))
}

func TestDistLinePoint_Perpendicular(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	p := geom.Point{X: 5, Y: 7}
	assert.InDelta(t, 7.0, geom.DistLinePoint(a, b, p), 1e-9)
}

func TestDistLinePoint_DegenerateLine(t *testing.T) {
	a := geom.Point{X: 3, Y: 3}
	p := geom.Point{X: 6, Y: 7}
	assert.Equal(t, geom.Distance(a, p), geom.DistLinePoint(a, a, p))
}

func TestSurface4_Square(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	c := geom.Point{X: 10, Y: 10}
	d := geom.Point{X: 0, Y: 10}
	assert.Equal(t, 100.0, geom.Surface4(a, b, c, d))
}

func TestSurface4_Degenerate(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 10, Y: 0}
	assert.Equal(t, 0.0, geom.Surface4(a, b, a, b), "collapsed quad has zero area")
}

func TestVecNormalized(t *testing.T) {
	v := geom.Vec{X: 3, Y: 4}
	n := v.Normalized()
	assert.InDelta(t, 1.0, n.Norm(), 1e-9)
}

func TestVecNormalized_Zero(t *testing.T) {
	v := geom.Vec{}
	assert.Equal(t, v, v.Normalized())
}
