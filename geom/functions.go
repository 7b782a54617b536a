package geom

import "math"

// hypot is a thin wrapper kept local so callers of this package never need
// to import math themselves for the common case.
func hypot(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Distance returns the Euclidean distance between two points.
func Distance(p, q Point) float64 {
	return hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// DistanceVec returns the Euclidean distance between two Vec.
func DistanceVec(v, w Vec) float64 {
	return hypot(v.X-w.X, v.Y-w.Y)
}

// CosAngle returns the cosine of the angle between vectors (x1,y1) and
// (x2,y2). Returns 0 if either vector is degenerate (zero length).
func CosAngle(x1, y1, x2, y2 float64) float64 {
	n1 := hypot(x1, y1)
	n2 := hypot(x2, y2)
	if n1 == 0 || n2 == 0 {
		return 0
	}
	return (x1*x2 + y1*y2) / (n1 * n2)
}

// SinAngle returns the sine of the signed angle from (x1,y1) to (x2,y2).
func SinAngle(x1, y1, x2, y2 float64) float64 {
	n1 := hypot(x1, y1)
	n2 := hypot(x2, y2)
	if n1 == 0 || n2 == 0 {
		return 0
	}
	return (x1*y2 - x2*y1) / (n1 * n2)
}

// Angle returns the signed angle in radians, in [-pi, pi], from vector
// (x1,y1) to vector (x2,y2): acos(cos) with the sign taken from the cross
// product x1*y2-x2*y1, so a turn that is counter-clockwise in a Y-up frame
// (clockwise as drawn in screen coordinates, Y down) is positive and the
// opposite turn is negative. A zero-length vector has no direction and
// yields 0.
func Angle(x1, y1, x2, y2 float64) float64 {
	if hypot(x1, y1) == 0 || hypot(x2, y2) == 0 {
		return 0
	}
	cosa := CosAngle(x1, y1, x2, y2)
	var value float64
	switch {
	case cosa > 1:
		value = 0
	case cosa < -1:
		value = math.Pi
	default:
		value = math.Acos(cosa)
	}
	if x1*y2-x2*y1 < 0 {
		value = -value
	}
	return value
}

// AngleVec is the Vec-argument form of Angle.
func AngleVec(v, w Vec) float64 {
	return Angle(v.X, v.Y, w.X, w.Y)
}

// DistLinePoint returns the perpendicular distance from p to the infinite
// line through a and b. If a == b, it degenerates to Distance(a, p).
func DistLinePoint(a, b, p Point) float64 {
	lineLen := Distance(a, b)
	if lineLen == 0 {
		return Distance(a, p)
	}
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	px, py := float64(p.X), float64(p.Y)

	u := ((px-ax)*(bx-ax) + (py-ay)*(by-ay)) / (lineLen * lineLen)
	projX := ax + u*(bx-ax)
	projY := ay + u*(by-ay)

	return hypot(projX-px, projY-py)
}

// Surface4 returns the unsigned area of the (possibly non-convex)
// quadrilateral a-b-c-d, computed via the shoelace formula over the four
// vertices in the given order.
func Surface4(a, b, c, d Point) float64 {
	pts := [4]Point{a, b, c, d}
	var sum float64
	for i := 0; i < 4; i++ {
		p1 := pts[i]
		p2 := pts[(i+1)%4]
		sum += float64(p1.X)*float64(p2.Y) - float64(p2.X)*float64(p1.Y)
	}
	return math.Abs(sum) / 2
}
