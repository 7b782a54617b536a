package geom

// Point is an integer 2D coordinate in keyboard-frame pixels.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by f, rounded toward zero.
func (p Point) Scale(f float64) Point {
	return Point{X: int(float64(p.X) * f), Y: int(float64(p.Y) * f)}
}

// Vec is a float64 2D vector, used for derived quantities (tangents,
// normals) that cannot be represented exactly in integer pixels.
type Vec struct {
	X, Y float64
}

// VecOf converts a Point to a Vec.
func VecOf(p Point) Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}

// Add returns v+w.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v-w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v scaled by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D scalar cross product v.X*w.Y - v.Y*w.X.
func (v Vec) Cross(w Vec) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length; the zero vector maps to itself.
func (v Vec) Normalized() Vec {
	n := v.Norm()
	if n == 0 {
		return v
	}
	return v.Scale(1 / n)
}
