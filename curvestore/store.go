package curvestore

import "github.com/katalvlaran/swipematch/geom"

// Store holds a curve as parallel columns. It is built once from a list of
// CurvePoint and then mutated in place by package preprocess as later
// passes refine turn/speed/special-point columns; the incremental driver
// appends new points with AppendPoints and lets the preprocessor revisit
// only a suffix of the curve.
type Store struct {
	x, y            []int
	timestamp       []int
	smoothX         []float64
	smoothY         []float64
	hasSmoothed     []bool
	turn            []float64
	turnSmooth      []float64
	special         []SpecialClass
	normalX         []float64
	normalY         []float64
	speed           []float64
	cumulativeLen   []float64
	endMarker       []bool
	minTotalLength  float64
	isDot           bool
	totalLengthKept float64
}

// NewStore builds a Store from an initial list of curve points. If the
// total arc length implied by consecutive points falls below minLength,
// the curve is declared a "dot" and IsDot reports true. The beam and
// incremental drivers do not consult IsDot: a dot curve is expanded like
// any other, and its candidates are not limited to single letters.
func NewStore(points []CurvePoint, minLength float64) *Store {
	s := &Store{minTotalLength: minLength}
	s.AppendPoints(points)
	return s
}

// AppendPoints appends new raw samples to the curve, recomputing cumulative
// length incrementally and re-evaluating the dot classification. Derived
// columns (turn, speed, special) for the new points start at their zero
// value until package preprocess visits them.
func (s *Store) AppendPoints(points []CurvePoint) {
	for _, p := range points {
		s.x = append(s.x, p.X)
		s.y = append(s.y, p.Y)
		s.timestamp = append(s.timestamp, p.Timestamp)
		s.smoothX = append(s.smoothX, p.Smoothed.X)
		s.smoothY = append(s.smoothY, p.Smoothed.Y)
		s.hasSmoothed = append(s.hasSmoothed, p.HasSmoothed)
		s.turn = append(s.turn, p.TurnAngle)
		s.turnSmooth = append(s.turnSmooth, p.TurnSmooth)
		s.special = append(s.special, p.Special)
		s.normalX = append(s.normalX, p.Normal.X)
		s.normalY = append(s.normalY, p.Normal.Y)
		s.speed = append(s.speed, p.Speed)
		s.endMarker = append(s.endMarker, p.EndMarker)

		n := len(s.cumulativeLen)
		if n == 0 {
			s.cumulativeLen = append(s.cumulativeLen, 0)
		} else {
			prev := s.Position(n - 1)
			cur := geom.Point{X: p.X, Y: p.Y}
			s.cumulativeLen = append(s.cumulativeLen, s.cumulativeLen[n-1]+geom.Distance(prev, cur))
		}
	}
	if n := len(s.cumulativeLen); n > 0 {
		s.totalLengthKept = s.cumulativeLen[n-1]
	}
	s.isDot = s.totalLengthKept < s.minTotalLength
}

// Size returns the number of points currently stored.
func (s *Store) Size() int { return len(s.x) }

// TotalLength returns the cumulative arc length of the whole curve.
func (s *Store) TotalLength() float64 { return s.totalLengthKept }

// IsDot reports whether the curve's total length is below the minimum
// configured at construction time (a tap/click rather than a swipe).
func (s *Store) IsDot() bool { return s.isDot }

// Position returns the point at index i, preferring the smoothed override
// when one was supplied.
func (s *Store) Position(i int) geom.Point {
	if s.hasSmoothed[i] {
		return geom.Point{X: int(s.smoothX[i]), Y: int(s.smoothY[i])}
	}
	return geom.Point{X: s.x[i], Y: s.y[i]}
}

// PositionVec is Position as a float64 Vec, useful for sub-pixel geometry
// computed from the smoothed override.
func (s *Store) PositionVec(i int) geom.Vec {
	if s.hasSmoothed[i] {
		return geom.Vec{X: s.smoothX[i], Y: s.smoothY[i]}
	}
	return geom.VecOf(geom.Point{X: s.x[i], Y: s.y[i]})
}

// Timestamp returns the millisecond timestamp at index i.
func (s *Store) Timestamp(i int) int { return s.timestamp[i] }

// RawTurn returns the raw signed turn angle (degrees) at index i.
func (s *Store) RawTurn(i int) float64 { return s.turn[i] }

// SetRawTurn sets the raw turn angle column at index i (preprocess only).
func (s *Store) SetRawTurn(i int, v float64) { s.turn[i] = v }

// SmoothTurn returns the smoothed turn angle (degrees) at index i.
func (s *Store) SmoothTurn(i int) float64 { return s.turnSmooth[i] }

// SetSmoothTurn sets the smoothed turn angle column at index i.
func (s *Store) SetSmoothTurn(i int, v float64) { s.turnSmooth[i] = v }

// Special returns the special-point class at index i. When hardOnly is
// true, every class >= SpecialSlowDown reports as SpecialNone: the
// soft/informational classes 3, 4 and 5, and also the movable turn 6, so
// only classes 1 and 2 remain in this "hard turns only" view.
func (s *Store) Special(i int, hardOnly bool) SpecialClass {
	c := s.special[i]
	if hardOnly && c >= SpecialSlowDown {
		return SpecialNone
	}
	return c
}

// SetSpecial sets the special-point class column at index i.
func (s *Store) SetSpecial(i int, c SpecialClass) { s.special[i] = c }

// Normal returns the sharp-turn bias normal vector at index i.
func (s *Store) Normal(i int) geom.Vec { return geom.Vec{X: s.normalX[i], Y: s.normalY[i]} }

// SetNormal sets the normal-vector column at index i.
func (s *Store) SetNormal(i int, v geom.Vec) { s.normalX[i], s.normalY[i] = v.X, v.Y }

// Speed returns the instantaneous speed (pixels/second) at index i.
func (s *Store) Speed(i int) float64 { return s.speed[i] }

// SetSpeed sets the speed column at index i.
func (s *Store) SetSpeed(i int, v float64) { s.speed[i] = v }

// CumLength returns the cumulative arc length up to and including index i.
func (s *Store) CumLength(i int) float64 { return s.cumulativeLen[i] }

// EndMarker reports whether index i terminates a curve in a multi-curve
// context.
func (s *Store) EndMarker(i int) bool { return s.endMarker[i] }

// SegmentLength returns the arc length of the curve span [i, j].
func (s *Store) SegmentLength(i, j int) float64 {
	if i < 0 || j >= len(s.cumulativeLen) || i > j {
		return 0
	}
	return s.cumulativeLen[j] - s.cumulativeLen[i]
}
