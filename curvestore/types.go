package curvestore

import "github.com/katalvlaran/swipematch/geom"

// SpecialClass classifies a curve index as geometrically or kinematically
// significant. Zero value is
// SpecialNone so a freshly allocated column reads as "nothing detected yet".
type SpecialClass int

const (
	// SpecialNone marks an index with no special significance.
	SpecialNone SpecialClass = 0
	// SpecialSharpTurn marks a local sharp turn (mandatory).
	SpecialSharpTurn SpecialClass = 1
	// SpecialUTurn marks a U-turn, a stronger sharp turn (mandatory).
	SpecialUTurn SpecialClass = 2
	// SpecialSlowDown marks a local speed minimum (soft).
	SpecialSlowDown SpecialClass = 3
	// SpecialInflection marks a turn-sign inflection (informational only).
	SpecialInflection SpecialClass = 4
	// SpecialSmallTurn marks an optional small turn (soft).
	SpecialSmallTurn SpecialClass = 5
	// SpecialMovableTurn marks a sharp turn that may be absorbed into the
	// curve tip rather than rendezvoused with a letter (mandatory,
	// conditionally demoted).
	SpecialMovableTurn SpecialClass = 6
)

// IsMandatory reports whether a scenario must consume a special point of
// this class at or near its index.
func (c SpecialClass) IsMandatory() bool {
	return c == SpecialSharpTurn || c == SpecialUTurn || c == SpecialMovableTurn
}

// IsSoft reports whether failing to consume this class only incurs a score
// penalty rather than a hard alignment failure (classes 3 and 5).
func (c SpecialClass) IsSoft() bool {
	return c == SpecialSlowDown || c == SpecialSmallTurn
}

// CurvePoint is a single time-stamped sample of the user's stroke plus the
// attributes package preprocess derives from its neighbors.
type CurvePoint struct {
	geom.Point

	// Timestamp is milliseconds since the start of the stroke.
	Timestamp int

	// Smoothed overrides Point when HasSmoothed is true: some callers of
	// the engine pre-smooth coordinates before submission.
	Smoothed    geom.Vec
	HasSmoothed bool

	// CumulativeLength is arc length from the curve start up to this point.
	CumulativeLength float64

	// Speed is instantaneous speed in pixels/second.
	Speed float64

	// TurnAngle is the signed raw turn angle at this index, in degrees.
	TurnAngle float64

	// TurnSmooth is the neighbor-weighted smoothed turn angle, in degrees.
	TurnSmooth float64

	// Special is the special-point classification at this index.
	Special SpecialClass

	// Normal is the sharp-turn bias normal vector (zero elsewhere).
	Normal geom.Vec

	// EndMarker terminates a curve in multi-curve contexts; the
	// single-curve matcher never sets this on an interior point.
	EndMarker bool
}
