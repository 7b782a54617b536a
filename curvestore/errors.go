package curvestore

import "errors"

// Sentinel errors for curvestore operations. Callers MUST use errors.Is to
// branch on semantics; messages are never relied upon for comparison.
var (
	// ErrIndexOutOfRange indicates a curve index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("curvestore: index out of range")

	// ErrEmptyCurve indicates an operation that requires at least one point
	// was called on an empty Store.
	ErrEmptyCurve = errors.New("curvestore: curve has no points")
)
