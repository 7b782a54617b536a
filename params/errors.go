package params

import "errors"

var (
	// ErrUnknownParam indicates an override in the JSON params object did
	// not match any field's json tag.
	ErrUnknownParam = errors.New("params: unknown parameter name")

	// ErrNotANumber indicates an override value was not numeric.
	ErrNotANumber = errors.New("params: override value must be a number")
)
