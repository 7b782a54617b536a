package scenario

import "errors"

var (
	// ErrMandatoryPointSkipped indicates a class-1/2/6 special point was
	// not rendezvoused with any letter; the scenario that would have
	// resulted is discarded (fatal for that scenario, never for the run).
	ErrMandatoryPointSkipped = errors.New("scenario: mandatory special point skipped")

	// ErrNoAlignment indicates get_next_key_match found no admissible
	// curve index at all for a letter (e.g. the curve ended too early).
	ErrNoAlignment = errors.New("scenario: no admissible curve index for letter")

	// ErrCollapsedHistory indicates three consecutive history indices
	// would collapse onto a single curve point, which the engine refuses.
	ErrCollapsedHistory = errors.New("scenario: three consecutive steps collapse to one point")
)
