package postprocess

import "errors"

// ErrTooShort is returned by Run when a scenario has matched no letters at
// all, leaving nothing to score.
var ErrTooShort = errors.New("postprocess: scenario has no matched letters")
