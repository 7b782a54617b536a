package scoring

import "errors"

// ErrEmptySheet is returned by Finalize when no rows were ever added.
var ErrEmptySheet = errors.New("scoring: sheet has no rows")
