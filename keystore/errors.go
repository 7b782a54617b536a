package keystore

import "errors"

var (
	// ErrNoKeys indicates NewStore was called with an empty key layout.
	ErrNoKeys = errors.New("keystore: layout has no keys")

	// ErrUnknownLetter indicates a lookup for a letter id or rune with no
	// matching key in the layout.
	ErrUnknownLetter = errors.New("keystore: unknown letter")
)
