package keystore

import "github.com/katalvlaran/swipematch/geom"

// LetterID is the dense internal id the rest of the engine uses to address
// a key, instead of carrying its rune around in every hot-path call.
type LetterID uint8

// InvalidLetterID is returned by lookups that find no matching key.
const InvalidLetterID LetterID = 255

// Key is a single named rectangle in the keyboard layout. Label
// is the rune drawn on the key; it may be a base letter or a diacritic
// variant ('e' vs 'é').
type Key struct {
	X, Y          int
	Width, Height int
	Label         rune
}

// Center returns the geometric center of the key rectangle.
func (k Key) Center() geom.Point {
	return geom.Point{X: k.X, Y: k.Y}
}

// Size returns (width, height) as a Point.
func (k Key) Size() geom.Point {
	return geom.Point{X: k.Width, Y: k.Height}
}
