package keystore

import "github.com/katalvlaran/swipematch/geom"

// Store is the fast lookup table over a keyboard layout: for each
// internal LetterID it holds the raw center, an optional
// corrected center fed by an external distortion collaborator, the key
// size, and a reverse index from logical (base-folded) letter to the set
// of LetterIDs that can satisfy it.
type Store struct {
	keys      []Key
	corrected []geom.Point
	hasCorr   []bool
	reverse   map[rune][]LetterID
	labelID   map[rune]LetterID

	avgWidth, avgHeight float64
}

// NewStore builds a Store from the keyboard layout. Order is preserved:
// key i gets LetterID(i).
func NewStore(keys []Key) *Store {
	s := &Store{
		keys:      append([]Key(nil), keys...),
		corrected: make([]geom.Point, len(keys)),
		hasCorr:   make([]bool, len(keys)),
		reverse:   make(map[rune][]LetterID, len(keys)),
		labelID:   make(map[rune]LetterID, len(keys)),
	}

	var sumW, sumH float64
	for i, k := range keys {
		id := LetterID(i)
		s.labelID[k.Label] = id

		base := baseLetter(k.Label)
		s.reverse[base] = append(s.reverse[base], id)
		if base != k.Label {
			// The key's own (diacritic) label also matches itself directly.
			s.reverse[k.Label] = append(s.reverse[k.Label], id)
		}

		sumW += float64(k.Width)
		sumH += float64(k.Height)
	}
	if n := len(keys); n > 0 {
		s.avgWidth = sumW / float64(n)
		s.avgHeight = sumH / float64(n)
	}
	return s
}

// Len returns the number of keys in the layout.
func (s *Store) Len() int { return len(s.keys) }

// Key returns the Key for a given LetterID.
func (s *Store) Key(id LetterID) Key { return s.keys[id] }

// Label returns the rune label for a LetterID.
func (s *Store) Label(id LetterID) rune { return s.keys[id].Label }

// Center returns the raw (uncorrected) center of the key.
func (s *Store) Center(id LetterID) geom.Point { return s.keys[id].Center() }

// CorrectedCenter returns the distortion-corrected center if one has been
// set via SetCorrectedCenter, otherwise the raw center.
func (s *Store) CorrectedCenter(id LetterID) geom.Point {
	if s.hasCorr[id] {
		return s.corrected[id]
	}
	return s.keys[id].Center()
}

// SetCorrectedCenter installs the corrected center produced by an external
// distortion/drift-adaptation collaborator outside this package's scope.
func (s *Store) SetCorrectedCenter(id LetterID, center geom.Point) {
	s.corrected[id] = center
	s.hasCorr[id] = true
}

// Size returns (width, height) of the key as a Point.
func (s *Store) Size(id LetterID) geom.Point { return s.keys[id].Size() }

// AverageSize returns the mean key width and height across the layout,
// used by the post-processor's flatness checks.
func (s *Store) AverageSize() (width, height float64) { return s.avgWidth, s.avgHeight }

// IDForLabel returns the LetterID whose own label is exactly r, and
// whether one was found. Use LettersFor to also match diacritic variants.
func (s *Store) IDForLabel(r rune) (LetterID, bool) {
	id, ok := s.labelID[r]
	return id, ok
}

// LettersFor returns every LetterID that can satisfy logical letter r: its
// own key (if any) plus every diacritic key whose base letter is r.
func (s *Store) LettersFor(r rune) []LetterID {
	return s.reverse[r]
}
