// Package keystore implements the key layout lookup table: raw and
// distortion-corrected key centers, key size, and the letter→internal-id
// reverse index that lets a diacritic key satisfy both its own letter and
// its base letter.
//
// Everywhere else in the engine, letters are addressed by a dense
// internal byte id rather than by rune or string, the same
// "integer ids + dense arrays" idiom as an adjacency list.
package keystore
