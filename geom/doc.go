// Package geom provides the 2D integer-pixel geometry primitives shared by
// every stage of the swipe curve matcher: point arithmetic, Euclidean and
// anisotropic distance, signed angles between vectors, perpendicular
// line-point distance, and quadrilateral surface area.
//
// All coordinates are integer pixels in keyboard frame, matching the wire
// format in which keys and curve samples arrive (see package swipe). Derived
// quantities (distances, angles) are float64.
package geom
