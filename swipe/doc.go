// Package swipe is the public entry point for the curve-to-word matcher:
// it accepts a keyboard layout, a tunable parameter set and a stroke, and
// returns a ranked list of candidate words. It wraps the one-shot driver
// (package beam) and the streaming driver (package incremental) behind the
// Matcher and StreamMatcher types and the JSON request/response shapes a caller or the
// cmd/swipematch harness exchanges with it.
package swipe
