// Package params defines the flat, compile-time tunable parameter block
// used throughout the curve matcher. Every field has a default compiled
// into the engine (Default); callers may override any subset by name via
// ApplyJSON, mirroring the wire format's params object.
//
// This mirrors the functional-options-plus-struct idiom at one remove:
// because the caller-facing contract is "override any subset of ~120
// named floats from JSON" rather than a handful of call-site options, a
// single reflect-driven loader replaces one WithX per field — reflection
// is used only at load time, set up once per match, never inside the hot
// scoring/expansion loops.
package params
