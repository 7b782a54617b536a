// Package scenario implements the workhorse entity of the curve matcher:
// a Scenario is a partial alignment of a word prefix to a range of curve
// indices, plus the per-step scoring and expansion logic that grows one
// scenario into its letter-children.
//
// Scenario is a value type: cloning for expansion copies its history
// buffers by value, so a parent's later mutations never affect an
// already-produced child, matching the value-semantic clone-based
// expansion used elsewhere in this module rather than a mutable class
// hierarchy with hand-rolled copy constructors.
package scenario
