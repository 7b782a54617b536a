// Package beam drives a one-shot, breadth-first search over a dictionary
// trie against an already-fully-preprocessed curve, expanding the
// frontier of partial scenarios letter by letter and collecting finished
// scenarios (leaves or nodes carrying a dictionary payload) into a scored,
// pruned candidate pool. It is the whole-curve counterpart to package
// incremental's length-scheduled driver: both share the same expansion
// (package scenario), scoring (package postprocess / package scoring) and
// duplicate-elimination rules, and are expected to agree on their final
// candidate set when fed the same curve and parameters.
package beam
