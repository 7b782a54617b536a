package dictionary

// Child is one (letter, node) pair yielded while enumerating a Node's
// children.
type Child struct {
	Letter byte
	Node   Node
}

// Node is an opaque handle into a prefix tree. Implementations may be
// backed by a packed on-disk format (out of scope here) or, as with
// MemTrie, by ordinary Go maps.
type Node interface {
	// Char returns the letter this node's incoming edge is labeled with.
	// The root node's Char is unspecified and must not be read.
	Char() byte

	// Children enumerates this node's children in a stable, deterministic
	// order. The order is implementation-defined but MUST be stable across
	// calls so callers relying on it for debugging see consistent output.
	Children() []Child

	// IsLeaf reports whether this node has no children (a dead end of the
	// spelling space, not necessarily a complete word by itself).
	IsLeaf() bool

	// HasPayload reports whether one or more dictionary words terminate at
	// this node (under case/diacritic folding).
	HasPayload() bool

	// Payload returns the opaque zero-terminated, comma-separated word list
	// for this node. "=" stands for "the node's own spelling". Payload may
	// be called even when HasPayload is false, in which case it returns an
	// empty/absent result.
	Payload() []byte
}

// Trie is a read-only prefix tree of dictionary words.
type Trie interface {
	// Root returns the tree's root node (an empty prefix).
	Root() Node
}
