package dictionary

import (
	"sort"
	"strings"
)

// memNode is a simple map-backed trie node.
type memNode struct {
	char     byte
	children map[byte]*memNode
	words    []string // dictionary words that end exactly at this node
	spelling string   // the prefix spelled out by the path from the root
}

// Char implements Node.
func (n *memNode) Char() byte { return n.char }

// Children implements Node, returning children sorted by letter for a
// deterministic enumeration order.
func (n *memNode) Children() []Child {
	out := make([]Child, 0, len(n.children))
	for c, child := range n.children {
		out = append(out, Child{Letter: c, Node: child})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Letter < out[j].Letter })
	return out
}

// IsLeaf implements Node.
func (n *memNode) IsLeaf() bool { return len(n.children) == 0 }

// HasPayload implements Node.
func (n *memNode) HasPayload() bool { return len(n.words) > 0 }

// Payload implements Node, encoding the word list as a zero-terminated,
// comma-separated byte string with "=" standing for the node's own
// spelling.
func (n *memNode) Payload() []byte {
	if len(n.words) == 0 {
		return nil
	}
	parts := make([]string, len(n.words))
	for i, w := range n.words {
		if w == n.spelling {
			parts[i] = "="
		} else {
			parts[i] = w
		}
	}
	return append([]byte(strings.Join(parts, ",")), 0)
}

// MemTrie is a read-only, in-memory Trie built from a static word list. It
// exists so the engine and its tests do not need a packed on-disk
// dictionary reader to exercise the matcher.
type MemTrie struct {
	root *memNode
}

// NewMemTrie builds a MemTrie from words. Words are lower-cased; case
// folding beyond that (diacritics) is the caller's responsibility upstream
// of insertion, mirroring how package keystore folds diacritic keys.
func NewMemTrie(words []string) *MemTrie {
	root := &memNode{children: make(map[byte]*memNode)}
	for _, w := range words {
		insert(root, strings.ToLower(w))
	}
	return &MemTrie{root: root}
}

func insert(root *memNode, word string) {
	if word == "" {
		return
	}
	cur := root
	prefix := ""
	for i := 0; i < len(word); i++ {
		c := word[i]
		prefix += string(c)
		next, ok := cur.children[c]
		if !ok {
			next = &memNode{char: c, children: make(map[byte]*memNode), spelling: prefix}
			cur.children[c] = next
		}
		cur = next
	}
	cur.words = append(cur.words, word)
}

// Root implements Trie.
func (t *MemTrie) Root() Node { return t.root }
