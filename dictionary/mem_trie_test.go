package dictionary_test

import (
	"testing"

	"github.com/katalvlaran/swipematch/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemTrie_BasicDescent(t *testing.T) {
	trie := dictionary.NewMemTrie([]string{"tip", "tap", "tips"})
	root := trie.Root()

	children := root.Children()
	require.Len(t, children, 1, "only 't' branches from root")
	assert.Equal(t, byte('t'), children[0].Letter)

	tNode := children[0].Node
	assert.False(t, tNode.HasPayload())
	assert.False(t, tNode.IsLeaf())

	tiNode := findChild(t, tNode, 'i')
	tipNode := findChild(t, tiNode, 'p')
	assert.True(t, tipNode.HasPayload())
	assert.False(t, tipNode.IsLeaf(), "'tips' continues past 'tip'")
	assert.Equal(t, []byte("=\x00"), tipNode.Payload())
}

func TestMemTrie_SharedPrefixBranches(t *testing.T) {
	trie := dictionary.NewMemTrie([]string{"cat", "car", "cart"})
	root := trie.Root()
	ca := findChild(t, root, 'c')
	ca = findChild(t, ca, 'a')
	children := ca.Children()
	require.Len(t, children, 2, "'t' and 'r' both branch from 'ca'")
}

func TestMemTrie_CaseFolded(t *testing.T) {
	trie := dictionary.NewMemTrie([]string{"Tip"})
	root := trie.Root()
	n := findChild(t, root, 't')
	n = findChild(t, n, 'i')
	n = findChild(t, n, 'p')
	assert.True(t, n.HasPayload())
}

func findChild(t *testing.T, n dictionary.Node, c byte) dictionary.Node {
	t.Helper()
	for _, ch := range n.Children() {
		if ch.Letter == c {
			return ch.Node
		}
	}
	t.Fatalf("no child %q", c)
	return nil
}
