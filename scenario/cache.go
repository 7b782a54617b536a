package scenario

// expansionCache memoizes the result of expanding a particular child
// letter from a particular curve index. The key does not identify the
// scenario's letter history, so a cache belongs to one scenario: every
// child accepted by tryAccept starts a fresh cache, and only value clones
// of the same scenario (such as the copies handed out on a cache hit)
// share one.
//
// The cache is never mutated in place after a key is first populated: new
// entries are only added, so sharing the same *expansionCache pointer
// between clones is safe under the engine's single-threaded cooperative
// model.
type expansionCache struct {
	entries map[cacheKey][]Scenario
}

type cacheKey struct {
	letter byte
	index  int
}

func newExpansionCache() *expansionCache {
	return &expansionCache{entries: make(map[cacheKey][]Scenario)}
}

func (c *expansionCache) get(letter byte, index int) ([]Scenario, bool) {
	v, ok := c.entries[cacheKey{letter: letter, index: index}]
	return v, ok
}

func (c *expansionCache) put(letter byte, index int, result []Scenario) {
	c.entries[cacheKey{letter: letter, index: index}] = result
}
