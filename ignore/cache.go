package ignore

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultQueryCacheSize = 512

// CachedSet wraps a Set with a bounded memoization layer over Query: member
// chains repeat heavily in real sources (the same `require.async` callee
// appears at every call site), and re-walking the trie for an identical
// dotted path on every occurrence is wasted work once a source has more than
// a handful of call sites.
type CachedSet struct {
	*Set
	cache *lru.Cache[string, cachedMatch]
}

type cachedMatch struct {
	match Match
	ok    bool
}

// NewCached wraps set with an LRU query cache of the given size; size <= 0
// uses defaultQueryCacheSize.
func NewCached(set *Set, size int) *CachedSet {
	if size <= 0 {
		size = defaultQueryCacheSize
	}
	cache, _ := lru.New[string, cachedMatch](size)
	return &CachedSet{Set: set, cache: cache}
}

// Query memoizes Trie.Query keyed by the dotted-joined segment path.
func (c *CachedSet) Query(segments []string) (Match, bool) {
	key := strings.Join(segments, ".")
	if cached, ok := c.cache.Get(key); ok {
		return cached.match, cached.ok
	}
	m, ok := c.Trie.Query(segments)
	c.cache.Add(key, cachedMatch{match: m, ok: ok})
	return m, ok
}
