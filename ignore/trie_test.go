package ignore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrieQueryExactMatch(t *testing.T) {
	tr := New()
	tr.Insert("require.async", Payload{Subpath: true, SkipLitArg: true})

	m, ok := tr.Query([]string{"require", "async"})
	assert.True(t, ok)
	assert.Equal(t, 2, m.Depth)
	assert.True(t, m.Payload.SkipLitArg)
}

func TestTrieQueryDeepestMarkedPrefix(t *testing.T) {
	tr := New()
	tr.Insert("a.b", Payload{Subpath: true})

	m, ok := tr.Query([]string{"a", "b", "c", "d"})
	assert.True(t, ok)
	assert.Equal(t, 2, m.Depth)
}

func TestTrieQueryNoMatch(t *testing.T) {
	tr := New()
	tr.Insert("require.async", Payload{Subpath: true})

	_, ok := tr.Query([]string{"foo", "bar"})
	assert.False(t, ok)
}

func TestTrieQueryMissingSegmentAfterMark(t *testing.T) {
	tr := New()
	tr.Insert("a", Payload{Subpath: false})

	m, ok := tr.Query([]string{"a", "z"})
	assert.True(t, ok)
	assert.Equal(t, 1, m.Depth)
	assert.False(t, m.Payload.Subpath)
}

func TestBuildSeparatesStringLitFromTrie(t *testing.T) {
	set := Build([]Word{
		Simple("foo.bar"),
		StringLit("./foo.js"),
	})

	assert.True(t, set.SkipsString("./foo.js"))
	_, ok := set.Trie.Query([]string{"foo", "bar"})
	assert.True(t, ok)
}

func TestCachedSetMatchesUncachedResult(t *testing.T) {
	set := Build([]Word{MemberMatch("require.async", true, true, false)})
	cached := NewCached(set, 0)

	m1, ok1 := cached.Query([]string{"require", "async"})
	m2, ok2 := cached.Query([]string{"require", "async"})
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, m1, m2)
	assert.True(t, ok1)
}
