package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ommin/ignore"
)

func collectSource(t *testing.T, src string, matcher Matcher) Result {
	t.Helper()
	_, root, err := Parse([]byte(src), JavaScript)
	assert.NoError(t, err)
	return New([]byte(src), matcher).Collect(root)
}

func TestCollectorCountsRepeatedMemberProperty(t *testing.T) {
	src := `
const obj = {};
obj.foo = 1;
console.log(obj.foo);
`
	res := collectSource(t, src, nil)
	occ, ok := res.Table["foo"]
	assert.True(t, ok)
	assert.Equal(t, 2, occ.Count)
	_, inUse := res.InUse["obj"]
	assert.True(t, inUse)
}

func TestCollectorCountsSubscriptStringLiteralAsSameKey(t *testing.T) {
	src := `obj["foo"] = 1; obj.foo = 2;`
	res := collectSource(t, src, nil)
	occ, ok := res.Table["foo"]
	assert.True(t, ok)
	assert.Equal(t, 2, occ.Count)
}

func TestCollectorRequireAsyncSubpathTrueSkipLitArg(t *testing.T) {
	set := ignore.Build([]ignore.Word{
		ignore.MemberMatch("require.async", true, true, false),
	})
	src := `require.async("./foo.js");`
	res := collectSource(t, src, set)

	occ, ok := res.Table["async"]
	assert.True(t, ok)
	assert.Equal(t, 1, occ.Count)

	_, litCounted := res.Table["./foo.js"]
	assert.False(t, litCounted)
}

func TestCollectorRequireAsyncSubpathFalse(t *testing.T) {
	set := ignore.Build([]ignore.Word{
		ignore.MemberMatch("require.async", false, false, false),
	})
	src := `require.async("./foo.js");`
	res := collectSource(t, src, set)

	_, asyncCounted := res.Table["async"]
	assert.False(t, asyncCounted)

	occ, ok := res.Table["./foo.js"]
	assert.True(t, ok)
	assert.Equal(t, 1, occ.Count)
}

func TestCollectorSkipArgExcludesAllArgumentOccurrences(t *testing.T) {
	set := ignore.Build([]ignore.Word{
		ignore.MemberMatch("a.b.c.d", true, false, true),
	})
	src := `a.b.c.d("namespace", "google", e("name"), f.g("age"));`
	res := collectSource(t, src, set)

	for _, key := range []string{"namespace", "google", "name", "g", "age"} {
		_, ok := res.Table[key]
		assert.False(t, ok, "key %q must not be counted", key)
	}
}
