package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ommin/collect"
	"github.com/viant/ommin/core"
)

func TestRewriterHoistsRepeatedMemberAndSubscript(t *testing.T) {
	src := `const obj = {};
obj.fooooooooooooooooooooooooooooooooooooooo = 1;
obj["fooooooooooooooooooooooooooooooooooooooo"] = 1;
console.log(obj.fooooooooooooooooooooooooooooooooooooooo);
`
	_, root, err := collect.Parse([]byte(src), collect.JavaScript)
	assert.NoError(t, err)

	res := collect.New([]byte(src), nil).Collect(root)
	filtered := core.KeyTable{}
	for key, n := range core.FilterCandidates(countsOf(res.Table)) {
		_ = n
		filtered[key] = res.Table[key]
	}

	rw := New([]byte(src), filtered, res.SkipSpans, res.SkipRanges, res.InUse, nil)
	out := rw.Rewrite(root)

	assert.Contains(t, out, `var a = "fooooooooooooooooooooooooooooooooooooooo";`)
	assert.Contains(t, out, "obj[a]")
	assert.NotContains(t, out, ".fooooooooooooooooooooooooooooooooooooooo")
}

func countsOf(table core.KeyTable) map[string]int {
	out := make(map[string]int, len(table))
	for k, occ := range table {
		out[k] = occ.Count
	}
	return out
}
