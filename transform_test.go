package ommin

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformHoistsRepeatedPropertyKey(t *testing.T) {
	src := `
function f(obj) {
  obj.longPropertyName = 1;
  obj.longPropertyName += 2;
  return obj.longPropertyName;
}
`
	result, err := Transform(src, Options{Filename: "input.js"})
	require.NoError(t, err)
	assert.Contains(t, result.Content, "var ")
	assert.Contains(t, result.Content, `"longPropertyName"`)
	assert.NotContains(t, result.Content, "obj.longPropertyName")
	assert.NotEmpty(t, result.ContentHash)
	assert.Nil(t, result.Map)
}

func TestTransformLeavesShortOrRareKeysAlone(t *testing.T) {
	src := `const x = { ab: 1 }; console.log(x.ab);`
	result, err := Transform(src, Options{Filename: "input.js"})
	require.NoError(t, err)
	assert.NotContains(t, result.Content, "var ")
	assert.Contains(t, result.Content, "x.ab")
}

func TestTransformRespectsIgnoreWords(t *testing.T) {
	src := `
require.async("featureFlagName", function(m) {
  use(m.featureFlagName);
});
require.async("featureFlagName", function(m) {
  use(m.featureFlagName);
});
`
	result, err := Transform(src, Options{
		Filename:    "input.js",
		IgnoreWords: []IgnoreWord{MemberMatchIgnore("require.async", false, true, false)},
	})
	require.NoError(t, err)
	assert.Contains(t, result.Content, `"featureFlagName"`)
}

func TestTransformEmitsSourceMapWhenRequested(t *testing.T) {
	src := `
const repeatedKeyName = {};
repeatedKeyName.repeatedKeyName = 1;
repeatedKeyName.repeatedKeyName += 2;
`
	result, err := Transform(src, Options{Filename: "input.js", EnableSourceMap: true})
	require.NoError(t, err)
	require.NotNil(t, result.Map)
	assert.True(t, strings.HasPrefix(*result.Map, `{"version":3`))
}

func TestTransformRejectsMalformedSource(t *testing.T) {
	_, err := Transform("function(", Options{Filename: "input.js"})
	assert.Error(t, err)
}

func TestOptionsIgnoreWordUnmarshalsAllUnionForms(t *testing.T) {
	var words []IgnoreWord
	raw := `["simple.path", {"type":"member","path":"require.async","subpath":false,"skipLitArg":true}, {"type":"stringLit","content":"skip-me"}]`
	err := json.Unmarshal([]byte(raw), &words)
	require.NoError(t, err)
	require.Len(t, words, 3)
}
