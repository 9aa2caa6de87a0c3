package ommin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// fixture is a txtar archive bundling an input source and the substrings its
// transform output must contain; golden-style cases are easiest to review as
// one txtar block per scenario rather than scattered Go string literals.
const fixture = `
-- repeated-member.js --
function f(obj) {
  obj.longPropertyName = 1;
  obj.longPropertyName += 2;
  return obj.longPropertyName;
}
-- repeated-member.want --
var
"longPropertyName"
-- short-key.js --
const x = { ab: 1 }; console.log(x.ab);
-- short-key.want --
x.ab
`

func TestGoldenFixtures(t *testing.T) {
	archive := txtar.Parse([]byte(fixture))
	files := make(map[string]string, len(archive.Files))
	for _, f := range archive.Files {
		files[f.Name] = string(f.Data)
	}

	cases := []struct {
		source string
		want   string
	}{
		{"repeated-member.js", "repeated-member.want"},
		{"short-key.js", "short-key.want"},
	}

	for _, c := range cases {
		src, ok := files[c.source]
		require.True(t, ok, c.source)
		wantLines, ok := files[c.want]
		require.True(t, ok, c.want)

		result, err := Transform(src, Options{Filename: c.source})
		require.NoError(t, err)
		for _, want := range splitNonEmptyLines(wantLines) {
			assert.Contains(t, result.Content, want)
		}
	}
}

func splitNonEmptyLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			if i > start {
				lines = append(lines, s[start:i])
			}
			start = i + 1
		}
	}
	return lines
}
