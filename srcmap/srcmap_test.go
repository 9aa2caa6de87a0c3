package srcmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeVLQRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, -1, 15, -15, 16, -16, 1000, -1000, 31, 32} {
		encoded := string(encodeVLQ(nil, v))
		decoded, consumed, err := decodeVLQ(encoded)
		assert.NoError(t, err)
		assert.Equal(t, len(encoded), consumed)
		assert.Equal(t, v, decoded)
	}
}

func TestBuildProducesParseableMappings(t *testing.T) {
	orig := []byte("obj.foo = 1;\nobj.foo;\n")
	segs := []Segment{
		{Text: "var a = \"foo\";\n"},
		{Text: "obj", OrigLo: 0, HasOrigin: true},
		{Text: "[a]", OrigLo: 3, HasOrigin: true},
		{Text: " = 1;\nobj", OrigLo: 7, HasOrigin: true},
		{Text: "[a]", OrigLo: 17, HasOrigin: true},
		{Text: ";\n", OrigLo: 20, HasOrigin: true},
	}
	m := Build(orig, segs, "input.js", "output.js")
	assert.Equal(t, 3, m.Version)
	assert.NotEmpty(t, m.Mappings)

	decoded, err := decodeMappings(m.Mappings)
	assert.NoError(t, err)
	assert.NotEmpty(t, decoded)
}

func TestLineCol(t *testing.T) {
	text := []byte("abc\ndef\nghi")
	line, col := lineCol(text, 5)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)
}
