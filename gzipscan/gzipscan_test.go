package gzipscan

import (
	"bytes"
	"compress/gzip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	return buf.Bytes()
}

func TestInflateRecognizesGzipHeaderAndDecodesRepeatedContent(t *testing.T) {
	src := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 40)
	data := gzipBytes(t, src)

	positions, err := Inflate(data)
	assert.NoError(t, err)
	assert.NotEmpty(t, positions)
}

func TestSegmentTreeContainsOverlappingAndRejectsDisjoint(t *testing.T) {
	tree := NewTree()
	for _, r := range [][2]int{{15, 18}, {21, 59}, {59, 62}, {63, 67}, {69, 109}} {
		tree.Insert(r[0], r[1])
	}

	assert.True(t, tree.Contains(16, 17))
	assert.False(t, tree.Contains(0, 10))
	assert.True(t, tree.Contains(5, 20))
}

func TestSegmentTreeSmallFixture(t *testing.T) {
	tree := NewTree()
	tree.Insert(1, 3)
	tree.Insert(8, 10)
	tree.Insert(11, 13)

	assert.True(t, tree.Contains(2, 3))
	assert.True(t, tree.Contains(0, 1))
	assert.False(t, tree.Contains(4, 5))
	assert.True(t, tree.Contains(7, 9))
	assert.True(t, tree.Contains(-10, 200))
}

func TestNewFilterBuildsFromHighlyRepetitiveContent(t *testing.T) {
	src := []byte(strings.Repeat("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 30))
	filter, err := NewFilter(src, DefaultFilterLevel)
	assert.NoError(t, err)
	assert.NotNil(t, filter)
}
