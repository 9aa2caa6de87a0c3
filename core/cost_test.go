package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldCompressAnchors(t *testing.T) {
	assert.False(t, ShouldCompress(0, 3, 1))
	assert.False(t, ShouldCompress(0, 3, 8))
	assert.True(t, ShouldCompress(0, 3, 20))
	assert.True(t, ShouldCompress(0, 3, 100))
}

func TestFilterCandidatesAllSingleUse(t *testing.T) {
	uses := map[string]int{"aaa": 1, "bbb": 1, "ccc": 1, "ddd": 1, "eee": 1}
	assert.Empty(t, FilterCandidates(uses))
}

func TestFilterCandidatesLongButSingleUse(t *testing.T) {
	uses := map[string]int{strings.Repeat("a", 20): 1}
	assert.Empty(t, FilterCandidates(uses))
}

func TestFilterCandidatesLongEnoughSurvivesAtLowUseCount(t *testing.T) {
	key := strings.Repeat("a", 40)
	uses := map[string]int{key: 2}
	out := FilterCandidates(uses)
	assert.Equal(t, map[string]int{key: 2}, out)
}

func TestFilterCandidatesKeepsOnlyTopUsesAmongEqualLength(t *testing.T) {
	uses := map[string]int{
		"aa1": 1, "aa2": 2, "aa3": 3, "aa4": 4, "aa5": 5,
		"aa6": 6, "aa7": 7, "aa8": 8, "aa9": 9, "aaa": 10,
	}
	out := FilterCandidates(uses)
	assert.Equal(t, map[string]int{"aaa": 10, "aa9": 9}, out)
}

func TestFilterCandidatesLocalStorageSurvives(t *testing.T) {
	uses := map[string]int{"localStorage": 2}
	assert.Equal(t, map[string]int{"localStorage": 2}, FilterCandidates(uses))
}

func TestFilterCandidatesDropsShortKeysRegardlessOfUses(t *testing.T) {
	assert.Empty(t, FilterCandidates(map[string]int{"a": 10}))
	assert.Empty(t, FilterCandidates(map[string]int{"aa": 1000}))
}
