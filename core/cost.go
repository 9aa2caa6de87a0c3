package core

import "sort"

// ShouldCompress implements the predicate from spec.md §4.3: whether
// aliasing a key at position pos (0-based in the frequency-sorted candidate
// list) given its length and use-count reduces total output bytes. Grounded
// on compress_ident.rs's CostCalculator::should_compress.
func ShouldCompress(pos, keyLen, uses int) bool {
	c := pos / CompressCharacterWidth
	if c < 1 {
		c = 1
	}

	first := 6 + 2*c - 1
	more := c + 1 - keyLen

	return first+more*(uses-1) < 0
}

// candidate is a key awaiting the cost filter, carrying only what the
// predicate needs plus its original identity.
type candidate struct {
	key  string
	uses int
}

// FilterCandidates implements the filter algorithm of spec.md §4.3: it takes
// a map of key -> use count, drops keys with uses <= 1 or length <= 2, sorts
// the rest by length desc (uses desc as tie-break), then keeps the prefix up
// to and including the last position where the cost predicate holds (nothing
// if it holds nowhere).
func FilterCandidates(uses map[string]int) map[string]int {
	candidates := make([]candidate, 0, len(uses))
	for key, n := range uses {
		if n <= 1 || len(key) <= 2 {
			continue
		}
		candidates = append(candidates, candidate{key: key, uses: n})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i].key) != len(candidates[j].key) {
			return len(candidates[i].key) > len(candidates[j].key)
		}
		if candidates[i].uses != candidates[j].uses {
			return candidates[i].uses > candidates[j].uses
		}
		return candidates[i].key < candidates[j].key
	})

	n := len(candidates)
	if n == 0 {
		return map[string]int{}
	}

	// Find the largest index (0 = longest/most-used entry) whose predicate
	// holds. Entries further from the head get a larger predicted alias
	// length and so have a harder time justifying themselves; once the
	// cutoff is found, everything after it is dropped.
	maxTrue := -1
	for i, c := range candidates {
		if ShouldCompress(i, len(c.key), c.uses) {
			maxTrue = i
		}
	}

	if maxTrue == -1 {
		return map[string]int{}
	}

	keep := candidates[:maxTrue+1]

	out := make(map[string]int, len(keep))
	for _, c := range keep {
		out[c.key] = c.uses
	}
	return out
}
