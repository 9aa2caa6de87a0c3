package gzipscan

import (
	"bytes"
	"compress/gzip"
	"fmt"
)

// DefaultFilterLevel is the bits-per-byte threshold spec.md §4.4 defaults
// to when the user's gzip optimisation option omits filterLevel.
const DefaultFilterLevel = 2.0

// Filter answers Contains(lo, hi) for the spans the gzip heuristic judges
// too cheap (already well-compressed) to be worth hoisting.
type Filter struct {
	tree *Tree
}

// NewFilter gzip-compresses content with the standard library encoder,
// re-inflates it with the in-tree dynamic-Huffman decoder to recover
// back-reference costs, and builds the segment-range tree from every
// interval whose bits-per-byte is strictly below filterLevel. Reference
// intervals (the source of a cyclic back-reference) are always inserted,
// uncosted.
func NewFilter(content []byte, filterLevel float64) (*Filter, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(content); err != nil {
		return nil, fmt.Errorf("gzipscan: compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzipscan: compress: %w", err)
	}

	positions, err := Inflate(buf.Bytes())
	if err != nil {
		return nil, err
	}

	tree := NewTree()
	for _, p := range positions {
		// >= excludes the interval; the source's own boundary test.
		if p.Bits >= filterLevel {
			continue
		}
		tree.Insert(p.Start, p.End)
		for _, ref := range p.Reference {
			tree.Insert(ref[0], ref[1])
		}
	}

	return &Filter{tree: tree}, nil
}

// Contains reports whether [lo, hi] overlaps any cheaply-compressed span;
// spans that only touch one at an endpoint count as overlapping.
func (f *Filter) Contains(lo, hi int) bool {
	if f == nil {
		return false
	}
	return f.tree.Contains(lo, hi)
}
