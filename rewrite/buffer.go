// Package rewrite implements the rewriter of spec.md §4.6: a span-based
// text-splicing buffer (the Go analogue of the original's magic-string
// text buffer, since go-tree-sitter trees are read-only and cannot be
// mutated in place) plus the traversal that drives it.
package rewrite

import (
	"sort"
	"strings"

	"github.com/viant/ommin/core"
	"github.com/viant/ommin/srcmap"
)

type edit struct {
	lo, hi int
	text   string
}

// Buffer accumulates non-overlapping span replacements over an immutable
// source and renders the spliced result plus an optional prepended prefix
// (the hoisted var declaration).
type Buffer struct {
	src    []byte
	edits  []edit
	prefix string
}

func NewBuffer(src []byte) *Buffer {
	return &Buffer{src: src}
}

// Replace schedules span to be replaced by text. Replace must not be called
// twice for overlapping spans; the rewriter's "do not descend further once
// rewritten" rule guarantees this.
func (b *Buffer) Replace(span core.Span, text string) {
	b.edits = append(b.edits, edit{lo: span.Lo, hi: span.Hi, text: text})
}

// Prepend adds text to the very front of the rendered output, ahead of all
// spliced edits — used for the hoisted var declaration.
func (b *Buffer) Prepend(text string) {
	b.prefix += text
}

// String renders the buffer: the prefix, then the source with every
// scheduled edit spliced in, sorted by position.
func (b *Buffer) String() string {
	edits := append([]edit(nil), b.edits...)
	sort.Slice(edits, func(i, j int) bool { return edits[i].lo < edits[j].lo })

	var sb strings.Builder
	sb.WriteString(b.prefix)

	pos := 0
	for _, e := range edits {
		if e.lo < pos {
			continue
		}
		sb.Write(b.src[pos:e.lo])
		sb.WriteString(e.text)
		pos = e.hi
	}
	sb.Write(b.src[pos:])
	return sb.String()
}

// Segments returns the buffer's content as an ordered list of source-map
// segments: the prepended prefix (no origin), then alternating copied
// spans (origin = the matching slice of src) and edits (origin = the
// replaced span's start, so the generated replacement still maps back to
// where it came from).
func (b *Buffer) Segments() []srcmap.Segment {
	edits := append([]edit(nil), b.edits...)
	sort.Slice(edits, func(i, j int) bool { return edits[i].lo < edits[j].lo })

	var segs []srcmap.Segment
	if b.prefix != "" {
		segs = append(segs, srcmap.Segment{Text: b.prefix})
	}

	pos := 0
	for _, e := range edits {
		if e.lo < pos {
			continue
		}
		if e.lo > pos {
			segs = append(segs, srcmap.Segment{
				Text: string(b.src[pos:e.lo]), OrigLo: pos, HasOrigin: true,
			})
		}
		segs = append(segs, srcmap.Segment{Text: e.text, OrigLo: e.lo, HasOrigin: true})
		pos = e.hi
	}
	if pos < len(b.src) {
		segs = append(segs, srcmap.Segment{
			Text: string(b.src[pos:]), OrigLo: pos, HasOrigin: true,
		})
	}
	return segs
}
