// Package core holds the data model shared by the ignore/collect/rewrite
// stages: source spans, the key occurrence table, the reserved-keyword set,
// the token allocator and the cost-based filter.
package core

import "sort"

// Span is a byte-offset range into the original source, [Lo, Hi).
type Span struct {
	Lo int
	Hi int
}

// SpanSet is a set of Span, used for skip-spans, skip-ranges and per-key
// occurrence sets.
type SpanSet map[Span]struct{}

func NewSpanSet(spans ...Span) SpanSet {
	s := make(SpanSet, len(spans))
	for _, sp := range spans {
		s[sp] = struct{}{}
	}
	return s
}

func (s SpanSet) Add(span Span) {
	s[span] = struct{}{}
}

func (s SpanSet) Has(span Span) bool {
	_, ok := s[span]
	return ok
}

// Overlaps reports whether span overlaps any span in s, treating both as
// half-open [Lo, Hi).
func (s SpanSet) Overlaps(span Span) bool {
	for other := range s {
		if span.Lo < other.Hi && span.Hi > other.Lo {
			return true
		}
	}
	return false
}

// Occurrence is the (spans, count) pair the spec's key occurrence table maps
// a key string to. |Spans| == Count always holds: duplicate spans cannot
// occur because a single source position belongs to exactly one node.
type Occurrence struct {
	Spans SpanSet
	Count int
}

// KeyTable is the key occurrence table: key string -> its occurrence record.
type KeyTable map[string]*Occurrence

// Count records one occurrence of key at span. It is idempotent per distinct
// span: inserting the same span twice does not double count, matching the
// spec invariant that a span belongs to a single node.
func (t KeyTable) Count(key string, span Span) {
	occ, ok := t[key]
	if !ok {
		occ = &Occurrence{Spans: SpanSet{}}
		t[key] = occ
	}
	if occ.Spans.Has(span) {
		return
	}
	occ.Spans.Add(span)
	occ.Count++
}

// Keys returns the table's keys in sorted order, for deterministic iteration.
func (t KeyTable) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
