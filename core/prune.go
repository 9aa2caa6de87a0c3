package core

// SpanFilter answers whether the span lo..hi overlaps a region the gzip cost
// filter has judged already cheap to transmit; gzipscan.Filter satisfies
// this directly.
type SpanFilter interface {
	Contains(lo, hi int) bool
}

// PruneByFilter implements the closing paragraph of spec.md §4.4: every
// occurrence span that overlaps the gzip filter's tree is dropped from its
// key's occurrence set, and any key left with zero surviving occurrences is
// dropped from the table entirely. With a non-nil filter it returns a new
// table and leaves the input untouched; a nil filter returns table itself.
func PruneByFilter(table KeyTable, filter SpanFilter) KeyTable {
	if filter == nil {
		return table
	}
	out := make(KeyTable, len(table))
	for key, occ := range table {
		spans := SpanSet{}
		for span := range occ.Spans {
			if filter.Contains(span.Lo, span.Hi) {
				continue
			}
			spans.Add(span)
		}
		if len(spans) == 0 {
			continue
		}
		out[key] = &Occurrence{Spans: spans, Count: len(spans)}
	}
	return out
}
