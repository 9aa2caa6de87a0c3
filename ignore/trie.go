// Package ignore implements the ignore trie the collector consults before
// counting a member-access chain or a call argument: dotted paths the user
// supplied are split on "." and inserted into a trie of owned children,
// matched by longest-prefix walk against the segments of a chain in source
// order, base identifier first.
package ignore

import "strings"

// Payload is the data a terminal trie node carries, drawn from one IgnoreWord
// option entry.
type Payload struct {
	// Subpath, when true, lets the collector count the last Depth segments
	// of a matched n-segment chain (positions past n-1-Depth, the base at
	// position 0) and skip-spans the rest; when false the whole chain becomes
	// skip-spans.
	Subpath bool
	// SkipLitArg suppresses counting of string-literal call arguments for a
	// matched callee.
	SkipLitArg bool
	// SkipArg suppresses visiting a matched call's arguments entirely.
	SkipArg bool
}

type node struct {
	children map[string]*node
	marked   bool
	payload  Payload
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Trie is the ignore trie built from the user's member-match options.
// StringLit options never enter the trie; callers hold those in a separate
// skip-strings set (see SkipStrings).
type Trie struct {
	root *node
}

func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert splits path on ".", walks (extending as needed), and marks the
// terminal node with payload. path must be non-empty and contain no empty
// segments.
func (t *Trie) Insert(path string, payload Payload) {
	segments := strings.Split(path, ".")
	cur := t.root
	for _, seg := range segments {
		next, ok := cur.children[seg]
		if !ok {
			next = newNode()
			cur.children[seg] = next
		}
		cur = next
	}
	cur.marked = true
	cur.payload = payload
}

// Match is the result of a successful Query: the depth of the deepest marked
// node reached and the payload stored there.
type Match struct {
	Depth   int
	Payload Payload
}

// Query walks segments one by one, remembering the deepest marked node seen
// so far. It returns that node's match on the first missing segment, or the
// final node's match if the full path is consumed and marked. ok is false if
// no marked node was ever reached.
func (t *Trie) Query(segments []string) (m Match, ok bool) {
	cur := t.root
	for depth, seg := range segments {
		next, exists := cur.children[seg]
		if !exists {
			return m, ok
		}
		cur = next
		if cur.marked {
			m = Match{Depth: depth + 1, Payload: cur.payload}
			ok = true
		}
	}
	return m, ok
}
