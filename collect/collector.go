// Package collect implements the identifier collector of spec.md §4.2: a
// single pre-order traversal over a parsed JS/TS tree that builds a key
// occurrence table, a skip-span set, a skip-range set and an in-use
// identifier set, consulting an ignore trie along the way.
package collect

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/ommin/core"
	"github.com/viant/ommin/ignore"
)

// Matcher is the subset of ignore.Set/ignore.CachedSet the collector needs.
type Matcher interface {
	Query(segments []string) (ignore.Match, bool)
	SkipsString(value string) bool
}

// Result is everything the cost filter and rewriter need from a collection
// pass.
type Result struct {
	Table      core.KeyTable
	SkipSpans  core.SpanSet
	SkipRanges core.SpanSet
	InUse      map[string]struct{}
}

// Collector runs the traversal described in spec.md §4.2. It has no
// re-entrant "Match" mode: a matched member/call chain is fully resolved
// (counted or skip-spanned, per its subpath flag) the moment it is found,
// rather than being walked again under a mode flag — an equivalent,
// stateless rendering of the same rule.
type Collector struct {
	src     []byte
	matcher Matcher

	table      core.KeyTable
	skipSpans  core.SpanSet
	skipRanges core.SpanSet
	inUse      map[string]struct{}
}

// New returns a Collector over src. matcher may be nil, meaning no ignore
// rules are configured.
func New(src []byte, matcher Matcher) *Collector {
	return &Collector{
		src:        src,
		matcher:    matcher,
		table:      core.KeyTable{},
		skipSpans:  core.SpanSet{},
		skipRanges: core.SpanSet{},
		inUse:      make(map[string]struct{}),
	}
}

// Collect runs the traversal from root and returns the accumulated Result.
func (c *Collector) Collect(root *sitter.Node) Result {
	c.Walk(root)
	return Result{
		Table:      c.table,
		SkipSpans:  c.skipSpans,
		SkipRanges: c.skipRanges,
		InUse:      c.inUse,
	}
}

// Walk dispatches on node type. Unrecognised node types fall through to a
// generic recursion over named children: spec.md §7 says any node the
// collector does not understand is simply not counted, never mis-counted.
func (c *Collector) Walk(n *sitter.Node) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "member_expression":
		c.visitMemberExpression(n)
	case "subscript_expression":
		c.visitSubscriptExpression(n)
	case "call_expression":
		c.visitCall(n)
	case "identifier":
		c.addInUse(n.Content(c.src))
	case "pair":
		c.visitPair(n)
	case "shorthand_property_identifier":
		c.countStr(n.Content(c.src), spanOf(n))
	case "string":
		c.countLit(stripQuotes(n.Content(c.src)), spanOf(n))
	default:
		c.walkChildren(n)
	}
}

func (c *Collector) walkChildren(n *sitter.Node) {
	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		c.Walk(n.NamedChild(i))
	}
}

func namedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, n.NamedChild(i))
	}
	return out
}

func (c *Collector) addInUse(name string) {
	c.inUse[name] = struct{}{}
}

func (c *Collector) countStr(s string, span core.Span) {
	if c.skipSpans.Has(span) {
		return
	}
	c.table.Count(s, span)
}

func (c *Collector) countLit(value string, span core.Span) {
	if c.matcher != nil && c.matcher.SkipsString(value) {
		return
	}
	c.countStr(value, span)
}

func (c *Collector) query(base *sitter.Node, segs []chainSeg) (ignore.Match, bool) {
	if c.matcher == nil {
		return ignore.Match{}, false
	}
	query := make([]string, 0, len(segs)+1)
	query = append(query, base.Content(c.src))
	for _, s := range segs {
		query = append(query, s.value)
	}
	return c.matcher.Query(query)
}

// applyChainMatch resolves a matched chain per spec.md §4.2: the base is
// always just in-use (never counted, never skip-spanned); each remaining
// segment at chain position pos (1-based, base is position 0) is counted
// when subpath is set and pos is past the matched prefix k = n-1-depth,
// else it becomes a skip-span — and when subpath is false every segment is
// a skip-span.
func (c *Collector) applyChainMatch(base *sitter.Node, segs []chainSeg, m ignore.Match) {
	c.addInUse(base.Content(c.src))

	n := len(segs) + 1
	k := n - 1 - m.Depth

	for i, seg := range segs {
		pos := i + 1
		sp := spanOf(seg.node)
		if m.Payload.Subpath && pos > k {
			c.countStr(seg.value, sp)
			continue
		}
		c.skipSpans.Add(sp)
	}
}

func (c *Collector) visitMemberExpression(n *sitter.Node) {
	if segs, base, ok := matchChain(n, c.src); ok {
		if m, matched := c.query(base, segs); matched {
			c.applyChainMatch(base, segs, m)
			return
		}
	}

	c.Walk(n.ChildByFieldName("object"))

	if prop := n.ChildByFieldName("property"); prop != nil && isIdentLike(prop.Type()) {
		c.countStr(prop.Content(c.src), spanOf(prop))
	}
}

func (c *Collector) visitSubscriptExpression(n *sitter.Node) {
	if segs, base, ok := matchChain(n, c.src); ok {
		if m, matched := c.query(base, segs); matched {
			c.applyChainMatch(base, segs, m)
			return
		}
	}

	c.Walk(n.ChildByFieldName("object"))

	idx := n.ChildByFieldName("index")
	if idx == nil {
		return
	}
	if idx.Type() == "string" {
		c.countLit(stripQuotes(idx.Content(c.src)), spanOf(idx))
		return
	}
	c.Walk(idx)
}

func (c *Collector) visitPair(n *sitter.Node) {
	key := n.ChildByFieldName("key")
	if key != nil {
		switch key.Type() {
		case "property_identifier", "identifier":
			c.countStr(key.Content(c.src), spanOf(key))
		case "string":
			c.countLit(stripQuotes(key.Content(c.src)), spanOf(key))
		default:
			c.Walk(key)
		}
	}
	c.Walk(n.ChildByFieldName("value"))
}

func (c *Collector) visitCall(n *sitter.Node) {
	callee := n.ChildByFieldName("function")
	argsNode := n.ChildByFieldName("arguments")

	if callee == nil {
		c.walkChildren(n)
		return
	}

	if segs, base, ok := matchCallee(callee, c.src); ok {
		if m, matched := c.query(base, segs); matched {
			if len(segs) > 0 {
				c.applyChainMatch(base, segs, m)
			} else {
				c.addInUse(base.Content(c.src))
			}

			args := namedChildren(argsNode)

			if m.Payload.SkipArg {
				if len(args) > 0 {
					first, last := args[0], args[len(args)-1]
					c.skipRanges.Add(core.Span{Lo: int(first.StartByte()), Hi: int(last.EndByte())})
				}
				return
			}

			if m.Payload.SkipLitArg {
				for _, a := range args {
					if a.Type() == "string" {
						c.skipSpans.Add(spanOf(a))
					}
				}
			}

			for _, a := range args {
				c.Walk(a)
			}
			return
		}
	}

	c.Walk(callee)
	for _, a := range namedChildren(argsNode) {
		c.Walk(a)
	}
}
