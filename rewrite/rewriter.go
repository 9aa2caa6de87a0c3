package rewrite

import (
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/ommin/core"
)

func spanOf(n *sitter.Node) core.Span {
	return core.Span{Lo: int(n.StartByte()), Hi: int(n.EndByte())}
}

func stripQuotes(s string) string {
	return strings.Trim(s, "\"'`")
}

func isIdentLike(t string) bool {
	switch t {
	case "identifier", "property_identifier", "private_property_identifier":
		return true
	default:
		return false
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

// Rewriter mutates a buffer over src using the surviving key->spans table
// from the cost filter, the skip-span/skip-range sets from the collector,
// and its own allocator seeded with every in-use identifier. Grounded on
// spec.md §4.6.
type Rewriter struct {
	src        []byte
	table      core.KeyTable
	skipSpans  core.SpanSet
	skipRanges core.SpanSet

	allocator *core.TokenAllocator
	aliases   map[string]string
	buffer    *Buffer
}

// New builds a Rewriter. preserveKeywords are additional names (the user's
// preserveKeywords option) the allocator must never emit, alongside every
// identifier observed in-use.
func New(src []byte, table core.KeyTable, skipSpans, skipRanges core.SpanSet, inUse map[string]struct{}, preserveKeywords []string) *Rewriter {
	alloc := core.NewTokenAllocator()
	for name := range inUse {
		alloc.Reserve(name)
	}
	for _, name := range preserveKeywords {
		alloc.Reserve(name)
	}

	return &Rewriter{
		src:        src,
		table:      table,
		skipSpans:  skipSpans,
		skipRanges: skipRanges,
		allocator:  alloc,
		aliases:    make(map[string]string),
		buffer:     NewBuffer(src),
	}
}

// contain implements spec.md §4.6's predicate: span must not be a skip-span
// and must be one of key's recorded occurrence spans.
func (r *Rewriter) contain(key string, span core.Span) bool {
	if r.skipSpans.Has(span) {
		return false
	}
	occ, ok := r.table[key]
	if !ok {
		return false
	}
	return occ.Spans.Has(span)
}

// allocIdent returns key's cached alias, allocating and recording a fresh
// one on first use.
func (r *Rewriter) allocIdent(key string) string {
	if alias, ok := r.aliases[key]; ok {
		return alias
	}
	alias := r.allocator.Alloc()
	r.aliases[key] = alias
	return alias
}

// Rewrite walks root, mutating the buffer, then hoists the accumulated
// aliases into a prepended var declaration, and returns the rendered
// output.
func (r *Rewriter) Rewrite(root *sitter.Node) string {
	r.walk(root)
	r.hoist()
	return r.buffer.String()
}

// Aliases returns the final key->alias map, for source-map or diagnostic
// use by callers.
func (r *Rewriter) Aliases() map[string]string {
	return r.aliases
}

// Buffer exposes the underlying edit buffer so callers can derive a source
// map from its Segments after Rewrite has run.
func (r *Rewriter) Buffer() *Buffer {
	return r.buffer
}

func (r *Rewriter) hoist() {
	if len(r.aliases) == 0 {
		return
	}
	aliasList := make([]string, 0, len(r.aliases))
	byAlias := make(map[string]string, len(r.aliases))
	for key, alias := range r.aliases {
		aliasList = append(aliasList, alias)
		byAlias[alias] = key
	}
	sort.Strings(aliasList)

	var sb strings.Builder
	sb.WriteString("var ")
	for i, alias := range aliasList {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(alias)
		sb.WriteString(" = ")
		sb.WriteString(quote(byAlias[alias]))
	}
	sb.WriteString(";\n")

	r.buffer.Prepend(sb.String())
}

func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func (r *Rewriter) walk(n *sitter.Node) {
	if n == nil {
		return
	}
	switch n.Type() {
	case "member_expression":
		r.visitMember(n)
	case "subscript_expression":
		r.visitSubscript(n)
	case "call_expression":
		r.visitCall(n)
	case "pair":
		r.visitPair(n)
	case "shorthand_property_identifier":
		r.visitShorthand(n)
	case "string":
		r.visitString(n)
	default:
		r.walkChildren(n)
	}
}

func (r *Rewriter) walkChildren(n *sitter.Node) {
	for _, c := range namedChildren(n) {
		r.walk(c)
	}
}

func (r *Rewriter) visitMember(n *sitter.Node) {
	obj := n.ChildByFieldName("object")
	prop := n.ChildByFieldName("property")

	if prop != nil && isIdentLike(prop.Type()) {
		key := prop.Content(r.src)
		span := spanOf(prop)
		if r.contain(key, span) {
			alias := r.allocIdent(key)
			r.buffer.Replace(core.Span{Lo: int(obj.EndByte()), Hi: int(prop.EndByte())}, "["+alias+"]")
			r.walk(obj)
			return
		}
	}

	r.walk(obj)
}

func (r *Rewriter) visitSubscript(n *sitter.Node) {
	obj := n.ChildByFieldName("object")
	idx := n.ChildByFieldName("index")

	if idx != nil && idx.Type() == "string" {
		key := stripQuotes(idx.Content(r.src))
		span := spanOf(idx)
		if r.contain(key, span) {
			alias := r.allocIdent(key)
			r.buffer.Replace(span, alias)
			r.walk(obj)
			return
		}
	}

	r.walk(obj)
	if idx != nil && idx.Type() != "string" {
		r.walk(idx)
	}
}

func (r *Rewriter) visitCall(n *sitter.Node) {
	callee := n.ChildByFieldName("function")
	args := namedChildren(n.ChildByFieldName("arguments"))

	if len(args) > 0 {
		first, last := args[0], args[len(args)-1]
		span := core.Span{Lo: int(first.StartByte()), Hi: int(last.EndByte())}
		if r.skipRanges.Has(span) {
			r.walk(callee)
			return
		}
	}

	r.walk(callee)
	for _, a := range args {
		r.walk(a)
	}
}

func (r *Rewriter) visitPair(n *sitter.Node) {
	key := n.ChildByFieldName("key")
	if key != nil {
		switch key.Type() {
		case "property_identifier", "identifier":
			k := key.Content(r.src)
			span := spanOf(key)
			if r.contain(k, span) {
				alias := r.allocIdent(k)
				r.buffer.Replace(span, "["+alias+"]")
			}
		case "string":
			k := stripQuotes(key.Content(r.src))
			span := spanOf(key)
			if r.contain(k, span) {
				alias := r.allocIdent(k)
				r.buffer.Replace(span, "["+alias+"]")
			}
		default:
			r.walk(key)
		}
	}
	r.walk(n.ChildByFieldName("value"))
}

func (r *Rewriter) visitShorthand(n *sitter.Node) {
	name := n.Content(r.src)
	span := spanOf(n)
	if r.contain(name, span) {
		alias := r.allocIdent(name)
		r.buffer.Replace(span, "["+alias+"]: "+name)
	}
}

func (r *Rewriter) visitString(n *sitter.Node) {
	value := stripQuotes(n.Content(r.src))
	span := spanOf(n)
	if r.contain(value, span) {
		alias := r.allocIdent(value)
		r.buffer.Replace(span, alias)
	}
}
