package collect

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/ommin/core"
)

// chainSeg is one non-base segment of a member-access chain: its textual
// value for trie lookup and the node whose span identifies its source
// occurrence.
type chainSeg struct {
	value string
	node  *sitter.Node
}

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

// matchChain walks a member_expression/subscript_expression node and its
// object chain down to a bare identifier base, collecting one chainSeg per
// level in source order: the segment next to the base first, the root's own
// segment last. It returns
// ok=false the moment the chain does not bottom out cleanly at an
// identifier — a non-ident base, a computed (non-string) subscript midway
// through the object side, or any other shape "terminates as a non-ident
// chain" per spec.md §4.2's Member Matcher.
func matchChain(n *sitter.Node, src []byte) (segs []chainSeg, base *sitter.Node, ok bool) {
	switch n.Type() {
	case "member_expression":
		prop := n.ChildByFieldName("property")
		if prop == nil || !isIdentLike(prop.Type()) {
			return nil, nil, false
		}
		return descendChain(n, chainSeg{value: prop.Content(src), node: prop}, src)

	case "subscript_expression":
		idx := n.ChildByFieldName("index")
		if idx == nil || idx.Type() != "string" {
			return nil, nil, false
		}
		return descendChain(n, chainSeg{value: stripQuotes(idx.Content(src)), node: idx}, src)

	default:
		return nil, nil, false
	}
}

func descendChain(n *sitter.Node, seg chainSeg, src []byte) ([]chainSeg, *sitter.Node, bool) {
	obj := n.ChildByFieldName("object")
	if obj == nil {
		return nil, nil, false
	}
	switch obj.Type() {
	case "identifier":
		return []chainSeg{seg}, obj, true
	case "member_expression", "subscript_expression":
		inner, base, ok := matchChain(obj, src)
		if !ok {
			return nil, nil, false
		}
		return append(inner, seg), base, true
	default:
		return nil, nil, false
	}
}

// matchCallee extends matchChain to a call's callee: a bare identifier is a
// valid (trivial, zero-segment) chain in its own right.
func matchCallee(n *sitter.Node, src []byte) (segs []chainSeg, base *sitter.Node, ok bool) {
	switch n.Type() {
	case "identifier":
		return nil, n, true
	case "member_expression", "subscript_expression":
		return matchChain(n, src)
	default:
		return nil, nil, false
	}
}
