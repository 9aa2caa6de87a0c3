package collect

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// ModuleType selects the grammar used to parse a source.
type ModuleType int

const (
	JavaScript ModuleType = iota
	TypeScript
	TSX
)

// ModuleTypeFromFilename infers a ModuleType from a file extension, per
// spec.md §4.7: .ts/.mts/.cts -> TypeScript, .tsx -> TSX, everything else ->
// JavaScript.
func ModuleTypeFromFilename(name string) ModuleType {
	switch ext(name) {
	case ".ts", ".mts", ".cts":
		return TypeScript
	case ".tsx":
		return TSX
	default:
		return JavaScript
	}
}

func ext(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' {
			return name[i:]
		}
		if name[i] == '/' {
			break
		}
	}
	return ""
}

func languageFor(mt ModuleType) *sitter.Language {
	switch mt {
	case TypeScript:
		return typescript.GetLanguage()
	case TSX:
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// Parse parses src under the grammar selected by mt and returns the root
// node plus the tree that owns it (the caller keeps the tree alive for as
// long as it reads node content).
func Parse(src []byte, mt ModuleType) (*sitter.Tree, *sitter.Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(languageFor(mt))

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, nil, fmt.Errorf("parse source: %w", err)
	}
	root := tree.RootNode()
	if root == nil || root.HasError() {
		return tree, root, fmt.Errorf("%w: source contains a syntax error", ErrParse)
	}
	return tree, root, nil
}
