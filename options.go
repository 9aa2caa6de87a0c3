// Package ommin hoists repeated object-property keys and string literals in
// JS/TS sources into short top-level aliases, trading a little structure for
// fewer bytes on the wire. It wires together the ignore trie, the
// identifier collector, the optional gzip cost filter, the cost-based
// candidate filter, and the rewriter into a single Transform call.
package ommin

import (
	"encoding/json"
	"fmt"

	"github.com/viant/ommin/collect"
	"github.com/viant/ommin/ignore"
)

// ModuleType selects the grammar a source is parsed with.
type ModuleType string

const (
	JavaScript ModuleType = "javascript"
	TypeScript ModuleType = "typescript"
	TSX        ModuleType = "tsx"
)

func (m ModuleType) toCollect() collect.ModuleType {
	switch m {
	case TypeScript:
		return collect.TypeScript
	case TSX:
		return collect.TSX
	default:
		return collect.JavaScript
	}
}

// CompressionOption enables the gzip span filter (spec.md §4.4).
type CompressionOption struct {
	Type        string   `json:"type" yaml:"type"` // always "gzip"
	Compress    *float64 `json:"compress,omitempty" yaml:"compress,omitempty"`
	FilterLevel *float64 `json:"filterLevel,omitempty" yaml:"filterLevel,omitempty"`
}

// OptimizeOption wraps the optional compression block.
type OptimizeOption struct {
	Compression *CompressionOption `json:"compression,omitempty" yaml:"compression,omitempty"`
}

// Options is the per-call transform configuration of spec.md §6.
type Options struct {
	Filename         string          `json:"filename,omitempty" yaml:"filename,omitempty"`
	SourceMap        string          `json:"sourceMap,omitempty" yaml:"sourceMap,omitempty"`
	EnableSourceMap  bool            `json:"enableSourceMap,omitempty" yaml:"enableSourceMap,omitempty"`
	ModuleType       ModuleType      `json:"moduleType,omitempty" yaml:"moduleType,omitempty"`
	PreserveKeywords []string        `json:"preserveKeywords,omitempty" yaml:"preserveKeywords,omitempty"`
	IgnoreWords      []IgnoreWord    `json:"ignoreWords,omitempty" yaml:"ignoreWords,omitempty"`
	Optimize         *OptimizeOption `json:"optimize,omitempty" yaml:"optimize,omitempty"`
}

// resolvedModuleType applies spec.md §4.7's inference: explicit option wins,
// else the filename extension, defaulting to JavaScript.
func (o Options) resolvedModuleType() collect.ModuleType {
	if o.ModuleType != "" {
		return o.ModuleType.toCollect()
	}
	if o.Filename == "" {
		return collect.JavaScript
	}
	return collect.ModuleTypeFromFilename(o.Filename)
}

func (o Options) buildIgnoreSet() *ignore.Set {
	words := make([]ignore.Word, 0, len(o.IgnoreWords))
	for _, w := range o.IgnoreWords {
		words = append(words, w.toIgnoreWord())
	}
	return ignore.Build(words)
}

// IgnoreWord is one entry of the ignoreWords option: a bare string (a
// simple member path) or a {type:"member"|"stringLit", ...} object, per
// spec.md §6.
type IgnoreWord struct {
	raw string
	mm  *memberMatchWord
	sl  *stringLitWord
}

type memberMatchWord struct {
	Type       string `json:"type"`
	Path       string `json:"path"`
	Subpath    bool   `json:"subpath"`
	SkipLitArg bool   `json:"skipLitArg"`
	SkipArg    bool   `json:"skipArg"`
}

type stringLitWord struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// SimpleIgnore builds a bare-path ignore word.
func SimpleIgnore(path string) IgnoreWord {
	return IgnoreWord{raw: path}
}

// MemberMatchIgnore builds a {type:"member", ...} ignore word.
func MemberMatchIgnore(path string, subpath, skipLitArg, skipArg bool) IgnoreWord {
	return IgnoreWord{mm: &memberMatchWord{
		Type: "member", Path: path, Subpath: subpath, SkipLitArg: skipLitArg, SkipArg: skipArg,
	}}
}

// StringLitIgnore builds a {type:"stringLit", content} ignore word.
func StringLitIgnore(content string) IgnoreWord {
	return IgnoreWord{sl: &stringLitWord{Type: "stringLit", Content: content}}
}

func (w IgnoreWord) toIgnoreWord() ignore.Word {
	switch {
	case w.mm != nil:
		return ignore.MemberMatch(w.mm.Path, w.mm.Subpath, w.mm.SkipLitArg, w.mm.SkipArg)
	case w.sl != nil:
		return ignore.StringLit(w.sl.Content)
	default:
		return ignore.Simple(w.raw)
	}
}

// UnmarshalJSON accepts a bare string or a {type:...} object, per spec.md
// §6's IgnoreWord union.
func (w *IgnoreWord) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*w = IgnoreWord{raw: s}
		return nil
	}

	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("%w: ignoreWords entry: %v", ErrOptions, err)
	}

	switch probe.Type {
	case "member":
		var mm memberMatchWord
		if err := json.Unmarshal(data, &mm); err != nil {
			return fmt.Errorf("%w: ignoreWords member entry: %v", ErrOptions, err)
		}
		*w = IgnoreWord{mm: &mm}
	case "stringLit":
		var sl stringLitWord
		if err := json.Unmarshal(data, &sl); err != nil {
			return fmt.Errorf("%w: ignoreWords stringLit entry: %v", ErrOptions, err)
		}
		*w = IgnoreWord{sl: &sl}
	default:
		return fmt.Errorf("%w: unknown ignoreWords type %q", ErrOptions, probe.Type)
	}
	return nil
}

// MarshalJSON mirrors the union shape UnmarshalJSON accepts.
func (w IgnoreWord) MarshalJSON() ([]byte, error) {
	switch {
	case w.mm != nil:
		return json.Marshal(w.mm)
	case w.sl != nil:
		return json.Marshal(w.sl)
	default:
		return json.Marshal(w.raw)
	}
}
