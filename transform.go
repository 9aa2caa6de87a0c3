package ommin

import (
	"fmt"

	"github.com/viant/ommin/collect"
	"github.com/viant/ommin/core"
	"github.com/viant/ommin/gzipscan"
	"github.com/viant/ommin/ignore"
	"github.com/viant/ommin/rewrite"
	"github.com/viant/ommin/srcmap"
)

// Transform runs the full pipeline of spec.md §4.7 over content: parse,
// collect key occurrences under the ignore set, optionally prune candidates
// through the gzip cost filter, keep only the candidates the cost predicate
// favors, rewrite, and (when requested) emit a source map.
func Transform(content string, options Options) (*Result, error) {
	src := []byte(content)
	moduleType := options.resolvedModuleType()

	tree, root, err := collect.Parse(src, moduleType)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	matcher := ignoreMatcher(options)

	collected := collect.New(src, matcher).Collect(root)

	table := collected.Table
	if comp := compressionOption(options); comp != nil {
		filter, err := buildGzipFilter(src, comp)
		if err != nil {
			return nil, err
		}
		table = core.PruneByFilter(table, filter)
	}

	candidateUses := make(map[string]int, len(table))
	for key, occ := range table {
		candidateUses[key] = occ.Count
	}
	kept := core.FilterCandidates(candidateUses)

	finalTable := make(core.KeyTable, len(kept))
	for key := range kept {
		finalTable[key] = table[key]
	}

	rewriter := rewrite.New(src, finalTable, collected.SkipSpans, collected.SkipRanges, collected.InUse, options.PreserveKeywords)
	output := rewriter.Rewrite(root)

	hash, err := contentHash(output)
	if err != nil {
		return nil, err
	}

	result := &Result{Content: output, ContentHash: hash}

	if options.EnableSourceMap || options.SourceMap != "" {
		sourceName := options.Filename
		if sourceName == "" {
			sourceName = "input.js"
		}
		m := srcmap.Build(src, rewriter.Buffer().Segments(), sourceName, outputFilename(sourceName))

		if options.SourceMap != "" {
			m, err = srcmap.Compose(m, options.SourceMap)
			if err != nil {
				return nil, err
			}
		}

		mapJSON, err := m.JSON()
		if err != nil {
			return nil, err
		}
		result.Map = &mapJSON
	}

	return result, nil
}

func outputFilename(sourceName string) string {
	return sourceName + ".min.js"
}

func ignoreMatcher(options Options) collect.Matcher {
	set := options.buildIgnoreSet()
	return ignore.NewCached(set, 0)
}

func compressionOption(options Options) *CompressionOption {
	if options.Optimize == nil {
		return nil
	}
	return options.Optimize.Compression
}

func buildGzipFilter(src []byte, comp *CompressionOption) (*gzipscan.Filter, error) {
	level := gzipscan.DefaultFilterLevel
	if comp.FilterLevel != nil {
		level = *comp.FilterLevel
	}
	filter, err := gzipscan.NewFilter(src, level)
	if err != nil {
		return nil, fmt.Errorf("building gzip filter: %w", err)
	}
	return filter, nil
}
