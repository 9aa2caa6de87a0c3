package srcmap

import "strings"

// Segment is one piece of generated output: text plus, when HasOrigin is
// true, the byte offset in the original source it was derived from. The
// rewrite package's Buffer produces these directly from its edit list.
type Segment struct {
	Text      string
	OrigLo    int
	HasOrigin bool
}

// Map is a source-map v3 document.
type Map struct {
	Version    int      `json:"version"`
	File       string   `json:"file,omitempty"`
	Sources    []string `json:"sources"`
	SourcesCnt []string `json:"sourcesContent,omitempty"`
	Names      []string `json:"names"`
	Mappings   string   `json:"mappings"`
}

// lineCol converts a byte offset into 0-based (line, column) within text,
// the positions source-map v3 uses throughout.
func lineCol(text []byte, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}

// Build encodes a v3 map from an ordered list of segments whose concatenated
// text is the generated output derived from origSource, attributing every
// segment with an origin to a single logical source file sourceName.
func Build(origSource []byte, segments []Segment, sourceName, outFile string) *Map {
	var mappings strings.Builder

	genLine, genCol := 0, 0
	prevGenCol := 0
	prevOrigLine, prevOrigCol := 0, 0
	firstOnLine := true

	advance := func(text string) (lines int, lastLineLen int) {
		l, c := 0, 0
		for i := 0; i < len(text); i++ {
			if text[i] == '\n' {
				l++
				c = 0
			} else {
				c++
			}
		}
		return l, c
	}

	for _, seg := range segments {
		if seg.HasOrigin && seg.Text != "" {
			if !firstOnLine {
				mappings.WriteByte(',')
			}
			origLine, origCol := lineCol(origSource, seg.OrigLo)

			mappings.Write(encodeVLQ(nil, genCol-prevGenCol))
			mappings.Write(encodeVLQ(nil, 0)) // source index (single source)
			mappings.Write(encodeVLQ(nil, origLine-prevOrigLine))
			mappings.Write(encodeVLQ(nil, origCol-prevOrigCol))

			prevGenCol = genCol
			prevOrigLine, prevOrigCol = origLine, origCol
			firstOnLine = false
		}

		lines, lastLineLen := advance(seg.Text)
		if lines > 0 {
			for i := 0; i < lines; i++ {
				mappings.WriteByte(';')
			}
			genLine += lines
			genCol = lastLineLen
			prevGenCol = 0
			firstOnLine = true
		} else {
			genCol += lastLineLen
		}
	}
	_ = genLine

	return &Map{
		Version:  3,
		File:     outFile,
		Sources:  []string{sourceName},
		Names:    []string{},
		Mappings: mappings.String(),
	}
}
