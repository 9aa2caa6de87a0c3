package srcmap

import (
	"encoding/json"
	"fmt"

	sourcemap "gopkg.in/sourcemap.v1"
)

// ErrCompose wraps a downstream failure composing an input map with a newly
// generated one; spec.md §7 treats this as fatal.
var ErrCompose = fmt.Errorf("srcmap: composition failed")

// Compose collapses generated (mapping transformed-source positions back to
// original-source positions) through inputMapJSON (mapping original-source
// positions back to whatever produced them), so the result maps directly
// from transformed-source positions to the pre-transform original. This is
// the standard source-map "chain collapse": generated's own Sources/Names
// are discarded in favor of whatever inputMapJSON ultimately names.
func Compose(generated *Map, inputMapJSON string) (*Map, error) {
	consumer, err := sourcemap.Parse("", []byte(inputMapJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing input map: %v", ErrCompose, err)
	}

	decoded, err := decodeMappings(generated.Mappings)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding generated mappings: %v", ErrCompose, err)
	}

	sources := map[string]int{}
	var sourceList []string
	var mappings []byte

	prevGenLine, prevGenCol := 0, 0
	prevSrc, prevOrigLine, prevOrigCol := 0, 0, 0
	line := 0

	for _, seg := range decoded {
		for line < seg.genLine {
			mappings = append(mappings, ';')
			line++
			prevGenCol = 0
		}

		file, _, origLine, origCol, ok := consumer.Source(seg.origLine+1, seg.origCol)
		if !ok {
			continue
		}
		origLine--

		idx, exists := sources[file]
		if !exists {
			idx = len(sourceList)
			sources[file] = idx
			sourceList = append(sourceList, file)
		}

		if len(mappings) > 0 && mappings[len(mappings)-1] != ';' {
			mappings = append(mappings, ',')
		}

		mappings = encodeVLQ(mappings, seg.genCol-prevGenCol)
		mappings = encodeVLQ(mappings, idx-prevSrc)
		mappings = encodeVLQ(mappings, origLine-prevOrigLine)
		mappings = encodeVLQ(mappings, origCol-prevOrigCol)

		prevGenCol = seg.genCol
		prevSrc = idx
		prevOrigLine, prevOrigCol = origLine, origCol
		prevGenLine = seg.genLine
	}
	_ = prevGenLine

	return &Map{
		Version:  3,
		File:     generated.File,
		Sources:  sourceList,
		Names:    []string{},
		Mappings: string(mappings),
	}, nil
}

// JSON serializes m as a source-map v3 JSON document.
func (m *Map) JSON() (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompose, err)
	}
	return string(b), nil
}

type decodedSegment struct {
	genLine, genCol   int
	origLine, origCol int
}

// decodeMappings decodes this package's own VLQ mappings string back into
// absolute (genLine, genCol, origLine, origCol) tuples, ignoring the source
// and name indices since Build always emits a single implicit source.
func decodeMappings(mappings string) ([]decodedSegment, error) {
	var segs []decodedSegment
	line := 0
	genCol, origLine, origCol := 0, 0, 0

	i := 0
	for i < len(mappings) {
		switch mappings[i] {
		case ';':
			line++
			genCol = 0
			i++
			continue
		case ',':
			i++
			continue
		}

		dGenCol, n, err := decodeVLQ(mappings[i:])
		if err != nil {
			return nil, err
		}
		i += n
		dSrc, n, err := decodeVLQ(mappings[i:])
		if err != nil {
			return nil, err
		}
		i += n
		dOrigLine, n, err := decodeVLQ(mappings[i:])
		if err != nil {
			return nil, err
		}
		i += n
		dOrigCol, n, err := decodeVLQ(mappings[i:])
		if err != nil {
			return nil, err
		}
		i += n
		_ = dSrc

		genCol += dGenCol
		origLine += dOrigLine
		origCol += dOrigCol

		segs = append(segs, decodedSegment{genLine: line, genCol: genCol, origLine: origLine, origCol: origCol})
	}
	return segs, nil
}

func decodeVLQ(s string) (value int, consumed int, err error) {
	shift := 0
	result := 0
	for consumed < len(s) {
		c := s[consumed]
		digit := base64Value(c)
		if digit < 0 {
			return 0, 0, fmt.Errorf("srcmap: invalid VLQ character %q", c)
		}
		consumed++
		result += (digit & 0x1f) << shift
		if digit&0x20 == 0 {
			if result&1 == 1 {
				return -(result >> 1), consumed, nil
			}
			return result >> 1, consumed, nil
		}
		shift += 5
	}
	return 0, consumed, fmt.Errorf("srcmap: truncated VLQ sequence")
}

func base64Value(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 26
	case c >= '0' && c <= '9':
		return int(c-'0') + 52
	case c == '+':
		return 62
	case c == '/':
		return 63
	default:
		return -1
	}
}
