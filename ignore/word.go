package ignore

// Word is one user-supplied ignore option: either a path that enters the
// trie (Simple/MemberMatch) or a literal string content that enters the
// skip-strings set (StringLit). Exactly one of Path or Content is set,
// selected by Kind.
type Word struct {
	Kind Kind

	// Path, for KindSimple/KindMemberMatch: the dotted member path.
	Path string
	// Member-match fields; Simple words use Subpath=true and both skip
	// flags false.
	Payload Payload

	// Content, for KindStringLit: the literal value to suppress counting of.
	Content string
}

type Kind int

const (
	KindSimple Kind = iota
	KindMemberMatch
	KindStringLit
)

// Simple builds a Simple ignore word: subpath=true, no skip flags.
func Simple(path string) Word {
	return Word{Kind: KindSimple, Path: path, Payload: Payload{Subpath: true}}
}

// MemberMatch builds a MemberMatch ignore word with explicit flags.
func MemberMatch(path string, subpath, skipLitArg, skipArg bool) Word {
	return Word{
		Kind: KindMemberMatch,
		Path: path,
		Payload: Payload{
			Subpath:    subpath,
			SkipLitArg: skipLitArg,
			SkipArg:    skipArg,
		},
	}
}

// StringLit builds a StringLit ignore word.
func StringLit(content string) Word {
	return Word{Kind: KindStringLit, Content: content}
}

// Set is the compiled form of a user's ignoreWords option list: a trie for
// member paths plus a skip-strings set for literal suppression.
type Set struct {
	Trie        *Trie
	SkipStrings map[string]struct{}
}

// Build compiles a list of Words into a Set.
func Build(words []Word) *Set {
	s := &Set{Trie: New(), SkipStrings: make(map[string]struct{})}
	for _, w := range words {
		switch w.Kind {
		case KindStringLit:
			s.SkipStrings[w.Content] = struct{}{}
		default:
			s.Trie.Insert(w.Path, w.Payload)
		}
	}
	return s
}

// SkipsString reports whether a standalone or argument string literal value
// must be excluded from counting.
func (s *Set) SkipsString(value string) bool {
	_, ok := s.SkipStrings[value]
	return ok
}

// Query delegates to the underlying trie; it lets Set satisfy the same
// Matcher interface as CachedSet.
func (s *Set) Query(segments []string) (Match, bool) {
	return s.Trie.Query(segments)
}
