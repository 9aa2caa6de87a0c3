package core

// ReservedKeywords is the fixed list of names the token allocator must never
// emit: the full set of ECMA-262 reserved and future-reserved words, plus the
// TypeScript contextual keywords spec.md §4.5 calls out by name. Spec.md §9
// says to err toward over-inclusion — a false positive only costs the
// allocator one extra retry.
var ReservedKeywords = buildReservedKeywords()

func buildReservedKeywords() map[string]struct{} {
	words := []string{
		// ECMA-262 keywords
		"break", "case", "catch", "class", "const", "continue", "debugger",
		"default", "delete", "do", "else", "export", "extends", "finally",
		"for", "function", "if", "import", "in", "instanceof", "new", "return",
		"super", "switch", "this", "throw", "try", "typeof", "var", "void",
		"while", "with",
		// Future-reserved / strict-mode reserved
		"enum", "await", "implements", "package", "protected", "static",
		"interface", "private", "public", "yield", "null", "true", "false",
		"let",
		// TypeScript contextual keywords named in spec.md §4.5
		"as", "type", "from", "of", "get", "set", "declare", "module",
		"require", "any", "boolean", "constructor", "number", "string",
		"symbol",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsReserved reports whether name is a reserved keyword the allocator must
// avoid.
func IsReserved(name string) bool {
	_, ok := ReservedKeywords[name]
	return ok
}
