package repository

import "testing"

func TestIsSource(t *testing.T) {
	cases := map[string]bool{
		"a/b/c.js":        true,
		"a/b/c.jsx":       true,
		"a/b/c.ts":        true,
		"a/b/c.tsx":       true,
		"a/b/c.go":        false,
		"a/b/readme.md":   false,
		"a/b/c.min.js":    true,
		"a/b/c.test.js":   true,
	}
	for path, want := range cases {
		if got := IsSource(path); got != want {
			t.Errorf("IsSource(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestSkipDir(t *testing.T) {
	if !skipDir("node_modules") {
		t.Error("expected node_modules to be skipped")
	}
	if !skipDir(".git") {
		t.Error("expected dot-directories to be skipped")
	}
	if skipDir("src") {
		t.Error("expected src to be walked")
	}
}
