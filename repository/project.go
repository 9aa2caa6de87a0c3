// Package repository adapts the teacher's inspector project/root detector
// to the batch CLI's needs: finding a JS/TS project root from an arbitrary
// starting path, naming it from package.json (falling back to go.mod for
// monorepos that embed a Go module alongside the JS tree), and walking the
// source tree for files the transform should process.
package repository

import "golang.org/x/mod/modfile"

// Project describes a detected JS/TS project root.
type Project struct {
	RootPath     string
	Name         string
	RelativePath string
	GoModule     *modfile.Module
}
