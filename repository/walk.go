package repository

import (
	"io/fs"
	"path/filepath"
	"strings"
)

var sourceExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
	".mjs": true,
	".cjs": true,
}

var skippedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
}

// IsSource reports whether path names a file the batch transform should
// process, based on its extension.
func IsSource(path string) bool {
	return sourceExtensions[filepath.Ext(path)]
}

// skipDir reports whether a directory entry should be excluded from the
// walk: node_modules, build output, and any dot-directory.
func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return skippedDirs[name]
}

// WalkSources lists every source file under root, skipping node_modules,
// common build-output directories and dot-directories, the SUPPLEMENTED
// project/batch mode grounded on the teacher's InspectPackage/InspectProject
// walking code.
func WalkSources(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSource(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
