package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/viant/afs"
	"golang.org/x/mod/modfile"
)

// Detector locates a JS/TS project root by walking up from a starting path
// looking for package.json, falling back to go.mod for a monorepo that
// nests a JS tree inside a Go module. Grounded on the teacher's
// inspector/repository Detector, narrowed from its general multi-language
// marker list down to the two markers this module's domain cares about.
type Detector struct {
	fs afs.Service
}

// New returns a Detector backed by afs, the teacher's file-access layer.
func New() *Detector {
	return &Detector{fs: afs.New()}
}

// DetectProject walks up from path looking for package.json first, then
// go.mod, and returns the first root found. If neither marker is found it
// returns a Project rooted at path itself, named from the directory.
func (d *Detector) DetectProject(ctx context.Context, path string) (*Project, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("repository: resolving %s: %w", path, err)
	}

	startDir := absPath
	if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	if root := d.findMarker(startDir, "package.json"); root != "" {
		name := d.extractJSPackageName(ctx, filepath.Join(root, "package.json"))
		return d.finish(root, absPath, name)
	}

	if root := d.findMarker(startDir, "go.mod"); root != "" {
		mod := d.extractGoModule(ctx, filepath.Join(root, "go.mod"))
		name := filepath.Base(root)
		if mod != nil {
			name = mod.Module.Mod.Path
		}
		project, err := d.finish(root, absPath, name)
		if err != nil {
			return nil, err
		}
		project.GoModule = mod
		return project, nil
	}

	return d.finish(startDir, absPath, filepath.Base(startDir))
}

func (d *Detector) finish(root, absPath, name string) (*Project, error) {
	relPath, err := filepath.Rel(root, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	return &Project{
		RootPath:     root,
		Name:         name,
		RelativePath: filepath.ToSlash(relPath),
	}, nil
}

func (d *Detector) findMarker(startDir, marker string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

var jsPackageNameRegex = regexp.MustCompile(`"name"\s*:\s*"([^"]+)"`)

func (d *Detector) extractJSPackageName(ctx context.Context, packageJSONPath string) string {
	content, err := d.fs.DownloadWithURL(ctx, packageJSONPath)
	if err != nil || len(content) == 0 {
		return filepath.Base(filepath.Dir(packageJSONPath))
	}
	matches := jsPackageNameRegex.FindSubmatch(content)
	if len(matches) < 2 {
		return filepath.Base(filepath.Dir(packageJSONPath))
	}
	return string(matches[1])
}

func (d *Detector) extractGoModule(ctx context.Context, goModPath string) *modfile.Module {
	content, err := d.fs.DownloadWithURL(ctx, goModPath)
	if err != nil || len(content) == 0 {
		return nil
	}
	mod, err := modfile.Parse(goModPath, content, nil)
	if err != nil {
		return nil
	}
	return mod.Module
}
