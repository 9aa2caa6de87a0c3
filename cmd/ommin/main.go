// Command ommin runs the object-member minifier over a single file or an
// entire JS/TS project tree.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/ommin"
	"github.com/viant/ommin/repository"
	"gopkg.in/yaml.v3"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML options file")
		project    = flag.Bool("project", false, "detect the project root containing path and transform every source file under that root")
		sourceMap  = flag.Bool("map", false, "emit a .map file alongside each output")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ommin [-config file.yaml] [-project] [-map] <file-or-dir>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	options, err := loadOptions(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ommin: %v\n", err)
		os.Exit(1)
	}
	if *sourceMap {
		options.EnableSourceMap = true
	}

	ctx := context.Background()
	fs := afs.New()

	if *project {
		if err := runProject(ctx, fs, path, options); err != nil {
			fmt.Fprintf(os.Stderr, "ommin: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runFile(ctx, fs, path, options); err != nil {
		fmt.Fprintf(os.Stderr, "ommin: %v\n", err)
		os.Exit(1)
	}
}

func loadOptions(configPath string) (ommin.Options, error) {
	var options ommin.Options
	if configPath == "" {
		return options, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return options, fmt.Errorf("reading config %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(data, &options); err != nil {
		return options, fmt.Errorf("parsing config %s: %w", configPath, err)
	}
	return options, nil
}

func runFile(ctx context.Context, fs afs.Service, path string, options ommin.Options) error {
	content, err := fs.DownloadWithURL(ctx, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	fileOptions := options
	if fileOptions.Filename == "" {
		fileOptions.Filename = path
	}

	result, err := ommin.Transform(string(content), fileOptions)
	if err != nil {
		return fmt.Errorf("transforming %s: %w", path, err)
	}

	outPath := outputPath(path)
	if err := fs.Upload(ctx, outPath, 0644, bytesReader(result.Content)); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	if result.Map != nil {
		mapPath := outPath + ".map"
		if err := fs.Upload(ctx, mapPath, 0644, bytesReader(*result.Map)); err != nil {
			return fmt.Errorf("writing %s: %w", mapPath, err)
		}
	}

	fmt.Printf("%s -> %s (hash %s)\n", path, outPath, result.ContentHash)
	return nil
}

func runProject(ctx context.Context, fs afs.Service, root string, options ommin.Options) error {
	detector := repository.New()
	project, err := detector.DetectProject(ctx, root)
	if err != nil {
		return fmt.Errorf("detecting project at %s: %w", root, err)
	}

	files, err := repository.WalkSources(project.RootPath)
	if err != nil {
		return fmt.Errorf("walking %s: %w", project.RootPath, err)
	}

	fmt.Printf("project %q: %d source file(s)\n", project.Name, len(files))
	for _, file := range files {
		if err := runFile(ctx, fs, file, options); err != nil {
			return err
		}
	}
	return nil
}

func bytesReader(s string) io.Reader {
	return strings.NewReader(s)
}

func outputPath(path string) string {
	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	return base + ".min" + ext
}
