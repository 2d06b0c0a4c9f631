package routes

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// DefaultIgnoreDirs are never descended into, whatever the configuration.
var DefaultIgnoreDirs = []string{"node_modules", ".git"}

// PageFile is a route-like file found under a convention directory.
// RelPath is relative to the project root with forward slashes.
type PageFile struct {
	Path    string `json:"path"`
	RelPath string `json:"relativePath"`
}

// Collector enumerates page files under convention directories.
type Collector struct {
	ignore   map[string]struct{}
	parallel bool
}

// NewCollector returns a collector that skips DefaultIgnoreDirs plus
// extraIgnore. With parallel set, convention directories are walked
// concurrently; the result order does not depend on it.
func NewCollector(extraIgnore []string, parallel bool) *Collector {
	ignore := make(map[string]struct{}, len(DefaultIgnoreDirs)+len(extraIgnore))
	for _, d := range DefaultIgnoreDirs {
		ignore[d] = struct{}{}
	}
	for _, d := range extraIgnore {
		if d != "" {
			ignore[d] = struct{}{}
		}
	}
	return &Collector{ignore: ignore, parallel: parallel}
}

type walkItem struct {
	rel   string
	isDir bool
}

// Collect walks the convention directory under root and returns its page
// files in lexical pre-order. Directories that cannot be read contribute
// nothing; the only error is cancellation of ctx.
func (c *Collector) Collect(ctx context.Context, root string, conv Convention) ([]PageFile, error) {
	base := filepath.Join(root, filepath.FromSlash(conv.Dir))

	var files []PageFile
	stack := []walkItem{{rel: "", isDir: true}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !item.isDir {
			files = append(files, PageFile{
				Path:    filepath.Join(base, filepath.FromSlash(item.rel)),
				RelPath: path.Join(conv.Dir, item.rel),
			})
			continue
		}

		entries, err := os.ReadDir(filepath.Join(base, filepath.FromSlash(item.rel)))
		if err != nil {
			continue
		}

		// Pushed in reverse so entries pop in directory order.
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			rel := path.Join(item.rel, e.Name())
			switch {
			case e.IsDir():
				if _, skip := c.ignore[e.Name()]; skip {
					continue
				}
				stack = append(stack, walkItem{rel: rel, isDir: true})
			case e.Type().IsRegular():
				if conv.IsPageFile(rel) {
					stack = append(stack, walkItem{rel: rel})
				}
			}
		}
	}
	return files, nil
}

// CollectAll collects page files from every convention, in convention
// order. A directory shared by two conventions is walked once, under the
// first of them.
func (c *Collector) CollectAll(ctx context.Context, root string, conventions []Convention) ([]PageFile, error) {
	var unique []Convention
	seen := make(map[string]struct{}, len(conventions))
	for _, conv := range conventions {
		if _, ok := seen[conv.Dir]; ok {
			continue
		}
		seen[conv.Dir] = struct{}{}
		unique = append(unique, conv)
	}

	results := make([][]PageFile, len(unique))
	if c.parallel && len(unique) > 1 {
		g, gCtx := errgroup.WithContext(ctx)
		for i, conv := range unique {
			i, conv := i, conv
			g.Go(func() error {
				files, err := c.Collect(gCtx, root, conv)
				results[i] = files
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, conv := range unique {
			files, err := c.Collect(ctx, root, conv)
			if err != nil {
				return nil, err
			}
			results[i] = files
		}
	}

	var all []PageFile
	for _, files := range results {
		all = append(all, files...)
	}
	return all, nil
}
