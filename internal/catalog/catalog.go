// Package catalog records an inventory of a course tree: every module with
// its repository name, archives, and launchable classes. The inventory is
// persisted as TOML so it can be diffed and reviewed alongside the course.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/modkit/internal/course"
	"github.com/papapumpkin/modkit/internal/ide"
	"github.com/papapumpkin/modkit/internal/scaffold"
)

// DefaultFile is the catalog file name written at the course root.
const DefaultFile = "modules.toml"

// Catalog is the inventory of one course tree.
type Catalog struct {
	Root    string  `toml:"root"`
	Modules []Entry `toml:"module"`
}

// Entry describes one module.
type Entry struct {
	Level      string   `toml:"level"`
	Module     string   `toml:"module"`
	Path       string   `toml:"path"` // slash-separated, relative to Root
	Repo       string   `toml:"repo"`
	Jars       []string `toml:"jars,omitempty"`
	Launchable []string `toml:"launchable,omitempty"`
}

// Scan builds a catalog of the modules under root. Jars come from each
// module's manifest, so a module that has not been updated lists none.
// Launchable classes honor denylist the same way launch generation does.
func Scan(ctx context.Context, root, prefix string, denylist []string) (*Catalog, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}

	cat := &Catalog{Root: abs}
	for dir, err := range course.Walk(abs, prefix) {
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", abs, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, err := scanModule(abs, dir, denylist)
		if err != nil {
			return nil, err
		}
		cat.Modules = append(cat.Modules, entry)
	}

	sort.Slice(cat.Modules, func(i, j int) bool {
		return cat.Modules[i].Path < cat.Modules[j].Path
	})
	return cat, nil
}

func scanModule(root, dir string, denylist []string) (Entry, error) {
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return Entry{}, fmt.Errorf("relativizing %s: %w", dir, err)
	}
	repo, err := course.RepoNameFor(dir)
	if err != nil {
		return Entry{}, err
	}
	jars, _, err := scaffold.ReadManifest(dir)
	if err != nil {
		return Entry{}, err
	}
	entries, err := ide.EntryPoints(dir, nil)
	if err != nil {
		return Entry{}, err
	}

	var launchable []string
	for _, cfg := range ide.BuildLaunch(entries, denylist).Configurations {
		launchable = append(launchable, cfg.MainClass)
	}

	return Entry{
		Level:      filepath.Base(filepath.Dir(dir)),
		Module:     filepath.Base(dir),
		Path:       filepath.ToSlash(rel),
		Repo:       repo,
		Jars:       jars,
		Launchable: launchable,
	}, nil
}

// Find returns the entry whose Repo or Path matches key.
func (c *Catalog) Find(key string) (Entry, bool) {
	for _, e := range c.Modules {
		if e.Repo == key || e.Path == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Load reads a catalog from path. A missing file yields an empty catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Catalog{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cat Catalog
	if err := toml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cat, nil
}

// Save writes the catalog to path, creating parent directories as needed.
func Save(path string, cat *Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(cat)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
