// Package course locates module directories in a course tree and derives
// their Level/Module identity.
//
// A course is laid out as Level*/Module* directory pairs. Each module
// directory is the root of one publishable repository.
package course

import (
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Default directory name prefixes.
const (
	LevelPrefix  = "Level"
	ModulePrefix = "Module"
)

// ModuleID identifies a module by its level and module directory names.
type ModuleID struct {
	Level  string `toml:"level"`
	Module string `toml:"module"`
}

// RepoName returns the hosting-service repository name for the module,
// e.g. "Level1-Module2".
func (id ModuleID) RepoName() string {
	return id.Level + "-" + id.Module
}

// String returns the module's path form, e.g. "Level1/Module2".
func (id ModuleID) String() string {
	return id.Level + "/" + id.Module
}

// Walk yields every directory under root whose base name starts with prefix,
// at any depth. An empty prefix means ModulePrefix. The root itself is never
// yielded and .git directories are not descended into.
//
// Entries come out in filepath.WalkDir order. Walk errors are yielded with
// an empty path; stopping the iteration stops the walk.
func Walk(root, prefix string) iter.Seq2[string, error] {
	if prefix == "" {
		prefix = ModulePrefix
	}
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if !yield("", err) {
					return filepath.SkipAll
				}
				return nil
			}
			if !d.IsDir() || path == root {
				return nil
			}
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			if strings.HasPrefix(d.Name(), prefix) {
				if !yield(path, nil) {
					return filepath.SkipAll
				}
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// ParseModuleID derives the module identity from dir's own name and its
// parent's name. dir is made absolute first, so "." resolves against the
// working directory.
func ParseModuleID(dir string) (ModuleID, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ModuleID{}, fmt.Errorf("resolving %s: %w", dir, err)
	}
	module := filepath.Base(abs)
	level := filepath.Base(filepath.Dir(abs))

	if !strings.HasPrefix(level, LevelPrefix) {
		return ModuleID{}, &PathError{Path: abs, Reason: fmt.Sprintf("parent %q does not start with %q", level, LevelPrefix)}
	}
	if !strings.HasPrefix(module, ModulePrefix) {
		return ModuleID{}, &PathError{Path: abs, Reason: fmt.Sprintf("directory %q does not start with %q", module, ModulePrefix)}
	}
	return ModuleID{Level: level, Module: module}, nil
}

// ParseFlatName splits a flat "Level1-Module2" name into a ModuleID.
func ParseFlatName(name string) (ModuleID, error) {
	level, module, ok := strings.Cut(name, "-")
	if !ok || level == "" || module == "" {
		return ModuleID{}, &PathError{Path: name, Reason: "expected <Level>-<Module>"}
	}
	return ModuleID{Level: level, Module: module}, nil
}

// RepoNameFor returns the repository name for dir: "<Level>-<Module>" when
// dir sits in a Level/Module pair, otherwise dir's base name.
func RepoNameFor(dir string) (string, error) {
	if id, err := ParseModuleID(dir); err == nil {
		return id.RepoName(), nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	return filepath.Base(abs), nil
}
