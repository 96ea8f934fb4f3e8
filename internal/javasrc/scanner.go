// Package javasrc finds Java entry points (classes declaring
// public static void main(String[] args)) in a source tree.
package javasrc

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/mattn/go-zglob"
)

// mainPattern matches the main method signature, tolerating any whitespace
// and any parameter name. Java identifiers may use any Unicode letter, so \w
// (ASCII only in RE2) is not enough.
var mainPattern = regexp.MustCompile(`public\s+static\s+void\s+main\s*\(\s*String\s*\[\s*\]\s+[\p{L}\p{N}_$]+\s*\)`)

// sourceRoot is the directory segment that separates a module from its
// package tree.
const sourceRoot = "/src/"

// EntryPoint is a Java class that declares a main method.
type EntryPoint struct {
	Path    string // file path as found
	Package string // e.g. "com.example"
	Class   string // simple name, e.g. "Main"
	FQN     string // fully-qualified name, e.g. "com.example.Main"
}

// Scan yields an EntryPoint for every .java file under root whose text
// contains a main method. Files are visited in sorted path order.
//
// A file whose path has no package part under src/ yields a *PathError
// wrapping ErrNoPackage; consumers are expected to report it and keep going.
// Read failures are yielded as plain errors.
func Scan(root string) iter.Seq2[EntryPoint, error] {
	return func(yield func(EntryPoint, error) bool) {
		files, err := zglob.Glob(filepath.Join(root, "**", "*.java"))
		if err != nil && !os.IsNotExist(err) {
			yield(EntryPoint{}, fmt.Errorf("searching %s for sources: %w", root, err))
			return
		}
		sort.Strings(files)

		for _, path := range files {
			data, err := os.ReadFile(path)
			if err != nil {
				if !yield(EntryPoint{}, fmt.Errorf("reading %s: %w", path, err)) {
					return
				}
				continue
			}
			if !HasMain(data) {
				continue
			}
			if !yield(ParsePath(path)) {
				return
			}
		}
	}
}

// HasMain reports whether src declares a main method.
func HasMain(src []byte) bool {
	return mainPattern.Match(src)
}

// ParsePath derives the entry point identity from a source path: the part
// after the last "/src/" is split into package directories and the class
// file name. Files outside src/ or directly inside it have no package and
// are rejected. Relative paths that start at src/ are accepted.
func ParsePath(path string) (EntryPoint, error) {
	slashed := "/" + filepath.ToSlash(path)
	i := strings.LastIndex(slashed, sourceRoot)
	if i < 0 {
		return EntryPoint{}, &PathError{Path: path, Reason: "not under a src directory"}
	}
	rel := slashed[i+len(sourceRoot):]

	pkgPath, file, ok := cutLast(rel, "/")
	if !ok || pkgPath == "" || file == "" {
		return EntryPoint{}, &PathError{Path: path, Reason: "no package directory"}
	}

	class := strings.TrimSuffix(file, ".java")
	pkg := strings.ReplaceAll(pkgPath, "/", ".")
	return EntryPoint{
		Path:    path,
		Package: pkg,
		Class:   class,
		FQN:     pkg + "." + class,
	}, nil
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
