package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"testing"
)

const (
	modulePath  = "github.com/papapumpkin/modkit"
	internalPfx = modulePath + "/internal/"
)

var excludedPkgs = map[string]bool{
	"arch_test": true,
}

// repoRoot caches the resolved repository root directory.
var (
	repoRootOnce sync.Once
	repoRootPath string
)

// repoRoot returns the absolute path to the repository root by walking up
// from this test file's directory until go.mod is found.
func repoRoot(t *testing.T) string {
	t.Helper()
	repoRootOnce.Do(func() {
		_, thisFile, _, ok := runtime.Caller(0)
		if !ok {
			t.Fatal("runtime.Caller failed")
		}
		dir := filepath.Dir(thisFile)
		for {
			if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
				repoRootPath = dir
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				t.Fatal("could not find go.mod in any parent directory")
			}
			dir = parent
		}
	})
	if repoRootPath == "" {
		t.Fatal("repoRoot not resolved")
	}
	return repoRootPath
}

func internalDirPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(repoRoot(t), "internal")
}

// internalPackages returns the Go package names under internal/, excluding
// arch_test itself.
func internalPackages(t *testing.T) []string {
	t.Helper()

	dir := internalDirPath(t)
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}

	var pkgs []string
	for _, e := range entries {
		if !e.IsDir() || excludedPkgs[e.Name()] {
			continue
		}
		if len(goFilesIn(t, filepath.Join(dir, e.Name()))) > 0 {
			pkgs = append(pkgs, e.Name())
		}
	}
	sort.Strings(pkgs)
	return pkgs
}

// goFilesIn returns all non-test .go files in the given directory.
func goFilesIn(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading directory %s: %v", dir, err)
	}

	var files []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files
}

// importsOf returns the deduplicated internal packages imported by the
// non-test files in pkgDir, e.g. "course", "scaffold".
func importsOf(t *testing.T, pkgDir string) []string {
	t.Helper()

	seen := make(map[string]bool)
	fset := token.NewFileSet()
	for _, f := range goFilesIn(t, pkgDir) {
		node, err := parser.ParseFile(fset, f, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parsing imports in %s: %v", f, err)
		}
		for _, imp := range node.Imports {
			path := strings.Trim(imp.Path.Value, `"`)
			if rel, ok := strings.CutPrefix(path, internalPfx); ok {
				if idx := strings.Index(rel, "/"); idx != -1 {
					rel = rel[:idx]
				}
				seen[rel] = true
			}
		}
	}

	result := make([]string, 0, len(seen))
	for pkg := range seen {
		result = append(result, pkg)
	}
	sort.Strings(result)
	return result
}

// selectorCall is a call of the form pkg.Func found in a source file.
type selectorCall struct {
	File string
	Line int
	Pkg  string
	Func string
}

// selectorCallsIn returns every pkg.Func call in the non-test files of
// pkgDir. Method calls on values show up too; callers filter by Pkg.
func selectorCallsIn(t *testing.T, pkgDir string) []selectorCall {
	t.Helper()

	var calls []selectorCall
	fset := token.NewFileSet()
	for _, f := range goFilesIn(t, pkgDir) {
		node, err := parser.ParseFile(fset, f, nil, 0)
		if err != nil {
			t.Fatalf("parsing %s: %v", f, err)
		}
		ast.Inspect(node, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			ident, ok := sel.X.(*ast.Ident)
			if !ok {
				return true
			}
			calls = append(calls, selectorCall{
				File: f,
				Line: fset.Position(call.Pos()).Line,
				Pkg:  ident.Name,
				Func: sel.Sel.Name,
			})
			return true
		})
	}
	return calls
}

func TestInternalPackages(t *testing.T) {
	t.Parallel()

	pkgs := internalPackages(t)
	for _, p := range pkgs {
		if p == "arch_test" {
			t.Error("internalPackages should exclude arch_test")
		}
	}

	known := map[string]bool{"course": false, "scaffold": false, "ide": false, "update": false}
	for _, p := range pkgs {
		if _, ok := known[p]; ok {
			known[p] = true
		}
	}
	for pkg, found := range known {
		if !found {
			t.Errorf("expected package %q in internalPackages result", pkg)
		}
	}
}

func TestImportsOf(t *testing.T) {
	t.Parallel()

	imports := importsOf(t, filepath.Join(internalDirPath(t), "ide"))
	for _, want := range []string{"javasrc", "scaffold"} {
		found := false
		for _, imp := range imports {
			if imp == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected internal/ide to import %q, got %v", want, imports)
		}
	}
}

func TestSelectorCallsIn(t *testing.T) {
	t.Parallel()

	calls := selectorCallsIn(t, filepath.Join(internalDirPath(t), "scaffold"))
	for _, c := range calls {
		if c.Pkg == "os" && c.Func == "MkdirAll" {
			return
		}
	}
	t.Error("expected internal/scaffold to call os.MkdirAll")
}
