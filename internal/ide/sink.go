// Package ide generates the editor configuration of a module: the Eclipse
// .classpath, VS Code settings and launch configurations, and .gitignore.
package ide

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	difflib "github.com/pmezard/go-difflib/difflib"
)

// Sink receives generated files.
type Sink interface {
	WriteFile(path string, data []byte) error
}

// DiskSink writes files to disk, creating parent directories as needed.
type DiskSink struct{}

// WriteFile replaces path with data.
func (DiskSink) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// DiffSink prints a unified diff of what would change instead of writing.
// Files whose content is unchanged produce no output.
type DiffSink struct {
	W       io.Writer
	Context int // lines of context; zero means 3

	// Changed lists the paths that differ, in the order they were seen.
	Changed []string
}

// NewDiffSink returns a DiffSink writing to w.
func NewDiffSink(w io.Writer) *DiffSink {
	return &DiffSink{W: w}
}

// WriteFile diffs the current content of path against data.
func (d *DiffSink) WriteFile(path string, data []byte) error {
	old, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if bytes.Equal(old, data) {
		return nil
	}
	d.Changed = append(d.Changed, path)

	from := "a/" + filepath.ToSlash(path)
	if old == nil {
		from = "/dev/null"
	}
	ctx := d.Context
	if ctx <= 0 {
		ctx = 3
	}
	patch, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(string(old)),
		B:        splitLines(string(data)),
		FromFile: from,
		ToFile:   "b/" + filepath.ToSlash(path),
		Context:  ctx,
	})
	if err != nil {
		return fmt.Errorf("diffing %s: %w", path, err)
	}
	_, err = io.WriteString(d.W, patch)
	return err
}

// splitLines splits s into lines that keep their newline, which difflib
// expects. A missing final newline gets one so the last hunk renders.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if last := lines[len(lines)-1]; !strings.HasSuffix(last, "\n") {
		lines[len(lines)-1] = last + "\n"
	}
	return lines
}
