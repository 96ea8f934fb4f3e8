package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// EclipseDir holds legacy Eclipse project files moved out of the module root.
const EclipseDir = ".eclipse"

// eclipseFiles are the Eclipse project files relocated by RelocateEclipse.
var eclipseFiles = []string{".settings", ".classpath", ".project"}

// RelocateEclipse moves legacy Eclipse project files from dir into
// dir/.eclipse so the editor stops picking them up. A name already present in
// .eclipse is never replaced: the root copy is left where it is, since after
// the first run a root .classpath is the generated one. It must run before
// the classpath writer. It returns the names that were moved.
func RelocateEclipse(dir string) ([]string, error) {
	dest := filepath.Join(dir, EclipseDir)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dest, err)
	}

	var moved []string
	for _, name := range eclipseFiles {
		src := filepath.Join(dir, name)
		if _, err := os.Lstat(src); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return moved, fmt.Errorf("stat %s: %w", src, err)
		}
		target := filepath.Join(dest, name)
		if _, err := os.Lstat(target); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return moved, fmt.Errorf("stat %s: %w", target, err)
		}
		if err := os.Rename(src, target); err != nil {
			return moved, fmt.Errorf("moving %s: %w", src, err)
		}
		moved = append(moved, name)
	}
	return moved, nil
}
