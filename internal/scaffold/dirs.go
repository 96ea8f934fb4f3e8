// Package scaffold shapes a module directory on disk: the standard
// subdirectories, the lib/ archive layout and its manifest, the shared
// devcontainer and scripts trees, and the relocation of legacy Eclipse files.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// Standard module subdirectories.
const (
	LibDir    = "lib"
	SrcDir    = "src"
	ImagesDir = "images"
	BinDir    = "bin"
)

// KeepFile is the placeholder that lets git track an otherwise empty directory.
const KeepFile = ".keep"

// Subdirs lists the subdirectories MakeDirs creates, in creation order.
var Subdirs = []string{LibDir, SrcDir, ImagesDir, BinDir}

// MakeDirs creates each standard subdirectory of dir that does not exist yet
// and drops a KeepFile into it. Existing subdirectories are left alone.
// It returns the subdirectories it created.
func MakeDirs(dir string) ([]string, error) {
	var created []string
	for _, name := range Subdirs {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return created, fmt.Errorf("stat %s: %w", p, err)
		}

		if err := os.Mkdir(p, 0o755); err != nil {
			return created, fmt.Errorf("creating %s: %w", p, err)
		}
		if err := os.WriteFile(filepath.Join(p, KeepFile), nil, 0o644); err != nil {
			return created, fmt.Errorf("writing %s marker: %w", name, err)
		}
		created = append(created, name)
	}
	return created, nil
}
