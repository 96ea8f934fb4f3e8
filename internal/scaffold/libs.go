package scaffold

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mattn/go-zglob"
)

// ManifestFile is the name of the archive manifest inside lib/.
const ManifestFile = "jars.txt"

// ManifestPath returns the manifest location for a module directory.
func ManifestPath(dir string) string {
	return filepath.Join(dir, LibDir, ManifestFile)
}

// FindArchives returns every .jar file under dir, sorted by path.
func FindArchives(dir string) ([]string, error) {
	// filepath.Glob does not treat ** as any number of directories.
	matches, err := zglob.Glob(filepath.Join(dir, "**", "*.jar"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("searching %s for archives: %w", dir, err)
	}

	var jars []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", m, err)
		}
		if info.Mode().IsRegular() {
			jars = append(jars, m)
		}
	}
	sort.Strings(jars)
	return jars, nil
}

// RelocateLibraries moves every .jar under dir into dir/lib and records their
// base names in the manifest, one per line. When dir holds no archives
// nothing is written: a missing manifest means the module has no libraries.
//
// Name collisions are not special-cased; os.Rename decides.
func RelocateLibraries(dir string) ([]string, error) {
	jars, err := FindArchives(dir)
	if err != nil {
		return nil, err
	}
	if len(jars) == 0 {
		return nil, nil
	}

	libDir := filepath.Join(dir, LibDir)
	if err := os.MkdirAll(libDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", libDir, err)
	}

	names := make([]string, 0, len(jars))
	for _, jar := range jars {
		name := filepath.Base(jar)
		dst := filepath.Join(libDir, name)
		if jar != dst {
			if err := os.Rename(jar, dst); err != nil {
				return names, fmt.Errorf("moving %s: %w", jar, err)
			}
		}
		names = append(names, name)
	}

	if err := WriteManifest(dir, names); err != nil {
		return names, err
	}
	return names, nil
}

// WriteManifest overwrites the manifest with names, one per line.
func WriteManifest(dir string, names []string) error {
	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		b.WriteByte('\n')
	}
	p := ManifestPath(dir)
	if err := os.WriteFile(p, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}
	return nil
}

// ReadManifest returns the archive names listed in dir's manifest. ok is
// false when the manifest does not exist. Blank lines are skipped.
func ReadManifest(dir string) (names []string, ok bool, err error) {
	data, err := os.ReadFile(ManifestPath(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading manifest: %w", err)
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			names = append(names, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, true, fmt.Errorf("reading manifest: %w", err)
	}
	return names, true, nil
}
