package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/papapumpkin/modkit/internal/course"
)

// Import copies a flat "Level1-Module2" directory into base/Level1/Module2
// and returns the new module path. The destination must not exist yet.
func Import(src, base string) (string, error) {
	id, err := course.ParseFlatName(filepath.Base(filepath.Clean(src)))
	if err != nil {
		return "", err
	}

	dst := filepath.Join(base, id.Level, id.Module)
	if _, err := os.Stat(dst); err == nil {
		return "", fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat %s: %w", dst, err)
	}

	if err := CopyTemplate(src, dst); err != nil {
		return "", fmt.Errorf("importing %s: %w", src, err)
	}
	return dst, nil
}
