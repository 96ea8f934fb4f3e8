package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrTemplateNotFound indicates a missing devcontainer or scripts source tree.
	ErrTemplateNotFound = fmt.Errorf("template directory not found: %w", fs.ErrNotExist)
	// ErrDestinationExists indicates an import target that is already on disk.
	ErrDestinationExists = errors.New("destination already exists")
)
