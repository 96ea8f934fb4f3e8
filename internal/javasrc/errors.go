package javasrc

import "errors"

// ErrNoPackage indicates an entry point whose path has no package part.
var ErrNoPackage = errors.New("cannot derive class package")

// PathError reports a source file whose class identity cannot be derived
// from its path.
type PathError struct {
	Path   string
	Reason string
}

// Error returns the offending path and reason.
func (e *PathError) Error() string {
	return ErrNoPackage.Error() + ": " + e.Path + " (" + e.Reason + ")"
}

// Unwrap returns ErrNoPackage for use with errors.Is.
func (e *PathError) Unwrap() error {
	return ErrNoPackage
}
