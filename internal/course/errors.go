package course

import "errors"

// ErrMalformedModulePath indicates a path that is not a Level/Module pair.
var ErrMalformedModulePath = errors.New("malformed module path")

// PathError records why a path could not be mapped to a module identity.
type PathError struct {
	Path   string
	Reason string
}

// Error returns the path and reason.
func (e *PathError) Error() string {
	return e.Path + ": " + ErrMalformedModulePath.Error() + ": " + e.Reason
}

// Unwrap returns ErrMalformedModulePath for use with errors.Is.
func (e *PathError) Unwrap() error {
	return ErrMalformedModulePath
}
