package textstore

import (
	"errors"
	"fmt"
)

// Errors returned by store operations.
var (
	// ErrLoad indicates the document could not be loaded. It is fatal:
	// there is nothing to edit without a document.
	ErrLoad = errors.New("load failed")

	// ErrInvalidText indicates the source is not valid UTF-8 text.
	ErrInvalidText = errors.New("not valid UTF-8 text")

	// ErrOutOfRange indicates a line index outside [0, LineCount()).
	ErrOutOfRange = errors.New("line index out of range")
)

// LoadError describes a failure to open or decode a document.
type LoadError struct {
	Path string // Source path or name
	Err  error  // Underlying error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports ErrLoad for every LoadError so callers can match the class
// without a type assertion.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}
