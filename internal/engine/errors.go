package engine

import "github.com/dshills/snarkyed/internal/engine/textstore"

// Errors returned by engine operations.
var (
	// ErrLoad indicates the document could not be read or decoded.
	ErrLoad = textstore.ErrLoad

	// ErrInvalidText indicates the document is not valid text.
	ErrInvalidText = textstore.ErrInvalidText

	// ErrOutOfRange indicates a line index outside the document.
	ErrOutOfRange = textstore.ErrOutOfRange
)
