package nefile

import (
	"errors"
	"fmt"
)

// Error kinds returned by the decoder. Every kind is terminal for the
// whole-file parse, there is no partial decoding result.
var (
	ErrBadDOSMagic        = errors.New("invalid DOS header magic")
	ErrInsufficientData   = errors.New("buffer too short for structure")
	ErrMissingNESignature = errors.New("NE signature not found")
	ErrBadNESignature     = errors.New("invalid NE signature")
	ErrMissingNEHeader    = errors.New("NE header missing")
	ErrOutOfBounds        = errors.New("offset out of bounds")
)

// FormatError wraps an error kind with the absolute file offset at which
// the problem was detected.
type FormatError struct {
	Err    error
	Offset int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// formatError creates a FormatError for the given kind and file offset.
func formatError(kind error, offset int) error {
	return &FormatError{
		Err:    kind,
		Offset: offset,
	}
}
