package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrEmptyFaces is returned when no sources are provided to MultiFace.
	ErrEmptyFaces = errors.New("text: faces cannot be empty")

	// ErrInvalidSize is returned when a face is requested at a size <= 0.
	ErrInvalidSize = errors.New("text: face size must be positive")
)

// ParseError is returned when font data cannot be parsed by one of the
// font backends.
type ParseError struct {
	Backend string
	Err     error
}

func (e *ParseError) Error() string {
	return "text: " + e.Backend + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
