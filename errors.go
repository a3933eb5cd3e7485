package avatar

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below matches exactly one of them
// with errors.Is.
var (
	// ErrDecode is returned when image data cannot be decoded.
	ErrDecode = errors.New("avatar: cannot decode image")

	// ErrUnsupportedFormat is returned when an upload is not JPEG, PNG or WebP.
	ErrUnsupportedFormat = errors.New("avatar: unsupported image format")

	// ErrInvalidOptions is returned when a render request carries a value
	// outside its documented range.
	ErrInvalidOptions = errors.New("avatar: invalid options")

	// ErrExport is returned when the surface cannot be encoded.
	ErrExport = errors.New("avatar: export failed")
)

// DecodeError is returned when uploaded bytes look like an image but
// cannot be decoded.
type DecodeError struct {
	MIME string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.MIME == "" {
		return fmt.Sprintf("avatar: cannot decode image: %v", e.Err)
	}
	return fmt.Sprintf("avatar: cannot decode %s: %v", e.MIME, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// UnsupportedFormatError is returned when the sniffed MIME type is not
// one of the accepted upload types.
type UnsupportedFormatError struct {
	MIME string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("avatar: unsupported image format %q", e.MIME)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// InvalidOptionsError describes the first offending field of an options
// value. Nothing is drawn when it is returned.
type InvalidOptionsError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidOptionsError) Error() string {
	return fmt.Sprintf("avatar: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidOptionsError) Unwrap() error { return ErrInvalidOptions }

// ExportError wraps an encoder failure.
type ExportError struct {
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("avatar: export %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// Is reports whether target is ErrExport.
func (e *ExportError) Is(target error) bool { return target == ErrExport }

func invalid(field, value, reason string) error {
	return &InvalidOptionsError{Field: field, Value: value, Reason: reason}
}

func unknownValue(field, value string) error {
	return invalid(field, value, "unknown value")
}
