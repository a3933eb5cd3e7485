package avatar

import (
	"errors"
	"io"
	"testing"
)

func TestTypedErrorsMatchOneSentinel(t *testing.T) {
	sentinels := []error{ErrDecode, ErrUnsupportedFormat, ErrInvalidOptions, ErrExport}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"decode", &DecodeError{MIME: "image/png", Err: io.ErrUnexpectedEOF}, ErrDecode},
		{"unsupported", &UnsupportedFormatError{MIME: "image/gif"}, ErrUnsupportedFormat},
		{"invalid", unknownValue("background", "plaid"), ErrInvalidOptions},
		{"export", &ExportError{Format: FormatPNG, Err: io.ErrShortWrite}, ErrExport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range sentinels {
				if got := errors.Is(tt.err, s); got != (s == tt.want) {
					t.Errorf("errors.Is(%v, %v) = %v", tt.err, s, got)
				}
			}
		})
	}

	// Wrapped causes stay reachable.
	exp := &ExportError{Format: FormatPNG, Err: io.ErrShortWrite}
	if !errors.Is(exp, io.ErrShortWrite) {
		t.Error("ExportError hides its cause")
	}
	var target *ExportError
	if !errors.As(error(exp), &target) || target.Format != FormatPNG {
		t.Error("errors.As did not find ExportError")
	}
}
