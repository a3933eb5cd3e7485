package avatar

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// Format is an export image format.
type Format string

// Export formats.
const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// DefaultJPEGQuality is the JPEG quality used when none is given.
const DefaultJPEGQuality = 0.92

// MIME returns the media type of f.
func (f Format) MIME() string {
	if f == FormatJPEG {
		return MIMEJPEG
	}
	return MIMEPNG
}

func (f Format) orDefault() Format {
	if f == "" {
		return FormatPNG
	}
	return f
}

func (f Format) valid() bool {
	switch f.orDefault() {
	case FormatPNG, FormatJPEG:
		return true
	}
	return false
}

// checkQuality validates a JPEG quality in (0, 1]; zero means default.
func checkQuality(q float64) error {
	if q < 0 || q > 1 || math.IsNaN(q) {
		return invalid("quality", fmt.Sprint(q), "must be in (0, 1]")
	}
	return nil
}

// encode writes img in format f. quality applies to JPEG only.
func encode(w io.Writer, img image.Image, f Format, quality float64) error {
	var err error
	switch f.orDefault() {
	case FormatJPEG:
		q := int(math.Round(quality * 100))
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: max(1, min(100, q))})
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return &ExportError{Format: f.orDefault(), Err: err}
	}
	return nil
}

// DataURI formats data as a base64 data URI of the given MIME type.
func DataURI(mime string, data []byte) string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mime) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mime)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// ParseDataURI decodes a base64 data URI into its MIME type and payload.
func ParseDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, invalid("dataURI", truncate(uri), "missing data: prefix")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, invalid("dataURI", truncate(uri), "missing payload")
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, invalid("dataURI", truncate(uri), "only base64 payloads are supported")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, &DecodeError{MIME: mime, Err: err}
	}
	return mime, data, nil
}

func truncate(s string) string {
	const n = 32
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// formatForPath picks the format from a file extension.
func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	}
	return "", invalid("path", path, "extension must be .png, .jpg or .jpeg")
}

// writeFile encodes img in memory, then writes it to path.
func writeFile(path string, img image.Image, f Format, quality float64) error {
	var buf bytes.Buffer
	if err := encode(&buf, img, f, quality); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644); err != nil {
		return &ExportError{Format: f, Err: err}
	}
	return nil
}
