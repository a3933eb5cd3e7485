package avatar

import (
	"bytes"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	ftype "github.com/h2non/filetype"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Accepted upload MIME types.
const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
	MIMEWebP = "image/webp"
)

// defaultMIME is reported when the content cannot be identified.
const defaultMIME = "application/octet-stream"

// SniffMIME returns the MIME type guessed from the leading bytes of data.
func SniffMIME(data []byte) string {
	if kind, err := ftype.Match(data); err == nil && kind.MIME.Value != "" {
		return kind.MIME.Value
	}
	return defaultMIME
}

// Accepted reports whether mime is one of the accepted upload types.
func Accepted(mime string) bool {
	switch mime {
	case MIMEJPEG, MIMEPNG, MIMEWebP:
		return true
	}
	return false
}

// DecodeImage sniffs, decodes and, for JPEG, orients an uploaded image.
// It returns an *UnsupportedFormatError for anything but JPEG, PNG and
// WebP, and a *DecodeError when the bytes do not decode.
func DecodeImage(data []byte) (image.Image, string, error) {
	mime := SniffMIME(data)
	if !Accepted(mime) {
		return nil, mime, &UnsupportedFormatError{MIME: mime}
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, mime, &DecodeError{MIME: mime, Err: err}
	}
	if mime == MIMEJPEG {
		img = ReadOrientation(data).Apply(img)
	}
	return img, mime, nil
}
