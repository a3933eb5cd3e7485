package avatar

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"
	"github.com/gogpu/avatar/internal/exif"
)

// Orientation is an EXIF orientation value, 1 through 8.
type Orientation int

// EXIF orientations, named by the transform that displays the image upright.
const (
	OrientationNormal     Orientation = 1
	OrientationFlipH      Orientation = 2
	OrientationRotate180  Orientation = 3
	OrientationFlipV      Orientation = 4
	OrientationTranspose  Orientation = 5
	OrientationRotate90   Orientation = 6 // clockwise
	OrientationTransverse Orientation = 7
	OrientationRotate270  Orientation = 8 // clockwise
)

// orientQuality is the JPEG quality FixOrientation re-encodes with.
const orientQuality = 92

var orientations = map[Orientation]func(image.Image) *image.NRGBA{
	OrientationFlipH:      imaging.FlipH,
	OrientationRotate180:  imaging.Rotate180,
	OrientationFlipV:      imaging.FlipV,
	OrientationTranspose:  imaging.Transpose,
	OrientationRotate90:   imaging.Rotate270,
	OrientationTransverse: imaging.Transverse,
	OrientationRotate270:  imaging.Rotate90,
}

// ReadOrientation returns the EXIF orientation of a JPEG stream. Missing
// or unreadable metadata and values outside 1..8 give OrientationNormal.
func ReadOrientation(data []byte) Orientation {
	v, err := exif.Orientation(data)
	switch {
	case errors.Is(err, exif.ErrNoOrientation), errors.Is(err, exif.ErrNotJPEG):
		return OrientationNormal
	case err != nil:
		Logger().Debug("avatar: unreadable EXIF metadata", "err", err)
		return OrientationNormal
	case v < 1 || v > 8:
		Logger().Warn("avatar: EXIF orientation out of range, using identity", "orientation", v)
		return OrientationNormal
	}
	return Orientation(v)
}

// SwapsAxes reports whether applying o exchanges width and height.
func (o Orientation) SwapsAxes() bool {
	return o >= OrientationTranspose && o <= OrientationRotate270
}

// Apply returns img transformed so it displays upright. OrientationNormal
// and unknown values return img itself.
func (o Orientation) Apply(img image.Image) image.Image {
	fn, ok := orientations[o]
	if !ok {
		return img
	}
	return fn(img)
}

// FixOrientation decodes an upload, applies its EXIF orientation and
// re-encodes it as JPEG at quality 92. The result carries no EXIF data.
func FixOrientation(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, _, err := DecodeImage(data)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: orientQuality}); err != nil {
		return nil, &ExportError{Format: FormatJPEG, Err: err}
	}
	return buf.Bytes(), nil
}
