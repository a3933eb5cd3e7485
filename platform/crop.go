package platform

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Errors returned by Crop and Export.
var (
	// ErrEmptyImage is returned for a source with no pixels.
	ErrEmptyImage = errors.New("platform: empty image")

	// ErrInvalidSize is returned for a non-positive target size.
	ErrInvalidSize = errors.New("platform: target size must be positive")
)

// CenterSquare returns the largest square centred in bounds. Its side is
// min(W, H) and its origin is offset by ((W-side)/2, (H-side)/2), rounded
// down.
func CenterSquare(bounds image.Rectangle) image.Rectangle {
	side := min(bounds.Dx(), bounds.Dy())
	x := bounds.Min.X + (bounds.Dx()-side)/2
	y := bounds.Min.Y + (bounds.Dy()-side)/2
	return image.Rect(x, y, x+side, y+side)
}

// Crop cuts the centre square of img and resamples it to px×px.
func Crop(img image.Image, px int) (*image.NRGBA, error) {
	if px <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, px)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	sq := imaging.Crop(img, CenterSquare(img.Bounds()))
	return imaging.Resize(sq, px, px, imaging.Lanczos), nil
}
