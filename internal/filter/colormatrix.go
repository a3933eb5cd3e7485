package filter

import (
	"image"

	"github.com/gogpu/avatar/internal/parallel"
)

// ColorMatrix is a 3x4 colour transformation applied to straight-alpha
// channel values in [0, 255]:
//
//	[R']   [a00 a01 a02 a03]   [R]
//	[G'] = [a10 a11 a12 a13] * [G]
//	[B']   [a20 a21 a22 a23]   [B]
//	                           [1]
//
// The fourth column is a bias. Results are clamped to [0, 255] and rounded
// to nearest.
type ColorMatrix [12]float64

// Identity passes colours through unchanged.
var Identity = ColorMatrix{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
}

// Grayscale sets every channel to the Rec. 601 luma 0.299R + 0.587G + 0.114B.
var Grayscale = ColorMatrix{
	0.299, 0.587, 0.114, 0,
	0.299, 0.587, 0.114, 0,
	0.299, 0.587, 0.114, 0,
}

// Sepia is the classic sepia tone.
var Sepia = ColorMatrix{
	0.393, 0.769, 0.189, 0,
	0.349, 0.686, 0.168, 0,
	0.272, 0.534, 0.131, 0,
}

// Scale returns a matrix multiplying each channel by its own factor.
func Scale(r, g, b float64) ColorMatrix {
	return ColorMatrix{
		r, 0, 0, 0,
		0, g, 0, 0,
		0, 0, b, 0,
	}
}

// Transform maps one straight-alpha colour.
func (m *ColorMatrix) Transform(r, g, b uint8) (uint8, uint8, uint8) {
	return m.transform(float64(r), float64(g), float64(b))
}

func (m *ColorMatrix) transform(r, g, b float64) (uint8, uint8, uint8) {
	nr := m[0]*r + m[1]*g + m[2]*b + m[3]
	ng := m[4]*r + m[5]*g + m[6]*b + m[7]
	nb := m[8]*r + m[9]*g + m[10]*b + m[11]
	return clampUint8(nr), clampUint8(ng), clampUint8(nb)
}

// Apply transforms every pixel of img in place. Fully transparent pixels
// are skipped.
func (m *ColorMatrix) Apply(img *image.RGBA) {
	b := img.Bounds()
	parallel.Rows(b.Min.Y, b.Max.Y, 0, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			m.applyRow(img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)])
		}
	})
}

// applyRow transforms one row of premultiplied RGBA pixels.
func (m *ColorMatrix) applyRow(row []uint8) {
	for i := 0; i+4 <= len(row); i += 4 {
		p := row[i : i+4 : i+4]
		a := p[3]
		switch a {
		case 0:
		case 255:
			p[0], p[1], p[2] = m.transform(float64(p[0]), float64(p[1]), float64(p[2]))
		default:
			// Un-premultiply, transform, re-premultiply.
			af := float64(a)
			r, g, bl := m.transform(float64(p[0])*255/af, float64(p[1])*255/af, float64(p[2])*255/af)
			p[0] = premul(r, a)
			p[1] = premul(g, a)
			p[2] = premul(bl, a)
		}
	}
}

func premul(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}

// clampUint8 clamps v to [0, 255] and rounds to nearest.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
