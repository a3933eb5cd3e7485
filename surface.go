package avatar

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Surface is the raster all avatars are drawn onto. It owns one gg.Context
// of fixed size and the font faces and random source used by the recipes.
//
// Painters receive the Surface and draw through its scoped helpers, so
// colour, line width, transform, clip and shadow never leak from one
// painter into the next.
type Surface struct {
	dc     *gg.Context
	width  int
	height int
	fonts  *fontSet
	random RandomSource
}

func newSurface(w, h int, fonts *fontSet, random RandomSource) *Surface {
	s := &Surface{
		dc:     gg.NewContext(w, h),
		width:  w,
		height: h,
		fonts:  fonts,
		random: random,
	}
	s.resetStyle()
	return s
}

// resetStyle sets the base state every painter starts from: opaque black
// fill and stroke, unit line width.
func (s *Surface) resetStyle() {
	s.dc.SetColor(color.Black)
	s.dc.SetLineWidth(1)
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Unit returns the number of pixels per reference unit, min(w, h)/400.
func (s *Surface) Unit() float64 {
	return float64(min(s.width, s.height)) / ReferenceSize
}

// Center returns the centre of the surface.
func (s *Surface) Center() (float64, float64) {
	return float64(s.width) / 2, float64(s.height) / 2
}

// anchor returns the reference frame centred on the surface.
func (s *Surface) anchor() anchor {
	cx, cy := s.Center()
	return anchor{X: cx, Y: cy, U: s.Unit()}
}

// RGBA returns the backing pixel buffer. It is premultiplied.
func (s *Surface) RGBA() *image.RGBA {
	return s.dc.Image().(*image.RGBA)
}

// Clear resets every pixel to fully transparent, drops any path,
// transform or clip left in the context and restores the base style.
func (s *Surface) Clear() {
	s.dc.ResetClip()
	s.dc.Identity()
	s.dc.ClearPath()
	s.dc.SetColor(color.Transparent)
	s.dc.Clear()
	s.resetStyle()
}

// Scope saves the drawing state, runs fn and restores the state.
func (s *Surface) Scope(fn func(dc *gg.Context)) {
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.ClearPath()
	fn(s.dc)
	s.dc.ClearPath()
}

// Clipped runs fn with drawing restricted to the path built by clip.
// Clips do not nest.
func (s *Surface) Clipped(clip, fn func(dc *gg.Context)) {
	s.Scope(func(dc *gg.Context) {
		clip(dc)
		dc.Clip()
		defer dc.ResetClip()
		fn(dc)
	})
}

// Shadow describes a drop shadow or glow, with lengths in pixels.
type Shadow struct {
	Color   color.Color
	Blur    float64
	OffsetX float64
	OffsetY float64
}

func (sh Shadow) visible() bool {
	if sh.Color == nil {
		return false
	}
	_, _, _, a := sh.Color.RGBA()
	return a > 0
}

// Shadowed paints fn with a shadow underneath: fn is first rendered to a
// scratch layer whose alpha is tinted with the shadow colour, blurred and
// composited at the offset, then fn is painted normally. Nothing of the
// shadow persists past the call.
func (s *Surface) Shadowed(sh Shadow, fn func(dc *gg.Context)) {
	if !sh.visible() {
		s.Scope(fn)
		return
	}

	layer := gg.NewContext(s.width, s.height)
	fn(layer)
	shadow := tintAlpha(layer.Image().(*image.RGBA), sh.Color)
	var img image.Image = shadow
	if sh.Blur > 0 {
		img = imaging.Blur(shadow, sh.Blur/2)
	}

	s.Scope(func(dc *gg.Context) {
		dc.Identity()
		dc.DrawImage(img, int(math.Round(sh.OffsetX)), int(math.Round(sh.OffsetY)))
	})
	s.Scope(fn)
}

// tintAlpha returns an image of colour c whose coverage follows src's alpha.
func tintAlpha(src *image.RGBA, c color.Color) *image.NRGBA {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := src.PixOffset(b.Min.X, y)
		di := dst.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			a := src.Pix[si+3]
			if a != 0 {
				dst.Pix[di+0] = nc.R
				dst.Pix[di+1] = nc.G
				dst.Pix[di+2] = nc.B
				dst.Pix[di+3] = uint8((uint32(a)*uint32(nc.A) + 127) / 255)
			}
			si += 4
			di += 4
		}
	}
	return dst
}

// Snapshot returns a copy of the current pixels.
func (s *Surface) Snapshot() []uint8 {
	return append([]uint8(nil), s.RGBA().Pix...)
}

// Restore replaces the pixels with a snapshot taken from this surface.
func (s *Surface) Restore(snap []uint8) {
	copy(s.RGBA().Pix, snap)
}
