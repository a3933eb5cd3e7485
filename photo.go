package avatar

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/gogpu/avatar/platform"
)

// CropShape is the outline a photo is clipped to.
type CropShape string

// Crop shapes.
const (
	CropSquare CropShape = "square"
	CropCircle CropShape = "circle"
)

func (c CropShape) valid() bool {
	return c == "" || c == CropSquare || c == CropCircle
}

// TextPosition places the photo caption.
type TextPosition string

// Caption positions.
const (
	TextBottom TextPosition = "bottom"
	TextTop    TextPosition = "top"
)

func (p TextPosition) valid() bool {
	return p == "" || p == TextBottom || p == TextTop
}

// CropRegion selects the part of the source shown in the composite, in
// source pixels. A zero W or H selects the centre square of the source.
type CropRegion struct {
	X, Y, W, H int
	Shape      CropShape
}

// Sticker is a glyph placed on the composite. X, Y and SizePx are in
// reference units, like every other length.
type Sticker struct {
	Glyph       string
	X, Y        float64
	SizePx      float64
	RotationDeg float64
	// ID identifies the sticker to the caller; it is not drawn.
	ID string
}

// PhotoOptions configures a photo composite.
type PhotoOptions struct {
	// Source is the encoded upload: JPEG, PNG or WebP.
	Source []byte
	// Crop selects and shapes the visible region; nil means the centre
	// square, unclipped.
	Crop *CropRegion
	// Stickers are painted in order, later ones on top.
	Stickers []Sticker
	Text     string
	// TextColor defaults to white.
	TextColor string
	// TextPosition defaults to TextBottom.
	TextPosition TextPosition
	// Filter is applied to the whole surface before stickers and text.
	Filter Filter
	// Background and BackgroundColor paint a Funny preset behind the
	// photo. With only a colour the solid preset is used; with only a
	// preset the colour is white.
	Background      FunnyBackground
	BackgroundColor string
}

// Validate reports the first invalid field. The source bytes are checked
// only for presence; decoding happens at render time.
func (o PhotoOptions) Validate() error {
	if len(o.Source) == 0 {
		return invalid("source", "", "must not be empty")
	}
	if c := o.Crop; c != nil {
		if c.X < 0 || c.Y < 0 || c.W < 0 || c.H < 0 {
			return invalid("crop", fmt.Sprintf("%d,%d %dx%d", c.X, c.Y, c.W, c.H), "must not be negative")
		}
		if !c.Shape.valid() {
			return unknownValue("crop.shape", string(c.Shape))
		}
	}
	for i, st := range o.Stickers {
		if st.SizePx <= 0 {
			return invalid(fmt.Sprintf("stickers[%d].sizePx", i), fmt.Sprint(st.SizePx), "must be positive")
		}
	}
	if !o.TextPosition.valid() {
		return unknownValue("textPosition", string(o.TextPosition))
	}
	if !o.Filter.valid() {
		return unknownValue("filter", string(o.Filter))
	}
	if !o.Background.valid() {
		return unknownValue("background", string(o.Background))
	}
	if err := checkColor("backgroundColor", o.BackgroundColor); err != nil {
		return err
	}
	return checkColor("textColor", o.TextColor)
}

// cropRect returns the source rectangle to show.
func (o PhotoOptions) cropRect(b image.Rectangle) (image.Rectangle, error) {
	c := o.Crop
	if c == nil || c.W == 0 || c.H == 0 {
		return platform.CenterSquare(b), nil
	}
	r := image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H).Add(b.Min).Intersect(b)
	if r.Empty() {
		return r, invalid("crop", fmt.Sprintf("%d,%d %dx%d", c.X, c.Y, c.W, c.H), "outside the image")
	}
	return r, nil
}

func (o PhotoOptions) circle() bool {
	return o.Crop != nil && o.Crop.Shape == CropCircle
}

// photo is a decoded, oriented source with its crop resolved.
type photo struct {
	img  image.Image
	crop image.Rectangle
}

// preparePhoto decodes the source. Nothing is drawn.
func preparePhoto(o PhotoOptions) (photo, error) {
	img, _, err := DecodeImage(o.Source)
	if err != nil {
		return photo{}, err
	}
	r, err := o.cropRect(img.Bounds())
	if err != nil {
		return photo{}, err
	}
	return photo{img: img, crop: r}, nil
}

func paintPhoto(s *Surface, o PhotoOptions, p photo) {
	if o.Background != "" || o.BackgroundColor != "" {
		bg := o.Background
		if bg == "" {
			bg = BackgroundSolid
		}
		paintFunnyBackground(s, bg, colorOr(o.BackgroundColor, "#ffffff"))
	}

	// Cover-fit: the crop is scaled to fill the surface and centred.
	fitted := imaging.Fill(imaging.Crop(p.img, p.crop), s.width, s.height, imaging.Center, imaging.Lanczos)
	draw := func(dc *gg.Context) { dc.DrawImage(fitted, 0, 0) }
	if o.circle() {
		cx, cy := s.Center()
		s.Clipped(func(dc *gg.Context) {
			dc.DrawCircle(cx, cy, float64(min(s.width, s.height))/2)
		}, draw)
	} else {
		s.Scope(draw)
	}

	if m := filters[o.Filter]; m != nil {
		m.Apply(s.RGBA())
	}

	u := s.Unit()
	for _, st := range o.Stickers {
		paintSticker(s, st, u)
	}

	if o.Text != "" {
		y := float64(s.height) - 40*u
		if o.TextPosition == TextTop {
			y = 60 * u
		}
		paintCaption(s, o.Text, colorOr(o.TextColor, "#ffffff"), y)
	}
}

func paintSticker(s *Surface, st Sticker, u float64) {
	if st.Glyph == "" {
		return
	}
	ln := s.layoutText(false, st.SizePx*u, st.Glyph)
	sh := Shadow{Color: rgba(0, 0, 0, 0.3), Blur: 5 * u, OffsetX: 2 * u, OffsetY: 2 * u}
	s.Shadowed(sh, func(dc *gg.Context) {
		dc.Translate(st.X*u, st.Y*u)
		dc.Rotate(degrees(st.RotationDeg))
		s.fillLine(dc, ln, 0, 0, alignMiddle, color.Black)
	})
}
