package avatar

import (
	"image/color"
	"strings"

	"github.com/fogleman/gg"
)

// maxFunnyAccessories is the number of corner slots around the face.
const maxFunnyAccessories = 4

// DefaultFunnyFace is drawn when FunnyOptions.Face is empty.
const DefaultFunnyFace = "😂"

// FunnyOptions configures an emoji avatar.
type FunnyOptions struct {
	// Face is the glyph drawn large in the centre, typically one emoji.
	// Empty means DefaultFunnyFace.
	Face string
	// Accessories are glyphs placed in the corners, top-left first and
	// clockwise by row. Entries past the fourth are ignored.
	Accessories []string
	// Background defaults to BackgroundGradient1.
	Background FunnyBackground
	// BackgroundColor overrides the colour of the dots and solid presets.
	BackgroundColor string
	// Text is an optional caption on a translucent plate near the bottom.
	Text string
	// TextColor defaults to white.
	TextColor string
}

// Normalized returns o with an empty Face replaced by DefaultFunnyFace.
func (o FunnyOptions) Normalized() FunnyOptions {
	if strings.TrimSpace(o.Face) == "" {
		o.Face = DefaultFunnyFace
	}
	return o
}

// Validate reports the first invalid field.
func (o FunnyOptions) Validate() error {
	if !o.Background.valid() {
		return unknownValue("background", string(o.Background))
	}
	if err := checkColor("backgroundColor", o.BackgroundColor); err != nil {
		return err
	}
	return checkColor("textColor", o.TextColor)
}

// funnySlots are the accessory positions as fractions of the surface.
var funnySlots = [maxFunnyAccessories][2]float64{
	{0.2, 0.2}, {0.8, 0.2}, {0.2, 0.8}, {0.8, 0.8},
}

func paintFunny(s *Surface, o FunnyOptions) {
	paintFunnyBackground(s, o.Background, optionalColor(o.BackgroundColor))

	u := s.Unit()
	cx, cy := s.Center()
	face := s.layoutText(false, 180*u, o.Face)
	s.Shadowed(Shadow{Color: rgba(0, 0, 0, 0.3), Blur: 10 * u, OffsetX: 5 * u, OffsetY: 5 * u}, func(dc *gg.Context) {
		s.fillLine(dc, face, cx, cy-20*u, alignMiddle, color.Black)
	})

	s.Scope(func(dc *gg.Context) {
		for i, acc := range o.Accessories {
			if i >= maxFunnyAccessories {
				break
			}
			slot := funnySlots[i]
			s.fillText(dc, false, 60*u, acc, slot[0]*float64(s.width), slot[1]*float64(s.height), alignMiddle, color.Black)
		}
	})

	if o.Text != "" {
		paintCaption(s, o.Text, colorOr(o.TextColor, "#ffffff"), float64(s.height)-40*u)
	}
}

// paintCaption draws text centred horizontally at y on a translucent
// black plate padded by 20 units.
func paintCaption(s *Surface, text string, c color.Color, y float64) {
	s.Scope(func(dc *gg.Context) {
		u := s.Unit()
		ln := s.layoutText(true, 32*u, text)
		tw := ln.width
		w := float64(s.width)

		dc.SetColor(rgba(0, 0, 0, 0.5))
		dc.DrawRectangle((w-tw)/2-20*u, y-25*u, tw+40*u, 40*u)
		dc.Fill()

		s.fillLine(dc, ln, w/2, y, alignMiddle, c)
	})
}

// checkColor validates an optional colour field.
func checkColor(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := ParseColor(value); err != nil {
		return invalid(field, value, err.Error())
	}
	return nil
}

// optionalColor parses a validated colour, nil when empty.
func optionalColor(value string) color.Color {
	if value == "" {
		return nil
	}
	return mustColor(value)
}

// colorOr parses a validated colour, falling back to def when empty.
func colorOr(value, def string) color.NRGBA {
	if value == "" {
		return mustColor(def)
	}
	return mustColor(value)
}
