package avatar

import (
	"image/color"
	"slices"
	"strings"

	"github.com/fogleman/gg"
)

// DefaultCoolColors are the stops used when CoolOptions.ColorStops is empty.
var DefaultCoolColors = []string{"#FF0080", "#7928CA", "#FF0080"}

// CoolOptions configures a geometric gradient avatar.
type CoolOptions struct {
	// ColorStops are two or more colours, spread evenly over the
	// background and the shape. Empty means DefaultCoolColors.
	ColorStops []string
	// Shape defaults to ShapeCircle.
	Shape Shape
	// Pattern defaults to CoolPatternNone.
	Pattern CoolPattern
	// GradientKind defaults to GradientLinear.
	GradientKind GradientKind
	// Glow surrounds the shape with a halo of the first colour.
	Glow bool
	// Text is an optional caption near the bottom.
	Text string
	// TextColor defaults to white.
	TextColor string
}

// Normalized returns o with empty ColorStops replaced by DefaultCoolColors.
func (o CoolOptions) Normalized() CoolOptions {
	if len(o.ColorStops) == 0 {
		o.ColorStops = slices.Clone(DefaultCoolColors)
	}
	return o
}

// Validate reports the first invalid field.
func (o CoolOptions) Validate() error {
	if len(o.ColorStops) < 2 {
		return invalid("colorStops", strings.Join(o.ColorStops, ","), "need at least two colours")
	}
	for _, c := range o.ColorStops {
		if _, err := ParseColor(c); err != nil {
			return invalid("colorStops", c, err.Error())
		}
	}
	if !o.Shape.valid() {
		return unknownValue("shape", string(o.Shape))
	}
	if !o.Pattern.valid() {
		return unknownValue("pattern", string(o.Pattern))
	}
	if !o.GradientKind.valid() {
		return unknownValue("gradientKind", string(o.GradientKind))
	}
	return checkColor("textColor", o.TextColor)
}

func paintCool(s *Surface, o CoolOptions) {
	stops := make([]color.Color, len(o.ColorStops))
	for i, c := range o.ColorStops {
		stops[i] = mustColor(c)
	}
	w, h := float64(s.width), float64(s.height)
	u := s.Unit()

	paintGradient(s, o.GradientKind, stops)
	paintTile(s, coolPatterns[o.Pattern], 0, 0, w, h, rgba(255, 255, 255, 0.1))

	var glow Shadow
	if o.Glow {
		glow = Shadow{Color: stops[0], Blur: 40 * u}
	}
	cx, cy := s.Center()
	size := float64(min(s.width, s.height)) * 0.5
	s.Shadowed(glow, func(dc *gg.Context) {
		dc.SetFillStyle(newGradient(GradientLinear, cx-size/2, cy-size/2, size, size, stops))
		traceShape(dc, o.Shape, cx, cy, size/2)
		dc.Fill()
	})

	if o.Text != "" {
		c := colorOr(o.TextColor, "#ffffff")
		s.Shadowed(Shadow{Color: rgba(0, 0, 0, 0.5), Blur: 10 * u}, func(dc *gg.Context) {
			s.fillText(dc, true, 40*u, o.Text, w/2, h-50*u, alignBaseline, c)
		})
	}
}
