package avatar

import (
	"math"

	"github.com/fogleman/gg"
)

// CuteAccessory decorates a Cute avatar.
type CuteAccessory string

// Cute accessories.
const (
	CuteBow    CuteAccessory = "bow"
	CuteFlower CuteAccessory = "flower"
	CuteHearts CuteAccessory = "hearts"
	CuteStars  CuteAccessory = "stars"
)

// CuteOptions configures a procedural animal avatar.
type CuteOptions struct {
	// Animal defaults to AnimalCat.
	Animal Animal
	// EyeStyle defaults to EyesKawaii.
	EyeStyle EyeStyle
	// Blush adds translucent pink cheeks.
	Blush bool
	// Accessories are painted in order; repeats are allowed.
	Accessories []CuteAccessory
	// BackgroundColor is the centre of the radial wash, default #ffebf0.
	BackgroundColor string
}

// Validate reports the first invalid field.
func (o CuteOptions) Validate() error {
	if !o.Animal.valid() {
		return unknownValue("animal", string(o.Animal))
	}
	if !o.EyeStyle.valid() {
		return unknownValue("eyeStyle", string(o.EyeStyle))
	}
	for _, acc := range o.Accessories {
		if _, ok := cuteAccessories[acc]; !ok {
			return unknownValue("accessory", string(acc))
		}
	}
	return checkColor("backgroundColor", o.BackgroundColor)
}

func paintCute(s *Surface, o CuteOptions) {
	paintRadialWash(s, colorOr(o.BackgroundColor, "#ffebf0"), -20)
	paintSparkles(s, 15, rgba(255, 255, 255, 0.6))

	painter := animals[o.Animal.orDefault()]
	s.Scope(func(dc *gg.Context) {
		painter.paint(dc, s.anchor(), o.EyeStyle, o.Blush)
	})

	for _, acc := range o.Accessories {
		paint := cuteAccessories[acc]
		s.Scope(func(dc *gg.Context) { paint(s, dc) })
	}
}

// cuteAccessoryPainter draws one accessory at its fixed place on the surface.
type cuteAccessoryPainter func(s *Surface, dc *gg.Context)

var cuteAccessories = map[CuteAccessory]cuteAccessoryPainter{
	CuteBow: func(s *Surface, dc *gg.Context) {
		paintBow(dc, anchor{X: float64(s.width) / 2, Y: float64(s.height) * 0.15, U: s.Unit()})
	},
	CuteFlower: func(s *Surface, dc *gg.Context) {
		paintFlower(dc, anchor{X: float64(s.width) * 0.7, Y: float64(s.height) * 0.2, U: s.Unit()})
	},
	CuteHearts: func(s *Surface, dc *gg.Context) {
		w, h, u := float64(s.width), float64(s.height), s.Unit()
		fillPath(dc, rgba(255, 105, 180, 0.6), func() {
			for _, p := range [][2]float64{{0.15, 0.15}, {0.85, 0.15}, {0.15, 0.85}, {0.85, 0.85}} {
				dc.NewSubPath()
				heartPath(dc, p[0]*w, p[1]*h, 15*u)
			}
		})
	},
	CuteStars: func(s *Surface, _ *gg.Context) {
		paintStarField(s)
	},
}

// paintBow draws a two-loop ribbon centred on a.
func paintBow(dc *gg.Context, a anchor) {
	fillPath(dc, mustColor("#ff69b4"), func() {
		for _, side := range []float64{-1, 1} {
			dc.NewSubPath()
			x0, y0 := a.at(20*side, 0)
			c1x, c1y := a.at(35*side, -10)
			x1, y1 := a.at(35*side, 0)
			c2x, c2y := a.at(35*side, 10)
			dc.MoveTo(x0, y0)
			dc.QuadraticTo(c1x, c1y, x1, y1)
			dc.QuadraticTo(c2x, c2y, x0, y0)
			dc.ClosePath()
		}
		a.rect(dc, -8, -5, 16, 10)
	})
}

// paintFlower draws six petals around a yellow centre.
func paintFlower(dc *gg.Context, a anchor) {
	fillPath(dc, mustColor("#ff69b4"), func() {
		for i := 0; i < 6; i++ {
			angle := float64(i) / 6 * 2 * math.Pi
			a.circle(dc, math.Cos(angle)*12, math.Sin(angle)*12, 8)
		}
	})
	fillPath(dc, mustColor("#ffeb3b"), func() { a.circle(dc, 0, 0, 6) })
}
