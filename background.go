package avatar

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// FunnyBackground names a preset Funny background.
type FunnyBackground string

// Funny background presets.
const (
	BackgroundGradient1 FunnyBackground = "gradient-1"
	BackgroundGradient2 FunnyBackground = "gradient-2"
	BackgroundGradient3 FunnyBackground = "gradient-3"
	BackgroundRainbow   FunnyBackground = "rainbow"
	BackgroundDots      FunnyBackground = "dots"
	BackgroundSolid     FunnyBackground = "solid"
)

func (b FunnyBackground) orDefault() FunnyBackground {
	if b == "" {
		return BackgroundGradient1
	}
	return b
}

func (b FunnyBackground) valid() bool {
	_, ok := funnyBackgrounds[b.orDefault()]
	return ok
}

// backgroundPainter fills the whole surface. fill is the caller's colour,
// nil when none was given.
type backgroundPainter func(s *Surface, dc *gg.Context, fill color.Color)

var (
	rainbowColors = []string{"#ff0000", "#ff7f00", "#ffff00", "#00ff00", "#0000ff", "#4b0082", "#9400d3"}

	funnyBackgrounds = map[FunnyBackground]backgroundPainter{
		BackgroundGradient1: presetLinear("#667eea", "#764ba2"),
		BackgroundGradient2: presetLinear("#f093fb", "#f5576c"),
		BackgroundGradient3: func(s *Surface, dc *gg.Context, _ color.Color) {
			fillSurface(s, dc, newGradient(GradientRadial, 0, 0, float64(s.width), float64(s.height),
				colors("#4facfe", "#00f2fe")))
		},
		BackgroundRainbow: func(s *Surface, dc *gg.Context, _ color.Color) {
			g := gg.NewLinearGradient(0, 0, float64(s.width), 0)
			addEvenStops(g, colors(rainbowColors...))
			fillSurface(s, dc, g)
		},
		BackgroundDots: func(s *Surface, dc *gg.Context, fill color.Color) {
			fillSurface(s, dc, gg.NewSolidPattern(orColor(fill, "#ffd93d")))
			u := s.Unit()
			dc.SetColor(rgba(255, 255, 255, 0.3))
			for x := 0.0; x < float64(s.width); x += 30 * u {
				for y := 0.0; y < float64(s.height); y += 30 * u {
					dc.DrawCircle(x+15*u, y+15*u, 8*u)
				}
			}
			dc.Fill()
		},
		BackgroundSolid: func(s *Surface, dc *gg.Context, fill color.Color) {
			fillSurface(s, dc, gg.NewSolidPattern(orColor(fill, "#6366f1")))
		},
	}
)

func presetLinear(from, to string) backgroundPainter {
	return func(s *Surface, dc *gg.Context, _ color.Color) {
		fillSurface(s, dc, newGradient(GradientLinear, 0, 0, float64(s.width), float64(s.height), colors(from, to)))
	}
}

// paintFunnyBackground fills the surface with a preset.
func paintFunnyBackground(s *Surface, style FunnyBackground, fill color.Color) {
	paint := funnyBackgrounds[style.orDefault()]
	s.Scope(func(dc *gg.Context) { paint(s, dc, fill) })
}

// paintRadialWash fills the surface with a radial gradient from base at
// the centre to base shifted by amount at radius min(w, h)/2.
func paintRadialWash(s *Surface, base color.NRGBA, amount int) {
	s.Scope(func(dc *gg.Context) {
		cx, cy := s.Center()
		g := gg.NewRadialGradient(cx, cy, 0, cx, cy, float64(min(s.width, s.height))/2)
		g.AddColorStop(0, base)
		g.AddColorStop(1, AdjustBrightness(base, amount))
		fillSurface(s, dc, g)
	})
}

// paintGradient fills the surface with a multi-stop gradient.
func paintGradient(s *Surface, kind GradientKind, stops []color.Color) {
	s.Scope(func(dc *gg.Context) {
		fillSurface(s, dc, newGradient(kind, 0, 0, float64(s.width), float64(s.height), stops))
	})
}

// paintSparkles scatters n dots of reference radius [1, 4) at random positions.
func paintSparkles(s *Surface, n int, c color.Color) {
	s.Scope(func(dc *gg.Context) {
		u := s.Unit()
		dc.SetColor(c)
		for i := 0; i < n; i++ {
			x := s.random.Float64() * float64(s.width)
			y := s.random.Float64() * float64(s.height)
			r := s.random.Float64()*3 + 1
			dc.DrawCircle(x, y, r*u)
		}
		dc.Fill()
	})
}

// paintStarField scatters eight small gold stars at random positions.
func paintStarField(s *Surface) {
	s.Scope(func(dc *gg.Context) {
		u := s.Unit()
		dc.SetColor(rgba(255, 215, 0, 0.8))
		for i := 0; i < 8; i++ {
			x := s.random.Float64() * float64(s.width)
			y := s.random.Float64() * float64(s.height)
			dc.NewSubPath()
			starPath(dc, x, y, 5*u, 10*u, 5)
		}
		dc.Fill()
	})
}

// fillSurface paints every pixel with p.
func fillSurface(s *Surface, dc *gg.Context, p gg.Pattern) {
	dc.SetFillStyle(p)
	dc.DrawRectangle(0, 0, float64(s.width), float64(s.height))
	dc.Fill()
}

func colors(hex ...string) []color.Color {
	out := make([]color.Color, len(hex))
	for i, h := range hex {
		out[i] = mustColor(h)
	}
	return out
}

func orColor(c color.Color, fallback string) color.Color {
	if c == nil {
		return mustColor(fallback)
	}
	return c
}

// degrees converts an angle in degrees to radians.
func degrees(d float64) float64 { return d * math.Pi / 180 }
