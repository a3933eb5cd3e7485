package avatar

import (
	"image/color"
	"math"
	"sort"

	"github.com/fogleman/gg"
)

// GradientKind selects the geometry of a multi-stop gradient.
type GradientKind string

// Gradient kinds.
const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
	GradientConic  GradientKind = "conic"
)

func (k GradientKind) orDefault() GradientKind {
	if k == "" {
		return GradientLinear
	}
	return k
}

func (k GradientKind) valid() bool {
	switch k.orDefault() {
	case GradientLinear, GradientRadial, GradientConic:
		return true
	}
	return false
}

// colorStop represents a colour at a specific position in a gradient.
type colorStop struct {
	offset float64 // Position in gradient, 0.0 to 1.0
	color  color.Color
}

// sortStops sorts colour stops by offset, keeping insertion order for ties.
func sortStops(stops []colorStop) []colorStop {
	sorted := make([]colorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].offset < sorted[j].offset
	})
	return sorted
}

// addEvenStops places colors at offsets i/(n-1). A single colour becomes a
// flat gradient.
func addEvenStops(g gg.Gradient, colors []color.Color) {
	switch len(colors) {
	case 0:
		return
	case 1:
		g.AddColorStop(0, colors[0])
		g.AddColorStop(1, colors[0])
		return
	}
	last := float64(len(colors) - 1)
	for i, c := range colors {
		g.AddColorStop(float64(i)/last, c)
	}
}

// conicGradient is an angular colour transition around a centre point.
// Offset 0 lies at start (radians, clockwise from +X on screen) and the
// sweep covers one full turn. It implements gg.Gradient.
type conicGradient struct {
	cx, cy float64
	start  float64
	stops  []colorStop
	sorted bool
}

// newConicGradient creates a conic gradient centred at (cx, cy).
func newConicGradient(start, cx, cy float64) *conicGradient {
	return &conicGradient{cx: cx, cy: cy, start: start}
}

// AddColorStop adds a colour stop at the specified offset in [0, 1].
func (g *conicGradient) AddColorStop(offset float64, c color.Color) {
	g.stops = append(g.stops, colorStop{offset: offset, color: c})
	g.sorted = false
}

// ColorAt returns the colour at the centre of pixel (x, y).
func (g *conicGradient) ColorAt(x, y int) color.Color {
	if len(g.stops) == 0 {
		return color.Transparent
	}
	if !g.sorted {
		g.stops = sortStops(g.stops)
		g.sorted = true
	}

	dx := float64(x) + 0.5 - g.cx
	dy := float64(y) + 0.5 - g.cy
	if dx == 0 && dy == 0 {
		return g.stops[0].color
	}
	return colorAtOffset(g.stops, g.angleToT(math.Atan2(dy, dx)))
}

// angleToT converts an angle to a gradient parameter t in [0, 1).
func (g *conicGradient) angleToT(angle float64) float64 {
	rel := math.Mod(angle-g.start, 2*math.Pi)
	if rel < 0 {
		rel += 2 * math.Pi
	}
	return rel / (2 * math.Pi)
}

// colorAtOffset interpolates sorted stops at t, padding beyond the ends.
func colorAtOffset(stops []colorStop, t float64) color.Color {
	if t <= stops[0].offset {
		return stops[0].color
	}
	last := stops[len(stops)-1]
	if t >= last.offset {
		return last.color
	}
	for i := 1; i < len(stops); i++ {
		s0, s1 := stops[i-1], stops[i]
		if t < s1.offset {
			span := s1.offset - s0.offset
			if span <= 0 {
				return s1.color
			}
			return lerpColor(s0.color, s1.color, (t-s0.offset)/span)
		}
	}
	return last.color
}

// lerpColor interpolates two colours in premultiplied space.
func lerpColor(c0, c1 color.Color, t float64) color.Color {
	r0, g0, b0, a0 := c0.RGBA()
	r1, g1, b1, a1 := c1.RGBA()
	mix := func(a, b uint32) uint8 {
		return uint8(math.Round((float64(a) + (float64(b)-float64(a))*t) / 257))
	}
	return color.RGBA{R: mix(r0, r1), G: mix(g0, g1), B: mix(b0, b1), A: mix(a0, a1)}
}

// newGradient builds a gradient of kind spanning the w×h rectangle at
// (x, y): linear runs corner to corner, radial and conic are centred.
// The radial gradient reaches its last stop at half the shorter side.
func newGradient(kind GradientKind, x, y, w, h float64, colors []color.Color) gg.Gradient {
	var g gg.Gradient
	cx, cy := x+w/2, y+h/2
	switch kind.orDefault() {
	case GradientRadial:
		g = gg.NewRadialGradient(cx, cy, 0, cx, cy, math.Min(w, h)/2)
	case GradientConic:
		g = newConicGradient(0, cx, cy)
	default:
		g = gg.NewLinearGradient(x, y, x+w, y+h)
	}
	addEvenStops(g, colors)
	return g
}
