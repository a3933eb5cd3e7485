package avatar

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// CoolPattern is a repeating overlay drawn between the Cool background and
// its shape.
type CoolPattern string

// Cool patterns.
const (
	CoolPatternNone      CoolPattern = "none"
	CoolPatternDots      CoolPattern = "dots"
	CoolPatternGrid      CoolPattern = "grid"
	CoolPatternWaves     CoolPattern = "waves"
	CoolPatternGeometric CoolPattern = "geometric"
)

// BlankPattern is a repeating overlay drawn inside a Blank avatar's shape.
type BlankPattern string

// Blank patterns.
const (
	BlankPatternNone     BlankPattern = "none"
	BlankPatternDots     BlankPattern = "dots"
	BlankPatternGrid     BlankPattern = "grid"
	BlankPatternWaves    BlankPattern = "waves"
	BlankPatternDiagonal BlankPattern = "diagonal"
	BlankPatternCircles  BlankPattern = "circles"
)

// tile is a repeating pattern over the w×h box at the origin, with
// reference lengths scaled by u.
type tile func(dc *gg.Context, w, h, u float64)

var coolPatterns = map[CoolPattern]tile{
	CoolPatternNone:      nil,
	CoolPatternDots:      dotTile(30, 0, 3),
	CoolPatternGrid:      gridTile(40),
	CoolPatternWaves:     waveTile(50, 30),
	CoolPatternGeometric: diamondTile,
}

var blankPatterns = map[BlankPattern]tile{
	BlankPatternNone:     nil,
	BlankPatternDots:     dotTile(30, 0, 4),
	BlankPatternGrid:     gridTile(40),
	BlankPatternWaves:    waveTile(40, 20),
	BlankPatternDiagonal: diagonalTile,
	BlankPatternCircles:  ringTile,
}

func (p CoolPattern) valid() bool {
	if p == "" {
		return true
	}
	_, ok := coolPatterns[p]
	return ok
}

func (p BlankPattern) valid() bool {
	if p == "" {
		return true
	}
	_, ok := blankPatterns[p]
	return ok
}

// paintTile draws t over the w×h box at (x, y) in colour c with a two
// unit line width.
func paintTile(s *Surface, t tile, x, y, w, h float64, c color.Color) {
	if t == nil {
		return
	}
	s.Scope(func(dc *gg.Context) {
		u := s.Unit()
		dc.Translate(x, y)
		dc.SetColor(c)
		dc.SetLineWidth(2 * u)
		t(dc, w, h, u)
	})
}

// dotTile fills dots of radius r every step, offset by off.
func dotTile(step, off, r float64) tile {
	return func(dc *gg.Context, w, h, u float64) {
		for x := 0.0; x < w; x += step * u {
			for y := 0.0; y < h; y += step * u {
				dc.DrawCircle(x+off*u, y+off*u, r*u)
			}
		}
		dc.Fill()
	}
}

// gridTile strokes vertical and horizontal lines every step.
func gridTile(step float64) tile {
	return func(dc *gg.Context, w, h, u float64) {
		for x := 0.0; x < w; x += step * u {
			dc.DrawLine(x, 0, x, h)
		}
		for y := 0.0; y < h; y += step * u {
			dc.DrawLine(0, y, w, y)
		}
		dc.Stroke()
	}
}

// waveTile strokes sine waves of amplitude 10 every step rows; period
// controls the horizontal stretch.
func waveTile(step, period float64) tile {
	return func(dc *gg.Context, w, h, u float64) {
		for y := 0.0; y < h; y += step * u {
			dc.NewSubPath()
			dc.MoveTo(0, y)
			for x := 0.0; x < w; x += 10 * u {
				dc.LineTo(x, y+math.Sin(x/u/period)*10*u)
			}
		}
		dc.Stroke()
	}
}

// diamondTile strokes 30-unit squares rotated by 45 degrees every 60 units.
func diamondTile(dc *gg.Context, w, h, u float64) {
	half := 15 * u * math.Sqrt2
	for x := 0.0; x < w; x += 60 * u {
		for y := 0.0; y < h; y += 60 * u {
			cx, cy := x+30*u, y+30*u
			dc.NewSubPath()
			dc.MoveTo(cx, cy-half)
			dc.LineTo(cx+half, cy)
			dc.LineTo(cx, cy+half)
			dc.LineTo(cx-half, cy)
			dc.ClosePath()
		}
	}
	dc.Stroke()
}

// diagonalTile strokes parallel 45 degree lines every 30 units.
func diagonalTile(dc *gg.Context, w, h, u float64) {
	side := math.Max(w, h)
	for i := -side; i < 2*side; i += 30 * u {
		dc.DrawLine(i, 0, i+side, side)
	}
	dc.Stroke()
}

// ringTile strokes circles of radius 20 centred in 60-unit cells.
func ringTile(dc *gg.Context, w, h, u float64) {
	for x := 0.0; x < w; x += 60 * u {
		for y := 0.0; y < h; y += 60 * u {
			dc.DrawCircle(x+30*u, y+30*u, 20*u)
		}
	}
	dc.Stroke()
}
