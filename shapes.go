package avatar

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Shape is the outline of a Cool subject or a Blank avatar.
type Shape string

// Shapes.
const (
	ShapeCircle   Shape = "circle"
	ShapeSquare   Shape = "square"
	ShapeHexagon  Shape = "hexagon"
	ShapeTriangle Shape = "triangle"
)

func (s Shape) orDefault() Shape {
	if s == "" {
		return ShapeCircle
	}
	return s
}

func (s Shape) valid() bool {
	switch s.orDefault() {
	case ShapeCircle, ShapeSquare, ShapeHexagon, ShapeTriangle:
		return true
	}
	return false
}

// traceShape appends the outline of s inscribed in the square of half-side
// r centred on (cx, cy).
func traceShape(dc *gg.Context, s Shape, cx, cy, r float64) {
	dc.NewSubPath()
	switch s.orDefault() {
	case ShapeSquare:
		dc.DrawRectangle(cx-r, cy-r, 2*r, 2*r)
	case ShapeHexagon:
		regularPolygon(dc, 6, cx, cy, r, -math.Pi/2)
	case ShapeTriangle:
		dc.MoveTo(cx, cy-r)
		dc.LineTo(cx-r, cy+r)
		dc.LineTo(cx+r, cy+r)
		dc.ClosePath()
	default:
		dc.DrawCircle(cx, cy, r)
	}
}

// regularPolygon draws a regular polygon with n sides.
func regularPolygon(dc *gg.Context, n int, x, y, r, rotation float64) {
	angle := 2.0 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := rotation + angle*float64(i)
		px := x + r*math.Cos(a)
		py := y + r*math.Sin(a)
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	dc.ClosePath()
}

// starPath draws a star with n points alternating between the outer and
// inner radius, the first point straight up.
func starPath(dc *gg.Context, x, y, inner, outer float64, n int) {
	for i := 0; i < 2*n; i++ {
		r := inner
		if i%2 == 0 {
			r = outer
		}
		a := float64(i)*math.Pi/float64(n) - math.Pi/2
		px := x + r*math.Cos(a)
		py := y + r*math.Sin(a)
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	dc.ClosePath()
}

// heartPath draws a heart of the given size whose tip sits at y+size/4.
func heartPath(dc *gg.Context, x, y, size float64) {
	dc.MoveTo(x, y+size/4)
	dc.QuadraticTo(x-size/2, y-size/2, x-size/4, y-size/4)
	ellipseArc(dc, x-size/4, y-size/3, size/4, size/4, 0, math.Pi, 2*math.Pi)
	ellipseArc(dc, x+size/4, y-size/3, size/4, size/4, 0, math.Pi, 2*math.Pi)
	dc.QuadraticTo(x+size/2, y-size/2, x, y+size/4)
	dc.ClosePath()
}

// ellipseArc appends the arc of an ellipse centred on (cx, cy) with radii
// rx, ry, rotated by rot, from angle a1 to a2. Angles increase clockwise on
// screen; a2 < a1 sweeps backwards. A line joins the current point to the
// start of the arc, if there is one.
func ellipseArc(dc *gg.Context, cx, cy, rx, ry, rot, a1, a2 float64) {
	const n = 16
	sin, cos := math.Sincos(rot)
	at := func(a float64) (float64, float64) {
		ex, ey := rx*math.Cos(a), ry*math.Sin(a)
		return cx + ex*cos - ey*sin, cy + ex*sin + ey*cos
	}

	x0, y0 := at(a1)
	dc.LineTo(x0, y0)
	for i := 0; i < n; i++ {
		t0 := a1 + (a2-a1)*float64(i)/n
		t1 := a1 + (a2-a1)*float64(i+1)/n
		x0, y0 := at(t0)
		xm, ym := at((t0 + t1) / 2)
		x1, y1 := at(t1)
		dc.QuadraticTo(2*xm-x0/2-x1/2, 2*ym-y0/2-y1/2, x1, y1)
	}
}

// ellipse appends a closed, optionally rotated, full ellipse as a new subpath.
func ellipse(dc *gg.Context, cx, cy, rx, ry, rot float64) {
	dc.NewSubPath()
	ellipseArc(dc, cx, cy, rx, ry, rot, 0, 2*math.Pi)
	dc.ClosePath()
}

// arc appends a circular arc as a new subpath, for stroking.
func arc(dc *gg.Context, cx, cy, r, a1, a2 float64) {
	dc.NewSubPath()
	ellipseArc(dc, cx, cy, r, r, 0, a1, a2)
}

// anchor maps recipe coordinates, given at the 400px reference size
// relative to a centre point, onto the surface.
type anchor struct {
	X, Y float64 // centre on the surface, in pixels
	U    float64 // pixels per reference unit
}

// at returns the surface position of the reference offset (dx, dy).
func (a anchor) at(dx, dy float64) (float64, float64) {
	return a.X + dx*a.U, a.Y + dy*a.U
}

// px scales a reference length.
func (a anchor) px(v float64) float64 { return v * a.U }

// circle appends a circle of reference radius r at offset (dx, dy).
func (a anchor) circle(dc *gg.Context, dx, dy, r float64) {
	x, y := a.at(dx, dy)
	dc.NewSubPath()
	dc.DrawCircle(x, y, a.px(r))
}

// ellipse appends a rotated ellipse at offset (dx, dy).
func (a anchor) ellipse(dc *gg.Context, dx, dy, rx, ry, rot float64) {
	x, y := a.at(dx, dy)
	ellipse(dc, x, y, a.px(rx), a.px(ry), rot)
}

// arc appends an arc of reference radius r at offset (dx, dy).
func (a anchor) arc(dc *gg.Context, dx, dy, r, a1, a2 float64) {
	x, y := a.at(dx, dy)
	arc(dc, x, y, a.px(r), a1, a2)
}

// poly appends a closed polygon through reference offsets given as
// consecutive x, y pairs.
func (a anchor) poly(dc *gg.Context, pts ...float64) {
	dc.NewSubPath()
	for i := 0; i+1 < len(pts); i += 2 {
		x, y := a.at(pts[i], pts[i+1])
		dc.LineTo(x, y)
	}
	dc.ClosePath()
}

// line appends an open segment between two reference offsets.
func (a anchor) line(dc *gg.Context, x0, y0, x1, y1 float64) {
	dc.NewSubPath()
	px0, py0 := a.at(x0, y0)
	px1, py1 := a.at(x1, y1)
	dc.MoveTo(px0, py0)
	dc.LineTo(px1, py1)
}

// rect appends a rectangle with top-left at reference offset (dx, dy).
func (a anchor) rect(dc *gg.Context, dx, dy, w, h float64) {
	x, y := a.at(dx, dy)
	dc.NewSubPath()
	dc.DrawRectangle(x, y, a.px(w), a.px(h))
}

// quad appends an open quadratic curve between reference offsets.
func (a anchor) quad(dc *gg.Context, x0, y0, cx, cy, x1, y1 float64) {
	dc.NewSubPath()
	px0, py0 := a.at(x0, y0)
	pcx, pcy := a.at(cx, cy)
	px1, py1 := a.at(x1, y1)
	dc.MoveTo(px0, py0)
	dc.QuadraticTo(pcx, pcy, px1, py1)
}

// shift returns the frame moved by the reference offset (dx, dy).
func (a anchor) shift(dx, dy float64) anchor {
	x, y := a.at(dx, dy)
	return anchor{X: x, Y: y, U: a.U}
}

// fillPath fills the path built by path with colour c.
func fillPath(dc *gg.Context, c color.Color, path func()) {
	dc.SetColor(c)
	path()
	dc.Fill()
}

// strokePath strokes the path built by path with colour c and width w.
func strokePath(dc *gg.Context, c color.Color, w float64, path func()) {
	dc.SetColor(c)
	dc.SetLineWidth(w)
	path()
	dc.Stroke()
}
