package avatar

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// HairStyle is the haircut of an Anime avatar.
type HairStyle string

// Hair styles.
const (
	HairShort     HairStyle = "short"
	HairLong      HairStyle = "long"
	HairTwintails HairStyle = "twintails"
	HairPonytail  HairStyle = "ponytail"
	HairBob       HairStyle = "bob"
)

// hairPainter draws a haircut in colour c around the face centred on a.
type hairPainter func(dc *gg.Context, a anchor, c color.Color)

var hairStyles = map[HairStyle]hairPainter{
	HairShort: func(dc *gg.Context, a anchor, c color.Color) {
		fillPath(dc, c, func() {
			hairCap(dc, a, 90)
			for i := 0; i < 5; i++ {
				o := float64(i-2) * 20
				a.poly(dc, o, -60, o-10, -30, o+10, -30)
			}
		})
	},
	HairLong: func(dc *gg.Context, a anchor, c color.Color) {
		fillPath(dc, c, func() {
			hairCap(dc, a, 90)
			a.ellipse(dc, -70, 20, 25, 80, 0.3)
			a.ellipse(dc, 70, 20, 25, 80, -0.3)
			halfEllipse(dc, a, 0, -50, 60, 40)
		})
	},
	HairTwintails: func(dc *gg.Context, a anchor, c color.Color) {
		fillPath(dc, c, func() {
			hairCap(dc, a, 85)
			a.ellipse(dc, -80, -40, 30, 60, 0.5)
			a.ellipse(dc, 80, -40, 30, 60, -0.5)
		})
		fillPath(dc, hairTieColor, func() {
			a.circle(dc, -70, -50, 8)
			a.circle(dc, 70, -50, 8)
		})
	},
	HairPonytail: func(dc *gg.Context, a anchor, c color.Color) {
		fillPath(dc, c, func() {
			hairCap(dc, a, 90)
			a.ellipse(dc, 0, -80, 40, 70, 0)
		})
		fillPath(dc, hairTieColor, func() { a.circle(dc, 0, -60, 10) })
	},
	HairBob: func(dc *gg.Context, a anchor, c color.Color) {
		fillPath(dc, c, func() {
			hairCap(dc, a, 90)
			a.ellipse(dc, -70, 10, 30, 50, 0.2)
			a.ellipse(dc, 70, 10, 30, 50, -0.2)
		})
	},
}

var hairTieColor = mustColor("#ff69b4")

func (h HairStyle) orDefault() HairStyle {
	if h == "" {
		return HairShort
	}
	return h
}

func (h HairStyle) valid() bool {
	_, ok := hairStyles[h.orDefault()]
	return ok
}

// hairCap appends the upper half disc of radius r centred 20 units above a.
func hairCap(dc *gg.Context, a anchor, r float64) {
	x, y := a.at(0, -20)
	dc.NewSubPath()
	ellipseArc(dc, x, y, a.px(r), a.px(r), 0, math.Pi, 2*math.Pi)
	dc.ClosePath()
}

// halfEllipse appends the lower half of an axis-aligned ellipse.
func halfEllipse(dc *gg.Context, a anchor, dx, dy, rx, ry float64) {
	x, y := a.at(dx, dy)
	dc.NewSubPath()
	ellipseArc(dc, x, y, a.px(rx), a.px(ry), 0, 0, math.Pi)
	dc.ClosePath()
}
