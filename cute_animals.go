package avatar

import (
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Animal is the species of a Cute avatar.
type Animal string

// Animals.
const (
	AnimalCat   Animal = "cat"
	AnimalBear  Animal = "bear"
	AnimalBunny Animal = "bunny"
	AnimalPanda Animal = "panda"
	AnimalFox   Animal = "fox"
)

// EyeStyle is the eye shape of a Cute avatar.
type EyeStyle string

// Cute eye styles.
const (
	EyesSparkle EyeStyle = "sparkle"
	EyesClosed  EyeStyle = "closed"
	EyesRound   EyeStyle = "round"
	EyesKawaii  EyeStyle = "kawaii"
)

// animalPainter draws one procedural animal face centred on a.
type animalPainter interface {
	paint(dc *gg.Context, a anchor, eyes EyeStyle, blush bool)
}

var animals = map[Animal]animalPainter{
	AnimalCat:   catPainter{},
	AnimalBear:  bearPainter{},
	AnimalBunny: bunnyPainter{},
	AnimalPanda: pandaPainter{},
	AnimalFox:   foxPainter{},
}

func (k Animal) orDefault() Animal {
	if k == "" {
		return AnimalCat
	}
	return k
}

func (k Animal) valid() bool {
	_, ok := animals[k.orDefault()]
	return ok
}

var (
	blushColor = rgba(255, 182, 193, 0.6)
	mouthColor = mustColor("#333")
	white      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black      = color.NRGBA{A: 255}
)

// blushPair fills two cheeks of radius r at (∓dx, dy).
func blushPair(dc *gg.Context, a anchor, dx, dy, r float64) {
	fillPath(dc, blushColor, func() {
		a.circle(dc, -dx, dy, r)
		a.circle(dc, dx, dy, r)
	})
}

// snoutMouth strokes the two curves of a "w" mouth from (0, y0) through
// (∓cx, cy) to (∓ex, ey).
func snoutMouth(dc *gg.Context, a anchor, y0, cx, cy, ex, ey float64) {
	strokePath(dc, mouthColor, a.px(2), func() {
		a.quad(dc, 0, y0, -cx, cy, -ex, ey)
		a.quad(dc, 0, y0, cx, cy, ex, ey)
	})
}

type catPainter struct{}

func (catPainter) paint(dc *gg.Context, a anchor, eyes EyeStyle, blush bool) {
	fur := mustColor("#ffcc99")
	fillPath(dc, fur, func() { a.circle(dc, 0, 0, 80) })
	fillPath(dc, fur, func() {
		a.poly(dc, -60, -60, -80, -100, -40, -80)
		a.poly(dc, 60, -60, 80, -100, 40, -80)
	})
	fillPath(dc, mustColor("#ff9999"), func() {
		a.poly(dc, -55, -70, -65, -85, -45, -75)
		a.poly(dc, 55, -70, 65, -85, 45, -75)
	})

	paintCuteEyes(dc, a, eyes, black)

	fillPath(dc, mustColor("#ff6b9d"), func() { a.poly(dc, 0, 10, -8, 20, 8, 20) })
	snoutMouth(dc, a, 20, 15, 30, 20, 25)

	strokePath(dc, mustColor("#666"), a.px(1), func() {
		a.line(dc, -80, 10, -40, 5)
		a.line(dc, -80, 20, -40, 15)
		a.line(dc, 40, 5, 80, 10)
		a.line(dc, 40, 15, 80, 20)
	})

	if blush {
		blushPair(dc, a, 50, 20, 15)
	}
}

type bearPainter struct{}

func (bearPainter) paint(dc *gg.Context, a anchor, eyes EyeStyle, blush bool) {
	fur, muzzle := mustColor("#8b4513"), mustColor("#d2691e")
	fillPath(dc, fur, func() {
		a.circle(dc, -50, -50, 25)
		a.circle(dc, 50, -50, 25)
	})
	fillPath(dc, muzzle, func() {
		a.circle(dc, -50, -50, 12)
		a.circle(dc, 50, -50, 12)
	})
	fillPath(dc, fur, func() { a.circle(dc, 0, 0, 70) })
	fillPath(dc, muzzle, func() { a.ellipse(dc, 0, 20, 35, 25, 0) })

	paintCuteEyes(dc, a.shift(0, -10), eyes, black)

	fillPath(dc, black, func() { a.ellipse(dc, 0, 15, 8, 6, 0) })
	snoutMouth(dc, a, 20, 10, 30, 15, 25)

	if blush {
		blushPair(dc, a, 40, 10, 12)
	}
}

type bunnyPainter struct{}

func (bunnyPainter) paint(dc *gg.Context, a anchor, eyes EyeStyle, blush bool) {
	fur := mustColor("#f0f0f0")
	fillPath(dc, fur, func() {
		a.ellipse(dc, -25, -60, 15, 40, -0.2)
		a.ellipse(dc, 25, -60, 15, 40, 0.2)
	})
	fillPath(dc, mustColor("#ffb6c1"), func() {
		a.ellipse(dc, -25, -60, 8, 25, -0.2)
		a.ellipse(dc, 25, -60, 8, 25, 0.2)
	})
	fillPath(dc, fur, func() { a.circle(dc, 0, 0, 65) })

	paintCuteEyes(dc, a.shift(0, -10), eyes, black)

	fillPath(dc, mustColor("#ff69b4"), func() { a.poly(dc, 0, 10, -6, 18, 6, 18) })
	snoutMouth(dc, a, 18, 10, 25, 12, 20)
	fillPath(dc, white, func() {
		a.rect(dc, -6, 20, 5, 8)
		a.rect(dc, 1, 20, 5, 8)
	})

	if blush {
		blushPair(dc, a, 35, 5, 12)
	}
}

type pandaPainter struct{}

func (pandaPainter) paint(dc *gg.Context, a anchor, eyes EyeStyle, blush bool) {
	fillPath(dc, black, func() {
		a.circle(dc, -50, -50, 25)
		a.circle(dc, 50, -50, 25)
	})
	fillPath(dc, white, func() { a.circle(dc, 0, 0, 70) })
	fillPath(dc, black, func() {
		a.ellipse(dc, -25, -5, 20, 25, -0.3)
		a.ellipse(dc, 25, -5, 20, 25, 0.3)
	})

	paintCuteEyes(dc, a.shift(0, -5), eyes, white)

	fillPath(dc, black, func() { a.ellipse(dc, 0, 15, 8, 6, 0) })
	snoutMouth(dc, a, 20, 10, 28, 12, 23)

	if blush {
		blushPair(dc, a, 45, 15, 12)
	}
}

type foxPainter struct{}

func (foxPainter) paint(dc *gg.Context, a anchor, eyes EyeStyle, blush bool) {
	fur := mustColor("#ff6b35")
	fillPath(dc, fur, func() {
		a.poly(dc, -60, -40, -75, -80, -35, -60)
		a.poly(dc, 60, -40, 75, -80, 35, -60)
	})
	fillPath(dc, white, func() {
		a.poly(dc, -55, -50, -62, -65, -45, -55)
		a.poly(dc, 55, -50, 62, -65, 45, -55)
	})
	fillPath(dc, fur, func() { a.circle(dc, 0, 0, 70) })
	fillPath(dc, white, func() { a.ellipse(dc, 0, 20, 35, 25, 0) })

	paintCuteEyes(dc, a.shift(0, -10), eyes, black)

	fillPath(dc, black, func() { a.ellipse(dc, 0, 15, 6, 5, 0) })
	snoutMouth(dc, a, 19, 12, 28, 15, 23)

	if blush {
		blushPair(dc, a, 45, 10, 12)
	}
}

// eyePainter draws a pair of eyes centred on a in colour c.
type eyePainter func(dc *gg.Context, a anchor, c color.Color)

var cuteEyes = map[EyeStyle]eyePainter{
	EyesSparkle: func(dc *gg.Context, a anchor, c color.Color) {
		fillPath(dc, c, func() {
			a.circle(dc, -25, 0, 12)
			a.circle(dc, 25, 0, 12)
		})
		fillPath(dc, white, func() {
			a.circle(dc, -22, -3, 4)
			a.circle(dc, 28, -3, 4)
		})
	},
	EyesClosed: func(dc *gg.Context, a anchor, c color.Color) {
		strokePath(dc, c, a.px(3), func() {
			a.arc(dc, -25, 0, 10, 0.2*math.Pi, 0.8*math.Pi)
			a.arc(dc, 25, 0, 10, 0.2*math.Pi, 0.8*math.Pi)
		})
	},
	EyesRound: func(dc *gg.Context, a anchor, c color.Color) {
		fillPath(dc, c, func() {
			a.circle(dc, -25, 0, 8)
			a.circle(dc, 25, 0, 8)
		})
	},
	EyesKawaii: func(dc *gg.Context, a anchor, c color.Color) {
		strokePath(dc, c, a.px(3), func() {
			a.line(dc, -30, -5, -20, 5)
			a.line(dc, -20, -5, -30, 5)
			a.line(dc, 20, -5, 30, 5)
			a.line(dc, 30, -5, 20, 5)
		})
	},
}

func (e EyeStyle) orDefault() EyeStyle {
	if e == "" {
		return EyesKawaii
	}
	return e
}

func (e EyeStyle) valid() bool {
	_, ok := cuteEyes[e.orDefault()]
	return ok
}

func paintCuteEyes(dc *gg.Context, a anchor, style EyeStyle, c color.Color) {
	cuteEyes[style.orDefault()](dc, a, c)
}
