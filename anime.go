package avatar

import (
	"math"

	"github.com/fogleman/gg"
)

// AnimeEyeStyle is the eye shape of an Anime avatar.
type AnimeEyeStyle string

// Anime eye styles.
const (
	AnimeEyesSparkle AnimeEyeStyle = "sparkle"
	AnimeEyesNormal  AnimeEyeStyle = "normal"
	AnimeEyesClosed  AnimeEyeStyle = "closed"
	AnimeEyesHappy   AnimeEyeStyle = "happy"
)

// Expression selects the mouth of an Anime avatar. ExpressionWink also
// closes the right eye when the eyes are open.
type Expression string

// Expressions.
const (
	ExpressionSmile   Expression = "smile"
	ExpressionNeutral Expression = "neutral"
	ExpressionShy     Expression = "shy"
	ExpressionWink    Expression = "wink"
)

// AnimeAccessory decorates an Anime avatar.
type AnimeAccessory string

// Anime accessories.
const (
	AnimeGlasses  AnimeAccessory = "glasses"
	AnimeBow      AnimeAccessory = "bow"
	AnimeHeadband AnimeAccessory = "headband"
	AnimeEarring  AnimeAccessory = "earring"
)

// BackgroundEffect decorates the Anime background.
type BackgroundEffect string

// Background effects.
const (
	EffectNone     BackgroundEffect = "none"
	EffectStars    BackgroundEffect = "stars"
	EffectSparkles BackgroundEffect = "sparkles"
	EffectGradient BackgroundEffect = "gradient"
)

// AnimeOptions configures a parametric anime character.
type AnimeOptions struct {
	// HairStyle defaults to HairShort.
	HairStyle HairStyle
	// HairColor is required.
	HairColor string
	// EyeStyle defaults to AnimeEyesSparkle.
	EyeStyle AnimeEyeStyle
	// Expression defaults to ExpressionSmile.
	Expression Expression
	// Accessories are painted in order; repeats are allowed.
	Accessories []AnimeAccessory
	// BackgroundColor is the centre of the radial wash, default #fff5f7.
	BackgroundColor string
	// BackgroundEffect defaults to EffectNone.
	BackgroundEffect BackgroundEffect
}

// Validate reports the first invalid field.
func (o AnimeOptions) Validate() error {
	if !o.HairStyle.valid() {
		return unknownValue("hairStyle", string(o.HairStyle))
	}
	if o.HairColor == "" {
		return invalid("hairColor", "", "must not be empty")
	}
	if err := checkColor("hairColor", o.HairColor); err != nil {
		return err
	}
	if _, ok := animeEyes[o.EyeStyle.orDefault()]; !ok {
		return unknownValue("eyeStyle", string(o.EyeStyle))
	}
	if _, ok := animeMouths[o.Expression.orDefault()]; !ok {
		return unknownValue("expression", string(o.Expression))
	}
	for _, acc := range o.Accessories {
		if _, ok := animeAccessories[acc]; !ok {
			return unknownValue("accessory", string(acc))
		}
	}
	if _, ok := animeEffects[o.BackgroundEffect.orDefault()]; !ok {
		return unknownValue("backgroundEffect", string(o.BackgroundEffect))
	}
	return checkColor("backgroundColor", o.BackgroundColor)
}

func (e AnimeEyeStyle) orDefault() AnimeEyeStyle {
	if e == "" {
		return AnimeEyesSparkle
	}
	return e
}

func (e Expression) orDefault() Expression {
	if e == "" {
		return ExpressionSmile
	}
	return e
}

func (e BackgroundEffect) orDefault() BackgroundEffect {
	if e == "" {
		return EffectNone
	}
	return e
}

func paintAnime(s *Surface, o AnimeOptions) {
	paintRadialWash(s, colorOr(o.BackgroundColor, "#fff5f7"), -30)
	if effect := animeEffects[o.BackgroundEffect.orDefault()]; effect != nil {
		effect(s)
	}

	a := s.anchor()
	s.Scope(func(dc *gg.Context) { paintAnimeFace(dc, a) })
	s.Scope(func(dc *gg.Context) {
		hairStyles[o.HairStyle.orDefault()](dc, a, mustColor(o.HairColor))
	})

	expr := o.Expression.orDefault()
	s.Scope(func(dc *gg.Context) {
		eyes := o.EyeStyle.orDefault()
		animeEyes[eyes](dc, a.shift(0, -10))
		if expr == ExpressionWink && eyes != AnimeEyesClosed && eyes != AnimeEyesHappy {
			strokePath(dc, black, a.px(3), func() {
				a.arc(dc, 25, -10, 12, 0.2*math.Pi, 0.8*math.Pi)
			})
		}
	})
	s.Scope(func(dc *gg.Context) { animeMouths[expr](dc, a.shift(0, 25)) })

	for _, acc := range o.Accessories {
		paint := animeAccessories[acc]
		s.Scope(func(dc *gg.Context) { paint(dc, a) })
	}
}

var animeEffects = map[BackgroundEffect]func(s *Surface){
	EffectNone:  nil,
	EffectStars: paintStarField,
	EffectSparkles: func(s *Surface) {
		paintSparkles(s, 20, rgba(255, 255, 255, 0.8))
	},
	EffectGradient: func(s *Surface) {
		s.Scope(func(dc *gg.Context) {
			g := gg.NewLinearGradient(0, 0, float64(s.width), float64(s.height))
			g.AddColorStop(0, rgba(255, 182, 193, 0.3))
			g.AddColorStop(1, rgba(173, 216, 230, 0.3))
			fillSurface(s, dc, g)
		})
	},
}

func paintAnimeFace(dc *gg.Context, a anchor) {
	fillPath(dc, mustColor("#ffe0bd"), func() { a.circle(dc, 0, 0, 80) })
	fillPath(dc, rgba(255, 200, 170, 0.3), func() { halfEllipse(dc, a, 0, 60, 50, 25) })
}

// animeEyes draw a pair of eyes centred on a, 25 units either side.
var animeEyes = map[AnimeEyeStyle]func(dc *gg.Context, a anchor){
	AnimeEyesSparkle: func(dc *gg.Context, a anchor) {
		fillPath(dc, black, func() {
			a.circle(dc, -25, 0, 15)
			a.circle(dc, 25, 0, 15)
		})
		fillPath(dc, white, func() {
			for _, ex := range []float64{-25, 25} {
				a.circle(dc, ex-5, -5, 6)
				a.circle(dc, ex+4, 4, 3)
			}
		})
	},
	AnimeEyesNormal: func(dc *gg.Context, a anchor) {
		fillPath(dc, black, func() {
			a.circle(dc, -25, 0, 12)
			a.circle(dc, 25, 0, 12)
		})
		fillPath(dc, white, func() {
			a.circle(dc, -29, -4, 4)
			a.circle(dc, 21, -4, 4)
		})
	},
	AnimeEyesClosed: func(dc *gg.Context, a anchor) {
		strokePath(dc, black, a.px(3), func() {
			a.arc(dc, -25, 0, 12, 0.2*math.Pi, 0.8*math.Pi)
			a.arc(dc, 25, 0, 12, 0.2*math.Pi, 0.8*math.Pi)
		})
	},
	AnimeEyesHappy: func(dc *gg.Context, a anchor) {
		strokePath(dc, black, a.px(3), func() {
			for _, ex := range []float64{-25, 25} {
				dc.NewSubPath()
				for _, p := range [][2]float64{{ex - 15, 0}, {ex, -8}, {ex + 15, 0}} {
					x, y := a.at(p[0], p[1])
					dc.LineTo(x, y)
				}
			}
		})
	},
}

// animeMouths draw a mouth centred on a.
var animeMouths = map[Expression]func(dc *gg.Context, a anchor){
	ExpressionSmile: func(dc *gg.Context, a anchor) {
		strokePath(dc, black, a.px(2), func() { a.arc(dc, 0, 0, 20, 0.1*math.Pi, 0.9*math.Pi) })
	},
	ExpressionNeutral: func(dc *gg.Context, a anchor) {
		strokePath(dc, black, a.px(2), func() { a.arc(dc, 0, 0, 10, 0, math.Pi) })
	},
	ExpressionShy: func(dc *gg.Context, a anchor) {
		strokePath(dc, black, a.px(2), func() { a.arc(dc, 0, 0, 15, 0.2*math.Pi, 0.8*math.Pi) })
		fillPath(dc, rgba(255, 150, 150, 0.5), func() {
			a.circle(dc, -50, -5, 12)
			a.circle(dc, 50, -5, 12)
		})
	},
	ExpressionWink: func(dc *gg.Context, a anchor) {
		strokePath(dc, black, a.px(2), func() { a.arc(dc, 0, 0, 18, 0.15*math.Pi, 0.85*math.Pi) })
	},
}

// animeAccessories draw relative to the face centre a.
var animeAccessories = map[AnimeAccessory]func(dc *gg.Context, a anchor){
	AnimeGlasses: func(dc *gg.Context, a anchor) {
		for _, ex := range []float64{-25, 25} {
			fillPath(dc, rgba(200, 230, 255, 0.3), func() { a.circle(dc, ex, -10, 18) })
			strokePath(dc, mustColor("#333"), a.px(3), func() { a.circle(dc, ex, -10, 18) })
		}
		strokePath(dc, mustColor("#333"), a.px(3), func() { a.line(dc, -7, -10, 7, -10) })
	},
	AnimeBow: func(dc *gg.Context, a anchor) {
		fillPath(dc, hairTieColor, func() {
			a.circle(dc, -15, -80, 12)
			a.circle(dc, 15, -80, 12)
		})
		fillPath(dc, hairTieColor, func() { a.rect(dc, -5, -85, 10, 10) })
	},
	AnimeHeadband: func(dc *gg.Context, a anchor) {
		strokePath(dc, mustColor("#ff1493"), a.px(8), func() {
			a.arc(dc, 0, -20, 85, math.Pi+0.3, 2*math.Pi-0.3)
		})
	},
	AnimeEarring: func(dc *gg.Context, a anchor) {
		fillPath(dc, mustColor("#ffd700"), func() {
			a.circle(dc, -70, 10, 6)
			a.circle(dc, 70, 10, 6)
		})
		fillPath(dc, white, func() {
			a.circle(dc, -68, 8, 2)
			a.circle(dc, 72, 8, 2)
		})
	},
}
