package avatar

import (
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultInitials are drawn when no initials are given.
const DefaultInitials = "FP"

// defaultInitialsSize is the initials font size at the reference size.
const defaultInitialsSize = 120

// ColorScheme pairs a background with a text colour. Background is a
// colour or a CSS linear-gradient(...) whose first two six-digit hex
// colours become a corner-to-corner gradient.
type ColorScheme struct {
	ID         string
	Name       string
	Background string
	Text       string
}

// ColorSchemes are the built-in solid schemes.
var ColorSchemes = []ColorScheme{
	{ID: "blue", Name: "Ocean Blue", Background: "#3b82f6", Text: "#ffffff"},
	{ID: "purple", Name: "Royal Purple", Background: "#8b5cf6", Text: "#ffffff"},
	{ID: "pink", Name: "Rose Pink", Background: "#ec4899", Text: "#ffffff"},
	{ID: "green", Name: "Forest Green", Background: "#10b981", Text: "#ffffff"},
	{ID: "orange", Name: "Sunset Orange", Background: "#f59e0b", Text: "#ffffff"},
	{ID: "red", Name: "Ruby Red", Background: "#ef4444", Text: "#ffffff"},
	{ID: "cyan", Name: "Ocean Cyan", Background: "#06b6d4", Text: "#ffffff"},
	{ID: "indigo", Name: "Deep Indigo", Background: "#6366f1", Text: "#ffffff"},
	{ID: "teal", Name: "Teal Green", Background: "#14b8a6", Text: "#ffffff"},
	{ID: "rose", Name: "Dusty Rose", Background: "#f43f5e", Text: "#ffffff"},
	{ID: "violet", Name: "Soft Violet", Background: "#a78bfa", Text: "#ffffff"},
	{ID: "lime", Name: "Fresh Lime", Background: "#84cc16", Text: "#ffffff"},
}

// GradientSchemes are the built-in gradient schemes.
var GradientSchemes = []ColorScheme{
	{ID: "sunset", Name: "Sunset", Background: "linear-gradient(135deg, #ff6b6b, #feca57)", Text: "#ffffff"},
	{ID: "ocean", Name: "Ocean", Background: "linear-gradient(135deg, #667eea, #764ba2)", Text: "#ffffff"},
	{ID: "forest", Name: "Forest", Background: "linear-gradient(135deg, #11998e, #38ef7d)", Text: "#ffffff"},
	{ID: "berry", Name: "Berry", Background: "linear-gradient(135deg, #ee9ca7, #ffdde1)", Text: "#ffffff"},
	{ID: "cosmic", Name: "Cosmic", Background: "linear-gradient(135deg, #fa709a, #fee140)", Text: "#ffffff"},
	{ID: "aurora", Name: "Aurora", Background: "linear-gradient(135deg, #a8edea, #fed6e3)", Text: "#ffffff"},
}

// LookupScheme finds a built-in scheme by ID.
func LookupScheme(id string) (ColorScheme, bool) {
	for _, list := range [][]ColorScheme{ColorSchemes, GradientSchemes} {
		for _, cs := range list {
			if cs.ID == id {
				return cs, true
			}
		}
	}
	return ColorScheme{}, false
}

// BlankOptions configures an initials avatar.
type BlankOptions struct {
	// Initials are upper-cased and cut to two characters; empty means "FP".
	Initials string
	// Scheme defaults to the "blue" scheme; an empty Text is white.
	Scheme ColorScheme
	// Shape defaults to ShapeCircle.
	Shape Shape
	// Pattern defaults to BlankPatternNone.
	Pattern BlankPattern
	// FontSizePx is the initials size at the 400px reference, default 120.
	FontSizePx float64
}

// Normalized returns o with its initials passed through NormalizeInitials
// and a zero FontSizePx set to the default.
func (o BlankOptions) Normalized() BlankOptions {
	o.Initials = NormalizeInitials(o.Initials)
	if o.FontSizePx == 0 {
		o.FontSizePx = defaultInitialsSize
	}
	return o
}

// Validate reports the first invalid field.
func (o BlankOptions) Validate() error {
	if bg := o.Scheme.Background; bg != "" {
		if isGradientSpec(bg) {
			if len(gradientColors(bg)) < 2 {
				return invalid("scheme.background", bg, "gradient needs two #rrggbb colours")
			}
		} else if err := checkColor("scheme.background", bg); err != nil {
			return err
		}
	}
	if err := checkColor("scheme.text", o.Scheme.Text); err != nil {
		return err
	}
	if !o.Shape.valid() {
		return unknownValue("shape", string(o.Shape))
	}
	if !o.Pattern.valid() {
		return unknownValue("pattern", string(o.Pattern))
	}
	if o.FontSizePx < 0 {
		return invalid("fontSizePx", strconv.FormatFloat(o.FontSizePx, 'g', -1, 64), "must not be negative")
	}
	return nil
}

// NormalizeInitials upper-cases s and keeps its first two characters.
func NormalizeInitials(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultInitials
	}
	r := []rune(cases.Upper(language.Und).String(s))
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r)
}

// InitialsFromName derives initials from a display name: the first two
// characters of a single word, otherwise the first character of the first
// and last words. An empty name gives DefaultInitials.
func InitialsFromName(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return DefaultInitials
	case 1:
		r := []rune(parts[0])
		return string(r[:min(2, len(r))])
	}
	first := []rune(parts[0])[0]
	last := []rune(parts[len(parts)-1])[0]
	return string([]rune{first, last})
}

// schemeFill returns the pattern painting the scheme background over the
// side×side square at (x, y).
func schemeFill(bg string, x, y, side float64) gg.Pattern {
	switch {
	case bg == "":
		return gg.NewSolidPattern(mustColor(ColorSchemes[0].Background))
	case isGradientSpec(bg):
		hex := gradientColors(bg)
		return newGradient(GradientLinear, x, y, side, side, colors(hex[0], hex[1]))
	default:
		return gg.NewSolidPattern(mustColor(bg))
	}
}

func paintBlank(s *Surface, o BlankOptions) {
	side := float64(min(s.width, s.height))
	cx, cy := s.Center()
	x, y := cx-side/2, cy-side/2
	u := s.Unit()

	s.Clipped(func(dc *gg.Context) {
		traceShape(dc, o.Shape, cx, cy, side/2)
	}, func(dc *gg.Context) {
		dc.SetFillStyle(schemeFill(o.Scheme.Background, x, y, side))
		dc.DrawRectangle(x, y, side, side)
		dc.Fill()
		paintTile(s, blankPatterns[o.Pattern], x, y, side, side, rgba(255, 255, 255, 0.15))
	})

	s.Scope(func(dc *gg.Context) {
		s.fillText(dc, true, o.FontSizePx*u, o.Initials, cx, cy, alignMiddle, colorOr(o.Scheme.Text, "#ffffff"))
	})
}
