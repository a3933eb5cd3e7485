package avatar

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var errColorSyntax = errors.New("not a #hex, rgb() or rgba() colour")

// ParseColor parses a CSS-style colour string.
// Supports "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA", "rgb(r, g, b)",
// "rgba(r, g, b, a)" and the keywords "transparent", "white" and "black".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "transparent":
		return color.NRGBA{}, nil
	case "white":
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}, nil
	case "black":
		return color.NRGBA{A: 255}, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if strings.HasPrefix(s, "rgb") {
		return parseFuncColor(s)
	}
	return color.NRGBA{}, errColorSyntax
}

// parseHexColor parses the digits after '#'.
func parseHexColor(hex string) (color.NRGBA, error) {
	var r, g, b uint32
	a := uint32(255)

	var ok bool
	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	}
	if !ok {
		return color.NRGBA{}, errColorSyntax
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// parseHex accumulates hex digits into val and reports whether all were valid.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// parseFuncColor parses rgb(...) and rgba(...).
func parseFuncColor(s string) (color.NRGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return color.NRGBA{}, errColorSyntax
	}
	name := strings.TrimSpace(s[:open])
	args := strings.Split(s[open+1:len(s)-1], ",")
	if (name == "rgb" && len(args) != 3) || (name == "rgba" && len(args) != 4) || (name != "rgb" && name != "rgba") {
		return color.NRGBA{}, errColorSyntax
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[i]), 64)
		if err != nil {
			return color.NRGBA{}, errColorSyntax
		}
		ch[i] = uint8(clamp255(math.Round(v)))
	}
	alpha := 1.0
	if len(args) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil {
			return color.NRGBA{}, errColorSyntax
		}
		alpha = clamp01(v)
	}
	return rgba(ch[0], ch[1], ch[2], alpha), nil
}

// rgba builds a straight-alpha colour from 8-bit channels and a [0, 1] alpha.
func rgba(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(a) * 255))}
}

// mustColor parses a literal colour used by the built-in recipes.
func mustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(fmt.Sprintf("avatar: bad built-in colour %q", s))
	}
	return c
}

// AdjustBrightness adds amount to each RGB channel, clamping to [0, 255].
// Alpha is preserved. Negative amounts darken.
func AdjustBrightness(c color.NRGBA, amount int) color.NRGBA {
	shift := func(v uint8) uint8 {
		return uint8(clamp255(float64(int(v) + amount)))
	}
	return color.NRGBA{R: shift(c.R), G: shift(c.G), B: shift(c.B), A: c.A}
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var hexColorRe = regexp.MustCompile(`#[0-9a-fA-F]{6}`)

// gradientColors extracts the six-digit hex colours of a CSS
// linear-gradient(...) value, in order of appearance.
func gradientColors(s string) []string {
	return hexColorRe.FindAllString(s, -1)
}

// isGradientSpec reports whether s is a CSS linear-gradient value.
func isGradientSpec(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "linear-gradient(")
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
