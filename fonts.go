package avatar

import (
	"image"
	"math"
	"strings"

	"github.com/gogpu/avatar/internal/cache"
	"github.com/gogpu/avatar/text"
	"github.com/gogpu/avatar/text/emoji"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// maxFaces bounds the faces one engine keeps; maxBitmaps bounds decoded
// colour glyph images.
const (
	maxFaces   = 32
	maxBitmaps = 256
)

type faceKey struct {
	bold bool
	px   float64
}

// fontSet hands out cached faces for one engine. Faces are not safe for
// concurrent use, so every engine owns its own set.
type fontSet struct {
	regular *text.FontSource
	bold    *text.FontSource
	emoji   *text.FontSource
	faces   *cache.Cache[faceKey, font.Face]
	bitmaps *cache.Cache[bitmapKey, image.Image]
}

type bitmapKey struct {
	id   uint16
	ppem int
}

func newFontSet(o engineOptions) (*fontSet, error) {
	fs := &fontSet{
		regular: o.regular,
		bold:    o.bold,
		emoji:   o.emoji,
		faces:   cache.New[faceKey, font.Face](maxFaces),
		bitmaps: cache.New[bitmapKey, image.Image](maxBitmaps),
	}
	if fs.regular == nil {
		src, err := text.Regular()
		if err != nil {
			return nil, err
		}
		fs.regular = src
	}
	if fs.bold == nil {
		src, err := text.Bold()
		if err != nil {
			return nil, err
		}
		fs.bold = src
	}
	return fs, nil
}

// face returns a face at px pixels. Sizes are rounded to a quarter pixel
// to keep the cache small.
func (f *fontSet) face(bold bool, px float64) font.Face {
	px = math.Max(1, math.Round(px*4)/4)
	key := faceKey{bold: bold, px: px}
	if face, ok := f.faces.Get(key); ok {
		return face
	}

	primary := f.regular
	if bold {
		primary = f.bold
	}
	sources := []*text.FontSource{primary}
	if f.emoji != nil {
		sources = append(sources, f.emoji)
	}

	// px is positive, so NewMultiFace cannot fail on size.
	face, err := text.NewMultiFace(px, sources...)
	if err != nil {
		Logger().Warn("avatar: font face unavailable", "px", px, "err", err)
		return basicfont.Face7x13
	}
	f.faces.Set(key, face)
	return face
}

// covered reports whether the primary source of face(bold, ...) or the
// emoji source has a glyph for every visible rune of s.
func (f *fontSet) covered(bold bool, s string) bool {
	primary := f.regular
	if bold {
		primary = f.bold
	}
	for _, r := range s {
		if emoji.IsInvisible(r) {
			continue
		}
		if !primary.HasGlyph(r) && (f.emoji == nil || !f.emoji.HasGlyph(r)) {
			return false
		}
	}
	return true
}

// drawable strips joiners and selectors so fonts without them do not
// draw .notdef boxes.
func drawable(s string) string {
	return strings.Map(func(r rune) rune {
		if emoji.IsInvisible(r) {
			return -1
		}
		return r
	}, s)
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
