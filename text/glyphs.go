package text

import (
	"bytes"
	"errors"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/avatar/text/emoji"
)

// GlyphKind tells how a glyph is painted.
type GlyphKind uint8

const (
	// KindOutline glyphs are filled with the text colour.
	KindOutline GlyphKind = iota
	// KindLayered glyphs stack outlines in palette colours (COLR).
	KindLayered
	// KindBitmap glyphs are embedded PNG images (CBDT).
	KindBitmap
)

// Glyph is one shaped glyph. Positions are in ems from the start of the
// shaped string, Y growing down.
type Glyph struct {
	ID      uint16
	X, Y    float64
	Advance float64
}

// PathBuilder receives glyph outlines. *gg.Context satisfies it.
type PathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(x1, y1, x2, y2 float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

type colorTables struct {
	colr *emoji.COLR
	cbdt *emoji.CBDT
}

// loadColorTables reads COLR/CPAL and CBLC/CBDT from the raw font data.
// Missing or malformed tables leave the font without colour glyphs.
func (s *FontSource) loadColorTables() colorTables {
	var t colorTables
	ld, err := ot.NewLoader(bytes.NewReader(s.data))
	if err != nil {
		return t
	}
	raw := func(tag string) []byte {
		b, _ := ld.RawTable(ot.MustNewTag(tag))
		return b
	}
	if c, err := emoji.ParseCOLR(raw("COLR"), raw("CPAL")); err == nil {
		t.colr = c
	}
	if c, err := emoji.ParseCBDT(raw("CBLC"), raw("CBDT")); err == nil {
		t.cbdt = c
	}
	return t
}

// HasColor reports whether the font carries layered or bitmap colour
// glyphs.
func (s *FontSource) HasColor() bool {
	t := s.colors()
	return t.colr != nil || t.cbdt != nil
}

// Shape shapes str as one left-to-right run. The result is false when the
// font has no glyph for some part of str; ligature tables let whole emoji
// sequences map to a single glyph.
func (s *FontSource) Shape(str string) ([]Glyph, bool) {
	rs := []rune(str)
	if len(rs) == 0 {
		return nil, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	upem := int(s.face.Upem())
	out := s.shaper.Shape(shaping.Input{
		Text:      rs,
		RunStart:  0,
		RunEnd:    len(rs),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      fixed.I(upem),
		Script:    language.Common,
	})

	em := float64(upem)
	glyphs := make([]Glyph, 0, len(out.Glyphs))
	ok := true
	var pen float64
	for _, g := range out.Glyphs {
		if g.GlyphID == 0 {
			ok = false
		}
		glyphs = append(glyphs, Glyph{
			ID:      uint16(g.GlyphID),
			X:       (pen + fixedFloat(g.XOffset)) / em,
			Y:       -fixedFloat(g.YOffset) / em,
			Advance: fixedFloat(g.Advance) / em,
		})
		pen += fixedFloat(g.Advance)
	}
	return glyphs, ok
}

// Kind returns how glyph id is painted. Bitmaps win over layers when a
// font carries both.
func (s *FontSource) Kind(id uint16) GlyphKind {
	t := s.colors()
	switch {
	case t.cbdt != nil && t.cbdt.Has(id):
		return KindBitmap
	case t.colr != nil && t.colr.Has(id):
		return KindLayered
	}
	return KindOutline
}

// Layers returns the palette 0 layers of a layered glyph.
func (s *FontSource) Layers(id uint16) ([]emoji.Layer, error) {
	t := s.colors()
	if t.colr == nil {
		return nil, emoji.ErrNoColorTable
	}
	return t.colr.Layers(id, 0)
}

// Bitmap returns the PNG glyph from the strike that best fits px.
func (s *FontSource) Bitmap(id uint16, px float64) (*emoji.Bitmap, error) {
	t := s.colors()
	if t.cbdt == nil {
		return nil, emoji.ErrNoColorTable
	}
	return t.cbdt.Glyph(id, int(px+0.5))
}

// ErrNoOutline is returned by Outline for glyphs without vector data.
var ErrNoOutline = errors.New("text: glyph has no outline")

// Outline appends the outline of glyph id to p, scaled to px pixels per
// em with its origin at (x, y) and Y growing down. Each contour is closed.
func (s *FontSource) Outline(p PathBuilder, id uint16, px, x, y float64) error {
	s.mu.Lock()
	out, ok := s.face.GlyphDataOutline(id)
	scale := px / float64(s.face.Upem())
	s.mu.Unlock()
	if !ok {
		return ErrNoOutline
	}

	pt := func(a gtfont.SegmentPoint) (float64, float64) {
		return x + float64(a.X)*scale, y - float64(a.Y)*scale
	}
	open := false
	for _, seg := range out.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				p.ClosePath()
			}
			p.MoveTo(pt(seg.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			p.LineTo(pt(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			p.QuadraticTo(x1, y1, x2, y2)
		case ot.SegmentOpCubeTo:
			x1, y1 := pt(seg.Args[0])
			x2, y2 := pt(seg.Args[1])
			x3, y3 := pt(seg.Args[2])
			p.CubicTo(x1, y1, x2, y2, x3, y3)
		}
	}
	if open {
		p.ClosePath()
	}
	return nil
}

func fixedFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
