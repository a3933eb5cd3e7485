package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// MultiFace combines faces of several sources with fallback.
// Each rune is drawn with the first source that has a glyph for it; runes
// no source covers are drawn with the first one (usually as .notdef).
// MultiFace implements font.Face.
type MultiFace struct {
	sources []*FontSource
	faces   []font.Face
}

// NewMultiFace creates a MultiFace at px pixels from sources, in priority
// order.
func NewMultiFace(px float64, sources ...*FontSource) (*MultiFace, error) {
	if len(sources) == 0 {
		return nil, ErrEmptyFaces
	}

	faces := make([]font.Face, len(sources))
	for i, src := range sources {
		f, err := src.Face(px)
		if err != nil {
			return nil, err
		}
		faces[i] = f
	}

	return &MultiFace{sources: sources, faces: faces}, nil
}

// faceForRune returns the first face that has a glyph for r.
func (m *MultiFace) faceForRune(r rune) font.Face {
	for i, src := range m.sources {
		if src.HasGlyph(r) {
			return m.faces[i]
		}
	}
	return m.faces[0]
}

// Covers reports whether any source has a glyph for r.
func (m *MultiFace) Covers(r rune) bool {
	for _, src := range m.sources {
		if src.HasGlyph(r) {
			return true
		}
	}
	return false
}

// Close closes every underlying face.
func (m *MultiFace) Close() error {
	var first error
	for _, f := range m.faces {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Glyph implements font.Face.
func (m *MultiFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return m.faceForRune(r).Glyph(dot, r)
}

// GlyphBounds implements font.Face.
func (m *MultiFace) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return m.faceForRune(r).GlyphBounds(r)
}

// GlyphAdvance implements font.Face.
func (m *MultiFace) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return m.faceForRune(r).GlyphAdvance(r)
}

// Kern implements font.Face. Pairs drawn from different faces are not kerned.
func (m *MultiFace) Kern(r0, r1 rune) fixed.Int26_6 {
	f0, f1 := m.faceForRune(r0), m.faceForRune(r1)
	if f0 != f1 {
		return 0
	}
	return f0.Kern(r0, r1)
}

// Metrics implements font.Face. Metrics come from the first face.
func (m *MultiFace) Metrics() font.Metrics {
	return m.faces[0].Metrics()
}
