package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple faces at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// Plain text is rasterised through x/image/font/opentype. Coverage,
// shaping and colour glyph lookups go through go-text/typesetting, with
// the colour tables read from the raw font data on first use.
//
// FontSource is safe for concurrent use. Faces returned by Face are not:
// each caller should keep its own.
type FontSource struct {
	data []byte
	font *opentype.Font
	name string

	mu     sync.Mutex // guards face and shaper
	face   *gtfont.Face
	shaper shaping.HarfbuzzShaper

	colors func() colorTables
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, &ParseError{Backend: "opentype", Err: err}
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, &ParseError{Backend: "typesetting", Err: err}
	}

	src := &FontSource{
		data: dataCopy,
		font: f,
		face: face,
		name: fontName(f),
	}
	src.colors = sync.OnceValue(src.loadColorTables)
	return src, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Face creates a face at the given size in pixels (72 DPI, so one point
// is one pixel).
func (s *FontSource) Face(px float64) (font.Face, error) {
	if s == nil {
		panic("text: FontSource is nil; did you check the error from NewFontSource?")
	}
	if px <= 0 {
		return nil, ErrInvalidSize
	}
	return opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// HasGlyph reports whether the font maps r to a glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	_, ok := s.face.Font.NominalGlyph(r)
	return ok
}

// Name returns the font family name, or "" if the font has none.
func (s *FontSource) Name() string {
	return s.name
}

// fontName extracts the family name from the name table.
func fontName(f *opentype.Font) string {
	var buf sfnt.Buffer
	name, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}
