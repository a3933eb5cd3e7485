package emoji

import (
	"encoding/binary"
	"errors"
	"image/color"
	"sort"
)

// Colour table errors.
var (
	// ErrNoColorTable is returned when a required table is absent.
	ErrNoColorTable = errors.New("emoji: font has no colour table")

	// ErrMalformedTable is returned when table offsets or counts run past
	// the table data.
	ErrMalformedTable = errors.New("emoji: malformed colour table")

	// ErrUnsupportedVersion is returned for COLR versions above 1.
	ErrUnsupportedVersion = errors.New("emoji: unsupported table version")

	// ErrGlyphNotFound is returned when a glyph has no colour data.
	ErrGlyphNotFound = errors.New("emoji: glyph has no colour data")
)

// foregroundIndex is the palette index meaning "use the text colour".
const foregroundIndex = 0xFFFF

// Layer is one outline of a layered colour glyph, painted bottom to top.
type Layer struct {
	GlyphID      uint16
	PaletteIndex uint16
	// Color is the resolved palette entry. It is zero for foreground
	// layers.
	Color color.NRGBA
}

// Foreground reports whether the layer takes the text colour.
func (l Layer) Foreground() bool { return l.PaletteIndex == foregroundIndex }

type baseGlyph struct {
	id, first, count uint16
}

// COLR holds the version 0 layer records of a COLR table with the CPAL
// palettes they index. Version 1 paint graphs are not read; a version 1
// table still exposes its version 0 records.
type COLR struct {
	version  uint16
	bases    []baseGlyph
	layers   [][2]uint16
	palettes [][]color.NRGBA
}

// ParseCOLR parses raw COLR and CPAL table data.
func ParseCOLR(colr, cpal []byte) (*COLR, error) {
	if len(colr) == 0 || len(cpal) == 0 {
		return nil, ErrNoColorTable
	}
	if len(colr) < 14 {
		return nil, ErrMalformedTable
	}
	t := &COLR{version: binary.BigEndian.Uint16(colr)}
	if t.version > 1 {
		return nil, ErrUnsupportedVersion
	}

	numBases := int(binary.BigEndian.Uint16(colr[2:]))
	baseOff := int(binary.BigEndian.Uint32(colr[4:]))
	layerOff := int(binary.BigEndian.Uint32(colr[8:]))
	numLayers := int(binary.BigEndian.Uint16(colr[12:]))

	if baseOff+numBases*6 > len(colr) || layerOff+numLayers*4 > len(colr) {
		return nil, ErrMalformedTable
	}
	t.bases = make([]baseGlyph, numBases)
	for i := range t.bases {
		p := colr[baseOff+i*6:]
		t.bases[i] = baseGlyph{
			id:    binary.BigEndian.Uint16(p),
			first: binary.BigEndian.Uint16(p[2:]),
			count: binary.BigEndian.Uint16(p[4:]),
		}
		if int(t.bases[i].first)+int(t.bases[i].count) > numLayers {
			return nil, ErrMalformedTable
		}
	}
	t.layers = make([][2]uint16, numLayers)
	for i := range t.layers {
		p := colr[layerOff+i*4:]
		t.layers[i] = [2]uint16{binary.BigEndian.Uint16(p), binary.BigEndian.Uint16(p[2:])}
	}

	palettes, err := parseCPAL(cpal)
	if err != nil {
		return nil, err
	}
	t.palettes = palettes
	return t, nil
}

// parseCPAL reads every palette. Colour records are stored BGRA.
func parseCPAL(data []byte) ([][]color.NRGBA, error) {
	if len(data) < 12 {
		return nil, ErrMalformedTable
	}
	entries := int(binary.BigEndian.Uint16(data[2:]))
	count := int(binary.BigEndian.Uint16(data[4:]))
	records := int(binary.BigEndian.Uint16(data[6:]))
	recordOff := int(binary.BigEndian.Uint32(data[8:]))
	if 12+count*2 > len(data) || recordOff+records*4 > len(data) {
		return nil, ErrMalformedTable
	}

	palettes := make([][]color.NRGBA, count)
	for i := range palettes {
		first := int(binary.BigEndian.Uint16(data[12+i*2:]))
		if first+entries > records {
			return nil, ErrMalformedTable
		}
		pal := make([]color.NRGBA, entries)
		for j := range pal {
			p := data[recordOff+(first+j)*4:]
			pal[j] = color.NRGBA{B: p[0], G: p[1], R: p[2], A: p[3]}
		}
		palettes[i] = pal
	}
	return palettes, nil
}

// Version returns the COLR table version.
func (t *COLR) Version() uint16 { return t.version }

// NumPalettes returns the number of CPAL palettes.
func (t *COLR) NumPalettes() int { return len(t.palettes) }

// Has reports whether gid is a layered colour glyph.
func (t *COLR) Has(gid uint16) bool {
	_, ok := t.find(gid)
	return ok
}

// Layers returns the layers of gid resolved against palette. An out of
// range palette falls back to palette 0.
func (t *COLR) Layers(gid uint16, palette int) ([]Layer, error) {
	b, ok := t.find(gid)
	if !ok {
		return nil, ErrGlyphNotFound
	}
	if palette < 0 || palette >= len(t.palettes) {
		palette = 0
	}
	var pal []color.NRGBA
	if palette < len(t.palettes) {
		pal = t.palettes[palette]
	}

	out := make([]Layer, b.count)
	for i := range out {
		rec := t.layers[int(b.first)+i]
		l := Layer{GlyphID: rec[0], PaletteIndex: rec[1]}
		if !l.Foreground() && int(rec[1]) < len(pal) {
			l.Color = pal[rec[1]]
		}
		out[i] = l
	}
	return out, nil
}

// find binary searches the base glyph records, which the format keeps
// sorted by glyph ID.
func (t *COLR) find(gid uint16) (baseGlyph, bool) {
	i := sort.Search(len(t.bases), func(i int) bool { return t.bases[i].id >= gid })
	if i < len(t.bases) && t.bases[i].id == gid {
		return t.bases[i], true
	}
	return baseGlyph{}, false
}
