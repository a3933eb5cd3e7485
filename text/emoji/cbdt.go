package emoji

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
)

// ErrUnsupportedFormat is returned for index subtable or image formats
// without PNG payloads.
var ErrUnsupportedFormat = errors.New("emoji: unsupported bitmap format")

const (
	cblcMajorVersion = 3
	bitmapSizeRecord = 48
)

// Bitmap is one PNG glyph from a CBDT strike. Bearings are in strike
// pixels, BearingY measured up from the baseline.
type Bitmap struct {
	GlyphID  uint16
	Data     []byte
	Width    int
	Height   int
	BearingX int
	BearingY int
	PPEM     int
}

// Decode decodes the PNG payload.
func (b *Bitmap) Decode() (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(b.Data))
	if err != nil {
		return nil, fmt.Errorf("emoji: decode glyph %d: %w", b.GlyphID, err)
	}
	return img, nil
}

// glyphRef locates one glyph's record inside CBDT.
type glyphRef struct {
	offset, size uint32
	imageFormat  uint16
	// shared metrics of index formats 2 and 5, used by image format 19
	width, height      uint8
	bearingX, bearingY int8
}

type strike struct {
	ppem   int
	glyphs map[uint16]glyphRef
}

// CBDT indexes the strikes of a CBLC table over its CBDT image data.
type CBDT struct {
	data    []byte
	strikes []strike
}

// ParseCBDT parses raw CBLC and CBDT table data. The index is read
// eagerly; PNG payloads are only sliced when a glyph is requested.
func ParseCBDT(cblc, cbdt []byte) (*CBDT, error) {
	if len(cblc) == 0 || len(cbdt) == 0 {
		return nil, ErrNoColorTable
	}
	if len(cblc) < 8 {
		return nil, ErrMalformedTable
	}
	if v := binary.BigEndian.Uint16(cblc); v != cblcMajorVersion {
		return nil, fmt.Errorf("%w: CBLC %d", ErrUnsupportedVersion, v)
	}
	n := int(binary.BigEndian.Uint32(cblc[4:]))
	if 8+n*bitmapSizeRecord > len(cblc) {
		return nil, ErrMalformedTable
	}

	t := &CBDT{data: cbdt, strikes: make([]strike, n)}
	for i := range t.strikes {
		rec := cblc[8+i*bitmapSizeRecord:]
		listOff := int(binary.BigEndian.Uint32(rec))
		subtables := int(binary.BigEndian.Uint32(rec[8:]))
		s := strike{ppem: int(rec[44]), glyphs: make(map[uint16]glyphRef)}
		if err := readIndex(cblc, listOff, subtables, s.glyphs); err != nil {
			return nil, err
		}
		t.strikes[i] = s
	}
	return t, nil
}

// readIndex walks an IndexSubtableArray and records every glyph it names.
func readIndex(data []byte, listOff, count int, into map[uint16]glyphRef) error {
	if listOff+count*8 > len(data) {
		return ErrMalformedTable
	}
	for i := 0; i < count; i++ {
		rec := data[listOff+i*8:]
		first := binary.BigEndian.Uint16(rec)
		last := binary.BigEndian.Uint16(rec[2:])
		off := listOff + int(binary.BigEndian.Uint32(rec[4:]))
		if last < first || off+8 > len(data) {
			return ErrMalformedTable
		}
		if err := readSubtable(data[off:], first, last, into); err != nil {
			return err
		}
	}
	return nil
}

func readSubtable(st []byte, first, last uint16, into map[uint16]glyphRef) error {
	format := binary.BigEndian.Uint16(st)
	imageFormat := binary.BigEndian.Uint16(st[2:])
	base := binary.BigEndian.Uint32(st[4:])
	body := st[8:]
	count := int(last-first) + 1

	ref := func(off, size uint32) glyphRef {
		return glyphRef{offset: base + off, size: size, imageFormat: imageFormat}
	}
	shared := func(r glyphRef, m []byte) glyphRef {
		r.height, r.width = m[0], m[1]
		r.bearingX, r.bearingY = int8(m[2]), int8(m[3])
		return r
	}

	switch format {
	case 1:
		if len(body) < (count+1)*4 {
			return ErrMalformedTable
		}
		for i := 0; i < count; i++ {
			a := binary.BigEndian.Uint32(body[i*4:])
			b := binary.BigEndian.Uint32(body[i*4+4:])
			if b > a {
				into[first+uint16(i)] = ref(a, b-a)
			}
		}
	case 3:
		if len(body) < (count+1)*2 {
			return ErrMalformedTable
		}
		for i := 0; i < count; i++ {
			a := uint32(binary.BigEndian.Uint16(body[i*2:]))
			b := uint32(binary.BigEndian.Uint16(body[i*2+2:]))
			if b > a {
				into[first+uint16(i)] = ref(a, b-a)
			}
		}
	case 2:
		if len(body) < 12 {
			return ErrMalformedTable
		}
		size := binary.BigEndian.Uint32(body)
		for i := 0; i < count; i++ {
			into[first+uint16(i)] = shared(ref(uint32(i)*size, size), body[4:12])
		}
	case 4:
		if len(body) < 4 {
			return ErrMalformedTable
		}
		pairs := int(binary.BigEndian.Uint32(body)) + 1
		if len(body) < 4+pairs*4 {
			return ErrMalformedTable
		}
		for i := 0; i+1 < pairs; i++ {
			p := body[4+i*4:]
			gid := binary.BigEndian.Uint16(p)
			a := uint32(binary.BigEndian.Uint16(p[2:]))
			b := uint32(binary.BigEndian.Uint16(p[6:]))
			if b > a {
				into[gid] = ref(a, b-a)
			}
		}
	case 5:
		if len(body) < 16 {
			return ErrMalformedTable
		}
		size := binary.BigEndian.Uint32(body)
		n := int(binary.BigEndian.Uint32(body[12:]))
		if len(body) < 16+n*2 {
			return ErrMalformedTable
		}
		for i := 0; i < n; i++ {
			gid := binary.BigEndian.Uint16(body[16+i*2:])
			into[gid] = shared(ref(uint32(i)*size, size), body[4:12])
		}
	default:
		return fmt.Errorf("%w: index format %d", ErrUnsupportedFormat, format)
	}
	return nil
}

// Strikes returns the pixel sizes of the strikes in table order.
func (t *CBDT) Strikes() []int {
	out := make([]int, len(t.strikes))
	for i, s := range t.strikes {
		out[i] = s.ppem
	}
	return out
}

// Has reports whether any strike carries gid.
func (t *CBDT) Has(gid uint16) bool {
	for _, s := range t.strikes {
		if _, ok := s.glyphs[gid]; ok {
			return true
		}
	}
	return false
}

// Glyph returns gid from the strike that best fits ppem: the smallest
// strike at least ppem in size, or the largest one when none is.
func (t *CBDT) Glyph(gid uint16, ppem int) (*Bitmap, error) {
	best := -1
	for i, s := range t.strikes {
		if _, ok := s.glyphs[gid]; !ok {
			continue
		}
		switch {
		case best < 0:
			best = i
		case s.ppem >= ppem && (t.strikes[best].ppem < ppem || s.ppem < t.strikes[best].ppem):
			best = i
		case t.strikes[best].ppem < ppem && s.ppem > t.strikes[best].ppem:
			best = i
		}
	}
	if best < 0 {
		return nil, ErrGlyphNotFound
	}
	s := t.strikes[best]
	return t.extract(gid, s.glyphs[gid], s.ppem)
}

// extract reads image formats 17, 18 and 19.
func (t *CBDT) extract(gid uint16, r glyphRef, ppem int) (*Bitmap, error) {
	if uint64(r.offset)+uint64(r.size) > uint64(len(t.data)) {
		return nil, ErrMalformedTable
	}
	rec := t.data[r.offset : r.offset+r.size]
	b := &Bitmap{GlyphID: gid, PPEM: ppem}

	var head int
	switch r.imageFormat {
	case 17:
		head = 5
		if len(rec) < head+4 {
			return nil, ErrMalformedTable
		}
		b.Height, b.Width = int(rec[0]), int(rec[1])
		b.BearingX, b.BearingY = int(int8(rec[2])), int(int8(rec[3]))
	case 18:
		head = 8
		if len(rec) < head+4 {
			return nil, ErrMalformedTable
		}
		b.Height, b.Width = int(rec[0]), int(rec[1])
		b.BearingX, b.BearingY = int(int8(rec[2])), int(int8(rec[3]))
	case 19:
		if len(rec) < 4 {
			return nil, ErrMalformedTable
		}
		b.Height, b.Width = int(r.height), int(r.width)
		b.BearingX, b.BearingY = int(r.bearingX), int(r.bearingY)
	default:
		return nil, fmt.Errorf("%w: image format %d", ErrUnsupportedFormat, r.imageFormat)
	}

	n := int(binary.BigEndian.Uint32(rec[head:]))
	if head+4+n > len(rec) {
		return nil, ErrMalformedTable
	}
	b.Data = rec[head+4 : head+4+n]
	return b, nil
}
