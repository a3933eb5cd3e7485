// Package fonttest builds colour font tables and font files for tests.
package fonttest

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sort"
)

// COLR builds a version 0 COLR table. layers[i] holds the (glyph, palette
// index) pairs of base glyph ids[i]; ids must be sorted.
func COLR(ids []uint16, layers [][][2]uint16) []byte {
	numLayers := 0
	for _, ls := range layers {
		numLayers += len(ls)
	}
	baseOff := 14
	layerOff := baseOff + len(ids)*6
	b := make([]byte, layerOff+numLayers*4)
	binary.BigEndian.PutUint16(b[2:], uint16(len(ids)))
	binary.BigEndian.PutUint32(b[4:], uint32(baseOff))
	binary.BigEndian.PutUint32(b[8:], uint32(layerOff))
	binary.BigEndian.PutUint16(b[12:], uint16(numLayers))

	first := 0
	for i, id := range ids {
		p := b[baseOff+i*6:]
		binary.BigEndian.PutUint16(p, id)
		binary.BigEndian.PutUint16(p[2:], uint16(first))
		binary.BigEndian.PutUint16(p[4:], uint16(len(layers[i])))
		for j, l := range layers[i] {
			q := b[layerOff+(first+j)*4:]
			binary.BigEndian.PutUint16(q, l[0])
			binary.BigEndian.PutUint16(q[2:], l[1])
		}
		first += len(layers[i])
	}
	return b
}

// CPAL builds a version 0 CPAL table from equally sized palettes.
func CPAL(palettes ...[]color.NRGBA) []byte {
	entries := 0
	if len(palettes) > 0 {
		entries = len(palettes[0])
	}
	records := entries * len(palettes)
	recordOff := 12 + len(palettes)*2
	b := make([]byte, recordOff+records*4)
	binary.BigEndian.PutUint16(b[2:], uint16(entries))
	binary.BigEndian.PutUint16(b[4:], uint16(len(palettes)))
	binary.BigEndian.PutUint16(b[6:], uint16(records))
	binary.BigEndian.PutUint32(b[8:], uint32(recordOff))
	for i, pal := range palettes {
		binary.BigEndian.PutUint16(b[12+i*2:], uint16(i*entries))
		for j, c := range pal {
			p := b[recordOff+(i*entries+j)*4:]
			p[0], p[1], p[2], p[3] = c.B, c.G, c.R, c.A
		}
	}
	return b
}

// PNG encodes a w×h image filled with c.
func PNG(w, h int, c color.Color) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err) // in-memory encode of a valid image
	}
	return buf.Bytes()
}

// Format17 wraps PNG data in a CBDT image format 17 record.
func Format17(w, h int, bearingX, bearingY int8, data []byte) []byte {
	rec := []byte{byte(h), byte(w), byte(bearingX), byte(bearingY), byte(w)}
	rec = binary.BigEndian.AppendUint32(rec, uint32(len(data)))
	return append(rec, data...)
}

// Strike is one bitmap size for CBDT: consecutive glyphs from First, each
// with its own image record. A nil record leaves that glyph out.
type Strike struct {
	PPEM    int
	First   uint16
	Records [][]byte
}

// CBDT builds CBLC and CBDT tables indexed with subtable format 1.
func CBDT(strikes ...Strike) (cblc, cbdt []byte) {
	const sizeRecord = 48
	cbdt = []byte{0, 3, 0, 0}
	cblc = make([]byte, 8+len(strikes)*sizeRecord)
	binary.BigEndian.PutUint16(cblc, 3)
	binary.BigEndian.PutUint32(cblc[4:], uint32(len(strikes)))

	for i, s := range strikes {
		listOff := len(cblc)
		last := s.First + uint16(len(s.Records)) - 1

		rec := cblc[8+i*sizeRecord:]
		binary.BigEndian.PutUint32(rec, uint32(listOff))
		binary.BigEndian.PutUint32(rec[8:], 1)
		binary.BigEndian.PutUint16(rec[40:], s.First)
		binary.BigEndian.PutUint16(rec[42:], last)
		rec[44], rec[45], rec[46] = byte(s.PPEM), byte(s.PPEM), 32

		// one IndexSubtableArray entry; its subtable follows directly
		arr := make([]byte, 8)
		binary.BigEndian.PutUint16(arr, s.First)
		binary.BigEndian.PutUint16(arr[2:], last)
		binary.BigEndian.PutUint32(arr[4:], 8)

		sub := make([]byte, 8)
		binary.BigEndian.PutUint16(sub, 1)
		binary.BigEndian.PutUint16(sub[2:], 17)
		binary.BigEndian.PutUint32(sub[4:], uint32(len(cbdt)))
		off := uint32(0)
		for _, r := range s.Records {
			sub = binary.BigEndian.AppendUint32(sub, off)
			off += uint32(len(r))
			cbdt = append(cbdt, r...)
		}
		sub = binary.BigEndian.AppendUint32(sub, off)

		cblc = append(cblc, arr...)
		cblc = append(cblc, sub...)
	}
	return cblc, cbdt
}

// Cmap12 builds a cmap table with a single Windows full-repertoire
// subtable (format 12) mapping each rune to its glyph.
func Cmap12(m map[rune]uint16) []byte {
	runes := make([]rune, 0, len(m))
	for r := range m {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	sub := make([]byte, 16, 16+len(runes)*12)
	binary.BigEndian.PutUint16(sub, 12)
	binary.BigEndian.PutUint32(sub[4:], uint32(16+len(runes)*12))
	binary.BigEndian.PutUint32(sub[12:], uint32(len(runes)))
	for _, r := range runes {
		sub = binary.BigEndian.AppendUint32(sub, uint32(r))
		sub = binary.BigEndian.AppendUint32(sub, uint32(r))
		sub = binary.BigEndian.AppendUint32(sub, uint32(m[r]))
	}

	head := make([]byte, 12)
	binary.BigEndian.PutUint16(head[2:], 1)
	binary.BigEndian.PutUint16(head[4:], 3)
	binary.BigEndian.PutUint16(head[6:], 10)
	binary.BigEndian.PutUint32(head[8:], 12)
	return append(head, sub...)
}

// Inject returns a copy of the sfnt file font with extra tables added or
// replaced. The table directory stays sorted by tag; checksums are zero.
func Inject(font []byte, extra map[string][]byte) ([]byte, error) {
	if len(font) < 12 {
		return nil, errors.New("fonttest: short font")
	}
	n := int(binary.BigEndian.Uint16(font[4:]))
	if len(font) < 12+n*16 {
		return nil, errors.New("fonttest: short table directory")
	}

	type table struct {
		tag  string
		data []byte
	}
	var tables []table
	for i := 0; i < n; i++ {
		rec := font[12+i*16:]
		tag := string(rec[:4])
		if _, ok := extra[tag]; ok {
			continue
		}
		off := binary.BigEndian.Uint32(rec[8:])
		length := binary.BigEndian.Uint32(rec[12:])
		if int(off)+int(length) > len(font) {
			return nil, errors.New("fonttest: table past end of font")
		}
		tables = append(tables, table{tag, font[off : off+length]})
	}
	for tag, data := range extra {
		if len(tag) != 4 {
			return nil, errors.New("fonttest: tag must be four bytes")
		}
		tables = append(tables, table{tag, data})
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].tag < tables[j].tag })

	head := 12 + len(tables)*16
	out := make([]byte, head)
	copy(out, font[:4])
	binary.BigEndian.PutUint16(out[4:], uint16(len(tables)))
	for i, t := range tables {
		rec := out[12+i*16:]
		copy(rec, t.tag)
		binary.BigEndian.PutUint32(rec[8:], uint32(len(out)))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(t.data)))
		out = append(out, t.data...)
		for len(out)%4 != 0 {
			out = append(out, 0)
		}
	}
	return out, nil
}
