package avatar

import (
	"fmt"
	"hash/fnv"
	"image/color"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/gogpu/avatar/text"
	"github.com/gogpu/avatar/text/emoji"
	"golang.org/x/image/font"
)

// textAlign selects the vertical reference of fillText.
type textAlign int

const (
	alignBaseline textAlign = iota // y is the alphabetic baseline
	alignMiddle                    // y is the middle of the em box
)

type spanKind uint8

const (
	spanText  spanKind = iota // drawn with the primary face
	spanGlyph                 // shaped glyphs of the emoji font
	spanTile                  // nothing covers it: a labelled tile
)

// span is one measured piece of a line.
type span struct {
	kind   spanKind
	text   string
	glyphs []text.Glyph
	width  float64
}

// line is a string laid out at one size.
type line struct {
	face  font.Face
	px    float64
	spans []span
	width float64
}

// layoutText splits s into clusters and picks how each is drawn. Emoji
// clusters go to the emoji font when it shapes them without .notdef,
// then to the primary font when it covers them, and otherwise become a
// tile so that distinct emoji stay distinct.
func (s *Surface) layoutText(bold bool, px float64, str string) line {
	f := s.fonts
	ln := line{face: f.face(bold, px), px: px}
	for _, cl := range emoji.Split(str) {
		var sp span
		switch {
		case !cl.Emoji():
			t := drawable(cl.Text)
			if t == "" {
				continue
			}
			if !f.covered(bold, t) {
				Logger().Warn("avatar: glyph not covered by any font", "glyph", t)
			}
			sp = span{kind: spanText, text: t, width: fixedToFloat(font.MeasureString(ln.face, t))}
		case f.emoji != nil && f.emojiShapes(cl.Text, &sp):
			sp.text = cl.Text
			sp.width *= px
		case f.covered(bold, cl.Text):
			t := drawable(cl.Text)
			sp = span{kind: spanText, text: t, width: fixedToFloat(font.MeasureString(ln.face, t))}
		default:
			Logger().Warn("avatar: glyph not covered by any font", "glyph", cl.Text, "sequence", cl.Key())
			sp = span{kind: spanTile, text: cl.Text, width: px}
		}
		ln.spans = append(ln.spans, sp)
		ln.width += sp.width
	}
	return ln
}

// emojiShapes shapes t with the emoji font into sp, width in ems.
func (f *fontSet) emojiShapes(t string, sp *span) bool {
	glyphs, ok := f.emoji.Shape(t)
	if !ok || len(glyphs) == 0 {
		return false
	}
	*sp = span{kind: spanGlyph, glyphs: glyphs}
	for _, g := range glyphs {
		sp.width += g.Advance
	}
	return true
}

// fillText draws str horizontally centred on x in colour c.
func (s *Surface) fillText(dc *gg.Context, bold bool, px float64, str string, x, y float64, align textAlign, c color.Color) {
	s.fillLine(dc, s.layoutText(bold, px, str), x, y, align, c)
}

// fillLine draws a laid-out line horizontally centred on x.
func (s *Surface) fillLine(dc *gg.Context, ln line, x, y float64, align textAlign, c color.Color) {
	m := ln.face.Metrics()
	ascent, descent := fixedToFloat(m.Ascent), fixedToFloat(m.Descent)
	if align == alignMiddle {
		y += (ascent - descent) / 2
	}
	mid := y - (ascent-descent)/2

	pen := x - ln.width/2
	for _, sp := range ln.spans {
		switch sp.kind {
		case spanText:
			dc.SetFontFace(ln.face)
			dc.SetColor(c)
			dc.DrawString(sp.text, pen, y)
		case spanGlyph:
			s.paintGlyphs(dc, s.fonts.emoji, sp.glyphs, ln.px, pen, y, c)
		case spanTile:
			s.paintTile(dc, sp.text, pen, mid, ln.px, c)
		}
		pen += sp.width
	}
}

// paintGlyphs draws shaped glyphs of src with their origin at (x, y).
// Bitmap glyphs are scaled from their nearest strike, layered glyphs fill
// each layer in its palette colour, and plain outlines take colour c.
func (s *Surface) paintGlyphs(dc *gg.Context, src *text.FontSource, glyphs []text.Glyph, px, x, y float64, c color.Color) {
	for _, g := range glyphs {
		gx, gy := x+g.X*px, y+g.Y*px
		switch src.Kind(g.ID) {
		case text.KindBitmap:
			s.paintBitmap(dc, src, g.ID, px, gx, gy)
		case text.KindLayered:
			layers, err := src.Layers(g.ID)
			if err != nil {
				Logger().Warn("avatar: colour glyph unreadable", "glyph", g.ID, "err", err)
				continue
			}
			for _, l := range layers {
				var lc color.Color = l.Color
				if l.Foreground() {
					lc = c
				}
				fillOutline(dc, src, l.GlyphID, px, gx, gy, lc)
			}
		default:
			fillOutline(dc, src, g.ID, px, gx, gy, c)
		}
	}
}

func fillOutline(dc *gg.Context, src *text.FontSource, id uint16, px, x, y float64, c color.Color) {
	dc.ClearPath()
	if err := src.Outline(dc, id, px, x, y); err != nil {
		return
	}
	dc.SetColor(c)
	dc.Fill()
}

func (s *Surface) paintBitmap(dc *gg.Context, src *text.FontSource, id uint16, px, x, y float64) {
	bm, err := src.Bitmap(id, px)
	if err != nil {
		Logger().Warn("avatar: colour glyph unreadable", "glyph", id, "err", err)
		return
	}
	key := bitmapKey{id: id, ppem: bm.PPEM}
	img, ok := s.fonts.bitmaps.Get(key)
	if !ok {
		decoded, err := bm.Decode()
		if err != nil {
			Logger().Warn("avatar: colour glyph unreadable", "glyph", id, "err", err)
			return
		}
		img = decoded
		s.fonts.bitmaps.Set(key, img)
	}
	scale := px / float64(bm.PPEM)
	dc.Push()
	dc.Translate(x+float64(bm.BearingX)*scale, y-float64(bm.BearingY)*scale)
	dc.Scale(scale, scale)
	dc.DrawImage(img, 0, 0)
	dc.Pop()
}

// tilePalette colours last-resort tiles.
var tilePalette = []color.NRGBA{
	{0xE5, 0x39, 0x35, 0xFF}, {0xD8, 0x1B, 0x60, 0xFF}, {0x8E, 0x24, 0xAA, 0xFF},
	{0x5E, 0x35, 0xB1, 0xFF}, {0x39, 0x49, 0xAB, 0xFF}, {0x1E, 0x88, 0xE5, 0xFF},
	{0x00, 0x89, 0x7B, 0xFF}, {0x43, 0xA0, 0x47, 0xFF}, {0x7C, 0xB3, 0x42, 0xFF},
	{0xF4, 0x51, 0x1E, 0xFF}, {0x6D, 0x4C, 0x41, 0xFF}, {0x54, 0x6E, 0x7A, 0xFF},
}

// paintTile draws a rounded square one em wide, centred vertically on mid,
// coloured by a hash of the cluster and labelled with its first code
// point. Sequences add a "+N" line for the remaining visible code points.
func (s *Surface) paintTile(dc *gg.Context, cluster string, x, mid, px float64, c color.Color) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(cluster))
	fill := tilePalette[h.Sum32()%uint32(len(tilePalette))]

	side := px * 0.9
	left, top := x+(px-side)/2, mid-side/2

	dc.Push()
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(left, top, side, side, side*0.18)
	dc.Fill()
	dc.SetColor(c)
	dc.SetLineWidth(px * 0.03)
	dc.DrawRoundedRectangle(left, top, side, side, side*0.18)
	dc.Stroke()

	first, _ := utf8.DecodeRuneInString(cluster)
	rest := 0
	for _, r := range cluster[utf8.RuneLen(first):] {
		if !emoji.IsInvisible(r) {
			rest++
		}
	}
	label := fmt.Sprintf("%04X", first)
	dc.SetFontFace(s.fonts.face(true, px*0.2))
	dc.SetColor(color.White)
	if rest == 0 {
		dc.DrawStringAnchored(label, x+px/2, mid, 0.5, 0.35)
	} else {
		dc.DrawStringAnchored(label, x+px/2, mid-px*0.12, 0.5, 0.35)
		dc.DrawStringAnchored(fmt.Sprintf("+%d", rest), x+px/2, mid+px*0.14, 0.5, 0.35)
	}
	dc.Pop()
}
