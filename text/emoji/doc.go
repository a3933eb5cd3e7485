// Package emoji splits strings into emoji clusters and reads the colour
// glyph tables emoji fonts carry.
//
// # Clusters
//
// [Split] cuts a string into plain text runs and emoji clusters. A cluster
// is everything one emoji glyph is drawn from:
//
//   - a single pictograph (U+1F600)
//   - a text-default symbol forced to emoji by U+FE0F (U+2764 U+FE0F)
//   - a base with a skin tone modifier (U+1F44B U+1F3FB)
//   - ZWJ sequences (U+1F468 U+200D U+1F469 U+200D U+1F467)
//   - regional indicator pairs forming flags
//   - keycaps (digit, optional U+FE0F, U+20E3)
//   - tag sequences for subdivision flags
//
// Text-default symbols such as U+00A9 stay in the plain run unless an
// emoji variation selector follows them.
//
// # Colour tables
//
// [ParseCOLR] reads COLRv0 layer records with their CPAL palettes, and
// [ParseCBDT] reads the PNG strikes of CBLC/CBDT fonts such as Noto Color
// Emoji. Both work on raw table bytes, so callers choose how to load the
// font file.
//
// Presentation rules follow Unicode Technical Standard #51:
// https://www.unicode.org/reports/tr51/
package emoji
