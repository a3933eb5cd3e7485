package text

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-text/typesetting/fontscan"
)

// ErrFontNotFound is returned when no installed font matches.
var ErrFontNotFound = errors.New("text: no matching system font")

// EmojiFamilies lists colour emoji families in lookup order.
var EmojiFamilies = []string{
	"Noto Color Emoji",
	"Apple Color Emoji",
	"Segoe UI Emoji",
	"Twemoji Mozilla",
	"EmojiOne Color",
	"Noto Emoji",
}

// Printf adapts a printf-style function to the logger fontscan expects.
type Printf func(format string, args ...any)

// Printf implements fontscan.Logger.
func (f Printf) Printf(format string, args ...any) { f(format, args...) }

// FindSystemFont scans the installed fonts, indexing them under cacheDir
// ("" picks the platform cache directory), and loads the first of
// families that is a standalone font file. Collections (.ttc) are skipped.
func FindSystemFont(logf Printf, cacheDir string, families ...string) (*FontSource, error) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	fm := fontscan.NewFontMap(logf)
	if err := fm.UseSystemFonts(cacheDir); err != nil {
		return nil, fmt.Errorf("text: scan system fonts: %w", err)
	}
	for _, family := range families {
		loc, ok := fm.FindSystemFont(family)
		if !ok || loc.Index > 0 || strings.HasSuffix(strings.ToLower(loc.File), ".ttc") {
			continue
		}
		src, err := NewFontSourceFromFile(loc.File)
		if err != nil {
			logf("text: skip %s: %v", loc.File, err)
			continue
		}
		return src, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrFontNotFound, strings.Join(families, ", "))
}
