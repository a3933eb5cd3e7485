package avatar

import (
	"math/rand/v2"

	"github.com/gogpu/avatar/text"
)

// EngineOption configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default 400x400 engine
//	e, _ := avatar.NewEngine()
//
//	// Reproducible 200px renders
//	e, _ := avatar.NewEngine(avatar.WithSize(200), avatar.WithSeed(42))
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	width, height int
	random        RandomSource
	regular       *text.FontSource
	bold          *text.FontSource
	emoji         *text.FontSource
	jpegQuality   float64
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		width:       ReferenceSize,
		height:      ReferenceSize,
		random:      nil, // Will be a time-seeded source if nil
		jpegQuality: DefaultJPEGQuality,
	}
}

// WithSize sets a square surface of n pixels per edge.
func WithSize(n int) EngineOption {
	return func(o *engineOptions) {
		o.width, o.height = n, n
	}
}

// WithDimensions sets a rectangular surface. Recipes are laid out on the
// centre square of side min(w, h) and backgrounds fill the whole surface.
func WithDimensions(w, h int) EngineOption {
	return func(o *engineOptions) {
		o.width, o.height = w, h
	}
}

// WithRandomSource injects the source used for scattered decorations
// (sparkles, star fields). Tests use it to make renders reproducible.
func WithRandomSource(r RandomSource) EngineOption {
	return func(o *engineOptions) {
		o.random = r
	}
}

// WithSeed is shorthand for WithRandomSource with a PCG source seeded by seed.
func WithSeed(seed uint64) EngineOption {
	return func(o *engineOptions) {
		o.random = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithFontSource replaces the regular face used for glyphs and stickers.
func WithFontSource(src *text.FontSource) EngineOption {
	return func(o *engineOptions) {
		o.regular = src
	}
}

// WithBoldFontSource replaces the bold face used for captions and initials.
func WithBoldFontSource(src *text.FontSource) EngineOption {
	return func(o *engineOptions) {
		o.bold = src
	}
}

// WithEmojiFontSource adds a fallback face consulted for runes the
// primary faces do not cover, typically an emoji font.
//
// Example:
//
//	data, _ := os.ReadFile("NotoEmoji-Regular.ttf")
//	emoji, _ := text.NewFontSource(data)
//	e, _ := avatar.NewEngine(avatar.WithEmojiFontSource(emoji))
func WithEmojiFontSource(src *text.FontSource) EngineOption {
	return func(o *engineOptions) {
		o.emoji = src
	}
}

// WithJPEGQuality sets the default quality, in (0, 1], used when exporting
// JPEG without an explicit quality.
func WithJPEGQuality(q float64) EngineOption {
	return func(o *engineOptions) {
		o.jpegQuality = q
	}
}
