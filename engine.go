package avatar

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"sync"
	"time"
)

// Engine renders avatars onto one reusable surface.
//
// Every Render call validates its options, clears the surface, paints the
// avatar and returns it as a PNG data URI. Calls on one Engine are
// serialised; independent engines share nothing and may run in parallel.
// If a call fails after drawing started, the previous surface content is
// restored.
//
// The zero value is not usable; create engines with NewEngine.
type Engine struct {
	mu          sync.Mutex
	surface     *Surface
	jpegQuality float64
}

// NewEngine creates an engine with the given options.
//
// Example:
//
//	e, err := avatar.NewEngine(avatar.WithSize(256))
//	if err != nil {
//	    return err
//	}
//	uri, err := e.RenderBlank(avatar.BlankOptions{Initials: "jd"})
func NewEngine(opts ...EngineOption) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, invalid("size", fmt.Sprintf("%dx%d", o.width, o.height), "must be positive")
	}
	if o.jpegQuality == 0 {
		return nil, invalid("jpegQuality", "0", "must be in (0, 1]")
	}
	if err := checkQuality(o.jpegQuality); err != nil {
		return nil, err
	}
	if o.random == nil {
		o.random = globalRandom{}
	}
	fonts, err := newFontSet(o)
	if err != nil {
		return nil, err
	}
	return &Engine{
		surface:     newSurface(o.width, o.height, fonts, o.random),
		jpegQuality: o.jpegQuality,
	}, nil
}

// Width returns the surface width in pixels.
func (e *Engine) Width() int { return e.surface.width }

// Height returns the surface height in pixels.
func (e *Engine) Height() int { return e.surface.height }

// RenderFunny draws an emoji avatar.
func (e *Engine) RenderFunny(o FunnyOptions) (string, error) {
	o = o.Normalized()
	return e.render("funny", o.Validate, func(s *Surface) { paintFunny(s, o) })
}

// RenderCute draws a procedural animal face.
func (e *Engine) RenderCute(o CuteOptions) (string, error) {
	return e.render("cute", o.Validate, func(s *Surface) { paintCute(s, o) })
}

// RenderCool draws a gradient-filled shape.
func (e *Engine) RenderCool(o CoolOptions) (string, error) {
	o = o.Normalized()
	return e.render("cool", o.Validate, func(s *Surface) { paintCool(s, o) })
}

// RenderAnime draws an anime-style character.
func (e *Engine) RenderAnime(o AnimeOptions) (string, error) {
	return e.render("anime", o.Validate, func(s *Surface) { paintAnime(s, o) })
}

// RenderBlank draws initials inside a clipped shape.
func (e *Engine) RenderBlank(o BlankOptions) (string, error) {
	o = o.Normalized()
	return e.render("blank", o.Validate, func(s *Surface) { paintBlank(s, o) })
}

// RenderPhoto composites an uploaded image with crop, filter, stickers and
// caption. Decoding happens before the surface is touched, so a
// *DecodeError or *UnsupportedFormatError leaves it unchanged.
func (e *Engine) RenderPhoto(ctx context.Context, o PhotoOptions) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p, err := preparePhoto(o)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return e.render("photo", nil, func(s *Surface) { paintPhoto(s, o, p) })
}

// FixOrientation applies the EXIF orientation of an upload and returns it
// as a JPEG data URI. The surface is not used.
func (e *Engine) FixOrientation(ctx context.Context, data []byte) (string, error) {
	out, err := FixOrientation(ctx, data)
	if err != nil {
		return "", err
	}
	return DataURI(MIMEJPEG, out), nil
}

// render runs one validated paint pass and returns the surface as a PNG
// data URI.
func (e *Engine) render(family string, validate func() error, paint func(*Surface)) (string, error) {
	if validate != nil {
		if err := validate(); err != nil {
			return "", err
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	s := e.surface
	snap := s.Snapshot()
	s.Clear()
	paint(s)

	var buf bytes.Buffer
	if err := encode(&buf, s.RGBA(), FormatPNG, 0); err != nil {
		s.Restore(snap)
		return "", err
	}

	Logger().Debug("avatar: rendered",
		"family", family,
		"size", fmt.Sprintf("%dx%d", s.width, s.height),
		"bytes", buf.Len(),
		"elapsed", time.Since(start))
	return DataURI(MIMEPNG, buf.Bytes()), nil
}

// Image returns a copy of the current surface pixels.
func (e *Engine) Image() *image.RGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	src := e.surface.RGBA()
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// Encode writes the current surface to w. A zero quality uses the
// engine's JPEG quality; PNG ignores it.
func (e *Engine) Encode(w io.Writer, f Format, quality float64) error {
	q, err := e.exportParams(f, quality)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return encode(w, e.surface.RGBA(), f, q)
}

// DataURI returns the current surface as a data URI.
func (e *Engine) DataURI(f Format, quality float64) (string, error) {
	var buf bytes.Buffer
	if err := e.Encode(&buf, f, quality); err != nil {
		return "", err
	}
	return DataURI(f.orDefault().MIME(), buf.Bytes()), nil
}

// ExportBlob returns the encoded surface. A cancelled ctx returns its
// error without encoding; callers treat that as a no-op.
func (e *Engine) ExportBlob(ctx context.Context, f Format, quality float64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := e.Encode(&buf, f, quality); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveFile writes the current surface to path. The format follows the
// extension: .png, .jpg or .jpeg.
func (e *Engine) SaveFile(path string) error {
	f, err := formatForPath(path)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return writeFile(path, e.surface.RGBA(), f, e.jpegQuality)
}

func (e *Engine) exportParams(f Format, quality float64) (float64, error) {
	if !f.valid() {
		return 0, unknownValue("format", string(f))
	}
	if err := checkQuality(quality); err != nil {
		return 0, err
	}
	if quality == 0 {
		quality = e.jpegQuality
	}
	return quality, nil
}
