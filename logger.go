package avatar

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/avatar/platform"
)

// nopHandler drops every record. Enabled reports false, so callers never
// format attributes for a silent engine.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var (
	silent  = slog.New(nopHandler{})
	current atomic.Pointer[slog.Logger]
)

func init() { current.Store(silent) }

// SetLogger routes diagnostics from avatar and its platform package to l.
// Engines are silent until it is called; nil silences them again. It may
// be called while renders are in flight.
//
// Debug records describe each render (family, pixel size, elapsed time).
// Warn records mark fallbacks such as an out-of-range EXIF orientation or
// a glyph no configured font covers.
//
//	avatar.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
	platform.SetLogger(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger { return current.Load() }
