package avatar

import (
	"bytes"
	"context"
	"image/color"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/avatar/platform"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("family", "cute")}).(nopHandler); !ok {
		t.Error("nopHandler.WithAttrs() did not return a nopHandler")
	}
	if _, ok := h.WithGroup("render").(nopHandler); !ok {
		t.Error("nopHandler.WithGroup() did not return a nopHandler")
	}
}

// captureLogs routes avatar and platform logging into a buffer for the
// duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	// Default logger must be disabled at all levels.
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	buf := captureLogs(t)

	Logger().Info("avatar: custom sink", "family", "cool")
	if !strings.Contains(buf.String(), "family=cool") {
		t.Errorf("custom logger not installed, got: %s", buf.String())
	}

	SetLogger(nil)
	if l := Logger(); l == nil || l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should install a disabled, non-nil logger")
	}
	Logger().Error("avatar: dropped")
	if strings.Contains(buf.String(), "dropped") {
		t.Errorf("record written after SetLogger(nil): %s", buf.String())
	}
}

func TestRenderLogsDebugRecord(t *testing.T) {
	buf := captureLogs(t)

	e := newTestEngine(t, 64)
	if _, err := e.RenderBlank(BlankOptions{Initials: "ab"}); err != nil {
		t.Fatalf("RenderBlank() = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"rendered", "family=blank", "size=64"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q, got: %s", want, out)
		}
	}
}

func TestRejectedOptionsAreNotLoggedAsRender(t *testing.T) {
	buf := captureLogs(t)

	e := newTestEngine(t, 64)
	if _, err := e.RenderCute(CuteOptions{Animal: "dragon"}); err == nil {
		t.Fatal("RenderCute(dragon) = nil error, want InvalidOptionsError")
	}
	if strings.Contains(buf.String(), "rendered") {
		t.Errorf("rejected render must not log a render record, got: %s", buf.String())
	}
}

func TestOutOfRangeOrientationLogsWarning(t *testing.T) {
	buf := captureLogs(t)

	if got := ReadOrientation(jpegWithOrientation(t, cornerImage(), 9)); got != OrientationNormal {
		t.Errorf("ReadOrientation(9) = %d, want %d", got, OrientationNormal)
	}
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "orientation=9") {
		t.Errorf("missing warn record, got: %s", out)
	}
}

func TestSetLoggerReachesPlatform(t *testing.T) {
	buf := captureLogs(t)

	img := solidRGBA(40, 20, color.RGBA{R: 255, A: 255})
	if _, err := platform.Export(context.Background(), img, "discord"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "id=discord") {
		t.Errorf("platform did not log through the avatar logger, got: %s", buf.String())
	}
}

func TestLoggerSwapDuringRender(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	e := newTestEngine(t, 32)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := e.RenderBlank(BlankOptions{Initials: "AB"}); err != nil {
				t.Errorf("RenderBlank() #%d: %v", i, err)
			}
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})))
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkDisabledRenderLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("avatar: rendered", "family", "blank", "px", 400)
	}
}
