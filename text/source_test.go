package text

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	if source.Name() != "Go" {
		t.Errorf("Name() = %q, want %q", source.Name(), "Go")
	}
}

func TestNewFontSourceEmpty(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceGarbage(t *testing.T) {
	_, err := NewFontSource([]byte("definitely not a font"))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("NewFontSource(garbage) error = %v, want *ParseError", err)
	}
	if perr.Backend == "" {
		t.Error("ParseError.Backend is empty")
	}
}

func TestNewFontSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFontSourceFromFile(path); err != nil {
		t.Errorf("NewFontSourceFromFile() error = %v", err)
	}
	if _, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("NewFontSourceFromFile(missing) = nil error")
	}
}

func TestFontSourceFace(t *testing.T) {
	source, err := Regular()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		size float64
	}{
		{"small", 12},
		{"caption", 32},
		{"glyph", 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, err := source.Face(tt.size)
			if err != nil {
				t.Fatalf("Face(%v) error = %v", tt.size, err)
			}
			defer face.Close()

			h := float64(face.Metrics().Height) / 64
			if h < tt.size*0.9 || h > tt.size*1.5 {
				t.Errorf("Face(%v).Metrics().Height = %v, want about the size", tt.size, h)
			}
		})
	}
}

func TestFontSourceFaceInvalidSize(t *testing.T) {
	source, err := Regular()
	if err != nil {
		t.Fatal(err)
	}
	for _, size := range []float64{0, -4} {
		if _, err := source.Face(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Face(%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestFontSourceHasGlyph(t *testing.T) {
	source, err := Regular()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		r    rune
		want bool
	}{
		{'A', true},
		{'z', true},
		{'é', true},
		{'\U0001F600', false}, // emoji: not in Go fonts
	}
	for _, tt := range tests {
		if got := source.HasGlyph(tt.r); got != tt.want {
			t.Errorf("HasGlyph(%q) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestDefaultSourcesShared(t *testing.T) {
	a, err := Bold()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Bold()
	if a != b {
		t.Error("Bold() returned distinct sources, want the shared one")
	}
	r, _ := Regular()
	if a == r {
		t.Error("Bold() and Regular() returned the same source")
	}
}
