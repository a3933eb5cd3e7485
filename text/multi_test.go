package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font"
)

// Verify at compile time that MultiFace implements font.Face.
var _ font.Face = (*MultiFace)(nil)

func testSources(t *testing.T) (*FontSource, *FontSource) {
	t.Helper()
	regular, err := Regular()
	if err != nil {
		t.Fatal(err)
	}
	bold, err := Bold()
	if err != nil {
		t.Fatal(err)
	}
	return regular, bold
}

func TestNewMultiFaceEmpty(t *testing.T) {
	if _, err := NewMultiFace(12); !errors.Is(err, ErrEmptyFaces) {
		t.Errorf("NewMultiFace() error = %v, want ErrEmptyFaces", err)
	}
}

func TestNewMultiFaceInvalidSize(t *testing.T) {
	regular, _ := testSources(t)
	if _, err := NewMultiFace(0, regular); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewMultiFace(0) error = %v, want ErrInvalidSize", err)
	}
}

func TestMultiFacePrefersFirstCoveringSource(t *testing.T) {
	regular, bold := testSources(t)

	mf, err := NewMultiFace(32, regular, bold)
	if err != nil {
		t.Fatal(err)
	}
	defer mf.Close()

	if got := mf.faceForRune('A'); got != mf.faces[0] {
		t.Error("faceForRune('A') did not pick the first source")
	}

	want, _ := mf.faces[0].GlyphAdvance('W')
	got, ok := mf.GlyphAdvance('W')
	if !ok || got != want {
		t.Errorf("GlyphAdvance('W') = %v, %v; want %v, true", got, ok, want)
	}
}

func TestMultiFaceUncoveredRuneUsesFirstFace(t *testing.T) {
	regular, bold := testSources(t)

	mf, err := NewMultiFace(20, bold, regular)
	if err != nil {
		t.Fatal(err)
	}
	defer mf.Close()

	const r = '\U0001F431'
	if mf.Covers(r) {
		t.Errorf("Covers(%q) = true, want false", r)
	}
	if got := mf.faceForRune(r); got != mf.faces[0] {
		t.Errorf("faceForRune(%q) did not fall back to the first face", r)
	}
}

func TestMultiFaceKernAcrossFaces(t *testing.T) {
	regular, _ := testSources(t)
	mf, err := NewMultiFace(20, regular)
	if err != nil {
		t.Fatal(err)
	}
	defer mf.Close()

	if got, want := mf.Kern('A', 'V'), mf.faces[0].Kern('A', 'V'); got != want {
		t.Errorf("Kern('A','V') = %v, want %v", got, want)
	}
	if m := mf.Metrics(); m.Height <= 0 {
		t.Errorf("Metrics().Height = %v, want > 0", m.Height)
	}
}
