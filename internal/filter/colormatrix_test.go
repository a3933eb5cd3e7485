package filter

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func TestColorMatrixTransform(t *testing.T) {
	tests := []struct {
		name string
		m    ColorMatrix
		in   [3]uint8
		want [3]uint8
	}{
		{"identity", Identity, [3]uint8{12, 34, 56}, [3]uint8{12, 34, 56}},
		{"grayscale", Grayscale, [3]uint8{200, 100, 50}, [3]uint8{124, 124, 124}},
		{"grayscale white", Grayscale, [3]uint8{255, 255, 255}, [3]uint8{255, 255, 255}},
		{"sepia white clamps", Sepia, [3]uint8{255, 255, 255}, [3]uint8{255, 255, 239}},
		{"sepia black", Sepia, [3]uint8{0, 0, 0}, [3]uint8{0, 0, 0}},
		{"scale", Scale(1.2, 1.1, 0.9), [3]uint8{100, 100, 100}, [3]uint8{120, 110, 90}},
		{"scale clamps", Scale(1.3, 1.1, 0.8), [3]uint8{250, 250, 250}, [3]uint8{255, 255, 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.m.Transform(tt.in[0], tt.in[1], tt.in[2])
			if got := [3]uint8{r, g, b}; got != tt.want {
				t.Errorf("Transform(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorMatrixApplyOpaque(t *testing.T) {
	img := solid(4, 3, color.RGBA{200, 100, 50, 255})
	m := Grayscale
	m.Apply(img)

	for i := 0; i < len(img.Pix); i += 4 {
		got := color.RGBA{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
		want := color.RGBA{124, 124, 124, 255}
		if got != want {
			t.Fatalf("pixel %d = %v, want %v", i/4, got, want)
		}
	}
}

func TestColorMatrixApplyKeepsAlpha(t *testing.T) {
	// 50% alpha white, premultiplied.
	img := solid(2, 2, color.RGBA{128, 128, 128, 128})
	m := Scale(0.5, 0.5, 0.5)
	m.Apply(img)

	p := img.Pix[:4]
	if p[3] != 128 {
		t.Errorf("alpha = %d, want 128", p[3])
	}
	// 255*0.5 = 128 straight, premultiplied back to 64.
	for c := 0; c < 3; c++ {
		if p[c] < 63 || p[c] > 65 {
			t.Errorf("channel %d = %d, want 64±1", c, p[c])
		}
	}
}

func TestColorMatrixApplySkipsTransparent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	m := ColorMatrix{0, 0, 0, 200, 0, 0, 0, 200, 0, 0, 0, 200}
	m.Apply(img)

	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d, want 0", i, v)
		}
	}
}

func TestColorMatrixApplyBounds(t *testing.T) {
	matrices := map[string]ColorMatrix{
		"grayscale": Grayscale,
		"sepia":     Sepia,
		"vintage":   Scale(1.2, 1.1, 0.9),
		"blue":      Scale(0.8, 0.9, 1.3),
		"warm":      Scale(1.3, 1.1, 0.8),
	}
	for name, m := range matrices {
		for _, c := range []color.RGBA{{0, 0, 0, 255}, {255, 255, 255, 255}} {
			img := solid(2, 2, c)
			m.Apply(img)
			if img.Pix[3] != 255 {
				t.Errorf("%s(%v): alpha changed to %d", name, c, img.Pix[3])
			}
			if c.R == 0 && (img.Pix[0] != 0 || img.Pix[1] != 0 || img.Pix[2] != 0) {
				t.Errorf("%s(black) = %v, want black", name, img.Pix[:3])
			}
		}
	}
}

func TestColorMatrixSubImage(t *testing.T) {
	img := solid(4, 4, color.RGBA{200, 100, 50, 255})
	sub := img.SubImage(image.Rect(2, 2, 4, 4)).(*image.RGBA)
	m := Grayscale
	m.Apply(sub)

	if got := img.Pix[img.PixOffset(0, 0)]; got != 200 {
		t.Errorf("outside pixel R = %d, want 200", got)
	}
	if got := img.Pix[img.PixOffset(3, 3)]; got != 124 {
		t.Errorf("inside pixel R = %d, want 124", got)
	}
}

func TestColorMatrixApplyLarge(t *testing.T) {
	// Tall enough to be split across several goroutines.
	img := solid(7, 500, color.RGBA{200, 100, 50, 255})
	img.SetRGBA(3, 499, color.RGBA{0, 0, 0, 0})
	m := Grayscale
	m.Apply(img)

	for y := 0; y < 500; y++ {
		for x := 0; x < 7; x++ {
			want := color.RGBA{124, 124, 124, 255}
			if x == 3 && y == 499 {
				want = color.RGBA{}
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
