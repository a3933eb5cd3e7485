package avatar

import (
	"image"
	"image/color"
	"testing"
)

var hairGreen = color.RGBA{0, 255, 0, 255}

// renderAnime draws o at the 400px reference size, where one unit is one
// pixel and the face centre is (200, 200).
func renderAnime(t *testing.T, o AnimeOptions) *image.RGBA {
	t.Helper()
	if o.HairColor == "" {
		o.HairColor = "#00ff00"
	}
	uri, err := newTestEngine(t, ReferenceSize).RenderAnime(o)
	if err != nil {
		t.Fatalf("RenderAnime(%+v) error = %v", o, err)
	}
	return toRGBA(decodeURI(t, uri))
}

// at returns the pixel at reference offset (dx, dy) from the face centre.
func at(img *image.RGBA, dx, dy int) color.RGBA {
	return img.RGBAAt(200+dx, 200+dy)
}

func dark(c color.RGBA) bool { return c.R < 80 && c.G < 80 && c.B < 80 }

func TestAnimeHairStyles(t *testing.T) {
	// Each marker lies inside the named feature and clear of the others.
	markers := []struct {
		name   string
		dx, dy int
	}{
		{"ponytail tail", 0, -140},
		{"left twintail", -100, -52},
		{"long side lock", -80, 75},
		{"side volume", -95, 5},
	}
	tests := []struct {
		style HairStyle
		hair  [4]bool
	}{
		{"", [4]bool{false, false, false, false}},
		{HairShort, [4]bool{false, false, false, false}},
		{HairLong, [4]bool{false, false, true, false}},
		{HairTwintails, [4]bool{false, true, false, true}},
		{HairPonytail, [4]bool{true, false, false, false}},
		{HairBob, [4]bool{false, false, false, true}},
	}
	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			img := renderAnime(t, AnimeOptions{HairStyle: tt.style})
			for i, m := range markers {
				got := near(at(img, m.dx, m.dy), hairGreen, 8)
				if got != tt.hair[i] {
					t.Errorf("%s at (%d, %d): hair = %v, want %v", m.name, m.dx, m.dy, got, tt.hair[i])
				}
			}
			// Every style caps the forehead and leaves the chin bare.
			if c := at(img, 0, -90); !near(c, hairGreen, 8) {
				t.Errorf("forehead = %v, want hair", c)
			}
			if c := at(img, 0, 55); !near(c, color.RGBA{0xff, 0xe0, 0xbd, 0xff}, 4) {
				t.Errorf("chin = %v, want skin", c)
			}
		})
	}
}

func TestAnimeEyeStyles(t *testing.T) {
	// Sampled on the right eye: its centre and the bottom of the closed arc.
	tests := []struct {
		eyes           AnimeEyeStyle
		centre, bottom bool
	}{
		{"", true, true},
		{AnimeEyesSparkle, true, true},
		{AnimeEyesNormal, true, false},
		{AnimeEyesClosed, false, true},
		{AnimeEyesHappy, false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.eyes), func(t *testing.T) {
			img := renderAnime(t, AnimeOptions{EyeStyle: tt.eyes})
			if got := dark(at(img, 25, -10)); got != tt.centre {
				t.Errorf("eye centre dark = %v, want %v", got, tt.centre)
			}
			if got := dark(at(img, 25, 2)); got != tt.bottom {
				t.Errorf("eye bottom dark = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestAnimeExpressions(t *testing.T) {
	// Mouth arcs are centred 25 units below the face centre; their lowest
	// points fall on distinct rows.
	rows := []int{35, 40, 43, 45}
	tests := []struct {
		expr  Expression
		mouth int
		blush bool
	}{
		{"", 45, false},
		{ExpressionSmile, 45, false},
		{ExpressionNeutral, 35, false},
		{ExpressionShy, 40, true},
		{ExpressionWink, 43, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.expr), func(t *testing.T) {
			img := renderAnime(t, AnimeOptions{Expression: tt.expr})
			for _, y := range rows {
				if got, want := dark(at(img, 0, y)), y == tt.mouth; got != want {
					t.Errorf("mouth row %d dark = %v, want %v", y, got, want)
				}
			}
			if got := at(img, -50, 20).G < 200; got != tt.blush {
				t.Errorf("left cheek blush = %v, want %v", got, tt.blush)
			}
		})
	}
}

func TestAnimeWink(t *testing.T) {
	// Normal eyes end 12 units below the eye centre, so the wink arc shows
	// under the right eye only.
	smile := renderAnime(t, AnimeOptions{EyeStyle: AnimeEyesNormal})
	wink := renderAnime(t, AnimeOptions{EyeStyle: AnimeEyesNormal, Expression: ExpressionWink})
	if dark(at(smile, 25, 2)) || !dark(at(wink, 25, 2)) {
		t.Errorf("under right eye: smile %v, wink %v; want only the wink dark", at(smile, 25, 2), at(wink, 25, 2))
	}
	if at(smile, -25, 2) != at(wink, -25, 2) {
		t.Error("wink changed the left eye")
	}

	// Eye styles that already look closed are left alone.
	for _, eyes := range []AnimeEyeStyle{AnimeEyesClosed, AnimeEyesHappy} {
		smile := renderAnime(t, AnimeOptions{EyeStyle: eyes})
		wink := renderAnime(t, AnimeOptions{EyeStyle: eyes, Expression: ExpressionWink})
		region := image.Rect(200, 170, 250, 208)
		if !sameRegion(smile, wink, region) {
			t.Errorf("%s eyes: wink redrew the eye region", eyes)
		}
	}
}

func sameRegion(a, b *image.RGBA, r image.Rectangle) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if a.RGBAAt(x, y) != b.RGBAAt(x, y) {
				return false
			}
		}
	}
	return true
}
