package avatar

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.NRGBA
	}{
		{"hex6", "#667eea", color.NRGBA{0x66, 0x7e, 0xea, 255}},
		{"hex6 upper", "#FF6B9D", color.NRGBA{0xff, 0x6b, 0x9d, 255}},
		{"hex3", "#fff", color.NRGBA{255, 255, 255, 255}},
		{"hex4", "#0008", color.NRGBA{0, 0, 0, 0x88}},
		{"hex8", "#11223344", color.NRGBA{0x11, 0x22, 0x33, 0x44}},
		{"rgb", "rgb(255, 182, 193)", color.NRGBA{255, 182, 193, 255}},
		{"rgba", "rgba(0,0,0,0.5)", color.NRGBA{0, 0, 0, 128}},
		{"rgba clamps", "rgba(300, -4, 10, 2)", color.NRGBA{255, 0, 10, 255}},
		{"transparent", "transparent", color.NRGBA{}},
		{"keyword", " White ", color.NRGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "red", "#12", "#12345", "#gggggg", "rgb(1,2)", "rgba(1,2,3)", "hsl(1,2,3)", "rgb(a,b,c)"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) = nil error, want error", in)
		}
	}
}

func TestAdjustBrightness(t *testing.T) {
	tests := []struct {
		name   string
		in     color.NRGBA
		amount int
		want   color.NRGBA
	}{
		{"darken", color.NRGBA{0xff, 0xeb, 0xf0, 255}, -20, color.NRGBA{0xeb, 0xd7, 0xdc, 255}},
		{"clamp low", color.NRGBA{10, 5, 0, 255}, -30, color.NRGBA{0, 0, 0, 255}},
		{"clamp high", color.NRGBA{250, 200, 100, 255}, 20, color.NRGBA{255, 220, 120, 255}},
		{"alpha kept", color.NRGBA{100, 100, 100, 77}, 10, color.NRGBA{110, 110, 110, 77}},
		{"zero", color.NRGBA{1, 2, 3, 255}, 0, color.NRGBA{1, 2, 3, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustBrightness(tt.in, tt.amount); got != tt.want {
				t.Errorf("AdjustBrightness(%v, %d) = %v, want %v", tt.in, tt.amount, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.NRGBA{0x3b, 0x82, 0xf6, 10}); got != "#3b82f6" {
		t.Errorf("Hex() = %q, want #3b82f6", got)
	}
}

func TestGradientColors(t *testing.T) {
	got := gradientColors("linear-gradient(135deg, #667eea 0%, #764ba2 100%)")
	if len(got) != 2 || got[0] != "#667eea" || got[1] != "#764ba2" {
		t.Errorf("gradientColors() = %v, want [#667eea #764ba2]", got)
	}
	if !isGradientSpec(" linear-gradient(#000000, #ffffff)") {
		t.Error("isGradientSpec() = false for a linear-gradient value")
	}
	if isGradientSpec("#3b82f6") {
		t.Error("isGradientSpec(#3b82f6) = true, want false")
	}
}
