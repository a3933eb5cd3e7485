package emoji

import (
	"encoding/binary"
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/avatar/internal/fonttest"
)

func TestParseCBDT(t *testing.T) {
	small := fonttest.PNG(4, 4, color.NRGBA{R: 255, A: 255})
	large := fonttest.PNG(8, 8, color.NRGBA{B: 255, A: 255})
	cblc, cbdt := fonttest.CBDT(
		fonttest.Strike{PPEM: 20, First: 3, Records: [][]byte{
			fonttest.Format17(4, 4, 0, 4, small),
			nil, // glyph 4 has no bitmap
			fonttest.Format17(4, 4, 1, 3, small),
		}},
		fonttest.Strike{PPEM: 109, First: 3, Records: [][]byte{
			fonttest.Format17(8, 8, 0, 8, large),
		}},
	)

	tbl, err := ParseCBDT(cblc, cbdt)
	if err != nil {
		t.Fatalf("ParseCBDT: %v", err)
	}
	if got := tbl.Strikes(); len(got) != 2 || got[0] != 20 || got[1] != 109 {
		t.Errorf("Strikes() = %v, want [20 109]", got)
	}

	has := []struct {
		gid  uint16
		want bool
	}{{3, true}, {4, false}, {5, true}, {6, false}}
	for _, h := range has {
		if got := tbl.Has(h.gid); got != h.want {
			t.Errorf("Has(%d) = %v, want %v", h.gid, got, h.want)
		}
	}

	tests := []struct {
		name     string
		gid      uint16
		ppem     int
		wantPPEM int
		wantW    int
	}{
		{"smallest covering strike", 3, 16, 20, 4},
		{"next strike up", 3, 64, 109, 8},
		{"largest when none covers", 3, 200, 109, 8},
		{"only strike carrying glyph", 5, 200, 20, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tbl.Glyph(tt.gid, tt.ppem)
			if err != nil {
				t.Fatalf("Glyph: %v", err)
			}
			if b.PPEM != tt.wantPPEM || b.Width != tt.wantW {
				t.Errorf("Glyph(%d, %d) = ppem %d width %d, want %d and %d",
					tt.gid, tt.ppem, b.PPEM, b.Width, tt.wantPPEM, tt.wantW)
			}
			img, err := b.Decode()
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if img.Bounds().Dx() != tt.wantW {
				t.Errorf("decoded width %d, want %d", img.Bounds().Dx(), tt.wantW)
			}
		})
	}

	b, err := tbl.Glyph(5, 20)
	if err != nil {
		t.Fatal(err)
	}
	if b.BearingX != 1 || b.BearingY != 3 {
		t.Errorf("bearing = (%d, %d), want (1, 3)", b.BearingX, b.BearingY)
	}

	if _, err := tbl.Glyph(4, 20); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("Glyph(4) error = %v, want ErrGlyphNotFound", err)
	}
}

func TestParseCBDT_Errors(t *testing.T) {
	cblc, cbdt := fonttest.CBDT(fonttest.Strike{PPEM: 20, First: 1, Records: [][]byte{
		fonttest.Format17(1, 1, 0, 1, []byte{1, 2, 3}),
	}})
	wrongVersion := append([]byte(nil), cblc...)
	binary.BigEndian.PutUint16(wrongVersion, 2)
	badIndex := append([]byte(nil), cblc...)
	binary.BigEndian.PutUint16(badIndex[len(cblc)-16:], 9) // index format 9

	tests := []struct {
		name       string
		cblc, cbdt []byte
		want       error
	}{
		{"no cblc", nil, cbdt, ErrNoColorTable},
		{"no cbdt", cblc, nil, ErrNoColorTable},
		{"short header", cblc[:6], cbdt, ErrMalformedTable},
		{"version", wrongVersion, cbdt, ErrUnsupportedVersion},
		{"strike records truncated", cblc[:40], cbdt, ErrMalformedTable},
		{"index format", badIndex, cbdt, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCBDT(tt.cblc, tt.cbdt)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseCBDT error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBitmap_DecodeInvalid(t *testing.T) {
	b := &Bitmap{GlyphID: 7, Data: []byte("not a png")}
	if _, err := b.Decode(); err == nil {
		t.Error("Decode accepted invalid data")
	}
}

func TestCBDT_TruncatedImage(t *testing.T) {
	data := fonttest.PNG(2, 2, color.White)
	rec := fonttest.Format17(2, 2, 0, 2, data)
	binary.BigEndian.PutUint32(rec[5:], uint32(len(data)+10)) // length past record
	cblc, cbdt := fonttest.CBDT(fonttest.Strike{PPEM: 20, First: 1, Records: [][]byte{rec}})

	tbl, err := ParseCBDT(cblc, cbdt)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tbl.Glyph(1, 20); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("Glyph error = %v, want ErrMalformedTable", err)
	}
}
