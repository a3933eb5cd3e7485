package exif

import (
	"encoding/binary"
	"errors"
	"testing"
)

// tiffBlock builds a TIFF structure whose IFD0 holds an ImageWidth entry
// followed by an orientation entry.
func tiffBlock(little bool, orientation uint16) []byte {
	var order binary.AppendByteOrder = binary.BigEndian
	b := []byte("MM")
	if little {
		order = binary.LittleEndian
		b = []byte("II")
	}
	b = order.AppendUint16(b, tiffMagic)
	b = order.AppendUint32(b, 8)
	b = order.AppendUint16(b, 2)
	// ImageWidth, LONG, 1, 64
	b = order.AppendUint16(b, 0x0100)
	b = order.AppendUint16(b, 4)
	b = order.AppendUint32(b, 1)
	b = order.AppendUint32(b, 64)
	// Orientation, SHORT, 1
	b = order.AppendUint16(b, TagOrientation)
	b = order.AppendUint16(b, 3)
	b = order.AppendUint32(b, 1)
	b = order.AppendUint16(b, orientation)
	b = order.AppendUint16(b, 0)
	return order.AppendUint32(b, 0)
}

func segment(marker byte, payload []byte) []byte {
	b := []byte{0xFF, marker}
	b = binary.BigEndian.AppendUint16(b, uint16(len(payload)+2))
	return append(b, payload...)
}

func jpegWith(segments ...[]byte) []byte {
	b := []byte{0xFF, markerSOI}
	for _, s := range segments {
		b = append(b, s...)
	}
	b = append(b, segment(markerSOS, []byte{1, 2, 3})...)
	return append(b, 0xFF, markerEOI)
}

func exifSegment(little bool, orientation uint16) []byte {
	return segment(markerAPP1, append([]byte("Exif\x00\x00"), tiffBlock(little, orientation)...))
}

func TestOrientation(t *testing.T) {
	jfif := segment(0xE0, []byte("JFIF\x00\x01\x02\x00\x00\x01\x00\x01\x00\x00"))
	xmp := segment(markerAPP1, []byte("http://ns.adobe.com/xap/1.0/\x00<x/>"))

	tests := []struct {
		name string
		data []byte
		want int
	}{
		{"big endian", jpegWith(exifSegment(false, 6)), 6},
		{"little endian", jpegWith(exifSegment(true, 8)), 8},
		{"after JFIF", jpegWith(jfif, exifSegment(true, 3)), 3},
		{"after XMP", jpegWith(xmp, exifSegment(false, 5)), 5},
		{"fill bytes", append([]byte{0xFF, markerSOI, 0xFF}, exifSegment(false, 2)...), 2},
		{"out of range kept", jpegWith(exifSegment(false, 9)), 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Orientation(tt.data)
			if err != nil {
				t.Fatalf("Orientation() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Orientation() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOrientationErrors(t *testing.T) {
	valid := jpegWith(exifSegment(false, 6))
	badMagic := exifSegment(false, 6)
	badMagic[4+6+3] = 0x2B

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrNotJPEG},
		{"png", []byte("\x89PNG\r\n\x1a\n"), ErrNotJPEG},
		{"no exif", jpegWith(), ErrNoOrientation},
		{"xmp only", jpegWith(segment(markerAPP1, []byte("http://ns.adobe.com/xap/1.0/\x00"))), ErrNoOrientation},
		{"truncated", valid[:20], ErrShortBuffer},
		{"bad byte order", jpegWith(segment(markerAPP1, []byte("Exif\x00\x00XX\x00\x2a\x00\x00\x00\x08"))), ErrInvalidHeader},
		{"bad magic", jpegWith(badMagic), ErrInvalidHeader},
		{"bad length", []byte{0xFF, markerSOI, 0xFF, markerAPP1, 0x00, 0x01}, ErrInvalidHeader},
		{"no marker", []byte{0xFF, markerSOI, 0x00}, ErrInvalidHeader},
		{"ifd past end", jpegWith(segment(markerAPP1, []byte("Exif\x00\x00MM\x00\x2a\x00\x00\x01\x00"))), ErrShortBuffer},
		{"tag missing", jpegWith(segment(markerAPP1, append([]byte("Exif\x00\x00MM\x00\x2a\x00\x00\x00\x08"), 0, 0))), ErrNoOrientation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Orientation(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("Orientation() error = %v, want %v", err, tt.want)
			}
		})
	}
}
