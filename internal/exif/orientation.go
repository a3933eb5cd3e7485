package exif

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// Errors returned by Orientation.
var (
	// ErrNotJPEG is returned when the data does not start with a JPEG SOI marker.
	ErrNotJPEG = errors.New("exif: not a JPEG stream")

	// ErrNoOrientation is returned when no Exif segment or orientation tag exists.
	ErrNoOrientation = errors.New("exif: no orientation tag")

	// ErrInvalidHeader is returned for a malformed segment or TIFF header.
	ErrInvalidHeader = errors.New("exif: invalid header")
)

// TagOrientation is the IFD0 tag holding the image orientation.
const TagOrientation = 0x0112

const (
	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOS  = 0xDA
	markerAPP1 = 0xE1
	markerTEM  = 0x01
	markerRST0 = 0xD0
	markerRST7 = 0xD7

	tiffMagic = 42
)

var exifHeader = []byte("Exif\x00\x00")

// Orientation returns the raw orientation value of a JPEG stream. The
// value is returned as stored; callers decide what to do with values
// outside 1..8.
func Orientation(data []byte) (int, error) {
	r := NewReader(data, binary.BigEndian)
	if soi, err := r.Uint16(); err != nil || soi != 0xFF00|markerSOI {
		return 0, ErrNotJPEG
	}

	for {
		marker, err := nextMarker(r)
		if err != nil {
			return 0, err
		}
		switch {
		case marker == markerEOI || marker == markerSOS:
			return 0, ErrNoOrientation
		case marker == markerTEM || (marker >= markerRST0 && marker <= markerRST7):
			continue
		}

		length, err := r.Uint16()
		if err != nil {
			return 0, err
		}
		if length < 2 {
			return 0, ErrInvalidHeader
		}
		seg, err := r.Sub(int(length) - 2)
		if err != nil {
			return 0, err
		}
		if marker != markerAPP1 {
			continue
		}
		head, err := seg.Bytes(len(exifHeader))
		if err != nil || !bytes.Equal(head, exifHeader) {
			// XMP and other APP1 payloads.
			continue
		}
		tiff, err := seg.Sub(seg.Len())
		if err != nil {
			return 0, err
		}
		return tiffOrientation(tiff)
	}
}

// nextMarker reads a marker code, skipping fill bytes.
func nextMarker(r *Reader) (byte, error) {
	b, err := r.Byte()
	if err != nil {
		return 0, err
	}
	if b != 0xFF {
		return 0, ErrInvalidHeader
	}
	for b == 0xFF {
		if b, err = r.Byte(); err != nil {
			return 0, err
		}
	}
	return b, nil
}

// tiffOrientation walks IFD0 of a TIFF structure. Offsets are relative to
// the start of r.
func tiffOrientation(r *Reader) (int, error) {
	order, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	switch string(order) {
	case "II":
		r.SetOrder(binary.LittleEndian)
	case "MM":
		r.SetOrder(binary.BigEndian)
	default:
		return 0, ErrInvalidHeader
	}
	if magic, err := r.Uint16(); err != nil || magic != tiffMagic {
		return 0, ErrInvalidHeader
	}
	ifd, err := r.Uint32()
	if err != nil {
		return 0, err
	}
	if err := r.Seek(int(ifd)); err != nil {
		return 0, err
	}

	count, err := r.Uint16()
	if err != nil {
		return 0, err
	}
	for range count {
		tag, err := r.Uint16()
		if err != nil {
			return 0, err
		}
		if tag != TagOrientation {
			// type, count and value.
			if err := r.Skip(10); err != nil {
				return 0, err
			}
			continue
		}
		// SHORT, count 1: the value sits in the first two bytes of the
		// value field.
		if err := r.Skip(6); err != nil {
			return 0, err
		}
		v, err := r.Uint16()
		if err != nil {
			return 0, err
		}
		return int(v), nil
	}
	return 0, ErrNoOrientation
}
