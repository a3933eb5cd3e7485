package avatar

import (
	"image"

	"github.com/gogpu/avatar/internal/filter"
)

// Filter is a per-pixel colour transform applied to photo composites.
type Filter string

// Photo filters.
const (
	FilterNone      Filter = "none"
	FilterGrayscale Filter = "grayscale"
	FilterSepia     Filter = "sepia"
	FilterVintage   Filter = "vintage"
	FilterBlue      Filter = "blue"
	FilterWarm      Filter = "warm"
)

var filters = map[Filter]*filter.ColorMatrix{
	FilterNone:      nil,
	FilterGrayscale: &filter.Grayscale,
	FilterSepia:     &filter.Sepia,
	FilterVintage:   ptr(filter.Scale(1.2, 1.1, 0.9)),
	FilterBlue:      ptr(filter.Scale(0.8, 0.9, 1.3)),
	FilterWarm:      ptr(filter.Scale(1.3, 1.1, 0.8)),
}

func ptr[T any](v T) *T { return &v }

func (f Filter) valid() bool {
	if f == "" {
		return true
	}
	_, ok := filters[f]
	return ok
}

// ApplyFilter transforms img in place. Alpha is preserved and FilterNone
// leaves the buffer untouched.
func ApplyFilter(img *image.RGBA, f Filter) error {
	if !f.valid() {
		return unknownValue("filter", string(f))
	}
	if m := filters[f]; m != nil {
		m.Apply(img)
	}
	return nil
}
