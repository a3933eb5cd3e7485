// Package filter provides per-pixel colour transformations for photo
// composites.
//
// Filters operate in place on premultiplied *image.RGBA buffers. Colour
// channels are un-premultiplied before the transform and re-premultiplied
// afterwards; alpha is never changed.
package filter
