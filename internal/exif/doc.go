// Package exif reads the orientation tag from JPEG EXIF metadata.
//
// Only the path needed for orientation is parsed: the JPEG marker walk up
// to the first Exif APP1 segment, the TIFF header and the entries of IFD0.
// All reads go through a bounds-checked Reader, so truncated or hostile
// input yields an error rather than a panic.
package exif
