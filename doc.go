// Package avatar renders procedural avatars and composes profile photos.
//
// # Overview
//
// avatar draws stylised avatars onto a fixed-size raster surface using
// immediate-mode 2D primitives (paths, gradients, clipping, text). Five
// families are supported:
//   - Funny: an emoji glyph with corner accessories over a preset background
//   - Cute: a procedural animal face (cat, bear, bunny, panda, fox)
//   - Cool: a gradient-filled geometric shape with optional glow
//   - Anime: a parametric character (hair, eyes, mouth, accessories)
//   - Blank: up to two initials inside a clipped shape
//
// A photo compositor decodes uploaded images, fixes their EXIF
// orientation, crops, filters and decorates them with stickers and a
// caption. The platform sub-package crops a photo to the standard profile
// picture sizes of popular social platforms.
//
// # Quick Start
//
//	import "github.com/gogpu/avatar"
//
//	e, err := avatar.NewEngine(avatar.WithSize(400))
//	if err != nil {
//		log.Fatal(err)
//	}
//	uri, err := e.RenderCute(avatar.CuteOptions{Animal: avatar.AnimalCat, Blush: true})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = uri // data:image/png;base64,...
//
//	// Or write the current surface to disk.
//	_ = e.SaveFile("cat.png")
//
// # Coordinate System
//
// Every recipe is expressed at a 400x400 reference size and scaled by
// [Surface.Unit], so a 200px surface renders the same composition at half
// scale. Origin is top-left, Y increases down and angles are in radians
// increasing clockwise on screen.
//
// # Concurrency
//
// An [Engine] owns one surface and serialises its entry points. Distinct
// engines share nothing and may be used from different goroutines.
package avatar

// Version is the current version of the library.
const Version = "0.1.0"

// ReferenceSize is the edge length, in pixels, at which all drawing
// recipes are specified.
const ReferenceSize = 400
