// Package platform fits one source image to the square profile-picture
// sizes of common social platforms.
//
// It is independent of the avatar engine: a centre square of side
// min(W, H) is cut from the source and resampled to each target size.
// No filters, stickers or shape clipping apply.
//
//	files, err := platform.Export(ctx, img, "instagram", "discord-hd")
//	for _, f := range files {
//	    os.WriteFile(f.Name, f.Data, 0o644)
//	}
package platform
