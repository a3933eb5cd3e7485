package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
)

// ErrNoPlatforms is returned when Export is called without IDs.
var ErrNoPlatforms = errors.New("platform: select at least one platform")

// UnknownPlatformError is returned for an ID missing from the catalogue.
type UnknownPlatformError struct {
	ID string
}

func (e *UnknownPlatformError) Error() string {
	return fmt.Sprintf("platform: unknown platform %q", e.ID)
}

// File is one exported size.
type File struct {
	Spec Spec
	Name string
	Data []byte
}

// Export crops img to every requested catalogue entry and encodes each
// as PNG, in the order given. IDs are resolved before any work starts.
// Cancelling ctx stops the batch between files.
func Export(ctx context.Context, img image.Image, ids ...string) ([]File, error) {
	if len(ids) == 0 {
		return nil, ErrNoPlatforms
	}
	specs := make([]Spec, 0, len(ids))
	for _, id := range ids {
		s, ok := Lookup(id)
		if !ok {
			return nil, &UnknownPlatformError{ID: id}
		}
		specs = append(specs, s)
	}

	files := make([]File, 0, len(specs))
	for _, s := range specs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		out, err := Crop(img, s.TargetPx)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
			return nil, fmt.Errorf("platform: encode %s: %w", s.ID, err)
		}
		slogger().Debug("platform: exported", "id", s.ID, "px", s.TargetPx, "bytes", buf.Len(), "elapsed", time.Since(start))
		files = append(files, File{Spec: s, Name: s.Filename(), Data: buf.Bytes()})
	}
	return files, nil
}
