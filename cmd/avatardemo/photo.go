package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/avatar"
	"github.com/spf13/cobra"
)

func newPhotoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photo <image>",
		Short: "Compose an uploaded photo with filter, stickers and caption",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			v := a.v
			o := avatar.PhotoOptions{
				Source:          src,
				Text:            v.GetString("photo.text"),
				TextColor:       v.GetString("photo.text-color"),
				TextPosition:    avatar.TextPosition(v.GetString("photo.text-position")),
				Filter:          avatar.Filter(v.GetString("photo.filter")),
				Background:      avatar.FunnyBackground(v.GetString("photo.background")),
				BackgroundColor: v.GetString("photo.background-color"),
			}
			o.Crop, err = parseCrop(v.GetIntSlice("photo.crop"), avatar.CropShape(v.GetString("photo.crop-shape")))
			if err != nil {
				return err
			}
			for _, s := range v.GetStringSlice("photo.stickers") {
				st, err := parseSticker(s)
				if err != nil {
					return err
				}
				o.Stickers = append(o.Stickers, st)
			}
			return a.render(cmd, "photo", func(e *avatar.Engine) error {
				_, err := e.RenderPhoto(cmd.Context(), o)
				return err
			})
		},
	}
	flags := cmd.Flags()
	flags.IntSlice("crop", nil, "crop region x,y,w,h in source pixels (default centre square)")
	flags.String("crop-shape", "", "square or circle")
	flags.StringArray("sticker", nil, "glyph@x,y,size[,rotation] in reference units")
	flags.String("filter", "", "none, grayscale, sepia, vintage, blue or warm")
	flags.String("text", "", "caption")
	flags.String("text-color", "", "caption colour")
	flags.String("text-position", "", "top or bottom")
	flags.String("background", "", "background preset behind transparent photos")
	flags.String("background-color", "", "background colour")
	a.bind(cmd, map[string]string{
		"crop":             "photo.crop",
		"crop-shape":       "photo.crop-shape",
		"sticker":          "photo.stickers",
		"filter":           "photo.filter",
		"text":             "photo.text",
		"text-color":       "photo.text-color",
		"text-position":    "photo.text-position",
		"background":       "photo.background",
		"background-color": "photo.background-color",
	})
	return cmd
}

// parseCrop builds a crop region from x,y,w,h. With no values only the
// shape is carried, which selects the centre square.
func parseCrop(v []int, shape avatar.CropShape) (*avatar.CropRegion, error) {
	switch len(v) {
	case 0:
		if shape == "" {
			return nil, nil
		}
		return &avatar.CropRegion{Shape: shape}, nil
	case 4:
		return &avatar.CropRegion{X: v[0], Y: v[1], W: v[2], H: v[3], Shape: shape}, nil
	}
	return nil, fmt.Errorf("crop wants x,y,w,h, got %d values", len(v))
}

// parseSticker parses glyph@x,y,size[,rotation].
func parseSticker(s string) (avatar.Sticker, error) {
	glyph, rest, ok := strings.Cut(s, "@")
	if !ok || glyph == "" {
		return avatar.Sticker{}, fmt.Errorf("sticker %q: want glyph@x,y,size[,rotation]", s)
	}
	parts := strings.Split(rest, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return avatar.Sticker{}, fmt.Errorf("sticker %q: want 3 or 4 numbers, got %d", s, len(parts))
	}
	nums := make([]float64, 4)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return avatar.Sticker{}, fmt.Errorf("sticker %q: %w", s, err)
		}
		nums[i] = f
	}
	return avatar.Sticker{Glyph: glyph, X: nums[0], Y: nums[1], SizePx: nums[2], RotationDeg: nums[3]}, nil
}
