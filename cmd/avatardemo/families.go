package main

import (
	"fmt"

	"github.com/gogpu/avatar"
	"github.com/spf13/cobra"
)

func newFunnyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "funny",
		Short: "Render an emoji face with corner accessories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.v
			o := avatar.FunnyOptions{
				Face:            v.GetString("funny.face"),
				Accessories:     v.GetStringSlice("funny.accessories"),
				Background:      avatar.FunnyBackground(v.GetString("funny.background")),
				BackgroundColor: v.GetString("funny.background-color"),
				Text:            v.GetString("funny.text"),
				TextColor:       v.GetString("funny.text-color"),
			}
			return a.render(cmd, "funny", func(e *avatar.Engine) error {
				_, err := e.RenderFunny(o)
				return err
			})
		},
	}
	flags := cmd.Flags()
	flags.String("face", "", "centre glyph, usually one emoji")
	flags.StringSlice("accessory", nil, "corner glyphs, up to four")
	flags.String("background", "", "background preset")
	flags.String("background-color", "", "colour for the dots and solid presets")
	flags.String("text", "", "caption")
	flags.String("text-color", "", "caption colour")
	a.bind(cmd, map[string]string{
		"face":             "funny.face",
		"accessory":        "funny.accessories",
		"background":       "funny.background",
		"background-color": "funny.background-color",
		"text":             "funny.text",
		"text-color":       "funny.text-color",
	})
	return cmd
}

func newCuteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cute",
		Short: "Render a kawaii animal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.v
			o := avatar.CuteOptions{
				Animal:          avatar.Animal(v.GetString("cute.animal")),
				EyeStyle:        avatar.EyeStyle(v.GetString("cute.eyes")),
				Blush:           v.GetBool("cute.blush"),
				Accessories:     enums[avatar.CuteAccessory](v.GetStringSlice("cute.accessories")),
				BackgroundColor: v.GetString("cute.background-color"),
			}
			return a.render(cmd, "cute", func(e *avatar.Engine) error {
				_, err := e.RenderCute(o)
				return err
			})
		},
	}
	flags := cmd.Flags()
	flags.String("animal", "", "cat, bear, bunny, panda or fox")
	flags.String("eyes", "", "eye style")
	flags.Bool("blush", true, "paint pink cheeks")
	flags.StringSlice("accessory", nil, "accessories, painted in order")
	flags.String("background-color", "", "centre colour of the radial wash")
	a.bind(cmd, map[string]string{
		"animal":           "cute.animal",
		"eyes":             "cute.eyes",
		"blush":            "cute.blush",
		"accessory":        "cute.accessories",
		"background-color": "cute.background-color",
	})
	return cmd
}

func newCoolCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cool",
		Short: "Render a gradient shape with an optional pattern and glow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.v
			o := avatar.CoolOptions{
				ColorStops:   v.GetStringSlice("cool.colors"),
				Shape:        avatar.Shape(v.GetString("cool.shape")),
				Pattern:      avatar.CoolPattern(v.GetString("cool.pattern")),
				GradientKind: avatar.GradientKind(v.GetString("cool.gradient")),
				Glow:         v.GetBool("cool.glow"),
				Text:         v.GetString("cool.text"),
				TextColor:    v.GetString("cool.text-color"),
			}
			return a.render(cmd, "cool", func(e *avatar.Engine) error {
				_, err := e.RenderCool(o)
				return err
			})
		},
	}
	flags := cmd.Flags()
	flags.StringSlice("color", []string{"#667eea", "#764ba2"}, "two or more gradient colours")
	flags.String("shape", "", "circle, square, hexagon or triangle")
	flags.String("pattern", "", "overlay pattern")
	flags.String("gradient", "", "linear, radial or conic")
	flags.Bool("glow", false, "surround the shape with a halo")
	flags.String("text", "", "caption")
	flags.String("text-color", "", "caption colour")
	a.bind(cmd, map[string]string{
		"color":      "cool.colors",
		"shape":      "cool.shape",
		"pattern":    "cool.pattern",
		"gradient":   "cool.gradient",
		"glow":       "cool.glow",
		"text":       "cool.text",
		"text-color": "cool.text-color",
	})
	return cmd
}

func newAnimeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anime",
		Short: "Render an anime-style character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.v
			o := avatar.AnimeOptions{
				HairStyle:        avatar.HairStyle(v.GetString("anime.hair")),
				HairColor:        v.GetString("anime.hair-color"),
				EyeStyle:         avatar.AnimeEyeStyle(v.GetString("anime.eyes")),
				Expression:       avatar.Expression(v.GetString("anime.expression")),
				Accessories:      enums[avatar.AnimeAccessory](v.GetStringSlice("anime.accessories")),
				BackgroundColor:  v.GetString("anime.background-color"),
				BackgroundEffect: avatar.BackgroundEffect(v.GetString("anime.effect")),
			}
			return a.render(cmd, "anime", func(e *avatar.Engine) error {
				_, err := e.RenderAnime(o)
				return err
			})
		},
	}
	flags := cmd.Flags()
	flags.String("hair", "", "hair style")
	flags.String("hair-color", "#4a3728", "hair colour")
	flags.String("eyes", "", "eye style")
	flags.String("expression", "", "facial expression")
	flags.StringSlice("accessory", nil, "accessories, painted in order")
	flags.String("background-color", "", "centre colour of the radial wash")
	flags.String("effect", "", "background effect")
	a.bind(cmd, map[string]string{
		"hair":             "anime.hair",
		"hair-color":       "anime.hair-color",
		"eyes":             "anime.eyes",
		"expression":       "anime.expression",
		"accessory":        "anime.accessories",
		"background-color": "anime.background-color",
		"effect":           "anime.effect",
	})
	return cmd
}

func newBlankCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blank",
		Short: "Render initials on a coloured shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.v
			var scheme avatar.ColorScheme
			if id := v.GetString("blank.scheme"); id != "" {
				cs, ok := avatar.LookupScheme(id)
				if !ok {
					return fmt.Errorf("unknown scheme %q", id)
				}
				scheme = cs
			}
			if bg := v.GetString("blank.background"); bg != "" {
				scheme.Background = bg
			}
			if c := v.GetString("blank.text-color"); c != "" {
				scheme.Text = c
			}

			initials := v.GetString("blank.initials")
			if initials == "" {
				initials = avatar.InitialsFromName(v.GetString("blank.name"))
			}
			o := avatar.BlankOptions{
				Initials:   initials,
				Scheme:     scheme,
				Shape:      avatar.Shape(v.GetString("blank.shape")),
				Pattern:    avatar.BlankPattern(v.GetString("blank.pattern")),
				FontSizePx: v.GetFloat64("blank.font-size"),
			}
			return a.render(cmd, "blank", func(e *avatar.Engine) error {
				_, err := e.RenderBlank(o)
				return err
			})
		},
	}
	flags := cmd.Flags()
	flags.String("initials", "", "one or two characters")
	flags.String("name", "", "display name to derive initials from")
	flags.String("scheme", "", "built-in colour scheme ID")
	flags.String("background", "", "background colour or linear-gradient(...)")
	flags.String("text-color", "", "initials colour")
	flags.String("shape", "", "circle, square, hexagon or triangle")
	flags.String("pattern", "", "overlay pattern")
	flags.Float64("font-size", 0, "initials size at the 400px reference")
	a.bind(cmd, map[string]string{
		"initials":   "blank.initials",
		"name":       "blank.name",
		"scheme":     "blank.scheme",
		"background": "blank.background",
		"text-color": "blank.text-color",
		"shape":      "blank.shape",
		"pattern":    "blank.pattern",
		"font-size":  "blank.font-size",
	})
	return cmd
}
