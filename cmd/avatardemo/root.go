package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/avatar"
	"github.com/gogpu/avatar/text"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the configuration shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix("avatar")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "avatardemo",
		Short: "avatardemo renders procedural and photo avatars",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "configuration file (YAML or JSON)")
	flags.Int("size", avatar.ReferenceSize, "surface edge in pixels")
	flags.Uint64("seed", 0, "seed for scattered decorations (random when unset)")
	flags.Float64("quality", avatar.DefaultJPEGQuality, "JPEG quality in (0, 1]")
	flags.StringP("out", "o", "", "output file, .png, .jpg or .jpeg (default <family>.png)")
	flags.BoolP("verbose", "v", false, "log render details to stderr")
	flags.String("font", "", "TrueType/OpenType file for regular text")
	flags.String("bold-font", "", "TrueType/OpenType file for captions and initials")
	flags.String("emoji-font", "", "fallback font for runes the text fonts lack")
	flags.Bool("system-emoji", false, "look up an installed colour emoji font when --emoji-font is unset")
	flags.String("font-cache", "", "directory for the system font index (default user cache)")

	a.bind(root, map[string]string{
		"size":         "size",
		"seed":         "seed",
		"quality":      "quality",
		"out":          "out",
		"verbose":      "verbose",
		"font":         "fonts.regular",
		"bold-font":    "fonts.bold",
		"emoji-font":   "fonts.emoji",
		"system-emoji": "fonts.system_emoji",
		"font-cache":   "fonts.cache",
	})

	root.AddCommand(
		newFunnyCmd(a),
		newCuteCmd(a),
		newCoolCmd(a),
		newAnimeCmd(a),
		newBlankCmd(a),
		newPhotoCmd(a),
		newSizesCmd(a),
		newFixOrientationCmd(),
	)
	return root
}

// bind maps flag names of cmd to configuration keys.
func (a *app) bind(cmd *cobra.Command, keys map[string]string) {
	for name, key := range keys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(name)
		}
		checkNoErr(a.v.BindPFlag(key, f))
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	if a.v.GetBool("verbose") {
		avatar.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	return nil
}

// engine builds an engine from the shared settings.
func (a *app) engine() (*avatar.Engine, error) {
	opts := []avatar.EngineOption{
		avatar.WithSize(a.v.GetInt("size")),
		avatar.WithJPEGQuality(a.v.GetFloat64("quality")),
	}
	if a.v.IsSet("seed") {
		opts = append(opts, avatar.WithSeed(a.v.GetUint64("seed")))
	}

	fonts := []struct {
		key string
		opt func(*text.FontSource) avatar.EngineOption
	}{
		{"fonts.regular", avatar.WithFontSource},
		{"fonts.bold", avatar.WithBoldFontSource},
		{"fonts.emoji", avatar.WithEmojiFontSource},
	}
	for _, f := range fonts {
		path := a.v.GetString(f.key)
		if path == "" {
			continue
		}
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, f.opt(src))
	}
	if a.v.GetString("fonts.emoji") == "" && a.v.GetBool("fonts.system_emoji") {
		if src := a.systemEmoji(); src != nil {
			opts = append(opts, avatar.WithEmojiFontSource(src))
		}
	}
	return avatar.NewEngine(opts...)
}

// systemEmoji returns an installed emoji font, or nil when none is found.
// Emoji then render as labelled tiles.
func (a *app) systemEmoji() *text.FontSource {
	log := avatar.Logger()
	src, err := text.FindSystemFont(func(format string, args ...any) {
		log.Debug(fmt.Sprintf(format, args...))
	}, a.v.GetString("fonts.cache"), text.EmojiFamilies...)
	if err != nil {
		log.Warn("avatardemo: no system emoji font", "err", err)
		return nil
	}
	log.Debug("avatardemo: system emoji font", "name", src.Name())
	return src
}

// render creates an engine, runs fn on it and saves the surface.
func (a *app) render(cmd *cobra.Command, family string, fn func(e *avatar.Engine) error) error {
	e, err := a.engine()
	if err != nil {
		return err
	}
	if err := fn(e); err != nil {
		return err
	}
	out := a.v.GetString("out")
	if out == "" {
		out = family + ".png"
	}
	if err := e.SaveFile(out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", out, e.Width(), e.Height())
	return nil
}

// enums converts configuration strings to a string-based enum type.
func enums[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}
	out := make([]T, len(values))
	for i, s := range values {
		out[i] = T(s)
	}
	return out
}

func checkNoErr(err error) {
	if err != nil {
		panic(err)
	}
}
