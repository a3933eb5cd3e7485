package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/gogpu/avatar"
	"github.com/gogpu/avatar/platform"
	"github.com/spf13/cobra"
)

func newSizesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sizes [image]",
		Short: "Crop an image to social platform profile sizes",
		Long: `Without an image, sizes lists the platform catalogue. With one, it
writes a centre-cropped PNG per selected platform into --dir.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listPlatforms(cmd)
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			img, _, err := avatar.DecodeImage(data)
			if err != nil {
				return err
			}

			ids := a.v.GetStringSlice("sizes.platforms")
			if len(ids) == 0 {
				for _, s := range platform.Catalog() {
					ids = append(ids, s.ID)
				}
			}
			files, err := platform.Export(cmd.Context(), img, ids...)
			if err != nil {
				return err
			}

			dir := a.v.GetString("sizes.dir")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			for _, f := range files {
				path := filepath.Join(dir, f.Name)
				if err := os.WriteFile(path, f.Data, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringSlice("platform", nil, "platform IDs (default all)")
	flags.String("dir", ".", "output directory")
	a.bind(cmd, map[string]string{
		"platform": "sizes.platforms",
		"dir":      "sizes.dir",
	})
	return cmd
}

func listPlatforms(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tDESCRIPTION")
	for _, s := range platform.Catalog() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.DisplaySize(), s.Description)
	}
	return w.Flush()
}

func newFixOrientationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fix-orientation <in> <out>",
		Short: "Rewrite a photo upright according to its EXIF orientation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if o := avatar.ReadOrientation(data); o != avatar.OrientationNormal {
				fmt.Fprintf(cmd.OutOrStdout(), "applying EXIF orientation %d\n", o)
			}
			out, err := avatar.FixOrientation(cmd.Context(), data)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], out, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[1])
			return nil
		},
	}
}
