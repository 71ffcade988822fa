package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarmadgardezi/portfolio/ogimage"
)

var ogFlags struct {
	out       string
	theme     string
	width     int
	height    int
	logoWidth int
}

var ogImageCmd = &cobra.Command{
	Use:   "og-image",
	Short: "Render the Open Graph preview card as PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		colors, err := themeColors(ogFlags.theme)
		if err != nil {
			return err
		}
		img, err := ogimage.Render(colors,
			ogimage.WithSize(ogFlags.width, ogFlags.height),
			ogimage.WithLogoWidth(ogFlags.logoWidth),
		)
		if err != nil {
			return err
		}
		data, err := ogimage.EncodePNG(img)
		if err != nil {
			return err
		}
		if ogFlags.out == "" || ogFlags.out == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(ogFlags.out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", ogFlags.out, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%dx%d)\n", ogFlags.out, ogFlags.width, ogFlags.height)
		return nil
	},
}

func init() {
	f := ogImageCmd.Flags()
	f.StringVarP(&ogFlags.out, "out", "o", "default-og-image.png", `output file ("-" for stdout)`)
	f.StringVar(&ogFlags.theme, "theme", "", "palette (default from config)")
	f.IntVar(&ogFlags.width, "width", ogimage.DefaultWidth, "card width in pixels")
	f.IntVar(&ogFlags.height, "height", ogimage.DefaultHeight, "card height in pixels")
	f.IntVar(&ogFlags.logoWidth, "logo-width", 0, "logo width in pixels (default two thirds of the card)")
}
