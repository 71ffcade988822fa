package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarmadgardezi/portfolio/logo"
	"github.com/sarmadgardezi/portfolio/ogimage"
	"github.com/sarmadgardezi/portfolio/theme"
)

var logoFlags struct {
	theme     string
	text      string
	circle    string
	link      bool
	unmounted bool
}

var logoCmd = &cobra.Command{
	Use:   "logo",
	Short: "Print the logo markup",
	RunE: func(cmd *cobra.Command, args []string) error {
		colors, err := themeColors(logoFlags.theme)
		if err != nil {
			return err
		}
		props := logo.Props{AsLink: logoFlags.link}
		if logoFlags.text != "" || logoFlags.circle != "" {
			for _, v := range []string{logoFlags.text, logoFlags.circle} {
				if v == "" {
					continue
				}
				if _, err := ogimage.ParseHex(v); err != nil {
					return err
				}
			}
			props.Colors = &logo.Colors{Text: logoFlags.text, Circle: logoFlags.circle}
		}
		if err := logo.Render(!logoFlags.unmounted, colors, props).Render(cmd.Context(), cmd.OutOrStdout()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	f := logoCmd.Flags()
	f.StringVar(&logoFlags.theme, "theme", "", "palette (default from config)")
	f.StringVar(&logoFlags.text, "text", "", "wordmark fill override (#hex)")
	f.StringVar(&logoFlags.circle, "circle", "", "accent fill override (#hex)")
	f.BoolVar(&logoFlags.link, "link", false, "wrap the logo in a link to the home page")
	f.BoolVar(&logoFlags.unmounted, "unmounted", false, "print the pre-hydration placeholder")
}

// themeColors resolves a palette flag, falling back to the configured default.
func themeColors(flag string) (theme.Colors, error) {
	if flag != "" && !theme.IsKnown(flag) {
		return theme.Colors{}, fmt.Errorf("unknown theme %q (available: %v)", flag, theme.Names())
	}
	name := flag
	if name == "" {
		name = appConfig.DefaultTheme
	}
	return theme.MustLookup(theme.ParseName(name)), nil
}
