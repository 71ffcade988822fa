package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sarmadgardezi/portfolio/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in palettes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range theme.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), renderPalette(name, theme.MustLookup(name)))
		}
		return nil
	},
}

func renderPalette(name theme.Name, c theme.Colors) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Width(8).
		Render(string(name))

	swatches := []struct {
		label, hex string
	}{
		{"primary-900", c.Primary900},
		{"primary-500", c.Primary500},
		{"background", c.Background},
		{"text", c.Text},
	}
	cells := make([]string, 0, len(swatches))
	for _, s := range swatches {
		chip := lipgloss.NewStyle().
			Background(lipgloss.Color(s.hex)).
			Render("    ")
		cells = append(cells, chip+" "+lipgloss.NewStyle().Faint(true).Render(s.label+" "+s.hex))
	}

	card := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Background)).
		Foreground(lipgloss.Color(c.Primary900)).
		Padding(0, 1).
		Render("Sarmad Gardezi" + lipgloss.NewStyle().
			Background(lipgloss.Color(c.Background)).
			Foreground(lipgloss.Color(c.Primary500)).
			Render("."))

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, title, card),
		"  "+strings.Join(cells, "  "),
	)
}
