package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"screencmp/internal/screen"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the color cycle assigned to new screens",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for i, color := range screen.Palette() {
			swatch := lipgloss.NewStyle().
				Foreground(lipgloss.Color(color)).
				Render("■■■■")
			fmt.Fprintf(out, "%d  %s  %s\n", i, swatch, color)
		}
		return nil
	},
}
