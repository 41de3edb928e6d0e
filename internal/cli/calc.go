package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"screencmp/internal/screen"
)

var calcCmd = &cobra.Command{
	Use:   "calc [diagonal] [aspect]",
	Short: "Derive physical dimensions for one screen",
	Long:  `Computes width, height, and area for a diagonal and aspect ratio, e.g. "screencmp calc 27 16:9". Run without arguments for an interactive form.`,
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			diagonal         float64
			aspectX, aspectY float64
			err              error
		)

		switch len(args) {
		case 2:
			diagonal, err = strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid diagonal %q: %w", args[0], err)
			}
			aspectX, aspectY, err = ParseAspect(args[1])
			if err != nil {
				return err
			}

		case 0:
			diagonal, aspectX, aspectY, err = promptForScreen()
			if err != nil {
				return err
			}

		default:
			return fmt.Errorf("give both a diagonal and an aspect ratio, or neither")
		}

		if diagonal <= 0 {
			return fmt.Errorf("diagonal must be positive, got %g", diagonal)
		}

		dims := screen.Calculate(diagonal, aspectX, aspectY)
		fmt.Fprint(cmd.OutOrStdout(), FormatDimensions(diagonal, aspectX, aspectY, dims))
		return nil
	},
}

// promptForScreen collects a diagonal and aspect ratio interactively.
func promptForScreen() (float64, float64, float64, error) {
	var diagonalStr, aspectStr string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Diagonal (inches)").
				Placeholder("27").
				Value(&diagonalStr).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return fmt.Errorf("must be a number")
					}
					if v <= 0 {
						return fmt.Errorf("must be positive")
					}
					return nil
				}),
			huh.NewInput().
				Title("Aspect ratio").
				Placeholder("16:9").
				Value(&aspectStr).
				Validate(func(s string) error {
					_, _, err := ParseAspect(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return 0, 0, 0, fmt.Errorf("form cancelled: %w", err)
	}

	diagonal, err := strconv.ParseFloat(strings.TrimSpace(diagonalStr), 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid diagonal %q: %w", diagonalStr, err)
	}
	aspectX, aspectY, err := ParseAspect(aspectStr)
	if err != nil {
		return 0, 0, 0, err
	}
	return diagonal, aspectX, aspectY, nil
}
