package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"screencmp/internal/config"
	"screencmp/internal/logger"
	"screencmp/internal/profile"
	"screencmp/internal/screen"
	"screencmp/internal/tui"
)

var collection *screen.Collection

// RootCmd is the root command for the CLI.
var RootCmd = &cobra.Command{
	Use:   "screencmp",
	Short: "Compare physical screen sizes",
	Long:  `A terminal tool that derives width, height, and area for a set of screen specifications so they can be compared side by side.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch TUI
		model := tui.NewModel(collection)

		watcher, err := profile.NewWatcher()
		if err != nil {
			logger.Warn("profile watcher unavailable", "error", err)
		} else if err := watcher.Start(); err != nil {
			logger.Warn("profile watcher failed to start", "error", err)
		} else {
			model.SetWatcher(watcher)
		}

		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	cobra.OnInitialize(initCollection)

	RootCmd.AddCommand(calcCmd)
	RootCmd.AddCommand(paletteCmd)
}

// initCollection seeds the collection from the profile, or the built-in
// presets when no profile exists.
func initCollection() {
	path, err := config.ProfilePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving profile path: %v\n", err)
		os.Exit(1)
	}

	prof, err := config.LoadProfile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}

	collection = screen.NewCollectionFrom(profile.Seed(prof))
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
