package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/sightwords/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the session menu for the current participant",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp loads the participant and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	return app.Run(app.Options{Workspace: ws, Logger: rt.log})
}
