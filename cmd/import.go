package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sightwords/internal/export"
	"github.com/abhisek/sightwords/internal/participant"
)

var importCmd = &cobra.Command{
	Use:   "import <export.json>",
	Short: "Replace a participant's history with a JSON export",
	Long: "import reads a file written by `sightwords export json` and replaces the\n" +
		"participant's baseline and intervention histories with its sessions.\n" +
		"Records that fail validation are skipped and reported.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		b, rejected, err := export.ReadJSON(f)
		if err != nil {
			return err
		}
		if b.ParticipantID != "" && !cmd.Flags().Changed("participant") {
			if err := participant.ValidateID(b.ParticipantID); err != nil {
				return err
			}
			_ = cmd.Flags().Set("participant", b.ParticipantID)
		}

		ws, err := openWorkspace(cmd)
		if err != nil {
			return err
		}
		defer ws.Close()

		sessions, migrated := participant.MigrateLevels(b.Sessions, ws.Config())
		if migrated {
			rt.log.Info("migrated legacy session levels", zap.Int("sessions", len(sessions)))
		}
		if err := ws.ImportHistories(cmd.Context(), b.TargetWords, b.BaselineSessions, sessions, b.Surveys); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Imported %d baseline and %d intervention sessions for %s\n",
			len(b.BaselineSessions), len(sessions), ws.ID())
		for _, e := range rejected {
			rt.log.Warn("skipped imported record", zap.Error(e))
			fmt.Fprintf(out, "  skipped: %v\n", e)
		}
		return nil
	},
}
