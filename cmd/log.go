package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sightwords/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the participant's activity log",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := participantID(cmd)
		if err != nil {
			return err
		}
		kind, _ := cmd.Flags().GetString("kind")
		limit, _ := cmd.Flags().GetInt("limit")

		events, err := rt.store.EventRepo().Query(cmd.Context(), id, store.QueryOpts{Kind: kind, Limit: limit})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintf(out, "No events for %s.\n", id)
			return nil
		}
		for _, e := range events {
			payload, _ := json.Marshal(e.Payload)
			fmt.Fprintf(out, "%5d  %s  %-18s  %s\n",
				e.Sequence, e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Kind, payload)
		}
		return nil
	},
}

func init() {
	logCmd.Flags().String("kind", "", "Only show events of this kind (e.g. session_completed)")
	logCmd.Flags().Int("limit", 50, "Maximum number of events (0 for all)")
}
