package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sightwords/internal/progression"
)

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"stats"},
	Short:   "Show which sessions are unlocked and progress toward mastery",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(cmd)
		if err != nil {
			return err
		}
		defer ws.Close()

		out := cmd.OutOrStdout()
		cfg := ws.Config()
		fmt.Fprintf(out, "Participant %s   grade %d   reading level %d   ★ %d points\n",
			ws.ID(), cfg.GradeLevel, cfg.ReadingLevel, ws.Points())
		fmt.Fprintf(out, "Target words (%d): %s\n\n", len(ws.Targets()), strings.Join(ws.Targets(), ", "))

		fmt.Fprintf(out, "%-14s  %-10s  %s\n", "Mode", "Status", "Note")
		fmt.Fprintln(out, strings.Repeat("─", 70))
		for _, st := range ws.Statuses() {
			fmt.Fprintf(out, "%-14s  %-10s  %s\n", st.Mode.Label(), statusWord(st), st.Reason)
		}

		fmt.Fprintf(out, "\n%-8s  %8s  %8s  %10s  %12s  %s\n",
			"Level", "Sessions", "Recent", "Prompted", "Unprompted", "Mastered")
		fmt.Fprintln(out, strings.Repeat("─", 70))
		for _, rep := range ws.Reports() {
			mastered := ""
			if rep.Achieved {
				mastered = "✓"
			}
			fmt.Fprintf(out, "%-8s  %8d  %7.1f%%  %9.1f%%  %11.1f%%  %s\n",
				rep.Level.Label(), rep.TotalSessions, rep.Accuracy,
				rep.PromptedAccuracy, rep.UnpromptedAccuracy, mastered)
		}

		for _, m := range ws.Pending() {
			fmt.Fprintf(out, "\n%s %s", m.Type.Icon(), m.Type.DisplayName())
		}
		fmt.Fprintln(out)
		return nil
	},
}

func statusWord(st progression.Status) string {
	switch {
	case st.Completed:
		return "complete"
	case st.Available:
		return "open"
	}
	return "locked"
}
