package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var participantCmd = &cobra.Command{
	Use:   "participant",
	Short: "Manage participants",
}

var participantListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered participants",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := rt.registry.List(cmd.Context())
		if err != nil {
			return err
		}
		cur, err := rt.registry.Current(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, id := range ids {
			mark := " "
			if id == cur {
				mark = "*"
			}
			fmt.Fprintf(out, "%s %s\n", mark, id)
		}
		if len(ids) == 0 {
			fmt.Fprintln(out, "No participants yet.")
		}
		return nil
	},
}

var participantUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Select the participant later commands act on",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := rt.registry.Use(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Now using participant %s\n", args[0])
		return nil
	},
}

var participantShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the participant's settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(cmd)
		if err != nil {
			return err
		}
		defer ws.Close()

		cfg := ws.Config()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Participant:   %s\n", ws.ID())
		fmt.Fprintf(out, "Grade level:   %d\n", cfg.GradeLevel)
		fmt.Fprintf(out, "Reading level: %d\n", cfg.ReadingLevel)
		fmt.Fprintf(out, "Level 2 grade: %d\n", cfg.Midpoint())
		fmt.Fprintf(out, "Baseline:      %d sessions\n", len(ws.Baseline()))
		fmt.Fprintf(out, "Intervention:  %d sessions\n", len(ws.Sessions()))
		fmt.Fprintf(out, "Surveys:       %d\n", len(ws.Surveys()))
		return nil
	},
}

var participantSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change grade and reading level",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(cmd)
		if err != nil {
			return err
		}
		defer ws.Close()

		cfg := ws.Config()
		if cmd.Flags().Changed("grade") {
			cfg.GradeLevel, _ = cmd.Flags().GetInt("grade")
		}
		if cmd.Flags().Changed("reading") {
			cfg.ReadingLevel, _ = cmd.Flags().GetInt("reading")
		}
		if err := ws.SetConfig(cmd.Context(), cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Grade %d, reading level %d saved for %s\n",
			cfg.GradeLevel, cfg.ReadingLevel, ws.ID())
		return nil
	},
}

func init() {
	participantSetCmd.Flags().Int("grade", 0, "Grade level (5-8)")
	participantSetCmd.Flags().Int("reading", 0, "Reading level, below the grade level (1-7)")

	participantCmd.AddCommand(participantListCmd)
	participantCmd.AddCommand(participantUseCmd)
	participantCmd.AddCommand(participantShowCmd)
	participantCmd.AddCommand(participantSetCmd)
}
