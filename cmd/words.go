package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sightwords/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the participant's target words",
}

var wordsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List the target words",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(cmd)
		if err != nil {
			return err
		}
		defer ws.Close()

		list := ws.Targets()
		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "No target words yet.")
			return nil
		}
		for i, w := range list {
			fmt.Fprintf(out, "%2d. %s\n", i+1, w)
		}
		return nil
	},
}

var wordsSetCmd = &cobra.Command{
	Use:   "set <word>...",
	Short: "Replace the target words",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := words.Parse(args)
		if err != nil {
			return err
		}
		return saveTargets(cmd, list)
	},
}

var wordsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Pick target words at random from the grade's sight words",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(cmd)
		if err != nil {
			return err
		}
		defer ws.Close()

		grade := ws.Config().GradeLevel
		if cmd.Flags().Changed("grade") {
			grade, _ = cmd.Flags().GetInt("grade")
		}
		list := words.Generate(ws.Bank(), grade)
		if err := ws.SetTargets(cmd.Context(), list); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d grade %d words: %s\n", len(list), grade, strings.Join(list, ", "))
		return nil
	},
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Load target words from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		tf, err := words.ImportYAML(f)
		if err != nil {
			return err
		}
		if tf.Participant != "" && !cmd.Flags().Changed("participant") {
			_ = cmd.Flags().Set("participant", tf.Participant)
		}
		return saveTargets(cmd, tf.Targets)
	},
}

func saveTargets(cmd *cobra.Command, list []string) error {
	ws, err := openWorkspace(cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	if err := ws.SetTargets(cmd.Context(), list); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d target words for %s\n", len(list), ws.ID())
	return nil
}

func init() {
	wordsGenerateCmd.Flags().Int("grade", 0, "Grade to draw words from (defaults to the participant's grade)")

	wordsCmd.AddCommand(wordsShowCmd)
	wordsCmd.AddCommand(wordsSetCmd)
	wordsCmd.AddCommand(wordsGenerateCmd)
	wordsCmd.AddCommand(wordsImportCmd)
}
