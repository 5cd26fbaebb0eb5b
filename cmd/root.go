package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sightwords",
	Short: "Sight-word trials with mastery tracking",
	Long: "sightwords runs timed sight-word sessions for one participant at a time: a\n" +
		"baseline phase, three prompted intervention levels and a final target-word\n" +
		"check, each unlocked by the mastery of the one before.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	defer teardown()
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides SIGHTWORDS_DB env var)")
	pf.String("config", "", "Path to a YAML config file (overrides SIGHTWORDS_CONFIG env var)")
	pf.StringP("participant", "p", "", "Participant ID (defaults to the last one used)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(participantCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(surveyCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
