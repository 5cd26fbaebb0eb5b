package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/sightwords/internal/export"
	"github.com/abhisek/sightwords/internal/workspace"
)

type exportFunc func(w io.Writer, ws *workspace.Workspace, now time.Time) error

var exporters = map[string]struct {
	ext   string
	write exportFunc
}{
	"sessions": {"csv", func(w io.Writer, ws *workspace.Workspace, _ time.Time) error {
		return export.WriteSessionsCSV(w, ws.Baseline(), ws.Sessions())
	}},
	"baseline": {"csv", func(w io.Writer, ws *workspace.Workspace, _ time.Time) error {
		return export.WriteBaselineCSV(w, ws.Baseline())
	}},
	"surveys": {"csv", func(w io.Writer, ws *workspace.Workspace, _ time.Time) error {
		return export.WriteSurveysCSV(w, ws.Surveys())
	}},
	"json": {"json", func(w io.Writer, ws *workspace.Workspace, now time.Time) error {
		b := export.NewBundle(ws.ID(), ws.Targets(), ws.Baseline(), ws.Sessions(), ws.Surveys(), now)
		return export.WriteJSON(w, b)
	}},
}

var exportCmd = &cobra.Command{
	Use:       "export <sessions|baseline|surveys|json>",
	Short:     "Write session data to a CSV or JSON file",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"sessions", "baseline", "surveys", "json"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ex := exporters[args[0]]
		ws, err := openWorkspace(cmd)
		if err != nil {
			return err
		}
		defer ws.Close()

		now := time.Now()
		path, _ := cmd.Flags().GetString("output")
		if path == "-" {
			return ex.write(cmd.OutOrStdout(), ws, now)
		}
		if path == "" {
			path = export.Filename(args[0], ex.ext, now)
		}

		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := ex.write(f, ws, now); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (\"-\" for stdout, default sightwords-<kind>-<date>.<ext>)")
}
