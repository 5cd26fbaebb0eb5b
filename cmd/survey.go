package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/sightwords/internal/survey"
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Record and review social-validity surveys",
}

var surveyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a completed survey",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(cmd)
		if err != nil {
			return err
		}
		defer ws.Close()

		resp := survey.New(ws.ID(), time.Now())
		for _, q := range survey.Questions {
			if q.Rating {
				v, _ := cmd.Flags().GetInt(q.Key)
				err = resp.Set(q.Key, v, "")
			} else {
				s, _ := cmd.Flags().GetString(q.Key)
				err = resp.Set(q.Key, 0, s)
			}
			if err != nil {
				return err
			}
		}
		if err := ws.AddSurvey(cmd.Context(), resp); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Survey saved for %s\n", ws.ID())
		return nil
	},
}

var surveyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Average the recorded ratings",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace(cmd)
		if err != nil {
			return err
		}
		defer ws.Close()

		sum := survey.Summarize(ws.Surveys())
		out := cmd.OutOrStdout()
		if sum.Count == 0 {
			fmt.Fprintln(out, "No surveys recorded.")
			return nil
		}
		fmt.Fprintf(out, "%d surveys\n", sum.Count)
		for i, avg := range []float64{sum.Helpfulness, sum.Engagement, sum.EaseOfUse, sum.WouldRecommend} {
			fmt.Fprintf(out, "  %.1f  %s\n", avg, survey.Questions[i].Text)
		}
		return nil
	},
}

func init() {
	for _, q := range survey.Questions {
		if q.Rating {
			surveyAddCmd.Flags().Int(q.Key, 0, fmt.Sprintf("%s (%d-%d)", q.Text, survey.MinRating, survey.MaxRating))
			_ = surveyAddCmd.MarkFlagRequired(q.Key)
		} else {
			surveyAddCmd.Flags().String(q.Key, "", q.Text)
		}
	}

	surveyCmd.AddCommand(surveyAddCmd)
	surveyCmd.AddCommand(surveyShowCmd)
}
