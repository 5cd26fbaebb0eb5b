package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sightwords/internal/trial"
	"github.com/abhisek/sightwords/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar. percent is in [0,1].
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6
	}
	barWidth := max(p.Width-lipgloss.Width(result)-percentWidth, 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}
	return result
}

// TrialDots renders one mark per trial: the outcome for finished trials,
// a ring for the current one and a dot for the rest.
func TrialDots(outcomes []trial.Outcome, current, total int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	parts := make([]string, 0, total)
	for i := range total {
		switch {
		case i < len(outcomes):
			parts = append(parts, outcomeMark(outcomes[i]))
		case i == current:
			parts = append(parts, theme.Selected.Render("○"))
		default:
			parts = append(parts, dim.Render("·"))
		}
	}
	return strings.Join(parts, " ")
}

func outcomeMark(o trial.Outcome) string {
	switch o {
	case trial.OutcomeCorrect:
		return theme.Correct.Render("●")
	case trial.OutcomeAssisted:
		return theme.Assisted.Render("●")
	}
	return theme.Incorrect.Render("●")
}
