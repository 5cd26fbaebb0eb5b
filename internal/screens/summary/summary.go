package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sightwords/internal/mastery"
	"github.com/abhisek/sightwords/internal/progression"
	"github.com/abhisek/sightwords/internal/router"
	"github.com/abhisek/sightwords/internal/screen"
	"github.com/abhisek/sightwords/internal/ui/components"
	"github.com/abhisek/sightwords/internal/ui/layout"
	"github.com/abhisek/sightwords/internal/ui/theme"
	"github.com/abhisek/sightwords/internal/workspace"
)

// SummaryScreen displays the result of a finished session.
type SummaryScreen struct {
	mode   progression.Mode
	result *workspace.Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(mode progression.Mode, result *workspace.Result) *SummaryScreen {
	return &SummaryScreen{mode: mode, result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	if res == nil {
		return ""
	}
	rec := res.Record
	cw := components.ContentWidth(width)
	line := func(style lipgloss.Style, text string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(text)) + "\n"
	}
	text := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(line(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		fmt.Sprintf("%s, session %d complete!", s.mode.Label(), rec.SessionNumber)))
	b.WriteString("\n")

	var stats string
	if rec.IsProbe() {
		stats = fmt.Sprintf("Correct: %d    Incorrect: %d    Accuracy: %.0f%%",
			rec.Correct, rec.Incorrect, rec.Accuracy)
	} else {
		stats = fmt.Sprintf("Correct: %d    Assisted: %d    No answer: %d    Accuracy: %.0f%%",
			rec.Correct, rec.Assisted, rec.NoAnswer, rec.Accuracy)
	}
	b.WriteString(components.Card(stats+"\n"+components.TrialDots(rec.Outcomes, -1, rec.Total), cw))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewProgressBar("Accuracy", rec.Accuracy/100, true, cw).View()))
	b.WriteString("\n\n")

	if avg := rec.AverageResponseTime(); avg > 0 {
		b.WriteString(line(dim, fmt.Sprintf("Average response time: %.2fs", avg)))
	}
	if res.Points > 0 {
		b.WriteString(line(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
			fmt.Sprintf("★ +%d points   (total %d, best streak %d)", res.Points, res.TotalPoints, res.BestStreak)))
	}

	if t := res.Transition; t != nil && t.To == mastery.StateMastered {
		b.WriteString("\n")
		b.WriteString(line(theme.Correct, fmt.Sprintf("%s mastered!", t.Level.Label())))
	}
	if res.BaselineEstablished {
		b.WriteString("\n")
		b.WriteString(line(theme.Correct, "Baseline established. Level 1 is unlocked."))
	}
	if res.SuggestedGrade > 0 {
		b.WriteString("\n")
		b.WriteString(line(theme.Assisted,
			fmt.Sprintf("Perfect scores! Consider raising the grade level to %d.", res.SuggestedGrade)))
	}

	for _, m := range res.Celebrations {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			components.Banner(fmt.Sprintf("%s %s", m.Type.Icon(), m.Type.DisplayName()), cw)))
		b.WriteString("\n")
	}

	if len(rec.Words) > 0 {
		b.WriteString("\n")
		b.WriteString(line(text, strings.Join(rec.Words, "  ")))
	}
	return b.String()
}
