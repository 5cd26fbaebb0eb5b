package history

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sightwords/internal/export"
	"github.com/abhisek/sightwords/internal/mastery"
	"github.com/abhisek/sightwords/internal/router"
	"github.com/abhisek/sightwords/internal/screen"
	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/trial"
	"github.com/abhisek/sightwords/internal/ui/layout"
	"github.com/abhisek/sightwords/internal/ui/theme"
)

// Source is the participant state the history screen reads.
type Source interface {
	Baseline() []session.Record
	Sessions() []session.Record
	Reports() []mastery.Report
}

// HistoryScreen lists past sessions, newest first, under the mastery report
// of each level.
type HistoryScreen struct {
	src      Source
	records  []session.Record
	reports  []mastery.Report
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(src Source) *HistoryScreen {
	return &HistoryScreen{src: src, expanded: make(map[int]bool)}
}

func (s *HistoryScreen) Init() tea.Cmd {
	s.records = export.Combined(s.src.Baseline(), s.src.Sessions())
	slices.Reverse(s.records)
	s.reports = s.src.Reports()
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Words"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.records)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderReports(width))
	b.WriteString("\n")

	if len(s.records) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No sessions yet. Start with the baseline!"))
		return b.String()
	}

	// Keep the selected row on screen.
	rows := max(height-len(s.reports)-6, 3)
	start := 0
	if s.selected >= rows {
		start = s.selected - rows + 1
	}

	for i := start; i < len(s.records) && i < start+rows; i++ {
		r := s.records[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %-13s #%-3d %2d/%-2d  %5.1f%%",
			prefix, r.Date.Format("Jan 02, 2006"), export.SessionType(r), r.SessionNumber,
			r.Correct, r.Total, r.Accuracy)
		if r.MasteryAchieved {
			line += "  ✓ mastered"
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderWords(r)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *HistoryScreen) renderReports(width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	var b strings.Builder
	for _, rep := range s.reports {
		status := dim.Render("learning")
		switch {
		case rep.Achieved:
			status = theme.Correct.Render("mastered")
		case rep.TotalSessions == 0:
			status = dim.Render("not started")
		}
		line := fmt.Sprintf("%-8s %s   recent %.0f%%   prompted %.0f%% (%d)   unprompted %.0f%% (%d)",
			rep.Level.Label(), status, rep.Accuracy,
			rep.PromptedAccuracy, rep.PromptedSessions,
			rep.UnpromptedAccuracy, rep.UnpromptedSessions)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return b.String()
}

func renderWords(r session.Record) string {
	parts := make([]string, 0, len(r.Words))
	for i, w := range r.Words {
		style := theme.Incorrect
		if i < len(r.Outcomes) {
			switch r.Outcomes[i] {
			case trial.OutcomeCorrect:
				style = theme.Correct
			case trial.OutcomeAssisted:
				style = theme.Assisted
			}
		}
		parts = append(parts, style.Render(w))
	}
	return "    " + strings.Join(parts, " ")
}
