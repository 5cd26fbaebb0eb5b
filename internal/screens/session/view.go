package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sightwords/internal/trial"
	"github.com/abhisek/sightwords/internal/ui/components"
	"github.com/abhisek/sightwords/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, height, s.errMsg)
	case s.confirmQuit:
		return renderQuitConfirm(width)
	case s.saving:
		return center(width).Foreground(theme.TextDim).Render("\n\n\n  Saving session...")
	case s.cur.total == 0:
		return center(width).Foreground(theme.TextDim).Render("\n\n\n  Preparing your session...")
	}
	return s.renderTrial(width)
}

func (s *SessionScreen) renderTrial(width int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Session %d", s.run.Number))
	clock := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Word %d/%d   %ds", s.cur.index+1, s.cur.total, int(s.remaining.Seconds())))
	if pad := width - lipgloss.Width(info) - lipgloss.Width(clock) - 4; pad > 0 {
		info += strings.Repeat(" ", pad) + clock
	}
	b.WriteString(info + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(center(width).Render(components.TrialDots(s.outcomes, s.cur.index, s.cur.total)))
	b.WriteString("\n\n")

	b.WriteString(center(width).Render(theme.Word.Render("🔊  Listen, then pick the word")))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View(cw/2)))
	b.WriteString("\n")
	b.WriteString(center(width).Render(s.feedback()))

	return b.String()
}

// feedback returns the line under the options. Probe sessions show no
// feedback on answers.
func (s *SessionScreen) feedback() string {
	probe := s.mode.TrialMode() == trial.ModeProbe
	switch {
	case s.cur.tryAgain && s.cur.retries > 1:
		return theme.Incorrect.Render(fmt.Sprintf("Try again (%d tries)", s.cur.retries))
	case s.cur.tryAgain:
		return theme.Incorrect.Render("Try again")
	case !s.cur.finalized:
		if s.cur.prompt {
			return theme.Assisted.Render(fmt.Sprintf("This one: %s", s.cur.word))
		}
		return ""
	case probe:
		return ""
	}

	switch s.cur.outcome {
	case trial.OutcomeCorrect:
		return theme.Correct.Render("Great job!")
	case trial.OutcomeAssisted:
		return theme.Assisted.Render("Good!")
	case trial.OutcomeNoAnswer:
		return theme.Assisted.Render(fmt.Sprintf("This one: %s", s.cur.word))
	}
	return ""
}

func center(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center(width).Foreground(theme.Text).Bold(true).Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(center(width).Foreground(theme.TextDim).Render("This session will not be saved."))
	b.WriteString("\n\n")
	b.WriteString(center(width).Foreground(theme.Error).Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(center(width).Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	msg := lipgloss.NewStyle().Foreground(theme.Error).Render(errMsg) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Press any key to go back.")
	return components.Centered(msg, width, height)
}
