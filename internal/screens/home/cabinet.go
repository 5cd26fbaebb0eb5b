package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sightwords/internal/rewards"
	"github.com/abhisek/sightwords/internal/ui/components"
	"github.com/abhisek/sightwords/internal/ui/theme"
)

const titleFull = `╔═╗╦╔═╗╦ ╦╔╦╗  ╦ ╦╔═╗╦═╗╔╦╗╔═╗
╚═╗║║ ╦╠═╣ ║   ║║║║ ║╠╦╝ ║║╚═╗
╚═╝╩╚═╝╩ ╩ ╩   ╚╩╝╚═╝╩╚══╩╝╚═╝`

const titleCompact = "S I G H T   W O R D S"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	title := titleFull
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

type stats struct {
	words    int
	points   int
	mastered int
	phase    string
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(s stats, cw int) string {
	points := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	mastered := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	line := fmt.Sprintf("%s  %s  %s  %s",
		points.Render(fmt.Sprintf("★ %d", s.points)),
		mastered.Render(fmt.Sprintf("✓ %d/3 levels", s.mastered)),
		dim.Render(fmt.Sprintf("%d words", s.words)),
		dim.Render(s.phase),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderCelebrations lists milestones that have not been acknowledged yet.
func renderCelebrations(pending []rewards.Milestone, cw int) string {
	lines := make([]string, 0, len(pending)+1)
	for _, m := range pending {
		text := fmt.Sprintf("%s %s", m.Type.Icon(), m.Type.DisplayName())
		if m.Type == rewards.MilestoneMastery {
			text += fmt.Sprintf(": Level %d", m.Level)
		}
		lines = append(lines, text)
	}
	lines = append(lines, "press c to celebrate")
	return components.Banner(strings.Join(lines, "\n"), cw)
}

// renderCabinetFrame wraps content in a double-border frame, centering it
// vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
