package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sightwords/internal/ui/theme"
)

// ContentWidth returns the inner width shared by the boxes on a screen so
// they line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Centered places content in the middle of a width x height area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Card wraps content in a rounded box of content width cw.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(content)
}

// Banner renders a highlighted one-line notice.
func Banner(text string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Accent).
		Foreground(theme.Accent).
		Bold(true).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(text)
}
