package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sightwords/internal/ui/theme"
)

const (
	MinWidth  = 72
	MinHeight = 22

	// CompactHeightThreshold is the height below which screens drop
	// decorative art.
	CompactHeightThreshold = 30
)

// KeyHint is a key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactHeight reports whether height is in the compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the window.
func RenderMinSizeMessage(width, height int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Window too small.") +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf(
			"Sessions need at least %d x %d\n(currently %d x %d)",
			MinWidth, MinHeight, width, height))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// Header is the top bar: app name, screen title, participant and points.
type Header struct {
	Title       string
	Participant string
	Points      int
}

// RenderHeader draws the header bar for a screen.
func RenderHeader(title, participant string, points int, width int) string {
	return Header{Title: title, Participant: participant, Points: points}.Render(width)
}

// Render draws h across width columns in three equal columns. The
// participant name is dropped when it does not fit beside the points.
func (h Header) Render(width int) string {
	inner := max(width-4, 0)
	side := inner / 3

	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Sight Words")
	title := lipgloss.NewStyle().Foreground(theme.Text).Render(h.Title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %d", h.Points))
	if h.Participant != "" {
		withName := lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Participant) + "   " + right
		if lipgloss.Width(withName) <= side {
			right = withName
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(side, lipgloss.Left, brand),
		lipgloss.PlaceHorizontal(inner-2*side, lipgloss.Center, title),
		lipgloss.PlaceHorizontal(side, lipgloss.Right, right),
	)
	return bar(row, width)
}

// RenderFooter draws the key hints, dropping trailing hints that do not fit.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	inner := max(width-6, 0)
	var parts []string
	used := 0
	for _, h := range hints {
		part := key.Render(h.Key) + " " + desc.Render(h.Description)
		w := lipgloss.Width(part)
		if len(parts) > 0 {
			w += 3
		}
		if used+w > inner {
			break
		}
		parts = append(parts, part)
		used += w
	}
	return bar(" "+strings.Join(parts, "   "), width)
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderFrame stacks header, content and footer, padding the content to
// fill the remaining height.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
