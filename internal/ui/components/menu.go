package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sightwords/internal/ui/theme"
)

// MenuItem is one selectable row.
type MenuItem struct {
	Label string

	// Hint is dim text shown after the label, e.g. why an item is locked.
	Hint string

	// Done marks completed items with a check.
	Done bool

	Disabled bool
	Action   func() tea.Cmd
}

// Menu is a vertical navigation menu. Disabled items are skipped by the
// cursor but still shown.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a menu with the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	hint := lipgloss.NewStyle().Foreground(theme.TextDim)
	check := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)

	var b strings.Builder
	for i, item := range m.Items {
		mark := "  "
		if item.Done {
			mark = check.Render("✓ ")
		}

		var line string
		switch {
		case i == m.Selected:
			line = theme.Selected.Render("▸ " + item.Label)
		case item.Disabled:
			line = hint.Render("  " + item.Label)
		default:
			line = theme.Unselected.Render("  " + item.Label)
		}
		b.WriteString(mark + line)
		if item.Hint != "" {
			b.WriteString("  " + hint.Render(item.Hint))
		}
		b.WriteString("\n")
	}
	return b.String()
}
