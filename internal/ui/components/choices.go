package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sightwords/internal/ui/theme"
)

// Choices is the answer grid of a trial. It only tracks the cursor and what
// to highlight; scoring belongs to the trial engine.
type Choices struct {
	Options  []string
	Selected int

	// Wrong holds options already picked incorrectly in this trial.
	Wrong map[string]bool

	// Reveal highlights the correct word, e.g. after a timeout.
	Reveal string

	Locked bool
}

// NewChoices creates a grid over options.
func NewChoices(options []string) Choices {
	return Choices{Options: options, Wrong: map[string]bool{}}
}

// Update moves the cursor. It returns the picked option, if any: on enter,
// or directly on the number keys 1-4.
func (c Choices) Update(msg tea.Msg) (Choices, string) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || c.Locked || len(c.Options) == 0 {
		return c, ""
	}

	key := kmsg.String()
	switch key {
	case "up", "k", "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j", "right", "l":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter", "space":
		return c, c.Options[c.Selected]
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(c.Options) {
			c.Selected = i
			return c, c.Options[i]
		}
	}
	return c, ""
}

// View renders the options as numbered rows.
func (c Choices) View(width int) string {
	row := lipgloss.NewStyle().Width(width).Padding(0, 1)

	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected && !c.Locked {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case c.Reveal != "" && opt == c.Reveal:
			style = theme.Correct
		case c.Wrong[opt]:
			style = theme.Incorrect
		case c.Locked || c.Reveal != "":
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(row.Render(style.Render(line)) + "\n")
	}
	return b.String()
}
