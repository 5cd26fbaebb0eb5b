package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sightwords/internal/ui/theme"
)

// WordInput wraps bubbles/textinput for entering a single word. Keys that
// cannot appear in a word are dropped before they reach the model.
type WordInput struct {
	Model textinput.Model
	err   string
}

// NewWordInput creates a focused input.
func NewWordInput(placeholder string, maxLen int) WordInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	if maxLen > 0 {
		ti.CharLimit = maxLen
	}
	ti.Focus()
	return WordInput{Model: ti}
}

// Init returns the cursor blink command.
func (t WordInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards msg to the text input, filtering word characters.
func (t WordInput) Update(msg tea.Msg) (WordInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !wordRune(rune(key[0])) {
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func wordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '\'' || r == '-'
}

// View renders the input and the last validation error.
func (t WordInput) View() string {
	view := t.Model.View()
	if t.err != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(t.err)
	}
	return view
}

// Value returns the typed text.
func (t WordInput) Value() string {
	return t.Model.Value()
}

// Reset clears the text and error.
func (t *WordInput) Reset() {
	t.Model.Reset()
	t.err = ""
}

// SetError shows msg under the input until the next Reset.
func (t *WordInput) SetError(msg string) {
	t.err = msg
}
