// Package targets is the editor for a participant's target word list.
package targets

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sightwords/internal/participant"
	"github.com/abhisek/sightwords/internal/router"
	"github.com/abhisek/sightwords/internal/screen"
	"github.com/abhisek/sightwords/internal/ui/components"
	"github.com/abhisek/sightwords/internal/ui/layout"
	"github.com/abhisek/sightwords/internal/ui/theme"
	"github.com/abhisek/sightwords/internal/words"
)

// Store is the participant state the editor reads and writes.
type Store interface {
	Targets() []string
	Config() participant.Config
	Bank() *words.Bank
	SetTargets(ctx context.Context, list []string) error
}

// TargetsScreen edits a draft of the target list. Nothing is saved until
// the draft holds a full list and the user saves it.
type TargetsScreen struct {
	store    Store
	draft    []string
	selected int
	input    components.WordInput
	status   string
	dirty    bool
}

var _ screen.Screen = (*TargetsScreen)(nil)
var _ screen.KeyHintProvider = (*TargetsScreen)(nil)

// New creates a new TargetsScreen.
func New(store Store) *TargetsScreen {
	return &TargetsScreen{
		store: store,
		draft: append([]string(nil), store.Targets()...),
		input: components.NewWordInput("type a word and press Enter", 24),
	}
}

func (s *TargetsScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *TargetsScreen) Title() string {
	return "Target Words"
}

func (s *TargetsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Add"},
		{Key: "↑↓", Description: "Select"},
		{Key: "Ctrl+D", Description: "Remove"},
		{Key: "Ctrl+G", Description: "Generate"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TargetsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down":
		if s.selected < len(s.draft)-1 {
			s.selected++
		}
		return s, nil
	case "enter":
		s.add()
		return s, nil
	case "ctrl+d":
		s.remove()
		return s, nil
	case "ctrl+g":
		s.generate()
		return s, nil
	case "ctrl+s":
		s.save()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *TargetsScreen) add() {
	typed := s.input.Value()
	next, err := words.Add(s.draft, typed)
	if err != nil {
		s.input.SetError(err.Error())
		return
	}
	s.draft = next
	s.selected = len(s.draft) - 1
	s.dirty = true
	s.input.Reset()
	s.status = s.lookalikes(words.Normalize(typed))
}

// lookalikes warns when a new word is easy to confuse with another target,
// since the two would then appear as each other's distractors.
func (s *TargetsScreen) lookalikes(word string) string {
	matches := words.CloseMatches(word, s.draft)
	if len(matches) == 0 {
		return ""
	}
	return fmt.Sprintf("%q looks like %s", word, strings.Join(matches, ", "))
}

func (s *TargetsScreen) remove() {
	if len(s.draft) == 0 {
		return
	}
	s.draft = words.Remove(s.draft, s.draft[s.selected])
	s.selected = min(s.selected, max(len(s.draft)-1, 0))
	s.dirty = true
	s.status = ""
}

func (s *TargetsScreen) generate() {
	grade := s.store.Config().GradeLevel
	s.draft = words.Generate(s.store.Bank(), grade)
	s.selected = 0
	s.dirty = true
	s.status = fmt.Sprintf("Picked %d grade %d words", len(s.draft), grade)
}

func (s *TargetsScreen) save() {
	if err := s.store.SetTargets(context.Background(), s.draft); err != nil {
		s.status = err.Error()
		return
	}
	s.dirty = false
	s.status = "Saved"
}

func (s *TargetsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var list strings.Builder
	for i, w := range s.draft {
		line := fmt.Sprintf("%2d. %s", i+1, w)
		if i == s.selected {
			list.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			list.WriteString(theme.Unselected.Render("  " + line))
		}
		list.WriteString("\n")
	}
	for i := len(s.draft); i < words.MaxTargets; i++ {
		list.WriteString(dim.Render(fmt.Sprintf("  %2d. ·", i+1)) + "\n")
	}

	count := fmt.Sprintf("%d/%d words", len(s.draft), words.RequiredTargets)
	if s.dirty {
		count += "  (unsaved)"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(strings.TrimRight(list.String(), "\n"), cw)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(count)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	if s.status != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Assisted.Render(s.status)))
	}
	return b.String()
}
