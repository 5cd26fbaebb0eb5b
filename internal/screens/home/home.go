package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sightwords/internal/progression"
	"github.com/abhisek/sightwords/internal/rewards"
	"github.com/abhisek/sightwords/internal/router"
	"github.com/abhisek/sightwords/internal/screen"
	"github.com/abhisek/sightwords/internal/screens/history"
	sessionscreen "github.com/abhisek/sightwords/internal/screens/session"
	"github.com/abhisek/sightwords/internal/screens/targets"
	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/ui/components"
	"github.com/abhisek/sightwords/internal/ui/layout"
	"github.com/abhisek/sightwords/internal/workspace"
)

// HomeScreen lists the session modes with their gate status.
type HomeScreen struct {
	ws      *workspace.Workspace
	menu    components.Menu
	stats   stats
	pending []rewards.Milestone
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(ws *workspace.Workspace) *HomeScreen {
	h := &HomeScreen{ws: ws}
	h.Refresh()
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Refresh reloads the gate status after a session or a target list change.
func (h *HomeScreen) Refresh() tea.Cmd {
	selected := h.menu.Selected

	var items []components.MenuItem
	for _, st := range h.ws.Statuses() {
		mode := st.Mode
		item := components.MenuItem{
			Label:    mode.Label(),
			Done:     st.Completed,
			Disabled: !st.Available,
			Hint:     st.Reason,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: sessionscreen.New(h.ws, mode)}
				}
			},
		}
		if st.Completed {
			item.Hint = "complete"
		}
		items = append(items, item)
	}
	items = append(items,
		components.MenuItem{Label: "Target Words", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: targets.New(h.ws)}
			}
		}},
		components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.ws)}
			}
		}},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}

	gate := h.ws.Gate()
	h.stats = stats{words: len(h.ws.Targets()), points: h.ws.Points(), phase: "baseline phase"}
	for _, l := range session.InterventionLevels {
		if gate.LevelMastered(l) {
			h.stats.mastered++
		}
	}
	if gate.BaselineEstablished() {
		h.stats.phase = "intervention phase"
	}
	h.pending = h.ws.Pending()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "c" && len(h.pending) > 0 {
		for _, m := range h.pending {
			if err := h.ws.Dismiss(context.Background(), m); err != nil {
				h.errMsg = err.Error()
				break
			}
		}
		h.pending = h.ws.Pending()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	compact := layout.IsCompactHeight(height+8) || width < 100
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, RenderMascot(h.mascot()))
	}
	sections = append(sections, renderStatsBar(h.stats, cw))
	if len(h.pending) > 0 {
		sections = append(sections, renderCelebrations(h.pending, cw))
	}
	sections = append(sections, h.menu.View())
	if h.errMsg != "" {
		sections = append(sections, h.errMsg)
	}

	return renderCabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) mascot() MascotVariant {
	switch {
	case len(h.pending) > 0:
		return MascotCelebrating
	case h.stats.words < progression.MinTargetWords:
		return MascotWaiting
	}
	return MascotIdle
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
	}
	if len(h.pending) > 0 {
		hints = append(hints, layout.KeyHint{Key: "c", Description: "Celebrate"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}
