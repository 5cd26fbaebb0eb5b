package home

import (
	"context"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sightwords/internal/router"
	sessionscreen "github.com/abhisek/sightwords/internal/screens/session"
	"github.com/abhisek/sightwords/internal/screens/targets"
	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/store"
	"github.com/abhisek/sightwords/internal/workspace"
)

func openWorkspace(t *testing.T) *workspace.Workspace {
	t.Helper()
	ws, err := workspace.Open(context.Background(), workspace.Options{
		KV:          store.NewMemoryKV(),
		Participant: "p1",
		Rand:        rand.New(rand.NewPCG(1, 2)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func pushed(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected a push")
	return msg.Screen
}

func TestNoTargetsSelectsTargetEditor(t *testing.T) {
	ws := openWorkspace(t)
	h := New(ws)

	for i, item := range h.menu.Items[:5] {
		assert.True(t, item.Disabled, "mode %d should be locked without targets", i)
	}
	assert.Equal(t, "Target Words", h.menu.Items[h.menu.Selected].Label)

	_, cmd := h.Update(enter())
	assert.IsType(t, &targets.TargetsScreen{}, pushed(t, cmd))
}

func TestBaselineOpensSession(t *testing.T) {
	ws := openWorkspace(t)
	require.NoError(t, ws.SetTargets(context.Background(), ws.Bank().SightWords(8)[:10]))
	h := New(ws)

	assert.Equal(t, 0, h.menu.Selected)
	assert.False(t, h.menu.Items[0].Disabled)
	assert.True(t, h.menu.Items[1].Disabled)

	_, cmd := h.Update(enter())
	assert.IsType(t, &sessionscreen.SessionScreen{}, pushed(t, cmd))
	assert.Contains(t, h.View(120, 40), "baseline phase")
}

func TestCelebrationDismissed(t *testing.T) {
	ws := openWorkspace(t)
	ctx := context.Background()
	require.NoError(t, ws.SetTargets(ctx, ws.Bank().SightWords(8)[:10]))

	var baseline []session.Record
	for i, acc := range []float64{40, 45, 50, 42} {
		baseline = append(baseline, session.Record{
			SessionNumber: i + 1,
			Phase:         session.PhaseBaseline,
			Accuracy:      acc,
		})
	}
	require.NoError(t, ws.ImportHistories(ctx, nil, baseline, nil, nil))

	h := New(ws)
	require.NotEmpty(t, h.pending)
	assert.Equal(t, MascotCelebrating, h.mascot())
	assert.Contains(t, h.View(120, 40), "intervention phase")

	h.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	assert.Empty(t, h.pending)
	assert.Empty(t, ws.Pending())
	assert.Empty(t, h.errMsg)
}

func TestRefreshKeepsSelection(t *testing.T) {
	ws := openWorkspace(t)
	require.NoError(t, ws.SetTargets(context.Background(), ws.Bank().SightWords(8)[:10]))
	h := New(ws)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	sel := h.menu.Selected
	require.NotZero(t, sel)

	h.Refresh()
	assert.Equal(t, sel, h.menu.Selected)
}
