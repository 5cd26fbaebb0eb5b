package session

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sightwords/internal/progression"
	"github.com/abhisek/sightwords/internal/router"
	"github.com/abhisek/sightwords/internal/screens/summary"
	"github.com/abhisek/sightwords/internal/store"
	"github.com/abhisek/sightwords/internal/trial"
	"github.com/abhisek/sightwords/internal/workspace"
)

// stepClock fires due timers when Advance is called.
type stepClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*stepTimer
}

type stepTimer struct {
	at      time.Time
	f       func()
	stopped bool
}

func (t *stepTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) AfterFunc(d time.Duration, f func()) trial.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &stepTimer{at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*stepTimer
	for _, t := range c.timers {
		if !t.stopped && !t.at.After(c.now) {
			t.stopped = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

func openWorkspace(t *testing.T) (*workspace.Workspace, *stepClock) {
	t.Helper()
	clock := &stepClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	ws, err := workspace.Open(context.Background(), workspace.Options{
		KV:          store.NewMemoryKV(),
		Participant: "p1",
		Rand:        rand.New(rand.NewPCG(5, 6)),
		Clock:       clock,
	})
	require.NoError(t, err)
	require.NoError(t, ws.SetTargets(context.Background(), ws.Bank().SightWords(8)[:10]))
	return ws, clock
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func (s *SessionScreen) drain() tea.Cmd {
	_, cmd := s.Update(engineEventsMsg(s.events.take()))
	return cmd
}

func TestBaselineSessionReachesSummary(t *testing.T) {
	ws, clock := openWorkspace(t)
	s := New(ws, progression.ModeBaseline)
	require.NotNil(t, s.Init())
	require.Empty(t, s.errMsg)

	s.drain()
	var done tea.Cmd
	for range 20 {
		idx := slices.Index(s.choices.Options, s.cur.word)
		require.GreaterOrEqual(t, idx, 0)
		s.Update(keyPress(rune('1' + idx)))
		s.drain()
		assert.True(t, s.cur.finalized)
		assert.Empty(t, s.feedback(), "probe sessions give no feedback")

		clock.Advance(200 * time.Millisecond)
		if cmd := s.drain(); s.saving {
			done = cmd
			break
		}
	}
	require.NotNil(t, done, "session never completed")
	assert.Len(t, s.outcomes, 10)

	msg := done()
	res, ok := msg.(sessionResultMsg)
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, 100.0, res.Result.Record.Accuracy)

	_, cmd := s.Update(msg)
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &summary.SummaryScreen{}, replace.Screen)
	assert.Len(t, ws.Baseline(), 1)
}

func TestQuitAbandonsSession(t *testing.T) {
	ws, _ := openWorkspace(t)
	s := New(ws, progression.ModeBaseline)
	s.Init()
	s.drain()

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.True(t, s.confirmQuit)
	assert.Len(t, s.KeyHints(), 2)

	s.Update(keyPress('n'))
	assert.False(t, s.confirmQuit)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(keyPress('y'))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)

	// The workspace accepts a new session and nothing was saved.
	run, err := ws.Begin(progression.ModeBaseline, nil)
	require.NoError(t, err)
	ws.Abandon(context.Background(), run)
	assert.Empty(t, ws.Baseline())
}

func TestLockedModeShowsError(t *testing.T) {
	ws, _ := openWorkspace(t)
	s := New(ws, progression.ModeLevel1)
	assert.Nil(t, s.Init())
	assert.NotEmpty(t, s.errMsg)
	assert.Contains(t, s.View(100, 24), "Press any key to go back")

	_, cmd := s.Update(keyPress('x'))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestEventQueue(t *testing.T) {
	q := newEventQueue()
	for i := range 100 {
		q.push(trial.Event{Kind: trial.EventTryAgain, Index: i})
	}
	evs := q.wait()().(engineEventsMsg)
	assert.Len(t, evs, 100)
	assert.Empty(t, q.take())

	q.close()
	q.close()
	assert.Nil(t, q.wait()())
}

func TestTryAgainShowsRetriesForTrial(t *testing.T) {
	s := &SessionScreen{mode: progression.ModeLevel3}

	s.cur = trialView{tryAgain: true, retries: 1}
	assert.Contains(t, s.feedback(), "Try again")
	assert.NotContains(t, s.feedback(), "tries")

	s.cur.retries = 2
	assert.Contains(t, s.feedback(), "Try again (2 tries)")
}
