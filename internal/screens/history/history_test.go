package history

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sightwords/internal/mastery"
	"github.com/abhisek/sightwords/internal/router"
	"github.com/abhisek/sightwords/internal/session"
)

type fakeSource struct {
	baseline []session.Record
	sessions []session.Record
}

func (f fakeSource) Baseline() []session.Record { return f.baseline }
func (f fakeSource) Sessions() []session.Record { return f.sessions }
func (f fakeSource) Reports() []mastery.Report  { return mastery.BuildReports(f.sessions) }

func record(level session.Level, seq int, day int, acc float64) session.Record {
	phase := session.PhaseIntervention
	if level == session.LevelBaseline {
		phase = session.PhaseBaseline
	}
	return session.Record{
		SessionNumber: seq,
		Level:         level,
		Date:          time.Date(2026, 2, day, 9, 0, 0, 0, time.UTC),
		Accuracy:      acc,
		Phase:         phase,
		PromptType:    session.PromptTypeFor(seq),
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	s := New(fakeSource{
		baseline: []session.Record{record(session.LevelBaseline, 1, 1, 40)},
		sessions: []session.Record{record(session.Level1, 1, 3, 80)},
	})
	s.Init()

	require.Len(t, s.records, 2)
	assert.Equal(t, session.Level1, s.records[0].Level)
	assert.Equal(t, session.LevelBaseline, s.records[1].Level)

	view := s.View(120, 30)
	assert.Contains(t, view, "Feb 03, 2026")
	assert.Contains(t, view, "Level 1")
	assert.Contains(t, view, "not started")
}

func TestHistoryNavigation(t *testing.T) {
	s := New(fakeSource{sessions: []session.Record{
		record(session.Level1, 1, 1, 80),
		record(session.Level1, 2, 2, 90),
	}})
	s.Init()

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, s.expanded[1])

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestHistoryEmpty(t *testing.T) {
	s := New(fakeSource{})
	s.Init()
	assert.Contains(t, s.View(100, 24), "No sessions yet")
}
