package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sightwords/internal/mastery"
	"github.com/abhisek/sightwords/internal/progression"
	"github.com/abhisek/sightwords/internal/rewards"
	"github.com/abhisek/sightwords/internal/router"
	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/trial"
	"github.com/abhisek/sightwords/internal/workspace"
)

func testResult() *workspace.Result {
	outcomes := []trial.Outcome{trial.OutcomeCorrect, trial.OutcomeCorrect, trial.OutcomeAssisted, trial.OutcomeNoAnswer}
	return &workspace.Result{
		Record: session.Record{
			SessionNumber: 4,
			Level:         session.Level1,
			Date:          time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			Correct:       2,
			Assisted:      1,
			NoAnswer:      1,
			Total:         4,
			Accuracy:      62.5,
			ResponseTimes: []float64{1, 2, 3, 10},
			Words:         []string{"the", "and", "said", "was"},
			Outcomes:      outcomes,
			Phase:         session.PhaseIntervention,
			PromptType:    session.PromptDelay,
		},
		Points:      50,
		TotalPoints: 250,
		BestStreak:  2,
		Transition:  &mastery.StateTransition{Level: session.Level1, From: mastery.StateLearning, To: mastery.StateMastered},
		Celebrations: []rewards.Milestone{
			{Type: rewards.MilestoneMastery, Level: 1},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(progression.ModeLevel1, testResult())
	assert.Equal(t, "Session Summary", s.Title())
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(progression.ModeLevel1, testResult())
	view := s.View(100, 30)

	assert.Contains(t, view, "Level 1, session 4 complete!")
	assert.Contains(t, view, "Accuracy: 62%")
	assert.Contains(t, view, "+50 points")
	assert.Contains(t, view, "Level 1 mastered!")
	assert.Contains(t, view, "Level Mastered")
	assert.Contains(t, view, "Average response time: 4.00s")
}

func TestSummaryScreen_ProbeHidesAssisted(t *testing.T) {
	res := testResult()
	res.Record.Phase = session.PhaseBaseline
	res.Record.Level = session.LevelBaseline
	res.Record.Correct, res.Record.Assisted, res.Record.NoAnswer, res.Record.Incorrect = 3, 0, 0, 1
	res.Points = 0
	res.Transition = nil
	res.Celebrations = nil
	res.SuggestedGrade = 7

	view := New(progression.ModeBaseline, res).View(100, 30)
	assert.Contains(t, view, "Incorrect: 1")
	assert.NotContains(t, view, "Assisted")
	assert.NotContains(t, view, "points")
	assert.Contains(t, view, "grade level to 7")
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(progression.ModeLevel1, testResult())
		_, cmd := s.Update(tea.KeyPressMsg{Code: key})
		require.NotNil(t, cmd)
		_, ok := cmd().(router.PopScreenMsg)
		assert.True(t, ok, "key %d should pop", key)
	}
}

func TestSummaryScreen_NilResult(t *testing.T) {
	s := New(progression.ModeLevel1, nil)
	assert.Empty(t, strings.TrimSpace(s.View(80, 24)))
}
