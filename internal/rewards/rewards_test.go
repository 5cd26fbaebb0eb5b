package rewards

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/trial"
)

func TestPoints(t *testing.T) {
	r := session.Record{Correct: 6, Assisted: 3, NoAnswer: 1}
	assert.Equal(t, 75, Points(r))
	assert.Equal(t, 150, TotalPoints([]session.Record{r, r}))
	assert.Equal(t, 0, TotalPoints(nil))
}

func TestBestStreak(t *testing.T) {
	r := session.Record{Outcomes: []trial.Outcome{
		trial.OutcomeCorrect, trial.OutcomeCorrect, trial.OutcomeAssisted,
		trial.OutcomeCorrect, trial.OutcomeCorrect, trial.OutcomeCorrect,
		trial.OutcomeNoAnswer,
	}}
	assert.Equal(t, 3, BestStreak(r))
	assert.Equal(t, 0, BestStreak(session.Record{}))
}

func TestPerfect(t *testing.T) {
	assert.True(t, Perfect(session.Record{Correct: 10, Total: 10}))
	assert.False(t, Perfect(session.Record{Correct: 9, Assisted: 1, Total: 10}))
	assert.False(t, Perfect(session.Record{}))
}

func TestCelebrations(t *testing.T) {
	var c Celebrations
	p := Progress{BaselineEstablished: true, MasteredLevels: []int{2, 1}}

	pending := c.Pending(p)
	assert.Equal(t, []Milestone{
		{Type: MilestoneBaseline},
		{Type: MilestoneMastery, Level: 1},
		{Type: MilestoneMastery, Level: 2},
	}, pending)

	for _, m := range pending {
		c.Dismiss(m)
	}
	assert.Empty(t, c.Pending(p))

	p.TargetWordsComplete = true
	assert.Equal(t, []Milestone{{Type: MilestoneTargetWords}}, c.Pending(p))
}

func TestMilestoneTypeDisplay(t *testing.T) {
	assert.Equal(t, "Level Mastered", MilestoneMastery.DisplayName())
	assert.Equal(t, "custom", MilestoneType("custom").DisplayName())
	assert.NotEmpty(t, MilestoneTargetWords.Icon())
}
