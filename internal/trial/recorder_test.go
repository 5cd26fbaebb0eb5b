package trial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderFinalizeOnce(t *testing.T) {
	r := NewRecorder()
	now := time.Now()
	tr := r.Open("the", []string{"the", "and", "was", "said"}, now)

	require.True(t, r.Finalize(tr, OutcomeCorrect, 1500*time.Millisecond))
	assert.False(t, r.Finalize(tr, OutcomeNoAnswer, 10*time.Second))

	tally := r.Tally()
	assert.Equal(t, 1, tally.Total())
	assert.Equal(t, 1, tally.Correct)
	assert.Equal(t, 0, tally.NoAnswer)
	assert.Equal(t, []Outcome{OutcomeCorrect}, tally.Outcomes)
	assert.Equal(t, []float64{1.5}, tally.ResponseTimes)
	assert.Equal(t, []string{"the"}, tally.Words)
	assert.Equal(t, OutcomeCorrect, tr.Outcome())
}

func TestRecorderRetryDoesNotFinalize(t *testing.T) {
	r := NewRecorder()
	tr := r.Open("said", []string{"said", "sad", "sid", "sand"}, time.Now())

	assert.Equal(t, 1, r.Retry())
	assert.Equal(t, 2, r.Retry())
	assert.False(t, tr.Finalized())
	assert.Equal(t, 0, r.Tally().Total())
	assert.Equal(t, 2, r.Retries())
}

func TestRecorderRetriesResetPerTrial(t *testing.T) {
	r := NewRecorder()
	first := r.Open("said", []string{"said", "sad", "sid", "sand"}, time.Now())
	r.Retry()
	r.Retry()
	r.Finalize(first, OutcomeCorrect, time.Second)
	assert.Equal(t, 2, r.Retries())

	r.Open("was", []string{"was", "saw", "wax", "way"}, time.Now())
	assert.Equal(t, 0, r.Retries())
	assert.Equal(t, 1, r.Retry())
}

func TestRecorderTallyIsCopy(t *testing.T) {
	r := NewRecorder()
	tr := r.Open("a", nil, time.Now())
	r.Finalize(tr, OutcomeAssisted, time.Second)

	tally := r.Tally()
	tally.Outcomes[0] = OutcomeNoAnswer
	assert.Equal(t, OutcomeAssisted, r.Tally().Outcomes[0])
}

func TestOutcomeValid(t *testing.T) {
	for _, o := range []Outcome{OutcomeCorrect, OutcomeAssisted, OutcomeNoAnswer, OutcomeIncorrect} {
		assert.True(t, o.Valid(), string(o))
	}
	assert.False(t, Outcome("maybe").Valid())
}
