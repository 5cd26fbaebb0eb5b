package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/survey"
	"github.com/abhisek/sightwords/internal/trial"
)

var day = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func baselineRecord() session.Record {
	return session.Record{
		SessionNumber: 1,
		Level:         session.LevelBaseline,
		Phase:         session.PhaseBaseline,
		Date:          day,
		Correct:       1,
		Incorrect:     1,
		Total:         2,
		Accuracy:      50,
		Words:         []string{"the", "said"},
		Outcomes:      []trial.Outcome{trial.OutcomeCorrect, trial.OutcomeIncorrect},
		ResponseTimes: []float64{1.5, 10},
	}
}

func interventionRecord() session.Record {
	return session.Record{
		SessionNumber: 3,
		Level:         session.Level1,
		Phase:         session.PhaseIntervention,
		Date:          day.Add(time.Hour),
		Correct:       1,
		Assisted:      1,
		Total:         2,
		Accuracy:      75,
		Words:         []string{"and", "was"},
		Outcomes:      []trial.Outcome{trial.OutcomeCorrect, trial.OutcomeAssisted},
		ResponseTimes: []float64{0.8, 4.2},
		PromptType:    session.PromptDelay,
	}
}

func TestWriteSessionsCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSessionsCSV(&buf, []session.Record{baselineRecord()}, []session.Record{interventionRecord()})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], `"Session Number","Date","Session Type"`))
	assert.Equal(t,
		`"1","2026-03-02","Baseline","1","1","","","2","50.00","5.75","","the; said","1.50; 10.00"`,
		lines[1])
	assert.Equal(t,
		`"3","2026-03-02","Intervention","1","","1","0","2","75.00","2.50","3sec Delay","and; was","0.80; 4.20"`,
		lines[2])
}

func TestCombinedOrdersByDate(t *testing.T) {
	late := baselineRecord()
	late.Date = day.Add(2 * time.Hour)
	early := interventionRecord()

	got := Combined([]session.Record{late}, []session.Record{early})
	require.Len(t, got, 2)
	assert.Equal(t, session.PhaseIntervention, got[0].Phase)
	assert.Equal(t, session.PhaseBaseline, got[1].Phase)
}

func TestSessionTypeTargetWords(t *testing.T) {
	r := interventionRecord()
	r.Level = session.LevelTargetWords
	if got := SessionType(r); got != "Target Words" {
		t.Errorf("SessionType = %q, want Target Words", got)
	}
}

func TestWriteBaselineCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBaselineCSV(&buf, []session.Record{baselineRecord()}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"1","2026-03-02","1","2","50.00","the; said","1.50; 10.00"`, lines[1])
}

func TestWriteSurveysCSVEscapesQuotes(t *testing.T) {
	resp := survey.Response{
		Date:           day,
		Helpfulness:    5,
		Engagement:     4,
		EaseOfUse:      3,
		WouldRecommend: 5,
		Liked:          `the "stars"`,
		Difficulties:   "none",
		Improvements:   "more words",
	}
	var buf bytes.Buffer
	require.NoError(t, WriteSurveysCSV(&buf, []survey.Response{resp}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"N/A","2026-03-02","5","4","3","5","the ""stars""","none","more words"`, lines[1])
}

func TestBundleRoundTrip(t *testing.T) {
	b := NewBundle("p1", []string{"the"},
		[]session.Record{baselineRecord()},
		[]session.Record{interventionRecord(), interventionRecord()},
		nil, day)
	assert.Equal(t, 1, b.Summary.TotalBaselineSessions)
	assert.Equal(t, 2, b.Summary.TotalSessions)
	assert.Equal(t, 0, b.Summary.TotalSurveys)
	assert.InDelta(t, 75.0, b.Summary.OverallAccuracy, 0.001)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, b))
	assert.Contains(t, buf.String(), `"overallAccuracy": 75`)
	assert.Contains(t, buf.String(), `"surveys": []`)

	got, rejected, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Empty(t, rejected)
	assert.Equal(t, "p1", got.ParticipantID)
	assert.Len(t, got.Sessions, 2)
	assert.Len(t, got.BaselineSessions, 1)
}

func TestReadJSONRejectsBrokenRecords(t *testing.T) {
	in := `{"participantId":"p1","sessions":[
		{"sessionNumber":1,"level":1,"totalQuestions":2,"wordsAsked":["a"],"responseTypes":[],"timeToRespond":[]}
	],"baselineSessions":[
		{"sessionNumber":1,"level":0,"totalQuestions":0}
	]}`
	got, rejected, err := ReadJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, rejected, 1)
	assert.Empty(t, got.Sessions)
	require.Len(t, got.BaselineSessions, 1)
	assert.Equal(t, session.PhaseBaseline, got.BaselineSessions[0].Phase)
}

func TestReadJSONMalformed(t *testing.T) {
	_, _, err := ReadJSON(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "sightwords-sessions-2026-03-02.csv", Filename("sessions", "csv", day))
}
