package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/sightwords/internal/trial"
)

// Level identifies which history a record belongs to.
type Level int

const (
	LevelBaseline    Level = 0
	Level1           Level = 1
	Level2           Level = 2
	Level3           Level = 3
	LevelTargetWords Level = 4
)

// InterventionLevels lists the tiered levels in order.
var InterventionLevels = []Level{Level1, Level2, Level3}

// Label returns a display name for the level.
func (l Level) Label() string {
	switch l {
	case LevelBaseline:
		return "Baseline"
	case Level1, Level2, Level3:
		return fmt.Sprintf("Level %d", int(l))
	case LevelTargetWords:
		return "Target Words"
	}
	return fmt.Sprintf("Level %d", int(l))
}

// Phase separates baseline probes from intervention sessions.
type Phase string

const (
	PhaseBaseline     Phase = "baseline"
	PhaseIntervention Phase = "intervention"
)

// PromptType is the prompt schedule a session ran under.
type PromptType string

const (
	PromptImmediate PromptType = "immediate"
	PromptDelay     PromptType = "delay"
	PromptNone      PromptType = ""
)

// Label returns the export label for the prompt type.
func (p PromptType) Label() string {
	switch p {
	case PromptImmediate:
		return "Immediate"
	case PromptDelay:
		return "3sec Delay"
	}
	return ""
}

// Record is a completed session. Records are never edited after they are
// appended to a history, except for the mastery stamp on the newest one.
type Record struct {
	ID              string          `json:"id,omitempty"`
	SessionNumber   int             `json:"sessionNumber"`
	Level           Level           `json:"level"`
	Date            time.Time       `json:"date"`
	Correct         int             `json:"correctAnswers"`
	Assisted        int             `json:"assistedAnswers"`
	NoAnswer        int             `json:"noAnswers"`
	Incorrect       int             `json:"incorrectAnswers"`
	Total           int             `json:"totalQuestions"`
	Accuracy        float64         `json:"accuracy"`
	ResponseTimes   []float64       `json:"timeToRespond"`
	Words           []string        `json:"wordsAsked"`
	Outcomes        []trial.Outcome `json:"responseTypes"`
	Phase           Phase           `json:"phase"`
	PromptType      PromptType      `json:"promptType"`
	MasteryAchieved bool            `json:"masteryAchieved"`
}

// IsProbe reports whether the record was scored first-answer-final.
func (r Record) IsProbe() bool {
	return r.Phase == PhaseBaseline || r.Level == LevelTargetWords
}

// AverageResponseTime returns the mean response time in seconds.
func (r Record) AverageResponseTime() float64 {
	if len(r.ResponseTimes) == 0 {
		return 0
	}
	var sum float64
	for _, t := range r.ResponseTimes {
		sum += t
	}
	return sum / float64(len(r.ResponseTimes))
}

var ErrInvalidRecord = errors.New("invalid session record")

// Validate checks the structural invariants of a record.
func (r Record) Validate() error {
	if len(r.Words) != r.Total || len(r.Outcomes) != r.Total || len(r.ResponseTimes) != r.Total {
		return fmt.Errorf("%w: session %d lists %d words, %d outcomes, %d times for %d questions",
			ErrInvalidRecord, r.SessionNumber, len(r.Words), len(r.Outcomes), len(r.ResponseTimes), r.Total)
	}
	if r.Accuracy < 0 || r.Accuracy > 100 {
		return fmt.Errorf("%w: session %d accuracy %.1f out of range", ErrInvalidRecord, r.SessionNumber, r.Accuracy)
	}
	if r.IsProbe() {
		if r.Correct+r.Incorrect != r.Total {
			return fmt.Errorf("%w: session %d counts do not add up", ErrInvalidRecord, r.SessionNumber)
		}
	} else if r.Correct+r.Assisted+r.NoAnswer > r.Total {
		return fmt.Errorf("%w: session %d counts exceed total", ErrInvalidRecord, r.SessionNumber)
	}
	for _, o := range r.Outcomes {
		if !o.Valid() {
			return fmt.Errorf("%w: session %d has unknown outcome %q", ErrInvalidRecord, r.SessionNumber, o)
		}
	}
	return nil
}

// ForLevel returns the records of one level in history order.
func ForLevel(records []Record, level Level) []Record {
	var out []Record
	for _, r := range records {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// NextNumber returns the session number the next record of level gets.
// Numbering is independent per level.
func NextNumber(records []Record, level Level) int {
	return len(ForLevel(records, level)) + 1
}
