package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/sightwords/internal/trial"
)

// AssistedWeight returns the credit an assisted answer earns in session seq.
func AssistedWeight(seq int) float64 {
	if trial.IsImmediate(seq) {
		return 1.0
	}
	return 0.5
}

// PromptTypeFor returns the prompt type recorded for session seq.
func PromptTypeFor(seq int) PromptType {
	if trial.IsImmediate(seq) {
		return PromptImmediate
	}
	return PromptDelay
}

// Summarize turns a finished tally into a record. Baseline and target-word
// sessions are scored unweighted and carry no prompt type.
func Summarize(seq int, tally trial.Tally, phase Phase, level Level, now time.Time) Record {
	r := Record{
		ID:            uuid.NewString(),
		SessionNumber: seq,
		Level:         level,
		Date:          now,
		Correct:       tally.Correct,
		Assisted:      tally.Assisted,
		NoAnswer:      tally.NoAnswer,
		Incorrect:     tally.Incorrect,
		Total:         tally.Total(),
		ResponseTimes: append([]float64{}, tally.ResponseTimes...),
		Words:         append([]string{}, tally.Words...),
		Outcomes:      append([]trial.Outcome{}, tally.Outcomes...),
		Phase:         phase,
	}
	if r.Total == 0 {
		if !r.IsProbe() {
			r.PromptType = PromptTypeFor(seq)
		}
		return r
	}

	total := float64(r.Total)
	if r.IsProbe() {
		r.Accuracy = float64(r.Correct) / total * 100
		return r
	}

	r.PromptType = PromptTypeFor(seq)
	r.Accuracy = (float64(r.Correct) + float64(r.Assisted)*AssistedWeight(seq)) / total * 100
	return r
}
