package session

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/sightwords/internal/trial"
)

func tallyOf(outcomes ...trial.Outcome) trial.Tally {
	var t trial.Tally
	for i, o := range outcomes {
		switch o {
		case trial.OutcomeCorrect:
			t.Correct++
		case trial.OutcomeAssisted:
			t.Assisted++
		case trial.OutcomeNoAnswer:
			t.NoAnswer++
		case trial.OutcomeIncorrect:
			t.Incorrect++
		}
		t.Outcomes = append(t.Outcomes, o)
		t.ResponseTimes = append(t.ResponseTimes, float64(i+1))
		t.Words = append(t.Words, "w")
	}
	return t
}

func repeat(o trial.Outcome, n int) []trial.Outcome {
	out := make([]trial.Outcome, n)
	for i := range out {
		out[i] = o
	}
	return out
}

func TestSummarize_Accuracy(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mixed := append(append(repeat(trial.OutcomeCorrect, 6), repeat(trial.OutcomeAssisted, 2)...), repeat(trial.OutcomeNoAnswer, 2)...)

	tests := []struct {
		name       string
		seq        int
		phase      Phase
		level      Level
		outcomes   []trial.Outcome
		accuracy   float64
		promptType PromptType
	}{
		{"immediate counts assisted fully", 1, PhaseIntervention, Level1, mixed, 80, PromptImmediate},
		{"delay halves assisted", 3, PhaseIntervention, Level1, mixed, 70, PromptDelay},
		{"all assisted immediate", 2, PhaseIntervention, Level2, repeat(trial.OutcomeAssisted, 10), 100, PromptImmediate},
		{"baseline unweighted", 1, PhaseBaseline, LevelBaseline,
			append(repeat(trial.OutcomeCorrect, 7), repeat(trial.OutcomeIncorrect, 3)...), 70, PromptNone},
		{"target words unweighted", 5, PhaseIntervention, LevelTargetWords,
			append(repeat(trial.OutcomeCorrect, 9), trial.OutcomeIncorrect), 90, PromptNone},
		{"empty", 3, PhaseIntervention, Level3, nil, 0, PromptDelay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Summarize(tt.seq, tallyOf(tt.outcomes...), tt.phase, tt.level, now)
			if math.Abs(r.Accuracy-tt.accuracy) > 1e-9 {
				t.Errorf("Accuracy = %v, want %v", r.Accuracy, tt.accuracy)
			}
			if r.PromptType != tt.promptType {
				t.Errorf("PromptType = %q, want %q", r.PromptType, tt.promptType)
			}
			if r.Total != len(tt.outcomes) {
				t.Errorf("Total = %d, want %d", r.Total, len(tt.outcomes))
			}
			if err := r.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
			if r.ID == "" {
				t.Error("expected record ID")
			}
		})
	}
}

func TestSummarize_CopiesTally(t *testing.T) {
	tally := tallyOf(trial.OutcomeCorrect)
	r := Summarize(1, tally, PhaseIntervention, Level1, time.Now())
	tally.Words[0] = "changed"
	if r.Words[0] != "w" {
		t.Errorf("record shares word slice with tally")
	}
}

func TestValidate_Rejects(t *testing.T) {
	good := Summarize(3, tallyOf(repeat(trial.OutcomeCorrect, 10)...), PhaseIntervention, Level1, time.Now())

	short := good
	short.Words = good.Words[:9]
	if err := short.Validate(); err == nil {
		t.Error("expected error for mismatched words")
	}

	over := good
	over.Accuracy = 120
	if err := over.Validate(); err == nil {
		t.Error("expected error for accuracy > 100")
	}

	probe := Summarize(1, tallyOf(repeat(trial.OutcomeCorrect, 10)...), PhaseBaseline, LevelBaseline, time.Now())
	probe.Incorrect = 2
	if err := probe.Validate(); err == nil {
		t.Error("expected error for baseline counts")
	}
}

func TestNextNumber(t *testing.T) {
	records := []Record{{Level: Level1}, {Level: Level1}, {Level: Level2}}
	if got := NextNumber(records, Level1); got != 3 {
		t.Errorf("NextNumber(L1) = %d, want 3", got)
	}
	if got := NextNumber(records, Level3); got != 1 {
		t.Errorf("NextNumber(L3) = %d, want 1", got)
	}
}

func TestPromptTypeLabel(t *testing.T) {
	if PromptImmediate.Label() != "Immediate" || PromptDelay.Label() != "3sec Delay" || PromptNone.Label() != "" {
		t.Error("unexpected prompt labels")
	}
}

func TestLevelLabel(t *testing.T) {
	if Level2.Label() != "Level 2" || LevelTargetWords.Label() != "Target Words" || LevelBaseline.Label() != "Baseline" {
		t.Error("unexpected level labels")
	}
}
