package mastery

import (
	"strings"

	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/trial"
)

const (
	// MinDelaySessions is the number of delayed-prompt sessions needed
	// before mastery can be evaluated.
	MinDelaySessions = 2

	// ConsecutiveThreshold is the accuracy the last two delayed sessions
	// must both reach (rule A).
	ConsecutiveThreshold = 90.0

	// AverageThreshold is the mean accuracy the last three delayed sessions
	// must reach (rule B).
	AverageThreshold = 80.0
)

// delaySessions returns the delayed-prompt sessions of history in order.
func delaySessions(history []session.Record) []session.Record {
	var out []session.Record
	for _, r := range history {
		if r.PromptType == session.PromptDelay {
			out = append(out, r)
		}
	}
	return out
}

// IsMastered reports whether a single level's history currently meets the
// mastery criterion. Only delayed-prompt sessions count.
func IsMastered(history []session.Record) bool {
	delay := delaySessions(history)
	n := len(delay)
	if n < MinDelaySessions {
		return false
	}

	if delay[n-1].Accuracy >= ConsecutiveThreshold && delay[n-2].Accuracy >= ConsecutiveThreshold {
		return true
	}

	if n >= 3 {
		mean := (delay[n-1].Accuracy + delay[n-2].Accuracy + delay[n-3].Accuracy) / 3
		if mean >= AverageThreshold {
			return true
		}
	}
	return false
}

// EverMastered reports whether mastery held after any session of the level
// history. Once a level is mastered it stays mastered for progression.
func EverMastered(history []session.Record) bool {
	for i := len(history); i >= MinDelaySessions; i-- {
		if IsMastered(history[:i]) {
			return true
		}
	}
	return false
}

// LevelMastered filters records to level and applies EverMastered.
func LevelMastered(records []session.Record, level session.Level) bool {
	return EverMastered(session.ForLevel(records, level))
}

// TargetCoverage splits the target list into words that have been answered
// correctly in some target-word session and words that have not. Tier
// sessions do not count even when they ask target words.
func TargetCoverage(targets []string, records []session.Record) (covered, missing []string) {
	seen := make(map[string]bool)
	for _, r := range records {
		if r.Level != session.LevelTargetWords {
			continue
		}
		for i, w := range r.Words {
			if i < len(r.Outcomes) && r.Outcomes[i] == trial.OutcomeCorrect {
				seen[strings.ToLower(w)] = true
			}
		}
	}
	for _, t := range targets {
		if seen[strings.ToLower(t)] {
			covered = append(covered, t)
		} else {
			missing = append(missing, t)
		}
	}
	return covered, missing
}

// TargetWordsCompleted reports whether every target word has been answered
// correctly at least once in a target-word session. An empty list is never complete.
func TargetWordsCompleted(targets []string, records []session.Record) bool {
	if len(targets) == 0 {
		return false
	}
	_, missing := TargetCoverage(targets, records)
	return len(missing) == 0
}
