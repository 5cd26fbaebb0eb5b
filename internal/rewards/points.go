// Package rewards computes points and tracks which milestones have been
// celebrated.
package rewards

import (
	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/trial"
)

const (
	CorrectPoints  = 10
	AssistedPoints = 5
)

// Points returns the points a session earns.
func Points(r session.Record) int {
	return r.Correct*CorrectPoints + r.Assisted*AssistedPoints
}

// TotalPoints sums the points of every intervention and target-word record.
func TotalPoints(records []session.Record) int {
	total := 0
	for _, r := range records {
		total += Points(r)
	}
	return total
}

// BestStreak returns the longest run of unassisted correct answers in r.
func BestStreak(r session.Record) int {
	best, cur := 0, 0
	for _, o := range r.Outcomes {
		if o == trial.OutcomeCorrect {
			cur++
			best = max(best, cur)
			continue
		}
		cur = 0
	}
	return best
}

// Perfect reports whether every trial in r was answered correctly without
// help.
func Perfect(r session.Record) bool {
	return r.Total > 0 && r.Correct == r.Total
}
