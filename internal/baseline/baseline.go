// Package baseline decides when pre-intervention probes are stable.
package baseline

import "github.com/abhisek/sightwords/internal/session"

const (
	// WindowSize is the number of consecutive sessions in a stability window.
	WindowSize = 4

	// StabilityRange is the widest accuracy spread a stable window may have.
	StabilityRange = 10.0

	// MaxGrade is the highest grade a participant can be moved to.
	MaxGrade = 8

	// perfectAccuracy triggers the grade-increase suggestion.
	perfectAccuracy = 100.0
)

// StableWindow returns the index of the first stable window in history.
func StableWindow(history []session.Record) (int, bool) {
	for start := 0; start+WindowSize <= len(history); start++ {
		lo, hi := history[start].Accuracy, history[start].Accuracy
		for _, r := range history[start+1 : start+WindowSize] {
			lo = min(lo, r.Accuracy)
			hi = max(hi, r.Accuracy)
		}
		if hi-lo <= StabilityRange {
			return start, true
		}
	}
	return 0, false
}

// IsEstablished reports whether any window of WindowSize consecutive
// sessions has an accuracy spread within StabilityRange. Appending sessions
// never makes an established baseline unestablished.
func IsEstablished(history []session.Record) bool {
	_, ok := StableWindow(history)
	return ok
}

// SuggestGradeIncrease recommends moving the participant up a grade when the
// last two baseline sessions were both perfect. It is advisory only.
func SuggestGradeIncrease(history []session.Record, grade int) (int, bool) {
	n := len(history)
	if n < 2 {
		return 0, false
	}
	if history[n-1].Accuracy < perfectAccuracy || history[n-2].Accuracy < perfectAccuracy {
		return 0, false
	}
	next := min(grade+1, MaxGrade)
	if next == grade {
		return 0, false
	}
	return next, true
}
