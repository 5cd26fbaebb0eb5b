package mastery

import "github.com/abhisek/sightwords/internal/session"

// State is a level's position in the mastery lifecycle.
type State string

const (
	StateNew      State = "new"
	StateLearning State = "learning"
	StateMastered State = "mastered"
)

// StateTransition records a mastery state change for display and logging.
type StateTransition struct {
	Level session.Level
	From  State
	To    State
}

// StateOf derives the state of a level from its history.
func StateOf(history []session.Record) State {
	switch {
	case len(history) == 0:
		return StateNew
	case EverMastered(history):
		return StateMastered
	default:
		return StateLearning
	}
}

// DetectTransition compares a level history before and after appending a
// record. It returns nil when the state did not change.
func DetectTransition(level session.Level, before, after []session.Record) *StateTransition {
	from, to := StateOf(before), StateOf(after)
	if from == to {
		return nil
	}
	return &StateTransition{Level: level, From: from, To: to}
}
