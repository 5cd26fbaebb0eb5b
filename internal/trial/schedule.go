package trial

import "time"

const (
	// ImmediateSessions is how many sessions of a level show the prompt
	// at trial start.
	ImmediateSessions = 2

	// PromptDelay is the reveal delay used once a level leaves the
	// immediate phase.
	PromptDelay = 3 * time.Second

	// TimeLimit is the hard limit for a single trial.
	TimeLimit = 10 * time.Second
)

// PromptPolicy says when the spoken/visual prompt is shown in a trial.
type PromptPolicy struct {
	Immediate bool
	Delay     time.Duration
}

// ScheduleFor returns the prompt policy for the given 1-based session
// number within a level.
func ScheduleFor(seq int) PromptPolicy {
	if seq <= ImmediateSessions {
		return PromptPolicy{Immediate: true}
	}
	return PromptPolicy{Delay: PromptDelay}
}

// IsImmediate reports whether session seq is in the immediate-prompt phase.
func IsImmediate(seq int) bool {
	return seq <= ImmediateSessions
}
