package session

import (
	"time"

	"github.com/abhisek/sightwords/internal/trial"
	"github.com/abhisek/sightwords/internal/workspace"
)

// engineEventsMsg carries the engine events queued since the last read.
type engineEventsMsg []trial.Event

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// sessionResultMsg is sent once the finished session has been saved.
type sessionResultMsg struct {
	Result *workspace.Result
	Err    error
}
