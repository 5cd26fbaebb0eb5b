package progression

import (
	"fmt"

	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/trial"
)

// Mode is a selectable kind of session.
type Mode string

const (
	ModeBaseline    Mode = "baseline"
	ModeLevel1      Mode = "level1"
	ModeLevel2      Mode = "level2"
	ModeLevel3      Mode = "level3"
	ModeTargetWords Mode = "target-words"
)

// AllModes lists modes in progression order.
var AllModes = []Mode{ModeBaseline, ModeLevel1, ModeLevel2, ModeLevel3, ModeTargetWords}

// ParseMode accepts the mode names used on the command line.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "baseline":
		return ModeBaseline, nil
	case "level1", "1":
		return ModeLevel1, nil
	case "level2", "2":
		return ModeLevel2, nil
	case "level3", "3":
		return ModeLevel3, nil
	case "target-words", "target", "targets":
		return ModeTargetWords, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Level returns the history the mode's records belong to.
func (m Mode) Level() session.Level {
	switch m {
	case ModeLevel1:
		return session.Level1
	case ModeLevel2:
		return session.Level2
	case ModeLevel3:
		return session.Level3
	case ModeTargetWords:
		return session.LevelTargetWords
	}
	return session.LevelBaseline
}

// Phase returns the phase stamped on the mode's records.
func (m Mode) Phase() session.Phase {
	if m == ModeBaseline {
		return session.PhaseBaseline
	}
	return session.PhaseIntervention
}

// TrialMode returns how the engine scores answers in this mode.
func (m Mode) TrialMode() trial.Mode {
	if m == ModeBaseline || m == ModeTargetWords {
		return trial.ModeProbe
	}
	return trial.ModeIntervention
}

// Label returns the display name of the mode.
func (m Mode) Label() string {
	return m.Level().Label()
}
