// Package progression decides which session modes a participant may start.
package progression

import (
	"errors"

	"github.com/abhisek/sightwords/internal/baseline"
	"github.com/abhisek/sightwords/internal/mastery"
	"github.com/abhisek/sightwords/internal/session"
)

// MinTargetWords is the target list size required before sessions can run.
const MinTargetWords = 10

// Inputs is the participant state the gate evaluates.
type Inputs struct {
	TargetWords []string
	Baseline    []session.Record
	Sessions    []session.Record

	// BaselineFlag is the persisted "baseline established" flag. The gate
	// also derives establishment from the baseline history.
	BaselineFlag bool
}

// Status is the gate verdict for one mode.
type Status struct {
	Mode      Mode
	Available bool
	Completed bool
	Reason    string
}

// Gate holds the predicates derived from one snapshot of participant state.
// Build a new Gate whenever the state changes.
type Gate struct {
	words       int
	established bool
	mastered    map[session.Level]bool
	targetsDone bool
}

// NewGate evaluates the inputs.
func NewGate(in Inputs) *Gate {
	g := &Gate{
		words:       len(in.TargetWords),
		established: in.BaselineFlag || baseline.IsEstablished(in.Baseline),
		mastered:    make(map[session.Level]bool, len(session.InterventionLevels)),
	}
	for _, l := range session.InterventionLevels {
		g.mastered[l] = mastery.LevelMastered(in.Sessions, l)
	}
	g.targetsDone = mastery.TargetWordsCompleted(in.TargetWords, in.Sessions)
	return g
}

// BaselineEstablished reports whether the baseline phase is over.
func (g *Gate) BaselineEstablished() bool { return g.established }

// LevelMastered reports whether level has been mastered.
func (g *Gate) LevelMastered(l session.Level) bool { return g.mastered[l] }

// TargetWordsCompleted reports whether every target word has been answered
// correctly in a target-word session.
func (g *Gate) TargetWordsCompleted() bool { return g.targetsDone }

// Status returns the verdict for m.
func (g *Gate) Status(m Mode) Status {
	st := Status{Mode: m}
	if err := g.Check(m); err != nil {
		st.Reason = err.Error()
		var ge *GateError
		if errors.As(err, &ge) {
			st.Reason = ge.Reason
		}
		st.Completed = errors.Is(err, ErrModeCompleted)
		return st
	}
	st.Available = true
	return st
}

// All returns the status of every mode in progression order.
func (g *Gate) All() []Status {
	out := make([]Status, len(AllModes))
	for i, m := range AllModes {
		out[i] = g.Status(m)
	}
	return out
}

// Check returns nil when m may be started, or a *GateError wrapping
// ErrModeCompleted, ErrInsufficientWords, or ErrModeLocked.
func (g *Gate) Check(m Mode) error {
	switch m {
	case ModeBaseline:
		if g.established {
			return &GateError{Mode: m, Reason: "baseline established", Err: ErrModeCompleted}
		}
		if g.words < MinTargetWords {
			return g.insufficient(m)
		}
	case ModeLevel1:
		if g.mastered[session.Level1] {
			return &GateError{Mode: m, Reason: "mastered", Err: ErrModeCompleted}
		}
		if !g.established {
			return &GateError{Mode: m, Reason: "complete baseline first", Err: ErrModeLocked}
		}
	case ModeLevel2, ModeLevel3:
		l := m.Level()
		if g.mastered[l] {
			return &GateError{Mode: m, Reason: "mastered", Err: ErrModeCompleted}
		}
		if prev := l - 1; !g.mastered[prev] {
			return &GateError{Mode: m, Reason: "master " + prev.Label() + " first", Err: ErrModeLocked}
		}
	case ModeTargetWords:
		if g.targetsDone {
			return &GateError{Mode: m, Reason: "all target words learned", Err: ErrModeCompleted}
		}
		if !g.mastered[session.Level3] {
			return &GateError{Mode: m, Reason: "master Level 3 first", Err: ErrModeLocked}
		}
		if g.words < MinTargetWords {
			return g.insufficient(m)
		}
	default:
		return &GateError{Mode: m, Reason: "unknown mode", Err: ErrModeLocked}
	}
	return nil
}

func (g *Gate) insufficient(m Mode) error {
	return &GateError{Mode: m, Reason: "set at least 10 target words first", Err: ErrInsufficientWords}
}
