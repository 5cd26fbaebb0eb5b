package progression

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientWords = errors.New("at least 10 target words are required")
	ErrModeLocked        = errors.New("mode is locked")
	ErrModeCompleted     = errors.New("mode is already completed")
)

// GateError explains why a mode cannot be started.
type GateError struct {
	Mode   Mode
	Reason string
	Err    error
}

func (e *GateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Mode.Label(), e.Reason)
}

func (e *GateError) Unwrap() error { return e.Err }
