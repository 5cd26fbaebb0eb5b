// Package participant persists everything recorded about one learner.
package participant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/sightwords/internal/session"
)

const (
	MinGrade   = 5
	MaxGrade   = 8
	MinReading = 1
	MaxReading = 8

	maxIDLength = 64
)

var (
	ErrInvalidConfig = errors.New("invalid participant configuration")
	ErrInvalidID     = errors.New("invalid participant id")
)

// Config is the practitioner-entered placement of a participant.
type Config struct {
	GradeLevel   int `json:"gradeLevel"`
	ReadingLevel int `json:"readingLevel"`
}

// DefaultConfig is used when no configuration has been saved.
func DefaultConfig() Config {
	return Config{GradeLevel: MinGrade, ReadingLevel: 3}
}

// Validate checks ranges and that the reading level is below grade level.
func (c Config) Validate() error {
	switch {
	case c.GradeLevel < MinGrade || c.GradeLevel > MaxGrade:
		return fmt.Errorf("%w: grade level must be %d-%d, got %d", ErrInvalidConfig, MinGrade, MaxGrade, c.GradeLevel)
	case c.ReadingLevel < MinReading || c.ReadingLevel > MaxReading:
		return fmt.Errorf("%w: reading level must be %d-%d, got %d", ErrInvalidConfig, MinReading, MaxReading, c.ReadingLevel)
	case c.ReadingLevel >= c.GradeLevel:
		return fmt.Errorf("%w: reading level %d must be below grade level %d", ErrInvalidConfig, c.ReadingLevel, c.GradeLevel)
	}
	return nil
}

// Midpoint is the grade halfway between reading and grade level, rounded down.
func (c Config) Midpoint() int {
	return (c.ReadingLevel + c.GradeLevel) / 2
}

// GradeFor returns the word-list grade a level draws from.
func (c Config) GradeFor(level session.Level) int {
	switch level {
	case session.Level1:
		return c.ReadingLevel
	case session.Level2:
		return c.Midpoint()
	default:
		return c.GradeLevel
	}
}

// ValidateID checks a participant identifier.
func ValidateID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return fmt.Errorf("%w: empty", ErrInvalidID)
	case id != strings.TrimSpace(id):
		return fmt.Errorf("%w: %q has surrounding spaces", ErrInvalidID, id)
	case strings.Contains(id, "::"):
		return fmt.Errorf("%w: %q contains \"::\"", ErrInvalidID, id)
	case len(id) > maxIDLength:
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidID, maxIDLength)
	}
	return nil
}
