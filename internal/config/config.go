// Package config loads runtime settings.
package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config contains process configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty resolves to the XDG data dir.
	DBPath string `koanf:"db_path"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile receives structured logs. Empty puts sightwords.log next to
	// the database so the terminal stays free for the UI.
	LogFile string `koanf:"log_file"`

	// Participant selects who sessions are recorded for when no flag is given.
	Participant string `koanf:"participant"`

	// SpeechCommand is a TTS command line, e.g. "espeak -s 120". Empty
	// disables spoken prompts.
	SpeechCommand string `koanf:"speech_command"`

	// Distractors is the distractor strategy: random or similar.
	Distractors string `koanf:"distractors"`

	// MetricsTextfile, when set, receives Prometheus metrics after every
	// completed session.
	MetricsTextfile string `koanf:"metrics_textfile"`

	FeedbackDelayMS        int `koanf:"feedback_delay_ms"`
	TimeoutAdvanceDelayMS  int `koanf:"timeout_advance_delay_ms"`
	BaselineAdvanceDelayMS int `koanf:"baseline_advance_delay_ms"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:               "info",
		Distractors:            "random",
		FeedbackDelayMS:        2000,
		TimeoutAdvanceDelayMS:  5000,
		BaselineAdvanceDelayMS: 200,
	}
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch c.Distractors {
	case "random", "similar":
	default:
		return fmt.Errorf("distractors: must be random or similar, got %q", c.Distractors)
	}
	if c.FeedbackDelayMS < 0 || c.TimeoutAdvanceDelayMS < 0 || c.BaselineAdvanceDelayMS < 0 {
		return errors.New("delays must not be negative")
	}
	return nil
}

// FeedbackDelay is the pause after an answered intervention trial.
func (c *Config) FeedbackDelay() time.Duration {
	return time.Duration(c.FeedbackDelayMS) * time.Millisecond
}

// TimeoutAdvanceDelay is the pause after an intervention trial times out.
func (c *Config) TimeoutAdvanceDelay() time.Duration {
	return time.Duration(c.TimeoutAdvanceDelayMS) * time.Millisecond
}

// BaselineAdvanceDelay is the pause between probe trials.
func (c *Config) BaselineAdvanceDelay() time.Duration {
	return time.Duration(c.BaselineAdvanceDelayMS) * time.Millisecond
}
