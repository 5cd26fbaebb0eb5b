package trial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleFor(t *testing.T) {
	tests := []struct {
		seq  int
		want PromptPolicy
	}{
		{1, PromptPolicy{Immediate: true}},
		{2, PromptPolicy{Immediate: true}},
		{3, PromptPolicy{Delay: 3 * time.Second}},
		{12, PromptPolicy{Delay: 3 * time.Second}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScheduleFor(tt.seq), "session %d", tt.seq)
	}
}

func TestClampElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want float64
	}{
		{-time.Second, 0},
		{0, 0},
		{1234 * time.Millisecond, 1.23},
		{1235 * time.Millisecond, 1.24},
		{10 * time.Second, 10},
		{12 * time.Second, 10},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, ClampElapsed(tt.in), 1e-9, "%v", tt.in)
	}
}
