package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/sightwords/internal/session"
)

func history(acc ...float64) []session.Record {
	out := make([]session.Record, len(acc))
	for i, a := range acc {
		out[i] = session.Record{SessionNumber: i + 1, Phase: session.PhaseBaseline, Accuracy: a}
	}
	return out
}

func TestIsEstablished(t *testing.T) {
	tests := []struct {
		name string
		acc  []float64
		want bool
	}{
		{"too few", []float64{50, 50, 50}, false},
		{"flat", []float64{50, 50, 50, 50}, true},
		{"range exactly ten", []float64{40, 50, 45, 42}, true},
		{"range eleven", []float64{40, 51, 45, 42}, false},
		{"later window", []float64{10, 90, 60, 65, 62, 58}, true},
		{"never stable", []float64{10, 30, 50, 70, 90}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEstablished(history(tt.acc...)))
		})
	}
}

func TestIsEstablished_Monotonic(t *testing.T) {
	h := history(50, 52, 55, 58)
	assert.True(t, IsEstablished(h))
	h = append(h, history(0, 100, 0)...)
	assert.True(t, IsEstablished(h))

	start, ok := StableWindow(h)
	assert.True(t, ok)
	assert.Equal(t, 0, start)
}

func TestSuggestGradeIncrease(t *testing.T) {
	next, ok := SuggestGradeIncrease(history(80, 100, 100), 6)
	assert.True(t, ok)
	assert.Equal(t, 7, next)

	_, ok = SuggestGradeIncrease(history(100, 90), 6)
	assert.False(t, ok)

	_, ok = SuggestGradeIncrease(history(100), 6)
	assert.False(t, ok)

	_, ok = SuggestGradeIncrease(history(100, 100), MaxGrade)
	assert.False(t, ok, "no suggestion past the top grade")
}
