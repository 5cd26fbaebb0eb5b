package trial

import (
	"math"
	"time"
)

// Trial is one presentation of a word with its answer options.
type Trial struct {
	Word      string
	Options   []string
	StartedAt time.Time

	finalized bool
	outcome   Outcome
	elapsed   float64
}

// Finalized reports whether the trial already has an outcome.
func (t *Trial) Finalized() bool { return t.finalized }

// Outcome returns the recorded outcome, or "" while the trial is open.
func (t *Trial) Outcome() Outcome { return t.outcome }

// Elapsed returns the recorded response time in seconds.
func (t *Trial) Elapsed() float64 { return t.elapsed }

// Tally is the running result of a session's finalized trials.
type Tally struct {
	Correct   int
	Assisted  int
	NoAnswer  int
	Incorrect int

	Outcomes      []Outcome
	ResponseTimes []float64
	Words         []string
}

// Total is the number of finalized trials.
func (t Tally) Total() int { return len(t.Outcomes) }

// Recorder owns the trial lifecycle of a single session. It is not safe for
// concurrent use; the Engine serializes access to it.
type Recorder struct {
	tally   Tally
	retries int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Open starts a new trial.
func (r *Recorder) Open(word string, options []string, now time.Time) *Trial {
	opts := make([]string, len(options))
	copy(opts, options)
	r.retries = 0
	return &Trial{Word: word, Options: opts, StartedAt: now}
}

// Finalize records the outcome of t. It returns false and changes nothing
// when t was already finalized.
func (r *Recorder) Finalize(t *Trial, o Outcome, elapsed time.Duration) bool {
	if t == nil || t.finalized {
		return false
	}
	t.finalized = true
	t.outcome = o
	t.elapsed = ClampElapsed(elapsed)

	switch o {
	case OutcomeCorrect:
		r.tally.Correct++
	case OutcomeAssisted:
		r.tally.Assisted++
	case OutcomeNoAnswer:
		r.tally.NoAnswer++
	case OutcomeIncorrect:
		r.tally.Incorrect++
	}
	r.tally.Outcomes = append(r.tally.Outcomes, o)
	r.tally.ResponseTimes = append(r.tally.ResponseTimes, t.elapsed)
	r.tally.Words = append(r.tally.Words, t.Word)
	return true
}

// Retry notes a wrong answer on an intervention trial that stays open and
// returns the count for the current trial.
func (r *Recorder) Retry() int {
	r.retries++
	return r.retries
}

// Retries returns the number of wrong answers on the current trial.
func (r *Recorder) Retries() int { return r.retries }

// Tally returns a copy of the running tally.
func (r *Recorder) Tally() Tally {
	t := r.tally
	t.Outcomes = append([]Outcome(nil), r.tally.Outcomes...)
	t.ResponseTimes = append([]float64(nil), r.tally.ResponseTimes...)
	t.Words = append([]string(nil), r.tally.Words...)
	return t
}

// ClampElapsed converts d to seconds with centisecond precision, bounded to
// [0, TimeLimit].
func ClampElapsed(d time.Duration) float64 {
	s := math.Round(d.Seconds()*100) / 100
	if s < 0 {
		return 0
	}
	if limit := TimeLimit.Seconds(); s > limit {
		return limit
	}
	return s
}
