package trial

import (
	"errors"
	"sync"
	"time"
)

// Mode selects how answers are scored.
type Mode int

const (
	// ModeIntervention allows retries and uses the prompt schedule.
	ModeIntervention Mode = iota

	// ModeProbe finalizes on the first answer and never prompts. Baseline
	// and target-word sessions run in this mode.
	ModeProbe
)

const (
	DefaultFeedbackDelay       = 2 * time.Second
	DefaultTimeoutAdvanceDelay = 5 * time.Second
	DefaultProbeAdvanceDelay   = 200 * time.Millisecond
)

var (
	ErrNoQuestions    = errors.New("trial: no questions")
	ErrAlreadyStarted = errors.New("trial: session already started")
)

// Question is one word to present with its answer options.
type Question struct {
	Word    string
	Options []string
}

// Config tunes a single engine run.
type Config struct {
	Mode          Mode
	SessionNumber int

	TimeLimit time.Duration

	// FeedbackDelay is the pause after an answered intervention trial.
	FeedbackDelay time.Duration

	// TimeoutAdvanceDelay is the pause after an intervention trial times out.
	TimeoutAdvanceDelay time.Duration

	// ProbeAdvanceDelay is the pause after any probe trial.
	ProbeAdvanceDelay time.Duration
}

// DefaultConfig returns the standard timings for a session.
func DefaultConfig(mode Mode, seq int) Config {
	return Config{
		Mode:                mode,
		SessionNumber:       seq,
		TimeLimit:           TimeLimit,
		FeedbackDelay:       DefaultFeedbackDelay,
		TimeoutAdvanceDelay: DefaultTimeoutAdvanceDelay,
		ProbeAdvanceDelay:   DefaultProbeAdvanceDelay,
	}
}

// Speaker delivers the spoken prompt for a word. Implementations must not
// block.
type Speaker interface {
	Speak(word string)
}

// EventKind identifies an engine event.
type EventKind int

const (
	EventTrialStarted EventKind = iota
	EventPromptShown
	EventTryAgain
	EventTrialFinalized
	EventSessionComplete
)

// Event reports a state change to the UI.
type Event struct {
	Kind          EventKind
	Index         int
	Total         int
	Word          string
	Options       []string
	PromptVisible bool
	Outcome       Outcome
	Elapsed       float64
	Retries       int

	// Tally is set on EventSessionComplete.
	Tally Tally
}

// Result is the engine's response to an answer.
type Result struct {
	Accepted bool
	Outcome  Outcome
	TryAgain bool
}

// Snapshot is a read-only view of the engine for rendering.
type Snapshot struct {
	Index         int
	Total         int
	Word          string
	Options       []string
	PromptVisible bool
	Finalized     bool
	Outcome       Outcome
	Retries       int
	Done          bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the real clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithSpeaker sets the prompt speaker.
func WithSpeaker(s Speaker) Option {
	return func(e *Engine) { e.speaker = s }
}

// WithNotify registers fn to receive events. fn is called with the engine
// lock held and must not call back into the engine.
func WithNotify(fn func(Event)) Option {
	return func(e *Engine) { e.notify = fn }
}

type runState int

const (
	stateIdle runState = iota
	stateRunning
	stateDone
	stateAbandoned
)

// Engine runs the timed trials of one session. All methods are safe for
// concurrent use; timer callbacks and answers are serialized by one mutex,
// and each trial's timers are tagged with a generation so a callback left
// over from an earlier trial is ignored.
type Engine struct {
	mu sync.Mutex

	cfg     Config
	policy  PromptPolicy
	clock   Clock
	speaker Speaker
	notify  func(Event)

	questions []Question
	index     int
	rec       *Recorder
	trial     *Trial
	prompt    bool

	gen    uint64
	timers []Timer
	state  runState
}

// NewEngine builds an engine for the given questions.
func NewEngine(cfg Config, questions []Question, opts ...Option) *Engine {
	if cfg.TimeLimit <= 0 {
		cfg.TimeLimit = TimeLimit
	}
	e := &Engine{
		cfg:       cfg,
		policy:    ScheduleFor(cfg.SessionNumber),
		clock:     RealClock(),
		questions: questions,
		rec:       NewRecorder(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Start opens the first trial.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateIdle {
		return ErrAlreadyStarted
	}
	if len(e.questions) == 0 {
		return ErrNoQuestions
	}
	e.state = stateRunning
	e.startTrial(0)
	return nil
}

// Answer submits a choice for the open trial. Answers arriving when no trial
// is open are ignored.
func (e *Engine) Answer(choice string) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateRunning || e.trial == nil || e.trial.Finalized() {
		return Result{}
	}

	elapsed := e.clock.Now().Sub(e.trial.StartedAt)
	correct := choice == e.trial.Word

	if e.cfg.Mode == ModeProbe {
		o := OutcomeIncorrect
		if correct {
			o = OutcomeCorrect
		}
		e.finalize(o, elapsed)
		return Result{Accepted: true, Outcome: o}
	}

	if !correct {
		n := e.rec.Retry()
		e.emit(Event{
			Kind:          EventTryAgain,
			Index:         e.index,
			Total:         len(e.questions),
			Word:          e.trial.Word,
			PromptVisible: e.prompt,
			Retries:       n,
		})
		return Result{Accepted: true, Outcome: OutcomeIncorrect, TryAgain: true}
	}

	o := OutcomeCorrect
	if e.prompt {
		o = OutcomeAssisted
	}
	e.finalize(o, elapsed)
	return Result{Accepted: true, Outcome: o}
}

// Abandon stops the session and discards the open trial. It reports whether
// a running session was stopped.
func (e *Engine) Abandon() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != stateRunning {
		return false
	}
	e.state = stateAbandoned
	e.cancelTimers()
	e.gen++
	e.trial = nil
	return true
}

// Done reports whether every trial has been finalized.
func (e *Engine) Done() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state == stateDone
}

// Tally returns the results recorded so far.
func (e *Engine) Tally() Tally {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rec.Tally()
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Snapshot returns the current view state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Snapshot{
		Index:         e.index,
		Total:         len(e.questions),
		PromptVisible: e.prompt,
		Retries:       e.rec.Retries(),
		Done:          e.state == stateDone,
	}
	if e.trial != nil {
		s.Word = e.trial.Word
		s.Options = append([]string(nil), e.trial.Options...)
		s.Finalized = e.trial.Finalized()
		s.Outcome = e.trial.Outcome()
	}
	return s
}

func (e *Engine) startTrial(i int) {
	e.cancelTimers()
	e.gen++
	gen := e.gen

	e.index = i
	q := e.questions[i]
	e.trial = e.rec.Open(q.Word, q.Options, e.clock.Now())
	e.prompt = e.cfg.Mode == ModeIntervention && e.policy.Immediate

	e.emit(Event{
		Kind:          EventTrialStarted,
		Index:         i,
		Total:         len(e.questions),
		Word:          q.Word,
		Options:       append([]string(nil), e.trial.Options...),
		PromptVisible: e.prompt,
	})
	if e.speaker != nil {
		e.speaker.Speak(q.Word)
	}

	if e.cfg.Mode == ModeIntervention && !e.prompt {
		e.schedule(e.policy.Delay, gen, e.reveal)
	}
	e.schedule(e.cfg.TimeLimit, gen, e.expire)
}

func (e *Engine) reveal() {
	if e.trial == nil || e.trial.Finalized() {
		return
	}
	e.prompt = true
	e.emit(Event{
		Kind:          EventPromptShown,
		Index:         e.index,
		Total:         len(e.questions),
		Word:          e.trial.Word,
		PromptVisible: true,
	})
}

func (e *Engine) expire() {
	if e.trial == nil || e.trial.Finalized() {
		return
	}
	o := OutcomeNoAnswer
	if e.cfg.Mode == ModeProbe {
		o = OutcomeIncorrect
	}
	e.finalize(o, e.clock.Now().Sub(e.trial.StartedAt))
}

func (e *Engine) finalize(o Outcome, elapsed time.Duration) {
	if !e.rec.Finalize(e.trial, o, elapsed) {
		return
	}
	e.cancelTimers()
	e.emit(Event{
		Kind:          EventTrialFinalized,
		Index:         e.index,
		Total:         len(e.questions),
		Word:          e.trial.Word,
		PromptVisible: e.prompt,
		Outcome:       o,
		Elapsed:       e.trial.Elapsed(),
	})

	next := e.index + 1
	step := func() {
		if next >= len(e.questions) {
			e.complete()
			return
		}
		e.startTrial(next)
	}

	delay := e.advanceDelay(o)
	if delay <= 0 {
		step()
		return
	}
	e.schedule(delay, e.gen, step)
}

func (e *Engine) advanceDelay(o Outcome) time.Duration {
	switch {
	case e.cfg.Mode == ModeProbe:
		return e.cfg.ProbeAdvanceDelay
	case o == OutcomeNoAnswer:
		return e.cfg.TimeoutAdvanceDelay
	default:
		return e.cfg.FeedbackDelay
	}
}

func (e *Engine) complete() {
	e.cancelTimers()
	e.state = stateDone
	e.emit(Event{
		Kind:  EventSessionComplete,
		Index: e.index,
		Total: len(e.questions),
		Tally: e.rec.Tally(),
	})
}

// schedule registers fn to run after d unless the trial generation moves on
// or the session stops first. Must be called with e.mu held.
func (e *Engine) schedule(d time.Duration, gen uint64, fn func()) {
	t := e.clock.AfterFunc(d, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.gen != gen || e.state != stateRunning {
			return
		}
		fn()
	})
	e.timers = append(e.timers, t)
}

func (e *Engine) cancelTimers() {
	for _, t := range e.timers {
		t.Stop()
	}
	e.timers = e.timers[:0]
}

func (e *Engine) emit(ev Event) {
	if e.notify != nil {
		e.notify(ev)
	}
}
