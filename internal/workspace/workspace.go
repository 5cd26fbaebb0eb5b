// Package workspace owns the loaded state of one participant and runs the
// session lifecycle against it.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/sightwords/internal/baseline"
	"github.com/abhisek/sightwords/internal/mastery"
	"github.com/abhisek/sightwords/internal/metrics"
	"github.com/abhisek/sightwords/internal/participant"
	"github.com/abhisek/sightwords/internal/progression"
	"github.com/abhisek/sightwords/internal/rewards"
	"github.com/abhisek/sightwords/internal/session"
	"github.com/abhisek/sightwords/internal/speech"
	"github.com/abhisek/sightwords/internal/store"
	"github.com/abhisek/sightwords/internal/survey"
	"github.com/abhisek/sightwords/internal/trial"
	"github.com/abhisek/sightwords/internal/words"
)

var (
	ErrSessionActive   = errors.New("a session is already running")
	ErrSessionNotDone  = errors.New("session has not finished")
	ErrWorkspaceClosed = errors.New("workspace is closed")
)

// Options holds the dependencies a Workspace needs. KV and Participant are
// required; everything else has a usable default.
type Options struct {
	KV          store.KV
	Events      store.EventRepo
	Participant string
	Logger      *zap.Logger
	Speaker     speech.Speaker
	Metrics     *metrics.Manager

	// MetricsTextfile receives the metrics after each completed session.
	MetricsTextfile string

	Distractors words.Strategy
	Rand        *rand.Rand
	Clock       trial.Clock

	FeedbackDelay       time.Duration
	TimeoutAdvanceDelay time.Duration
	ProbeAdvanceDelay   time.Duration
}

// Session is one session in progress.
type Session struct {
	Mode   progression.Mode
	Number int
	Engine *trial.Engine
}

// Start opens the first trial.
func (r *Session) Start() error { return r.Engine.Start() }

// Result is what a completed session produced.
type Result struct {
	Record      session.Record
	Points      int
	TotalPoints int
	BestStreak  int

	// Transition is set when the level changed mastery state.
	Transition *mastery.StateTransition

	// BaselineEstablished is set when this session established the baseline.
	BaselineEstablished bool

	// SuggestedGrade is non-zero when two perfect baseline sessions suggest
	// moving the participant up a grade.
	SuggestedGrade int

	Celebrations []rewards.Milestone
}

// Workspace owns one participant's state between loading and teardown. All
// reads come from memory; every mutation is written through to the store.
type Workspace struct {
	mu sync.Mutex

	id      string
	repo    *participant.Repo
	events  store.EventRepo
	log     *zap.Logger
	speaker speech.Speaker
	metrics *metrics.Manager
	textf   string
	builder *words.Builder
	bank    *words.Bank
	clock   trial.Clock
	delays  [3]time.Duration

	cfg          participant.Config
	targets      []string
	sessions     []session.Record
	baseline     []session.Record
	surveys      []survey.Response
	points       int
	celebrations rewards.Celebrations
	flag         bool

	active *Session
	closed bool
}

// Open loads everything stored for opts.Participant.
func Open(ctx context.Context, opts Options) (*Workspace, error) {
	if opts.KV == nil {
		return nil, errors.New("workspace: KV store is required")
	}
	if err := participant.ValidateID(opts.Participant); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Speaker == nil {
		opts.Speaker = speech.Nop{}
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewManager(metrics.WithConstLabels(map[string]string{"participant": opts.Participant}))
	}
	if opts.Clock == nil {
		opts.Clock = trial.RealClock()
	}

	bank := words.NewBank(opts.Rand)
	w := &Workspace{
		id:      opts.Participant,
		repo:    participant.NewRepo(opts.KV, opts.Participant, log),
		events:  opts.Events,
		log:     log.With(zap.String("participant", opts.Participant)),
		speaker: opts.Speaker,
		metrics: opts.Metrics,
		textf:   opts.MetricsTextfile,
		bank:    bank,
		builder: words.NewBuilder(bank, opts.Distractors),
		clock:   opts.Clock,
		delays:  [3]time.Duration{opts.FeedbackDelay, opts.TimeoutAdvanceDelay, opts.ProbeAdvanceDelay},
	}
	if err := w.load(ctx); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Workspace) load(ctx context.Context) error {
	var err error
	if w.cfg, _, err = w.repo.LoadConfig(ctx); err != nil {
		return err
	}
	if w.targets, err = w.repo.LoadTargets(ctx); err != nil {
		return err
	}
	if w.sessions, err = w.repo.LoadSessions(ctx); err != nil {
		return err
	}
	if w.baseline, err = w.repo.LoadBaseline(ctx); err != nil {
		return err
	}
	if w.surveys, err = w.repo.LoadSurveys(ctx); err != nil {
		return err
	}
	if w.celebrations, err = w.repo.LoadCelebrations(ctx); err != nil {
		return err
	}
	if w.flag, err = w.repo.BaselineFlag(ctx); err != nil {
		return err
	}

	// The stored total is derived from the intervention history; recompute
	// so a lost write never leaves it behind. Baseline probes earn nothing.
	w.points = rewards.TotalPoints(w.sessions)
	if stored, err := w.repo.LoadTotalScore(ctx); err == nil && stored != w.points {
		w.log.Info("recomputed total score", zap.Int("stored", stored), zap.Int("computed", w.points))
		if err := w.repo.SaveTotalScore(ctx, w.points); err != nil {
			return err
		}
	}

	w.log.Debug("workspace loaded",
		zap.Int("sessions", len(w.sessions)),
		zap.Int("baseline", len(w.baseline)),
		zap.Int("targets", len(w.targets)))
	return nil
}

// ID returns the participant identifier.
func (w *Workspace) ID() string { return w.id }

// Config returns the participant placement.
func (w *Workspace) Config() participant.Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cfg
}

// Targets returns a copy of the target word list.
func (w *Workspace) Targets() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.targets...)
}

// Sessions returns a copy of the intervention history.
func (w *Workspace) Sessions() []session.Record {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]session.Record(nil), w.sessions...)
}

// Baseline returns a copy of the baseline history.
func (w *Workspace) Baseline() []session.Record {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]session.Record(nil), w.baseline...)
}

// Surveys returns a copy of the saved survey responses.
func (w *Workspace) Surveys() []survey.Response {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]survey.Response(nil), w.surveys...)
}

// Points returns the running total.
func (w *Workspace) Points() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.points
}

// Bank returns the word bank used for questions.
func (w *Workspace) Bank() *words.Bank { return w.bank }

// Gate evaluates the current state.
func (w *Workspace) Gate() *progression.Gate {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gate()
}

func (w *Workspace) gate() *progression.Gate {
	return progression.NewGate(progression.Inputs{
		TargetWords:  w.targets,
		Baseline:     w.baseline,
		Sessions:     w.sessions,
		BaselineFlag: w.flag,
	})
}

// Statuses returns the gate verdict of every mode.
func (w *Workspace) Statuses() []progression.Status {
	return w.Gate().All()
}

// Reports returns the mastery report of every intervention level.
func (w *Workspace) Reports() []mastery.Report {
	w.mu.Lock()
	defer w.mu.Unlock()
	return mastery.BuildReports(w.sessions)
}

// Pending returns milestones reached but not yet celebrated.
func (w *Workspace) Pending() []rewards.Milestone {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.celebrations.Pending(w.progress(w.gate()))
}

func (w *Workspace) progress(g *progression.Gate) rewards.Progress {
	p := rewards.Progress{
		BaselineEstablished: g.BaselineEstablished(),
		TargetWordsComplete: g.TargetWordsCompleted(),
	}
	for _, l := range session.InterventionLevels {
		if g.LevelMastered(l) {
			p.MasteredLevels = append(p.MasteredLevels, int(l))
		}
	}
	return p
}

// Dismiss marks a milestone as celebrated.
func (w *Workspace) Dismiss(ctx context.Context, m rewards.Milestone) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.celebrations.Dismiss(m)
	return w.repo.SaveCelebrations(ctx, w.celebrations)
}

// SetConfig validates and saves the participant placement.
func (w *Workspace) SetConfig(ctx context.Context, cfg participant.Config) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.repo.SaveConfig(ctx, cfg); err != nil {
		return err
	}
	w.cfg = cfg
	w.record(ctx, store.EventConfigChanged, map[string]any{
		"gradeLevel":   cfg.GradeLevel,
		"readingLevel": cfg.ReadingLevel,
	})
	return nil
}

// SetTargets validates and saves the target word list.
func (w *Workspace) SetTargets(ctx context.Context, list []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := words.ValidateForSave(list); err != nil {
		return err
	}
	if err := w.repo.SaveTargets(ctx, list); err != nil {
		return err
	}
	w.targets = append([]string(nil), list...)
	w.record(ctx, store.EventTargetsChanged, map[string]any{"words": list})
	return nil
}

// AddSurvey validates and appends a survey response.
func (w *Workspace) AddSurvey(ctx context.Context, resp survey.Response) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.repo.AddSurvey(ctx, resp); err != nil {
		return err
	}
	w.surveys = append(w.surveys, resp)
	return nil
}

// Begin checks the gate and prepares an engine for mode. notify receives the
// engine events; it runs under the engine lock and must not call back into
// the engine. The caller starts the run.
func (w *Workspace) Begin(mode progression.Mode, notify func(trial.Event)) (*Session, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, ErrWorkspaceClosed
	}
	if w.active != nil {
		return nil, ErrSessionActive
	}
	if err := w.gate().Check(mode); err != nil {
		return nil, err
	}

	level := mode.Level()
	grade := w.cfg.GradeFor(level)
	var qs []trial.Question
	var seq int
	switch mode {
	case progression.ModeBaseline:
		qs = w.builder.Baseline(w.targets, grade)
		seq = session.NextNumber(w.baseline, level)
	case progression.ModeTargetWords:
		qs = w.builder.TargetWords(w.targets, grade)
		seq = session.NextNumber(w.sessions, level)
	default:
		qs = w.builder.Level(w.targets, grade)
		seq = session.NextNumber(w.sessions, level)
	}

	cfg := trial.DefaultConfig(mode.TrialMode(), seq)
	if w.delays[0] > 0 {
		cfg.FeedbackDelay = w.delays[0]
	}
	if w.delays[1] > 0 {
		cfg.TimeoutAdvanceDelay = w.delays[1]
	}
	if w.delays[2] > 0 {
		cfg.ProbeAdvanceDelay = w.delays[2]
	}

	opts := []trial.Option{trial.WithClock(w.clock), trial.WithSpeaker(w.speaker)}
	if notify != nil {
		opts = append(opts, trial.WithNotify(notify))
	}
	run := &Session{Mode: mode, Number: seq, Engine: trial.NewEngine(cfg, qs, opts...)}
	w.active = run

	w.log.Info("session starting",
		zap.String("mode", string(mode)),
		zap.Int("session", seq),
		zap.Int("grade", grade),
		zap.Int("questions", len(qs)))
	return run, nil
}

// Complete turns a finished run into a record, persists it and applies every
// consequence: mastery, baseline establishment, points, celebrations and
// metrics.
func (w *Workspace) Complete(ctx context.Context, run *Session) (*Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if run == nil || run != w.active {
		return nil, errors.New("complete: run is not the active session")
	}
	if !run.Engine.Done() {
		return nil, ErrSessionNotDone
	}

	level := run.Mode.Level()
	rec := session.Summarize(run.Number, run.Engine.Tally(), run.Mode.Phase(), level, w.clock.Now())
	res := &Result{}

	if run.Mode == progression.ModeBaseline {
		history := append(append([]session.Record(nil), w.baseline...), rec)
		if err := w.repo.SaveBaseline(ctx, history); err != nil {
			return nil, fmt.Errorf("save baseline: %w", err)
		}
		w.baseline = history

		if !w.flag && baseline.IsEstablished(history) {
			if err := w.repo.SetBaselineFlag(ctx, true); err != nil {
				return nil, err
			}
			w.flag = true
			res.BaselineEstablished = true
		}
		if g, ok := baseline.SuggestGradeIncrease(history, w.cfg.GradeLevel); ok {
			res.SuggestedGrade = g
		}
	} else {
		before := session.ForLevel(w.sessions, level)
		if level != session.LevelTargetWords {
			rec.MasteryAchieved = mastery.IsMastered(append(append([]session.Record(nil), before...), rec))
		}
		history := append(append([]session.Record(nil), w.sessions...), rec)
		if err := w.repo.SaveSessions(ctx, history); err != nil {
			return nil, fmt.Errorf("save sessions: %w", err)
		}
		w.sessions = history
		res.Transition = mastery.DetectTransition(level, before, session.ForLevel(history, level))
	}
	w.active = nil

	res.Record = rec
	if run.Mode != progression.ModeBaseline {
		res.Points = rewards.Points(rec)
	}
	res.BestStreak = rewards.BestStreak(rec)
	w.points += res.Points
	res.TotalPoints = w.points
	if err := w.repo.SaveTotalScore(ctx, w.points); err != nil {
		w.log.Warn("failed to save total score", zap.Error(err))
	}
	res.Celebrations = w.celebrations.Pending(w.progress(w.gate()))

	w.metrics.ObserveSession(rec)
	if w.textf != "" {
		if err := w.metrics.WriteTextfile(w.textf); err != nil {
			w.log.Warn("failed to write metrics textfile", zap.String("path", w.textf), zap.Error(err))
		}
	}

	w.record(ctx, store.EventSessionCompleted, map[string]any{
		"mode":          string(run.Mode),
		"level":         int(level),
		"sessionNumber": rec.SessionNumber,
		"accuracy":      rec.Accuracy,
		"correct":       rec.Correct,
		"assisted":      rec.Assisted,
		"noAnswer":      rec.NoAnswer,
		"incorrect":     rec.Incorrect,
		"points":        res.Points,
	})
	if t := res.Transition; t != nil {
		w.record(ctx, store.EventMasteryChanged, map[string]any{
			"level": int(t.Level),
			"from":  string(t.From),
			"to":    string(t.To),
		})
	}

	w.log.Info("session completed",
		zap.String("mode", string(run.Mode)),
		zap.Int("session", rec.SessionNumber),
		zap.Float64("accuracy", rec.Accuracy),
		zap.Bool("mastery", rec.MasteryAchieved))
	return res, nil
}

// Abandon stops a run without recording it.
func (w *Workspace) Abandon(ctx context.Context, run *Session) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if run == nil || run != w.active {
		return
	}
	w.active = nil
	if !run.Engine.Abandon() {
		return
	}
	answered := run.Engine.Tally().Total()
	w.record(ctx, store.EventSessionAbandoned, map[string]any{
		"mode":     string(run.Mode),
		"answered": answered,
	})
	w.log.Info("session abandoned", zap.String("mode", string(run.Mode)), zap.Int("answered", answered))
}

// ImportHistories replaces the histories, target list and surveys with
// imported data, then re-derives the baseline flag and total score.
func (w *Workspace) ImportHistories(ctx context.Context, targets []string, baselineRecs, sessions []session.Record, surveys []survey.Response) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(targets) > 0 {
		if err := w.repo.SaveTargets(ctx, targets); err != nil {
			return err
		}
		w.targets = append([]string(nil), targets...)
	}
	if err := w.repo.SaveBaseline(ctx, baselineRecs); err != nil {
		return err
	}
	if err := w.repo.SaveSessions(ctx, sessions); err != nil {
		return err
	}
	for _, s := range surveys {
		if err := w.repo.AddSurvey(ctx, s); err != nil {
			return err
		}
	}
	w.baseline = append([]session.Record(nil), baselineRecs...)
	w.sessions = append([]session.Record(nil), sessions...)
	w.surveys = append(w.surveys, surveys...)

	if baseline.IsEstablished(w.baseline) && !w.flag {
		if err := w.repo.SetBaselineFlag(ctx, true); err != nil {
			return err
		}
		w.flag = true
	}
	w.points = rewards.TotalPoints(w.sessions)
	return w.repo.SaveTotalScore(ctx, w.points)
}

// Reset deletes everything stored for the participant.
func (w *Workspace) Reset(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.active != nil {
		return ErrSessionActive
	}
	if err := w.repo.Clear(ctx); err != nil {
		return err
	}
	if w.events != nil {
		if err := w.events.DeleteParticipant(ctx, w.id); err != nil {
			return err
		}
	}
	w.cfg = participant.DefaultConfig()
	w.targets, w.sessions, w.baseline, w.surveys = nil, nil, nil, nil
	w.points, w.flag = 0, false
	w.celebrations = rewards.Celebrations{}
	w.log.Info("participant data cleared")
	return nil
}

// Close abandons any running session. The workspace cannot begin sessions
// afterwards.
func (w *Workspace) Close() error {
	w.mu.Lock()
	run := w.active
	w.mu.Unlock()
	if run != nil {
		w.Abandon(context.Background(), run)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

// record appends to the activity log. Log failures never fail the caller.
func (w *Workspace) record(ctx context.Context, kind string, payload map[string]any) {
	if w.events == nil {
		return
	}
	if _, err := w.events.Append(ctx, store.Event{Participant: w.id, Kind: kind, Payload: payload}); err != nil {
		w.log.Warn("failed to append event", zap.String("kind", kind), zap.Error(err))
	}
}
