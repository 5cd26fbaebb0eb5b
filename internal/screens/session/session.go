package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sightwords/internal/progression"
	"github.com/abhisek/sightwords/internal/router"
	"github.com/abhisek/sightwords/internal/screen"
	"github.com/abhisek/sightwords/internal/screens/summary"
	"github.com/abhisek/sightwords/internal/trial"
	"github.com/abhisek/sightwords/internal/ui/components"
	"github.com/abhisek/sightwords/internal/ui/layout"
	"github.com/abhisek/sightwords/internal/workspace"
)

// trialView is what the screen knows about the open trial.
type trialView struct {
	index     int
	total     int
	word      string
	prompt    bool
	tryAgain  bool
	retries   int
	finalized bool
	outcome   trial.Outcome
	startedAt time.Time
}

// SessionScreen implements screen.Screen for a running session. It renders
// engine events and forwards answers; all scoring happens in the engine.
type SessionScreen struct {
	ws   *workspace.Workspace
	mode progression.Mode
	run  *workspace.Session

	events   *eventQueue
	choices  components.Choices
	cur      trialView
	outcomes []trial.Outcome
	lastPick string

	timeLimit   time.Duration
	remaining   time.Duration
	confirmQuit bool
	saving      bool
	errMsg      string
	now         func() time.Time
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a session screen for mode. The session starts in Init.
func New(ws *workspace.Workspace, mode progression.Mode) *SessionScreen {
	return &SessionScreen{
		ws:     ws,
		mode:   mode,
		events: newEventQueue(),
		now:    time.Now,
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	run, err := s.ws.Begin(s.mode, s.events.push)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.run = run
	s.timeLimit = run.Engine.Config().TimeLimit
	if err := run.Start(); err != nil {
		s.ws.Abandon(context.Background(), run)
		s.errMsg = err.Error()
		return nil
	}
	return tea.Batch(s.events.wait(), tickCmd())
}

func (s *SessionScreen) Title() string {
	return s.mode.Label()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Pick word"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case engineEventsMsg:
		return s.handleEvents(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case sessionResultMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(s.mode, msg.Result)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleEvents(evs engineEventsMsg) (screen.Screen, tea.Cmd) {
	var complete bool
	for _, ev := range evs {
		switch ev.Kind {
		case trial.EventTrialStarted:
			s.cur = trialView{
				index:     ev.Index,
				total:     ev.Total,
				word:      ev.Word,
				prompt:    ev.PromptVisible,
				startedAt: s.now(),
			}
			s.choices = components.NewChoices(ev.Options)
			s.lastPick = ""
			s.remaining = s.timeLimit
			if ev.PromptVisible {
				s.choices.Reveal = ev.Word
			}

		case trial.EventPromptShown:
			s.cur.prompt = true
			s.choices.Reveal = ev.Word

		case trial.EventTryAgain:
			s.cur.tryAgain = true
			s.cur.retries = ev.Retries
			if s.lastPick != "" {
				s.choices.Wrong[s.lastPick] = true
			}

		case trial.EventTrialFinalized:
			s.cur.finalized = true
			s.cur.tryAgain = false
			s.cur.outcome = ev.Outcome
			s.outcomes = append(s.outcomes, ev.Outcome)
			s.choices.Locked = true
			if s.mode.TrialMode() == trial.ModeIntervention {
				s.choices.Reveal = ev.Word
			}

		case trial.EventSessionComplete:
			complete = true
		}
	}

	if complete {
		s.events.close()
		s.saving = true
		return s, s.complete()
	}
	return s, s.events.wait()
}

func (s *SessionScreen) complete() tea.Cmd {
	ws, run := s.ws, s.run
	return func() tea.Msg {
		res, err := ws.Complete(context.Background(), run)
		return sessionResultMsg{Result: res, Err: err}
	}
}

func (s *SessionScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.saving || s.errMsg != "" || s.run == nil {
		return s, nil
	}
	if !s.cur.finalized && !s.cur.startedAt.IsZero() {
		s.remaining = max(s.timeLimit-s.now().Sub(s.cur.startedAt), 0)
	}
	return s, tickCmd()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.quit()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.saving {
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	var pick string
	s.choices, pick = s.choices.Update(msg)
	if pick == "" || s.run == nil {
		return s, nil
	}
	s.lastPick = pick
	s.cur.tryAgain = false
	s.run.Engine.Answer(pick)
	return s, nil
}

// quit abandons the running session without saving it.
func (s *SessionScreen) quit() {
	s.events.close()
	if s.run != nil {
		s.ws.Abandon(context.Background(), s.run)
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
