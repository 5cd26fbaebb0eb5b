package session

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sightwords/internal/trial"
)

// eventQueue hands engine events to the bubbletea loop. push runs on the
// engine's timer goroutines with the engine lock held, so it never blocks.
type eventQueue struct {
	mu      sync.Mutex
	pending []trial.Event
	ready   chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newEventQueue() *eventQueue {
	return &eventQueue{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

func (q *eventQueue) push(ev trial.Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

func (q *eventQueue) take() []trial.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	evs := q.pending
	q.pending = nil
	return evs
}

// wait returns a command that blocks until events are queued.
func (q *eventQueue) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-q.ready:
			return engineEventsMsg(q.take())
		case <-q.done:
			return nil
		}
	}
}

// close releases a pending wait.
func (q *eventQueue) close() {
	q.once.Do(func() { close(q.done) })
}
