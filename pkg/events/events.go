package events

import (
	"sync"
)

// Event is a typed record of a successful state mutation. Concrete event
// types live in the program packages that emit them.
type Event interface {
	EventType() string
}

// Sink receives events emitted by program instructions.
type Sink interface {
	Emit(event Event)
}

// Log is an append-only, in-order event sink. It is the externally
// observable history of the engine; tests also use it to assert the
// one-event-per-success rule.
type Log struct {
	mu     sync.Mutex
	events []Event
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Emit(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, event)
}

// Events returns a snapshot of the log in emission order.
func (l *Log) Events() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]Event, len(l.events))
	copy(snapshot, l.events)
	return snapshot
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.events)
}
