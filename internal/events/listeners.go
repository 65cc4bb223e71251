package events

import (
	"log"
	"sync"
)

// ListenerFunc adapts a function into an EventListener
type ListenerFunc struct {
	id       string
	priority int
	fn       func(event *GameEvent) error
}

// NewListenerFunc creates a function-backed listener
func NewListenerFunc(id string, priority int, fn func(event *GameEvent) error) *ListenerFunc {
	return &ListenerFunc{id: id, priority: priority, fn: fn}
}

func (l *ListenerFunc) ID() string    { return l.id }
func (l *ListenerFunc) Priority() int { return l.priority }

// HandleEvent implements EventListener; non-game events are ignored
func (l *ListenerFunc) HandleEvent(event Event) error {
	ge, ok := event.(*GameEvent)
	if !ok {
		return nil
	}
	return l.fn(ge)
}

// LogListener prints every game event with a prefix
type LogListener struct {
	prefix string
}

// NewLogListener creates a logging listener
func NewLogListener(prefix string) *LogListener {
	return &LogListener{prefix: prefix}
}

func (l *LogListener) ID() string    { return "log:" + l.prefix }
func (l *LogListener) Priority() int { return PriorityLogging }

// HandleEvent implements EventListener
func (l *LogListener) HandleEvent(event Event) error {
	if ge, ok := event.(*GameEvent); ok {
		log.Printf("%s: %s", l.prefix, ge)
		return nil
	}
	log.Printf("%s: %s", l.prefix, event.GetType())
	return nil
}

// Recorder keeps a copy of every game event it sees
type Recorder struct {
	mu     sync.Mutex
	events []GameEvent
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) ID() string    { return "recorder" }
func (r *Recorder) Priority() int { return PriorityScoring }

// HandleEvent implements EventListener
func (r *Recorder) HandleEvent(event Event) error {
	ge, ok := event.(*GameEvent)
	if !ok {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *ge)
	return nil
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []GameEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]GameEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many events of the type were recorded
func (r *Recorder) Count(eventType EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}
