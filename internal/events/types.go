package events

import "fmt"

// EventType represents the type of game event
type EventType string

// Event is the base interface for all game events
type Event interface {
	GetType() EventType
	IsCancelled() bool
	Cancel()
}

// GameEvent is the single event shape used by the simulation. Fields that do
// not apply to an event type are left empty.
type GameEvent struct {
	Type EventType
	// ActorID is whoever caused the event, TargetID whoever it happened to
	ActorID  string
	TargetID string
	Ability  string
	Slot     int // skill manager events only
	Value    float64
	Detail   string

	Cancelled bool
}

func (e *GameEvent) GetType() EventType { return e.Type }
func (e *GameEvent) IsCancelled() bool  { return e.Cancelled }
func (e *GameEvent) Cancel()            { e.Cancelled = true }

// String renders the event for logs
func (e *GameEvent) String() string {
	s := fmt.Sprintf("%s actor=%s", e.Type, e.ActorID)
	if e.TargetID != "" {
		s += " target=" + e.TargetID
	}
	if e.Ability != "" {
		s += " ability=" + e.Ability
	}
	if e.Type == EventTypeSkillActivated || e.Type == EventTypeSkillActivationFailed {
		s += fmt.Sprintf(" slot=%d", e.Slot)
	}
	if e.Value != 0 {
		s += fmt.Sprintf(" value=%.2f", e.Value)
	}
	if e.Detail != "" {
		s += " detail=" + e.Detail
	}
	return s
}
