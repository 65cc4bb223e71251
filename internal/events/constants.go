package events

// Event type constants
const (
	// Skill manager events
	EventTypeSkillActivated        EventType = "skill_activated"
	EventTypeSkillActivationFailed EventType = "skill_activation_failed"

	// Hit resolution events
	EventTypeEffectApplied    EventType = "effect_applied"
	EventTypeSkillHit         EventType = "skill_hit"
	EventTypeBreakFree        EventType = "break_free"
	EventTypeCaptiveReleased  EventType = "captive_released"
	EventTypeStationSabotaged EventType = "station_sabotaged"

	// Match events
	EventTypeCaptured   EventType = "captured"
	EventTypeMatchEnded EventType = "match_ended"
)

// AllEventTypes lists every type, for listeners that want everything
var AllEventTypes = []EventType{
	EventTypeSkillActivated,
	EventTypeSkillActivationFailed,
	EventTypeEffectApplied,
	EventTypeSkillHit,
	EventTypeBreakFree,
	EventTypeCaptiveReleased,
	EventTypeStationSabotaged,
	EventTypeCaptured,
	EventTypeMatchEnded,
}

// Priority levels for listener order
const (
	PriorityGameRules = 0   // listeners that may cancel
	PriorityScoring   = 100 // score and stat collection
	PriorityLogging   = 500 // observers
)
