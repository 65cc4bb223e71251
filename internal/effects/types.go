package effects

import (
	"fmt"
	"log"

	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
)

// Kind identifies how a timed effect changes its target
type Kind int

const (
	// KindSlow reduces movement speed by Magnitude
	KindSlow Kind = iota + 1
	// KindStun stops movement and actions
	KindStun
	// KindVisionBlock blinds the target
	KindVisionBlock
)

// String returns the effect kind name used in logs and events
func (k Kind) String() string {
	switch k {
	case KindSlow:
		return "slow"
	case KindStun:
		return "stun"
	case KindVisionBlock:
		return "vision_block"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Descriptor describes one timed status change. It is a value type: an ability
// builds it at hit time and hands a copy to the target, keeping no reference.
type Descriptor struct {
	Kind Kind
	// Magnitude is the fractional strength in [0, 1]. Stun and VisionBlock
	// only care that it is set.
	Magnitude float64
	// Duration in seconds, always > 0
	Duration float64
	// Source names the ability that produced the effect
	Source string
}

// New validates and builds a descriptor
func New(kind Kind, magnitude, duration float64, source string) (Descriptor, error) {
	switch kind {
	case KindSlow, KindStun, KindVisionBlock:
	default:
		return Descriptor{}, apperr.Validationf("unknown effect kind %d", int(kind))
	}
	if magnitude < 0 || magnitude > 1 {
		return Descriptor{}, apperr.Validationf("effect magnitude %.3f outside [0,1]", magnitude)
	}
	if duration <= 0 {
		return Descriptor{}, apperr.Validationf("effect duration %.3f must be positive", duration)
	}

	return Descriptor{
		Kind:      kind,
		Magnitude: magnitude,
		Duration:  duration,
		Source:    source,
	}, nil
}

// String renders e.g. "slow 0.50 for 3.0s (CaptureNet)"
func (d Descriptor) String() string {
	return fmt.Sprintf("%s %.2f for %.1fs (%s)", d.Kind, d.Magnitude, d.Duration, d.Source)
}

// Receiver is implemented by any actor that can be slowed, stunned or blinded.
// How the effect changes the actor is up to the receiver.
type Receiver interface {
	ApplyEffect(d Descriptor)
}

// Deliver hands the descriptor to target once. Targets that cannot receive
// effects are skipped with a log line; this is never fatal.
func Deliver(target any, d Descriptor) bool {
	receiver, ok := target.(Receiver)
	if !ok || receiver == nil {
		log.Printf("Effects: target %T cannot receive %s, skipping", target, d)
		return false
	}

	receiver.ApplyEffect(d)
	return true
}
