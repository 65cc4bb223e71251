package effects

// ActiveEffect is a delivered descriptor with its remaining time
type ActiveEffect struct {
	Descriptor
	Remaining float64
}

// Tracker keeps the effects currently applied to one actor. It is a Receiver,
// so actors can embed it directly. A new effect replaces an existing one with
// the same kind and source (the timer refreshes); different sources stack.
// Trackers are owned by a single actor and ticked on the simulation thread.
type Tracker struct {
	effects []*ActiveEffect
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// ApplyEffect implements Receiver
func (t *Tracker) ApplyEffect(d Descriptor) {
	for _, existing := range t.effects {
		if existing.Kind == d.Kind && existing.Source == d.Source {
			existing.Descriptor = d
			existing.Remaining = d.Duration
			return
		}
	}

	t.effects = append(t.effects, &ActiveEffect{
		Descriptor: d,
		Remaining:  d.Duration,
	})
}

// Tick advances all timers and drops expired effects
func (t *Tracker) Tick(dt float64) {
	if dt <= 0 || len(t.effects) == 0 {
		return
	}

	kept := t.effects[:0]
	for _, effect := range t.effects {
		effect.Remaining -= dt
		if effect.Remaining > 0 {
			kept = append(kept, effect)
		}
	}
	for i := len(kept); i < len(t.effects); i++ {
		t.effects[i] = nil
	}
	t.effects = kept
}

// Active returns a snapshot of the current effects
func (t *Tracker) Active() []ActiveEffect {
	out := make([]ActiveEffect, 0, len(t.effects))
	for _, effect := range t.effects {
		out = append(out, *effect)
	}
	return out
}

// Has reports whether an effect of the kind is active
func (t *Tracker) Has(kind Kind) bool {
	for _, effect := range t.effects {
		if effect.Kind == kind {
			return true
		}
	}
	return false
}

// Remaining returns the longest remaining time among effects of the kind
func (t *Tracker) Remaining(kind Kind) float64 {
	longest := 0.0
	for _, effect := range t.effects {
		if effect.Kind == kind && effect.Remaining > longest {
			longest = effect.Remaining
		}
	}
	return longest
}

// IsStunned reports whether a stun is active
func (t *Tracker) IsStunned() bool {
	return t.Has(KindStun)
}

// IsVisionBlocked reports whether a vision block is active
func (t *Tracker) IsVisionBlocked() bool {
	return t.Has(KindVisionBlock)
}

// IsImpaired reports whether the actor is slowed, stunned or blinded
func (t *Tracker) IsImpaired() bool {
	return len(t.effects) > 0
}

// SpeedMultiplier returns the factor applied to movement speed. Stun and
// vision block immobilise; slows multiply as (1 - magnitude).
func (t *Tracker) SpeedMultiplier() float64 {
	multiplier := 1.0
	for _, effect := range t.effects {
		switch effect.Kind {
		case KindStun, KindVisionBlock:
			return 0
		case KindSlow:
			multiplier *= 1 - effect.Magnitude
		}
	}
	return multiplier
}

// RemoveBySource drops every effect produced by the named source
func (t *Tracker) RemoveBySource(source string) {
	kept := t.effects[:0]
	for _, effect := range t.effects {
		if effect.Source != source {
			kept = append(kept, effect)
		}
	}
	t.effects = kept
}

// Clear removes all effects
func (t *Tracker) Clear() {
	t.effects = nil
}
