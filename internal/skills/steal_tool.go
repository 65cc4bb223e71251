package skills

import (
	"fmt"

	"github.com/KirkDiggler/pet-groomer/internal/ability"
	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/events"
)

// StealTool swipes a tool from the nearest grooming station, adding steps
// to every grooming there until the station is reset
type StealTool struct {
	base
	cfg StealToolConfig
}

// NewStealTool creates the skill and its ability
func NewStealTool(cfg StealToolConfig, deps Deps) *StealTool {
	s := &StealTool{
		base: base{name: NameStealTool, deps: deps},
		cfg:  cfg,
	}
	s.ability = ability.New(NameStealTool, cfg.Cooldown, s)
	return s
}

// Validate implements ability.Behavior
func (s *StealTool) Validate() error {
	if err := s.base.Validate(); err != nil {
		return err
	}
	if s.deps.Stations == nil {
		return apperr.FailedPreconditionf("%s has no station locator", s.name)
	}
	return nil
}

// CanActivate requires a station within range
func (s *StealTool) CanActivate() bool {
	return s.StationInRange()
}

// StationInRange reports whether a station is close enough to rob
func (s *StealTool) StationInRange() bool {
	if s.deps.Owner == nil || s.deps.Stations == nil {
		return false
	}
	_, ok := s.deps.Stations.NearestInRange(s.deps.Owner.Position(), s.cfg.Range)
	return ok
}

// Activate implements ability.Behavior
func (s *StealTool) Activate() {
	st, ok := s.deps.Stations.NearestInRange(s.deps.Owner.Position(), s.cfg.Range)
	if !ok {
		return
	}

	st.AddRequiredSteps(s.cfg.ExtraSteps)
	s.publish(events.EventTypeStationSabotaged, st.ID, fmt.Sprintf("total_steps=%d", st.TotalSteps()))
}
