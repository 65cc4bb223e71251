package match

import (
	"errors"

	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/skillmanager"
	"github.com/KirkDiggler/pet-groomer/internal/skills"
	"github.com/KirkDiggler/pet-groomer/internal/uuid"
)

// Settings are the arena rules around the skills
type Settings struct {
	ArenaHalfExtent float64 `yaml:"arena_half_extent"`
	GroomerSpeed    float64 `yaml:"groomer_speed"`
	CatSpeed        float64 `yaml:"cat_speed"`
	DogSpeed        float64 `yaml:"dog_speed"`

	// FleeDistance is how close the groomer gets before a pet runs
	FleeDistance float64 `yaml:"flee_distance"`
	// CaptureReach is added to both radii when checking for a touch
	CaptureReach float64 `yaml:"capture_reach"`

	StationRange     float64 `yaml:"station_range"`
	StationBaseSteps int     `yaml:"station_base_steps"`
	GroomStepSeconds float64 `yaml:"groom_step_seconds"`

	GroomerDecisionInterval float64 `yaml:"groomer_decision_interval"`
	// MinVisibleOpacity hides pets fainter than this from the groomer
	MinVisibleOpacity float64 `yaml:"min_visible_opacity"`
}

// DefaultSettings returns the shipped arena rules
func DefaultSettings() Settings {
	return Settings{
		ArenaHalfExtent:         15,
		GroomerSpeed:            5,
		CatSpeed:                6,
		DogSpeed:                5.5,
		FleeDistance:            7,
		CaptureReach:            0.3,
		StationRange:            1.5,
		StationBaseSteps:        3,
		GroomStepSeconds:        1,
		GroomerDecisionInterval: 0.25,
		MinVisibleOpacity:       0.3,
	}
}

// Validate checks the arena rules
func (s Settings) Validate() error {
	var errs []error
	positive := func(field string, v float64) {
		if v <= 0 {
			errs = append(errs, apperr.Validationf("match.%s out of range: %g", field, v))
		}
	}
	positive("arena_half_extent", s.ArenaHalfExtent)
	positive("groomer_speed", s.GroomerSpeed)
	positive("cat_speed", s.CatSpeed)
	positive("dog_speed", s.DogSpeed)
	positive("station_range", s.StationRange)
	positive("groom_step_seconds", s.GroomStepSeconds)
	if s.FleeDistance < 0 {
		errs = append(errs, apperr.Validationf("match.flee_distance out of range: %g", s.FleeDistance))
	}
	if s.CaptureReach < 0 {
		errs = append(errs, apperr.Validationf("match.capture_reach out of range: %g", s.CaptureReach))
	}
	if s.StationBaseSteps < 0 {
		errs = append(errs, apperr.Validationf("match.station_base_steps out of range: %d", s.StationBaseSteps))
	}
	if s.GroomerDecisionInterval < 0 {
		errs = append(errs, apperr.Validationf("match.groomer_decision_interval out of range: %g", s.GroomerDecisionInterval))
	}
	if s.MinVisibleOpacity < 0 || s.MinVisibleOpacity > 1 {
		errs = append(errs, apperr.Validationf("match.min_visible_opacity out of range: %g", s.MinVisibleOpacity))
	}
	return errors.Join(errs...)
}

// Options configure a single match
type Options struct {
	// ID is minted from IDs when empty
	ID   string
	Seed int64
	// Duration is the match length in simulated seconds
	Duration float64
	// TickRate is the number of steps per simulated second used by Run
	TickRate float64

	Skills     skills.Config
	Cat        skillmanager.CatTunables
	Dog        skillmanager.DogTunables
	Controller skillmanager.ControllerConfig
	Settings   Settings

	IDs     uuid.Generator
	Verbose bool
}

// DefaultOptions returns a 90 second match at 30 ticks per second
func DefaultOptions() Options {
	return Options{
		Duration:   90,
		TickRate:   30,
		Skills:     skills.DefaultConfig(),
		Cat:        skillmanager.DefaultCatTunables(),
		Dog:        skillmanager.DefaultDogTunables(),
		Controller: skillmanager.DefaultControllerConfig(),
		Settings:   DefaultSettings(),
	}
}

func (o Options) validate() error {
	if o.Duration <= 0 {
		return apperr.InvalidArgumentf("match duration must be positive, got %g", o.Duration)
	}
	if o.TickRate <= 0 {
		return apperr.InvalidArgumentf("match tick rate must be positive, got %g", o.TickRate)
	}
	return errors.Join(o.Skills.Validate(), o.Controller.Validate(), o.Settings.Validate())
}
