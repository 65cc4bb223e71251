package config

import (
	"errors"
	"os"

	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
	"github.com/KirkDiggler/pet-groomer/internal/match"
	"github.com/KirkDiggler/pet-groomer/internal/skillmanager"
	"github.com/KirkDiggler/pet-groomer/internal/skills"
	"gopkg.in/yaml.v3"
)

// Balance is every gameplay tunable, loadable from YAML
type Balance struct {
	Skills skills.Config  `yaml:"skills"`
	AI     AIConfig       `yaml:"ai"`
	Match  match.Settings `yaml:"match"`
}

// AIConfig tunes the pet decision engines
type AIConfig struct {
	Cat        skillmanager.CatTunables      `yaml:"cat"`
	Dog        skillmanager.DogTunables      `yaml:"dog"`
	Controller skillmanager.ControllerConfig `yaml:"controller"`
}

// DefaultBalance returns the shipped tunables
func DefaultBalance() *Balance {
	return &Balance{
		Skills: skills.DefaultConfig(),
		AI: AIConfig{
			Cat:        skillmanager.DefaultCatTunables(),
			Dog:        skillmanager.DefaultDogTunables(),
			Controller: skillmanager.DefaultControllerConfig(),
		},
		Match: match.DefaultSettings(),
	}
}

// LoadBalance reads a YAML file over the defaults. An empty path returns
// the defaults.
func LoadBalance(path string) (*Balance, error) {
	b := DefaultBalance()
	if path == "" {
		return b, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperr.NotFoundf("balance file %s not found", path)
		}
		return nil, apperr.Wrapf(err, "failed to read balance file %s", path)
	}

	if err := ParseBalance(data, b); err != nil {
		return nil, apperr.Wrapf(err, "invalid balance file %s", path)
	}
	return b, nil
}

// ParseBalance decodes YAML into b, keeping values the document omits
func ParseBalance(data []byte, b *Balance) error {
	if err := yaml.Unmarshal(data, b); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeInvalidArgument, "failed to parse balance")
	}
	return b.Validate()
}

// Validate checks every section
func (b *Balance) Validate() error {
	return errors.Join(
		b.Skills.Validate(),
		b.AI.Validate(),
		b.Match.Validate(),
	)
}

// Validate checks the AI distances and throttle
func (a AIConfig) Validate() error {
	var errs []error
	nonNegative := func(field string, v float64) {
		if v < 0 {
			errs = append(errs, apperr.Validationf("ai.%s out of range: %g", field, v))
		}
	}
	nonNegative("cat.hide_trigger_distance", a.Cat.HideTriggerDistance)
	nonNegative("cat.jump_trigger_distance", a.Cat.JumpTriggerDistance)
	nonNegative("cat.distraction_trigger_distance", a.Cat.DistractionTriggerDistance)
	nonNegative("dog.charge_trigger_distance", a.Dog.ChargeTriggerDistance)
	nonNegative("dog.bark_trigger_distance", a.Dog.BarkTriggerDistance)
	errs = append(errs, a.Controller.Validate())
	return errors.Join(errs...)
}

// MatchOptions builds the options for one match of a batch
func (b *Balance) MatchOptions(sim SimConfig, seed int64) match.Options {
	opts := match.DefaultOptions()
	opts.Seed = seed
	opts.Duration = sim.MatchSeconds
	opts.TickRate = sim.TickRate
	opts.Verbose = sim.Verbose
	opts.Skills = b.Skills
	opts.Cat = b.AI.Cat
	opts.Dog = b.AI.Dog
	opts.Controller = b.AI.Controller
	opts.Settings = b.Match
	return opts
}
