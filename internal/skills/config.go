package skills

import (
	"errors"

	"github.com/KirkDiggler/pet-groomer/internal/effects"
	apperr "github.com/KirkDiggler/pet-groomer/internal/errors"
)

// CaptureNetConfig tunes the groomer's net
type CaptureNetConfig struct {
	Cooldown      float64 `yaml:"cooldown"`
	Range         float64 `yaml:"range"`
	SweepRadius   float64 `yaml:"sweep_radius"`
	SlowMagnitude float64 `yaml:"slow_magnitude"`
	SlowDuration  float64 `yaml:"slow_duration"`
}

// LeashConfig tunes the groomer's leash
type LeashConfig struct {
	Cooldown    float64 `yaml:"cooldown"`
	Range       float64 `yaml:"range"`
	SweepRadius float64 `yaml:"sweep_radius"`
	PullSpeed   float64 `yaml:"pull_speed"`
	// StopDistance is how close to the groomer the pull ends
	StopDistance float64 `yaml:"stop_distance"`

	CatBreakFreeChance float64 `yaml:"cat_break_free_chance"`
	DogBreakFreeChance float64 `yaml:"dog_break_free_chance"`
}

// CalmingSprayConfig tunes the groomer's spray
type CalmingSprayConfig struct {
	Cooldown     float64 `yaml:"cooldown"`
	Radius       float64 `yaml:"radius"`
	StunDuration float64 `yaml:"stun_duration"`
}

// AgileJumpConfig tunes the cat's double jump
type AgileJumpConfig struct {
	Cooldown     float64 `yaml:"cooldown"`
	FirstHeight  float64 `yaml:"first_height"`
	SecondHeight float64 `yaml:"second_height"`
	JumpDuration float64 `yaml:"jump_duration"`
	// JumpDistance is the ground covered by each jump
	JumpDistance float64 `yaml:"jump_distance"`
}

// FurDistractionConfig tunes the cat's fur ball
type FurDistractionConfig struct {
	Cooldown      float64 `yaml:"cooldown"`
	Range         float64 `yaml:"range"`
	HitRadius     float64 `yaml:"hit_radius"`
	BlockDuration float64 `yaml:"block_duration"`
}

// HideInGapConfig tunes the cat's hiding
type HideInGapConfig struct {
	Cooldown      float64 `yaml:"cooldown"`
	Duration      float64 `yaml:"duration"`
	MoveThreshold float64 `yaml:"move_threshold"`
}

// PowerChargeConfig tunes the dog's dash
type PowerChargeConfig struct {
	Cooldown       float64 `yaml:"cooldown"`
	DashDistance   float64 `yaml:"dash_distance"`
	DashSpeed      float64 `yaml:"dash_speed"`
	HitRadius      float64 `yaml:"hit_radius"`
	KnockbackForce float64 `yaml:"knockback_force"`
}

// IntimidatingBarkConfig tunes the dog's bark
type IntimidatingBarkConfig struct {
	Cooldown      float64 `yaml:"cooldown"`
	Radius        float64 `yaml:"radius"`
	SlowMagnitude float64 `yaml:"slow_magnitude"`
	SlowDuration  float64 `yaml:"slow_duration"`
}

// StealToolConfig tunes the dog's sabotage
type StealToolConfig struct {
	Cooldown   float64 `yaml:"cooldown"`
	Range      float64 `yaml:"range"`
	ExtraSteps int     `yaml:"extra_steps"`
}

// Config groups every skill's tunables
type Config struct {
	CaptureNet       CaptureNetConfig       `yaml:"capture_net"`
	Leash            LeashConfig            `yaml:"leash"`
	CalmingSpray     CalmingSprayConfig     `yaml:"calming_spray"`
	AgileJump        AgileJumpConfig        `yaml:"agile_jump"`
	FurDistraction   FurDistractionConfig   `yaml:"fur_distraction"`
	HideInGap        HideInGapConfig        `yaml:"hide_in_gap"`
	PowerCharge      PowerChargeConfig      `yaml:"power_charge"`
	IntimidatingBark IntimidatingBarkConfig `yaml:"intimidating_bark"`
	StealTool        StealToolConfig        `yaml:"steal_tool"`
}

// DefaultConfig returns the shipped balance
func DefaultConfig() Config {
	return Config{
		CaptureNet: CaptureNetConfig{
			Cooldown:      8,
			Range:         10,
			SweepRadius:   1,
			SlowMagnitude: effects.CaptureNetSlowMagnitude,
			SlowDuration:  effects.CaptureNetSlowDuration,
		},
		Leash: LeashConfig{
			Cooldown:           12,
			Range:              8,
			SweepRadius:        1,
			PullSpeed:          6,
			StopDistance:       1.2,
			CatBreakFreeChance: CatBreakFreeChance,
			DogBreakFreeChance: DogBreakFreeChance,
		},
		CalmingSpray: CalmingSprayConfig{
			Cooldown:     13,
			Radius:       4,
			StunDuration: effects.CalmingSprayStunDuration,
		},
		AgileJump: AgileJumpConfig{
			Cooldown:     6,
			FirstHeight:  2,
			SecondHeight: 1.5,
			JumpDuration: 0.5,
			JumpDistance: 2.5,
		},
		FurDistraction: FurDistractionConfig{
			Cooldown:      10,
			Range:         8,
			HitRadius:     1.5,
			BlockDuration: effects.FurDistractionBlockDuration,
		},
		HideInGap: HideInGapConfig{
			Cooldown:      14,
			Duration:      3,
			MoveThreshold: 0.1,
		},
		PowerCharge: PowerChargeConfig{
			Cooldown:       8,
			DashDistance:   6,
			DashSpeed:      15,
			HitRadius:      1,
			KnockbackForce: 8,
		},
		IntimidatingBark: IntimidatingBarkConfig{
			Cooldown:      12,
			Radius:        5,
			SlowMagnitude: effects.IntimidatingBarkSlowMagnitude,
			SlowDuration:  effects.IntimidatingBarkSlowDuration,
		},
		StealTool: StealToolConfig{
			Cooldown:   12,
			Range:      3,
			ExtraSteps: 1,
		},
	}
}

// Validate reports every out-of-range tunable
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, skill, field string, value float64) {
		if !ok {
			errs = append(errs, apperr.Validationf("%s.%s out of range: %g", skill, field, value).
				WithMeta("skill", skill).WithMeta("field", field))
		}
	}
	cooldown := func(skill string, v float64) { check(v >= 0, skill, "cooldown", v) }
	positive := func(skill, field string, v float64) { check(v > 0, skill, field, v) }
	unit := func(skill, field string, v float64) { check(v >= 0 && v <= 1, skill, field, v) }

	cooldown(NameCaptureNet, c.CaptureNet.Cooldown)
	positive(NameCaptureNet, "range", c.CaptureNet.Range)
	check(c.CaptureNet.SweepRadius >= 0, NameCaptureNet, "sweep_radius", c.CaptureNet.SweepRadius)
	unit(NameCaptureNet, "slow_magnitude", c.CaptureNet.SlowMagnitude)
	positive(NameCaptureNet, "slow_duration", c.CaptureNet.SlowDuration)

	cooldown(NameLeash, c.Leash.Cooldown)
	positive(NameLeash, "range", c.Leash.Range)
	check(c.Leash.SweepRadius >= 0, NameLeash, "sweep_radius", c.Leash.SweepRadius)
	positive(NameLeash, "pull_speed", c.Leash.PullSpeed)
	check(c.Leash.StopDistance >= 0, NameLeash, "stop_distance", c.Leash.StopDistance)
	unit(NameLeash, "cat_break_free_chance", c.Leash.CatBreakFreeChance)
	unit(NameLeash, "dog_break_free_chance", c.Leash.DogBreakFreeChance)

	cooldown(NameCalmingSpray, c.CalmingSpray.Cooldown)
	positive(NameCalmingSpray, "radius", c.CalmingSpray.Radius)
	positive(NameCalmingSpray, "stun_duration", c.CalmingSpray.StunDuration)

	cooldown(NameAgileJump, c.AgileJump.Cooldown)
	check(c.AgileJump.FirstHeight >= 0, NameAgileJump, "first_height", c.AgileJump.FirstHeight)
	check(c.AgileJump.SecondHeight >= 0, NameAgileJump, "second_height", c.AgileJump.SecondHeight)
	positive(NameAgileJump, "jump_duration", c.AgileJump.JumpDuration)
	check(c.AgileJump.JumpDistance >= 0, NameAgileJump, "jump_distance", c.AgileJump.JumpDistance)

	cooldown(NameFurDistraction, c.FurDistraction.Cooldown)
	positive(NameFurDistraction, "range", c.FurDistraction.Range)
	check(c.FurDistraction.HitRadius >= 0, NameFurDistraction, "hit_radius", c.FurDistraction.HitRadius)
	positive(NameFurDistraction, "block_duration", c.FurDistraction.BlockDuration)

	cooldown(NameHideInGap, c.HideInGap.Cooldown)
	positive(NameHideInGap, "duration", c.HideInGap.Duration)
	check(c.HideInGap.MoveThreshold >= 0, NameHideInGap, "move_threshold", c.HideInGap.MoveThreshold)

	cooldown(NamePowerCharge, c.PowerCharge.Cooldown)
	positive(NamePowerCharge, "dash_distance", c.PowerCharge.DashDistance)
	positive(NamePowerCharge, "dash_speed", c.PowerCharge.DashSpeed)
	positive(NamePowerCharge, "hit_radius", c.PowerCharge.HitRadius)
	check(c.PowerCharge.KnockbackForce >= 0, NamePowerCharge, "knockback_force", c.PowerCharge.KnockbackForce)

	cooldown(NameIntimidatingBark, c.IntimidatingBark.Cooldown)
	positive(NameIntimidatingBark, "radius", c.IntimidatingBark.Radius)
	unit(NameIntimidatingBark, "slow_magnitude", c.IntimidatingBark.SlowMagnitude)
	positive(NameIntimidatingBark, "slow_duration", c.IntimidatingBark.SlowDuration)

	cooldown(NameStealTool, c.StealTool.Cooldown)
	positive(NameStealTool, "range", c.StealTool.Range)
	check(c.StealTool.ExtraSteps > 0, NameStealTool, "extra_steps", float64(c.StealTool.ExtraSteps))

	return errors.Join(errs...)
}
