package skillmanager

// Dog slots
const (
	DogSlotPowerCharge      = 0
	DogSlotIntimidatingBark = 1
	DogSlotStealTool        = 2
)

// DogTunables are the dog's trigger distances
type DogTunables struct {
	ChargeTriggerDistance float64 `yaml:"charge_trigger_distance"`
	BarkTriggerDistance   float64 `yaml:"bark_trigger_distance"`
}

// DefaultDogTunables returns the shipped dog AI distances
func DefaultDogTunables() DogTunables {
	return DogTunables{
		ChargeTriggerDistance: 5,
		BarkTriggerDistance:   6,
	}
}

// DogEngine is the dog's priority table
type DogEngine struct {
	*RuleEngine
	Tunables DogTunables
}

// NewDogEngine builds the dog table:
//  1. opponent carrying a captive within charge range: PowerCharge
//  2. within bark range: IntimidatingBark
//  3. station in range: StealTool
//  4. fleeing and within charge range: PowerCharge
//  5. within bark range: Bark, then Charge
func NewDogEngine(t DogTunables) *DogEngine {
	return &DogEngine{
		Tunables: t,
		RuleEngine: NewRuleEngine([]Rule{
			{
				Name: "rescue_captive",
				When: func(c Context) bool {
					return c.OpponentCarryingCaptive && c.Distance <= t.ChargeTriggerDistance
				},
				Slots: []int{DogSlotPowerCharge},
			},
			{
				Name:  "bark",
				When:  func(c Context) bool { return c.Distance <= t.BarkTriggerDistance },
				Slots: []int{DogSlotIntimidatingBark},
			},
			{
				// CanActivate already requires a station in range
				Name:  "steal_tool",
				Slots: []int{DogSlotStealTool},
			},
			{
				Name:  "charge_out",
				When:  func(c Context) bool { return c.Fleeing() && c.Distance <= t.ChargeTriggerDistance },
				Slots: []int{DogSlotPowerCharge},
			},
			{
				Name:  "fallback",
				When:  func(c Context) bool { return c.Distance <= t.BarkTriggerDistance },
				Slots: []int{DogSlotIntimidatingBark, DogSlotPowerCharge},
			},
		}),
	}
}
