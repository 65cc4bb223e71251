package skillmanager

// Cat slots
const (
	CatSlotAgileJump      = 0
	CatSlotFurDistraction = 1
	CatSlotHideInGap      = 2
)

// CatTunables are the cat's trigger distances
type CatTunables struct {
	HideTriggerDistance        float64 `yaml:"hide_trigger_distance"`
	JumpTriggerDistance        float64 `yaml:"jump_trigger_distance"`
	DistractionTriggerDistance float64 `yaml:"distraction_trigger_distance"`
}

// DefaultCatTunables returns the shipped cat AI distances
func DefaultCatTunables() CatTunables {
	return CatTunables{
		HideTriggerDistance:        3,
		JumpTriggerDistance:        4,
		DistractionTriggerDistance: 8,
	}
}

// CatEngine is the cat's priority table
type CatEngine struct {
	*RuleEngine
	Tunables CatTunables
}

// NewCatEngine builds the cat table:
//  1. fleeing and close enough to hide: HideInGap
//  2. between jump and distraction range: FurDistraction
//  3. fleeing and within jump range: AgileJump
//  4. within distraction range: Hide, then Distraction, then Jump
func NewCatEngine(t CatTunables) *CatEngine {
	return &CatEngine{
		Tunables: t,
		RuleEngine: NewRuleEngine([]Rule{
			{
				Name:  "hide_when_cornered",
				When:  func(c Context) bool { return c.Fleeing() && c.Distance <= t.HideTriggerDistance },
				Slots: []int{CatSlotHideInGap},
			},
			{
				Name: "distract_mid_range",
				When: func(c Context) bool {
					return c.Distance >= t.JumpTriggerDistance && c.Distance <= t.DistractionTriggerDistance
				},
				Slots: []int{CatSlotFurDistraction},
			},
			{
				Name:  "jump_away",
				When:  func(c Context) bool { return c.Fleeing() && c.Distance <= t.JumpTriggerDistance },
				Slots: []int{CatSlotAgileJump},
			},
			{
				Name:  "fallback",
				When:  func(c Context) bool { return c.Distance <= t.DistractionTriggerDistance },
				Slots: []int{CatSlotHideInGap, CatSlotFurDistraction, CatSlotAgileJump},
			},
		}),
	}
}
