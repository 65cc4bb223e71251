package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides uniform random draws.
// This allows us to inject deterministic sources for break-free rolls and AI gating in tests
type Roller interface {
	// Value returns a uniformly distributed value in [0, 1)
	Value() float64
}

// Chance draws once from the roller and reports whether the draw falls under p
func Chance(r Roller, p float64) bool {
	if p <= 0 {
		return false
	}
	return r.Value() < p
}

// Between draws once and maps the value into [lo, hi)
func Between(r Roller, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Value()*(hi-lo)
}
