package effects

// Balance values for the descriptors abilities deliver. Each constructor is
// total: the literals are inside the valid ranges.
const (
	CaptureNetSlowMagnitude = 0.5
	CaptureNetSlowDuration  = 3.0

	CalmingSprayStunDuration = 1.0

	IntimidatingBarkSlowMagnitude = 0.2
	IntimidatingBarkSlowDuration  = 3.0

	FurDistractionBlockDuration = 2.0
)

// Slow builds a slow descriptor
func Slow(magnitude, duration float64, source string) Descriptor {
	return Descriptor{Kind: KindSlow, Magnitude: magnitude, Duration: duration, Source: source}
}

// Stun builds a full-strength stun descriptor
func Stun(duration float64, source string) Descriptor {
	return Descriptor{Kind: KindStun, Magnitude: 1, Duration: duration, Source: source}
}

// VisionBlock builds a full-strength vision block descriptor
func VisionBlock(duration float64, source string) Descriptor {
	return Descriptor{Kind: KindVisionBlock, Magnitude: 1, Duration: duration, Source: source}
}

// CaptureNetSlow is the net's slow: 50% for 3s
func CaptureNetSlow() Descriptor {
	return Slow(CaptureNetSlowMagnitude, CaptureNetSlowDuration, "CaptureNet")
}

// CalmingSprayStun is the spray's stun: 1s
func CalmingSprayStun() Descriptor {
	return Stun(CalmingSprayStunDuration, "CalmingSpray")
}

// IntimidatingBarkSlow is the bark's slow: 20% for 3s
func IntimidatingBarkSlow() Descriptor {
	return Slow(IntimidatingBarkSlowMagnitude, IntimidatingBarkSlowDuration, "IntimidatingBark")
}

// FurDistractionBlock is the fur ball's vision block: 2s
func FurDistractionBlock() Descriptor {
	return VisionBlock(FurDistractionBlockDuration, "FurDistraction")
}

// Validate checks a descriptor built without New
func (d Descriptor) Validate() error {
	_, err := New(d.Kind, d.Magnitude, d.Duration, d.Source)
	return err
}
