package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		name string
		got  Descriptor
		want Descriptor
	}{
		{
			name: "capture net",
			got:  CaptureNetSlow(),
			want: Descriptor{Kind: KindSlow, Magnitude: 0.5, Duration: 3.0, Source: "CaptureNet"},
		},
		{
			name: "calming spray",
			got:  CalmingSprayStun(),
			want: Descriptor{Kind: KindStun, Magnitude: 1, Duration: 1.0, Source: "CalmingSpray"},
		},
		{
			name: "intimidating bark",
			got:  IntimidatingBarkSlow(),
			want: Descriptor{Kind: KindSlow, Magnitude: 0.2, Duration: 3.0, Source: "IntimidatingBark"},
		},
		{
			name: "fur distraction",
			got:  FurDistractionBlock(),
			want: Descriptor{Kind: KindVisionBlock, Magnitude: 1, Duration: 2.0, Source: "FurDistraction"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
			assert.NoError(t, tt.got.Validate())
		})
	}
}

func TestDescriptor_Validate(t *testing.T) {
	assert.Error(t, Slow(1.5, 3, "x").Validate())
	assert.Error(t, Stun(0, "x").Validate())
}
