// internal/scoring/band_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func statuses(dataTier, leadershipTier CriticalTier) []CriticalStatus {
	return []CriticalStatus{
		{DimensionID: "data", Tier: dataTier},
		{DimensionID: "leadership", Tier: leadershipTier},
	}
}

func TestClassifyBand_BranchOrder(t *testing.T) {
	tests := []struct {
		name        string
		total       float64
		percentage  int
		statuses    []CriticalStatus
		wantBand    ReadinessBand
		wantCapped  bool
		wantCaution bool
	}{
		// Branch 1: both critical dimensions strong, total thresholds.
		{name: "both strong, ai ready", total: 70, percentage: 78, statuses: statuses(TierStrong, TierStrong), wantBand: BandAIReady},
		{name: "both strong, building blocks", total: 56, percentage: 62, statuses: statuses(TierStrong, TierStrong), wantBand: BandBuildingBlocks},
		{name: "both strong, foundational", total: 42, percentage: 47, statuses: statuses(TierStrong, TierStrong), wantBand: BandFoundationalGaps},
		{name: "both strong, not ready", total: 41.9, percentage: 47, statuses: statuses(TierStrong, TierStrong), wantBand: BandNotReady},

		// Branch 2: exactly one yellow, no red, percentage thresholds.
		// The AI-Ready outcome here is the caution variant.
		{name: "one yellow, ai ready with caution", total: 66, percentage: 73, statuses: statuses(TierYellow, TierStrong), wantBand: BandAIReady, wantCaution: true},
		{name: "one yellow, building blocks", total: 54, percentage: 60, statuses: statuses(TierStrong, TierYellow), wantBand: BandBuildingBlocks},
		{name: "one yellow, foundational floor", total: 40, percentage: 44, statuses: statuses(TierYellow, TierStrong), wantBand: BandFoundationalGaps},

		// Branch 3: both red caps the ceiling at foundational gaps. The cap
		// lowers bands, never raises them: a total below the foundational
		// floor is still Not Ready, and Capped is set only when the cap
		// actually bound.
		{name: "both red dominates high total", total: 75, percentage: 83, statuses: statuses(TierRed, TierRed), wantBand: BandFoundationalGaps, wantCapped: true},
		{name: "both red, earned foundational uncapped", total: 45, percentage: 50, statuses: statuses(TierRed, TierRed), wantBand: BandFoundationalGaps},
		{name: "both red, low total stays not ready", total: 14.4, percentage: 16, statuses: statuses(TierRed, TierRed), wantBand: BandNotReady},

		// Branch 4: one red (or red+yellow, or both yellow): the ceiling
		// is building blocks.
		{name: "one red caps ai-ready percentage", total: 68, percentage: 76, statuses: statuses(TierRed, TierStrong), wantBand: BandBuildingBlocks, wantCapped: true},
		{name: "one red, building blocks uncapped", total: 52, percentage: 58, statuses: statuses(TierStrong, TierRed), wantBand: BandBuildingBlocks},
		{name: "one red, foundational", total: 38, percentage: 42, statuses: statuses(TierRed, TierStrong), wantBand: BandFoundationalGaps},
		{name: "red plus yellow capped", total: 64, percentage: 71, statuses: statuses(TierRed, TierYellow), wantBand: BandBuildingBlocks, wantCapped: true},
		{name: "both yellow falls to ceiling branch", total: 48, percentage: 53, statuses: statuses(TierYellow, TierYellow), wantBand: BandFoundationalGaps},
		{name: "both yellow capped at ceiling", total: 65, percentage: 72, statuses: statuses(TierYellow, TierYellow), wantBand: BandBuildingBlocks, wantCapped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyBand(tt.total, tt.percentage, tt.statuses)
			assert.Equal(t, tt.wantBand, got.Band)
			assert.Equal(t, tt.wantCapped, got.Capped)
			assert.Equal(t, tt.wantCaution, got.Caution)
		})
	}
}

func TestClassifyBand_GatingDominance(t *testing.T) {
	// A total that would be unconditionally AI-Ready must still be pinned
	// to Foundational Gaps when both critical dimensions are red.
	got := classifyBand(72, 80, statuses(TierRed, TierRed))
	assert.Equal(t, BandFoundationalGaps, got.Band)
	assert.True(t, got.Capped)
	assert.NotEqual(t, BandAIReady, got.Band)
}

func TestBandResult_CautionLabel(t *testing.T) {
	plain := classifyBand(72, 80, statuses(TierStrong, TierStrong))
	caution := classifyBand(66, 73, statuses(TierYellow, TierStrong))

	assert.Equal(t, plain.Band, caution.Band)
	assert.NotEqual(t, plain.Label, caution.Label, "caution AI-Ready must be visibly distinguished")
	assert.Equal(t, "AI-Ready (with caution)", caution.Label)
}

func TestBandMetadata(t *testing.T) {
	assert.Equal(t, "Not Ready", BandNotReady.Label())
	assert.Equal(t, "Foundational Gaps", BandFoundationalGaps.Label())
	assert.Equal(t, "Building Blocks", BandBuildingBlocks.Label())
	assert.Equal(t, "AI-Ready", BandAIReady.Label())

	// The enum order is the severity order.
	assert.Less(t, int(BandNotReady), int(BandFoundationalGaps))
	assert.Less(t, int(BandFoundationalGaps), int(BandBuildingBlocks))
	assert.Less(t, int(BandBuildingBlocks), int(BandAIReady))

	for _, b := range []ReadinessBand{BandNotReady, BandFoundationalGaps, BandBuildingBlocks, BandAIReady} {
		assert.NotEmpty(t, b.Color())
		assert.NotEmpty(t, b.Description())
	}
}
