// internal/scoring/band.go
package scoring

// Band cutoffs. Totals are on the 90-point sum scale; percentages are of
// the theoretical maximum. One earlier revision of the scoring model used 9
// instead of 10 as the critical Strong threshold; the 10/7 + 70/56/42 set
// below is the internally consistent one and is what this engine implements.
const (
	bandAIReadyMinTotal      = 70.0
	bandBuildingMinTotal     = 56.0
	bandFoundationalMinTotal = 42.0

	bandAIReadyMinPercent  = 70
	bandBuildingMinPercent = 56
)

// ReadinessBand is the ordered overall classification of an assessment.
type ReadinessBand int

const (
	BandNotReady ReadinessBand = iota
	BandFoundationalGaps
	BandBuildingBlocks
	BandAIReady
)

func (b ReadinessBand) String() string { return b.Label() }

// Label returns the display name of the band.
func (b ReadinessBand) Label() string {
	switch b {
	case BandAIReady:
		return "AI-Ready"
	case BandBuildingBlocks:
		return "Building Blocks"
	case BandFoundationalGaps:
		return "Foundational Gaps"
	default:
		return "Not Ready"
	}
}

// Color returns the severity color used by downstream renderers.
func (b ReadinessBand) Color() string {
	switch b {
	case BandAIReady:
		return "#16A34A"
	case BandBuildingBlocks:
		return "#3B82F6"
	case BandFoundationalGaps:
		return "#F59E0B"
	default:
		return "#DC2626"
	}
}

// Description returns the one-line meaning of the band.
func (b ReadinessBand) Description() string {
	switch b {
	case BandAIReady:
		return "Strong foundation; focus on strategic pilots."
	case BandBuildingBlocks:
		return "Address weak dimensions before scaling."
	case BandFoundationalGaps:
		return "Significant work needed; start with basics."
	default:
		return "High risk; focus on business fundamentals first."
	}
}

// BandResult is the classified band plus how it was reached. Capped means
// the band was constrained by critical-dimension gating rather than earned
// on total score alone. Caution marks the distinguished AI-Ready variant
// reached while one critical dimension sits in the Yellow tier.
type BandResult struct {
	Band    ReadinessBand `json:"band"`
	Label   string        `json:"label"`
	Color   string        `json:"color"`
	Capped  bool          `json:"capped"`
	Caution bool          `json:"caution"`
}

func newBandResult(band ReadinessBand, capped, caution bool) BandResult {
	label := band.Label()
	if caution {
		label += " (with caution)"
	}
	return BandResult{Band: band, Label: label, Color: band.Color(), Capped: capped, Caution: caution}
}

// classifyBand maps (total, percentage, critical statuses) to a band.
//
// The branches are evaluated top to bottom and the first match wins. Gating
// is a policy decision, not a formula: a numerically strong total must not
// mask red critical dimensions, so the critical tiers pick which rule table
// applies before any threshold is consulted.
//
// total must be on the 90-point sum scale (the engine normalizes other
// aggregation modes before calling).
func classifyBand(total float64, percentage int, statuses []CriticalStatus) BandResult {
	var yellow, red int
	for _, s := range statuses {
		switch s.Tier {
		case TierYellow:
			yellow++
		case TierRed:
			red++
		}
	}

	switch {
	// Both critical dimensions strong: classify on total alone.
	case yellow == 0 && red == 0:
		switch {
		case total >= bandAIReadyMinTotal:
			return newBandResult(BandAIReady, false, false)
		case total >= bandBuildingMinTotal:
			return newBandResult(BandBuildingBlocks, false, false)
		case total >= bandFoundationalMinTotal:
			return newBandResult(BandFoundationalGaps, false, false)
		default:
			return newBandResult(BandNotReady, false, false)
		}

	// Exactly one Yellow, no Red: percentage thresholds, with the AI-Ready
	// outcome flagged as the caution variant.
	case yellow == 1 && red == 0:
		switch {
		case percentage >= bandAIReadyMinPercent:
			return newBandResult(BandAIReady, false, true)
		case percentage >= bandBuildingMinPercent:
			return newBandResult(BandBuildingBlocks, false, false)
		default:
			return newBandResult(BandFoundationalGaps, false, false)
		}

	// Both critical dimensions Red: the reachable ceiling is Foundational
	// Gaps. A total below the foundational floor still classifies as Not
	// Ready; the cap is only marked when it actually lowered the band.
	case red >= CriticalDimensionCount:
		if total < bandFoundationalMinTotal {
			return newBandResult(BandNotReady, false, false)
		}
		return newBandResult(BandFoundationalGaps, total >= bandBuildingMinTotal, false)

	// One Red (possibly alongside a Yellow), or both Yellow: the reachable
	// ceiling is Building Blocks.
	default:
		if percentage >= bandAIReadyMinPercent {
			return newBandResult(BandBuildingBlocks, true, false)
		}
		if percentage >= bandBuildingMinPercent {
			return newBandResult(BandBuildingBlocks, false, false)
		}
		return newBandResult(BandFoundationalGaps, false, false)
	}
}
