// internal/scoring/critical.go
package scoring

// Critical-dimension thresholds on the 3-15 sum scale. The penalty strategy
// and the status evaluator MUST read these same constants: if the two ever
// used different numbers, the displayed status would silently disagree with
// the math behind the total. A test pins this.
const (
	criticalStrongMin   = 10.0
	criticalModerateMin = 7.0

	moderatePenaltyDivisor = 1.5
	severePenaltyDivisor   = 2.5
)

// CriticalTier classifies a critical dimension's raw score.
type CriticalTier string

const (
	TierStrong CriticalTier = "strong"
	TierYellow CriticalTier = "yellow"
	TierRed    CriticalTier = "red"
)

// CriticalStatus is the evaluated state of one critical dimension. It is
// derived from the raw (unpenalized) score only.
type CriticalStatus struct {
	DimensionID    string       `json:"dimensionId"`
	Tier           CriticalTier `json:"tier"`
	Recommendation string       `json:"recommendation"`
}

// classifyCriticalTier maps a raw score (3-15 sum scale) to a tier. The
// upper bound of each tier is inclusive: exactly 10 is Strong, exactly 7
// is Yellow.
func classifyCriticalTier(sumScaleRaw float64) CriticalTier {
	switch {
	case sumScaleRaw >= criticalStrongMin:
		return TierStrong
	case sumScaleRaw >= criticalModerateMin:
		return TierYellow
	default:
		return TierRed
	}
}

// applyCriticalPenalty converts a critical dimension's raw score into its
// weighted score. Below-threshold scores are divided rather than subtracted:
// a broken data pipeline or absent sponsorship multiplies down everything
// built on top of it, which a flat deduction would understate.
//
// raw is in the engine's configured scale; sumScaleRaw is the same value
// expressed on the 3-15 scale the thresholds are defined on.
func applyCriticalPenalty(raw, sumScaleRaw float64) float64 {
	switch classifyCriticalTier(sumScaleRaw) {
	case TierStrong:
		return raw
	case TierYellow:
		return raw / moderatePenaltyDivisor
	default:
		return raw / severePenaltyDivisor
	}
}

// criticalRecommendations maps critical dimension id -> tier -> guidance
// string. Catalog.Validate refuses to run with a critical dimension that has
// no entry here, so adding a critical dimension without recommendations is
// caught at startup instead of rendering blank advice.
var criticalRecommendations = map[string]map[CriticalTier]string{
	"data": {
		TierStrong: "Data foundations are solid; invest in advanced analytics and model development.",
		TierYellow: "Data gaps will slow AI adoption; prioritize data quality frameworks and unified access before scaling pilots.",
		TierRed:    "Data readiness must be addressed first; AI cannot succeed without reliable data.",
	},
	"leadership": {
		TierStrong: "Leadership is aligned; formalize the AI roadmap and fund the next wave of pilots.",
		TierYellow: "Leadership support is partial; secure an executive sponsor and tie initiatives to measurable outcomes.",
		TierRed:    "AI initiatives will stall without executive sponsorship; secure leadership commitment before investing further.",
	},
}

// evaluateCriticalStatus builds the status for one critical dimension.
func evaluateCriticalStatus(dim Dimension, sumScaleRaw float64) CriticalStatus {
	tier := classifyCriticalTier(sumScaleRaw)
	return CriticalStatus{
		DimensionID:    dim.ID,
		Tier:           tier,
		Recommendation: criticalRecommendations[dim.ID][tier],
	}
}
