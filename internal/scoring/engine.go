// internal/scoring/engine.go
package scoring

import (
	"fmt"
	"math"
)

// NeutralAnswer substitutes for questions the respondent skipped. The
// assessment history used 3 in almost every revision; it is pinned here as
// a named constant so aggregation code never carries the literal.
const NeutralAnswer = 3

// AggregationMode selects how a dimension's three answers collapse into its
// raw score. It is fixed at engine construction, never per call.
type AggregationMode string

const (
	// ModeSum is the canonical model: raw scores on the 3-15 scale,
	// totals out of 90.
	ModeSum AggregationMode = "sum"
	// ModeAverage is the legacy simple model: raw scores on the 1-5
	// scale, totals out of 30.
	ModeAverage AggregationMode = "average"
	// ModeWeightedMultiplier multiplies each dimension's sum by its
	// catalog weight (totals out of 270 with the default weights).
	ModeWeightedMultiplier AggregationMode = "weighted"
)

// ParseAggregationMode converts a config string into an AggregationMode.
func ParseAggregationMode(s string) (AggregationMode, error) {
	switch AggregationMode(s) {
	case ModeSum, ModeAverage, ModeWeightedMultiplier:
		return AggregationMode(s), nil
	case "":
		return ModeSum, nil
	default:
		return "", fmt.Errorf("unknown aggregation mode %q", s)
	}
}

// AnswerSet maps question id to a Likert answer in [1,5]. Missing entries
// are tolerated and scored as NeutralAnswer; out-of-range values must be
// rejected at the boundary before the engine sees them.
type AnswerSet map[string]int

// DimensionScore is one dimension's aggregate, before and after the
// critical-dimension penalty.
type DimensionScore struct {
	DimensionID   string  `json:"dimensionId"`
	Title         string  `json:"title"`
	RawScore      float64 `json:"rawScore"`
	WeightedScore float64 `json:"weightedScore"`
}

// ReadinessResult is the engine's sole output. It is computed fresh on every
// call and never mutated afterwards.
type ReadinessResult struct {
	DimensionScores  []DimensionScore `json:"dimensionScores"`
	Total            float64          `json:"total"`
	MaxTotal         float64          `json:"maxTotal"`
	Percentage       int              `json:"percentage"`
	Band             BandResult       `json:"band"`
	CriticalStatuses []CriticalStatus `json:"criticalStatuses"`
}

// Engine scores answer sets against a catalog. It is stateless beyond its
// configuration: Score is a pure function and safe for concurrent use.
type Engine struct {
	catalog  Catalog
	mode     AggregationMode
	maxTotal float64
}

// NewEngine validates the catalog and fixes the aggregation mode. A catalog
// or recommendation-table error here must abort startup.
func NewEngine(catalog Catalog, mode AggregationMode) (*Engine, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dimension catalog: %w", err)
	}
	switch mode {
	case ModeSum, ModeAverage, ModeWeightedMultiplier:
	default:
		return nil, fmt.Errorf("unknown aggregation mode %q", mode)
	}

	e := &Engine{catalog: catalog, mode: mode}
	for _, dim := range catalog.Dimensions {
		e.maxTotal += e.maxRaw(dim)
	}
	return e, nil
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() Catalog { return e.catalog }

// Mode returns the configured aggregation mode.
func (e *Engine) Mode() AggregationMode { return e.mode }

// MaxTotal returns the theoretical maximum total for the configured mode.
// Percentages divide by this compile-time-derivable constant, never by an
// empirical sample, so they are stable across assessments.
func (e *Engine) MaxTotal() float64 { return e.maxTotal }

// Score aggregates an answer set into a readiness result. Missing answers
// default to NeutralAnswer; the input map is only read, never written.
func (e *Engine) Score(answers AnswerSet) ReadinessResult {
	scores := make([]DimensionScore, 0, len(e.catalog.Dimensions))
	statuses := make([]CriticalStatus, 0, CriticalDimensionCount)

	var total float64
	for _, dim := range e.catalog.Dimensions {
		raw := e.aggregate(dim, answers)
		weighted := raw
		if dim.Critical {
			sumRaw := e.sumScale(dim, raw)
			weighted = applyCriticalPenalty(raw, sumRaw)
			statuses = append(statuses, evaluateCriticalStatus(dim, sumRaw))
		}
		scores = append(scores, DimensionScore{
			DimensionID:   dim.ID,
			Title:         dim.Title,
			RawScore:      raw,
			WeightedScore: weighted,
		})
		total += weighted
	}

	percentage := int(math.Round(total / e.maxTotal * 100))

	// The band thresholds are defined on the 90-point sum scale; other
	// modes normalize onto it so one rule table serves all three.
	totalOn90 := total / e.maxTotal * 90

	return ReadinessResult{
		DimensionScores:  scores,
		Total:            total,
		MaxTotal:         e.maxTotal,
		Percentage:       percentage,
		Band:             classifyBand(totalOn90, percentage, statuses),
		CriticalStatuses: statuses,
	}
}

// aggregate computes one dimension's raw score in the configured mode.
func (e *Engine) aggregate(dim Dimension, answers AnswerSet) float64 {
	sum := 0
	for _, q := range dim.Questions {
		v, ok := answers[q.ID]
		if !ok {
			v = NeutralAnswer
		}
		sum += v
	}

	switch e.mode {
	case ModeAverage:
		return float64(sum) / float64(len(dim.Questions))
	case ModeWeightedMultiplier:
		return float64(sum) * dim.Weight
	default:
		return float64(sum)
	}
}

// sumScale re-expresses a raw score on the 3-15 scale the critical
// thresholds are defined on.
func (e *Engine) sumScale(dim Dimension, raw float64) float64 {
	switch e.mode {
	case ModeAverage:
		return raw * float64(len(dim.Questions))
	case ModeWeightedMultiplier:
		return raw / dim.Weight
	default:
		return raw
	}
}

// maxRaw is the highest raw score a dimension can reach in the configured
// mode (15 in sum mode, 5 in average mode, 15*weight in weighted mode).
func (e *Engine) maxRaw(dim Dimension) float64 {
	base := float64(MaxAnswer * len(dim.Questions))
	switch e.mode {
	case ModeAverage:
		return float64(MaxAnswer)
	case ModeWeightedMultiplier:
		return base * dim.Weight
	default:
		return base
	}
}

// NormalizedScores re-expresses raw dimension scores on the 1-5 scale so
// they can be compared against benchmarks regardless of aggregation mode.
func (e *Engine) NormalizedScores(result ReadinessResult) map[string]float64 {
	out := make(map[string]float64, len(result.DimensionScores))
	for _, ds := range result.DimensionScores {
		dim, ok := e.catalog.DimensionByID(ds.DimensionID)
		if !ok {
			continue
		}
		out[ds.DimensionID] = e.sumScale(dim, ds.RawScore) / float64(len(dim.Questions))
	}
	return out
}
