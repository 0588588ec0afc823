// internal/scoring/engine_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestEngine(t *testing.T, mode AggregationMode) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultCatalog(), mode)
	require.NoError(t, err)
	return engine
}

// answersAll builds a complete answer set with every question set to v.
func answersAll(v int) AnswerSet {
	answers := make(AnswerSet)
	for _, dim := range DefaultCatalog().Dimensions {
		for _, q := range dim.Questions {
			answers[q.ID] = v
		}
	}
	return answers
}

// ==========================
// Scenario Tests
// ==========================

func TestScore_AllThrees(t *testing.T) {
	engine := newTestEngine(t, ModeSum)
	result := engine.Score(answersAll(3))

	require.Len(t, result.DimensionScores, 6)
	for _, ds := range result.DimensionScores {
		assert.Equal(t, 9.0, ds.RawScore, "dimension %s", ds.DimensionID)
	}

	// 9 sits in the moderate-penalty zone [7,10) for both critical
	// dimensions: 9/1.5 = 6.0 each, so total = 4*9 + 2*6 = 48.
	assert.InDelta(t, 48.0, result.Total, 1e-9)
	assert.Equal(t, 53, result.Percentage)
	assert.Equal(t, BandFoundationalGaps, result.Band.Band)
	assert.False(t, result.Band.Capped)

	require.Len(t, result.CriticalStatuses, 2)
	for _, cs := range result.CriticalStatuses {
		assert.Equal(t, TierYellow, cs.Tier)
	}
}

func TestScore_AllFives(t *testing.T) {
	engine := newTestEngine(t, ModeSum)
	result := engine.Score(answersAll(5))

	for _, ds := range result.DimensionScores {
		assert.Equal(t, 15.0, ds.RawScore)
		assert.Equal(t, 15.0, ds.WeightedScore, "no penalty at raw >= 10")
	}
	assert.InDelta(t, 90.0, result.Total, 1e-9)
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, BandAIReady, result.Band.Band)
	assert.False(t, result.Band.Caution)

	for _, cs := range result.CriticalStatuses {
		assert.Equal(t, TierStrong, cs.Tier)
	}
}

func TestScore_AllOnes(t *testing.T) {
	engine := newTestEngine(t, ModeSum)
	result := engine.Score(answersAll(1))

	for _, ds := range result.DimensionScores {
		assert.Equal(t, 3.0, ds.RawScore)
	}

	// Severe penalty: 3/2.5 = 1.2 per critical dimension.
	assert.InDelta(t, 14.4, result.Total, 1e-9)
	assert.Equal(t, 16, result.Percentage)
	assert.Equal(t, BandNotReady, result.Band.Band)

	for _, cs := range result.CriticalStatuses {
		assert.Equal(t, TierRed, cs.Tier)
		assert.NotEmpty(t, cs.Recommendation)
	}
}

// ==========================
// Engine Properties
// ==========================

func TestScore_MissingAnswersDefaultToNeutral(t *testing.T) {
	engine := newTestEngine(t, ModeSum)

	empty := engine.Score(AnswerSet{})
	neutral := engine.Score(answersAll(NeutralAnswer))
	assert.Equal(t, neutral, empty, "missing answers must score as NeutralAnswer")

	// A partially answered set only affects the dimensions it touches.
	partial := engine.Score(AnswerSet{"data_quality": 5})
	for _, ds := range partial.DimensionScores {
		if ds.DimensionID == "data" {
			assert.Equal(t, 11.0, ds.RawScore)
		} else {
			assert.Equal(t, 9.0, ds.RawScore)
		}
	}
}

func TestScore_Idempotent(t *testing.T) {
	engine := newTestEngine(t, ModeSum)
	answers := AnswerSet{
		"proc_doc": 4, "proc_metrics": 2, "data_quality": 5,
		"strategy": 1, "gov_structure": 3, "ai_awareness": 4,
	}

	first := engine.Score(answers)
	second := engine.Score(answers)
	assert.Equal(t, first, second)
}

func TestScore_Monotonicity(t *testing.T) {
	engine := newTestEngine(t, ModeSum)
	base := answersAll(2)

	baseline := engine.Score(base)
	for _, dim := range engine.Catalog().Dimensions {
		for _, q := range dim.Questions {
			for v := 3; v <= MaxAnswer; v++ {
				bumped := make(AnswerSet, len(base))
				for k, val := range base {
					bumped[k] = val
				}
				bumped[q.ID] = v

				result := engine.Score(bumped)
				assert.GreaterOrEqual(t, result.Total, baseline.Total,
					"raising %s to %d must not lower the total", q.ID, v)
				assert.GreaterOrEqual(t, int(result.Band.Band), int(baseline.Band.Band),
					"raising %s to %d must not worsen the band", q.ID, v)

				for i, ds := range result.DimensionScores {
					assert.GreaterOrEqual(t, ds.RawScore, baseline.DimensionScores[i].RawScore)
					assert.GreaterOrEqual(t, ds.WeightedScore, baseline.DimensionScores[i].WeightedScore)
				}
			}
		}
	}
}

// ==========================
// Aggregation Modes
// ==========================

func TestScore_AggregationModes(t *testing.T) {
	tests := []struct {
		name         string
		mode         AggregationMode
		answer       int
		wantRaw      float64
		wantMaxTotal float64
	}{
		{name: "sum mode", mode: ModeSum, answer: 4, wantRaw: 12.0, wantMaxTotal: 90},
		{name: "average mode", mode: ModeAverage, answer: 4, wantRaw: 4.0, wantMaxTotal: 30},
		{name: "weighted mode", mode: ModeWeightedMultiplier, answer: 4, wantRaw: 36.0, wantMaxTotal: 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t, tt.mode)
			assert.Equal(t, tt.wantMaxTotal, engine.MaxTotal())

			result := engine.Score(answersAll(tt.answer))
			for _, ds := range result.DimensionScores {
				assert.InDelta(t, tt.wantRaw, ds.RawScore, 1e-9)
			}
		})
	}
}

func TestScore_BandAgreesAcrossModes(t *testing.T) {
	// The same answer set must land in the same band regardless of the
	// configured aggregation mode: thresholds are normalized, not
	// duplicated per mode.
	answerSets := []AnswerSet{
		answersAll(1), answersAll(2), answersAll(3), answersAll(4), answersAll(5),
		{"data_quality": 1, "data_access": 1, "strategy": 5},
	}

	for _, answers := range answerSets {
		sum := newTestEngine(t, ModeSum).Score(answers)
		avg := newTestEngine(t, ModeAverage).Score(answers)
		weighted := newTestEngine(t, ModeWeightedMultiplier).Score(answers)

		assert.Equal(t, sum.Band.Band, avg.Band.Band)
		assert.Equal(t, sum.Band.Band, weighted.Band.Band)
		assert.Equal(t, sum.Percentage, avg.Percentage)
		assert.Equal(t, sum.Percentage, weighted.Percentage)
	}
}

func TestNormalizedScores(t *testing.T) {
	answers := answersAll(4)

	for _, mode := range []AggregationMode{ModeSum, ModeAverage, ModeWeightedMultiplier} {
		engine := newTestEngine(t, mode)
		normalized := engine.NormalizedScores(engine.Score(answers))
		require.Len(t, normalized, 6)
		for id, score := range normalized {
			assert.InDelta(t, 4.0, score, 1e-9, "mode %s dimension %s", mode, id)
		}
	}
}

func TestParseAggregationMode(t *testing.T) {
	mode, err := ParseAggregationMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeSum, mode, "empty config selects the canonical mode")

	_, err = ParseAggregationMode("geometric")
	assert.Error(t, err)
}

// ==========================
// Configuration Validation
// ==========================

func TestNewEngine_RejectsMalformedCatalog(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Catalog)
	}{
		{
			name: "dimension with two questions",
			mutate: func(c *Catalog) {
				c.Dimensions[0].Questions = c.Dimensions[0].Questions[:2]
			},
		},
		{
			name: "no critical dimensions",
			mutate: func(c *Catalog) {
				for i := range c.Dimensions {
					c.Dimensions[i].Critical = false
				}
			},
		},
		{
			name: "three critical dimensions",
			mutate: func(c *Catalog) {
				c.Dimensions[0].Critical = true
			},
		},
		{
			name: "critical dimension without recommendations",
			mutate: func(c *Catalog) {
				c.Dimensions[2].Critical = false
				c.Dimensions[0].Critical = true // "process" has no entries
			},
		},
		{
			name: "duplicate dimension id",
			mutate: func(c *Catalog) {
				c.Dimensions[1].ID = c.Dimensions[0].ID
			},
		},
		{
			name: "non-positive weight",
			mutate: func(c *Catalog) {
				c.Dimensions[3].Weight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := DefaultCatalog()
			tt.mutate(&catalog)
			_, err := NewEngine(catalog, ModeSum)
			assert.Error(t, err)
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.NoError(t, catalog.Validate())
	assert.Len(t, catalog.Dimensions, 6)

	var critical []string
	for _, dim := range catalog.Dimensions {
		if dim.Critical {
			critical = append(critical, dim.ID)
		}
	}
	assert.Equal(t, []string{"data", "leadership"}, critical)

	dim, ok := catalog.DimensionByID("governance")
	require.True(t, ok)
	assert.Equal(t, "Governance & Risk", dim.Title)

	_, ok = catalog.DimensionByID("missing")
	assert.False(t, ok)
}
