// internal/scoring/narrative_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	engine := newTestEngine(t, ModeSum)

	t.Run("weak data drags the summary", func(t *testing.T) {
		answers := answersAll(4)
		answers["data_digitized"] = 1
		answers["data_quality"] = 1
		answers["data_access"] = 1

		result := engine.Score(answers)
		summary := Summary(result)

		assert.Contains(t, summary, "Data Readiness")
		assert.Contains(t, summary, "data quality frameworks")
		assert.Contains(t, summary, "AI cannot succeed without reliable data")
	})

	t.Run("capped result says so", func(t *testing.T) {
		answers := answersAll(5)
		for _, qid := range []string{"data_digitized", "data_quality", "data_access",
			"strategy", "funding", "outcomes"} {
			answers[qid] = 1
		}

		result := engine.Score(answers)
		require.True(t, result.Band.Capped)
		assert.Contains(t, Summary(result), "capped")
	})

	t.Run("caution variant is called out", func(t *testing.T) {
		answers := answersAll(5)
		answers["strategy"] = 3
		answers["funding"] = 3
		answers["outcomes"] = 3

		result := engine.Score(answers)
		require.True(t, result.Band.Caution, "leadership at 9 should be the caution branch")
		assert.Contains(t, Summary(result), "caution")
	})

	t.Run("pure function", func(t *testing.T) {
		result := engine.Score(answersAll(3))
		assert.Equal(t, Summary(result), Summary(result))
	})
}

func TestWeakestDimensions(t *testing.T) {
	engine := newTestEngine(t, ModeSum)

	answers := answersAll(4)
	answers["gov_structure"] = 1
	answers["risk_framework"] = 1
	answers["ai_awareness"] = 2

	result := engine.Score(answers)
	weakest := WeakestDimensions(result, 2)

	require.Len(t, weakest, 2)
	assert.Equal(t, "governance", weakest[0].DimensionID)
	assert.Equal(t, "people", weakest[1].DimensionID)

	// n larger than the catalog clamps rather than panics.
	assert.Len(t, WeakestDimensions(result, 10), 6)
}
