// internal/workers/assessment/compare-benchmark/handler_test.go
package comparebenchmark

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/benchmark"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/logger"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/scoring"
)

func newTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := benchmark.NewStore(db, nil, logger.NewTestLogger(t))
	return NewHandler(LoadConfig(), store, scoring.DefaultCatalog(), logger.NewTestLogger(t)), mock
}

func testScores() map[string]float64 {
	return map[string]float64{
		"process":    4.0,
		"tech":       3.5,
		"data":       2.5,
		"people":     3.0,
		"leadership": 4.5,
		"governance": 2.0,
	}
}

func TestExecute_StaticBenchmark(t *testing.T) {
	h, _ := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		AssessmentID:    "assessment-1",
		BenchmarkName:   "Industry Average",
		DimensionScores: testScores(),
	})
	require.NoError(t, err)

	assert.Equal(t, "assessment-1", output.AssessmentID)
	assert.Equal(t, "Industry Average", output.Comparison.BenchmarkName)
	assert.Len(t, output.Comparison.Dimensions, 6)

	// Dimension order follows the catalog, not map iteration.
	assert.Equal(t, "process", output.Comparison.Dimensions[0].DimensionID)
	assert.Equal(t, "governance", output.Comparison.Dimensions[5].DimensionID)
}

func TestExecute_EmptyNameUsesConfiguredDefault(t *testing.T) {
	h, _ := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		AssessmentID:    "assessment-2",
		DimensionScores: testScores(),
	})
	require.NoError(t, err)
	assert.Equal(t, benchmark.DefaultBenchmarkName, output.Comparison.BenchmarkName)
}

func TestExecute_MovingAverageBaseline(t *testing.T) {
	h, mock := newTestHandler(t)

	rows := sqlmock.NewRows([]string{"dimension_scores"}).
		AddRow([]byte(`{"process":4,"tech":4,"data":4,"people":4,"leadership":4,"governance":4}`)).
		AddRow([]byte(`{"process":2,"tech":2,"data":2,"people":2,"leadership":2,"governance":2}`))
	mock.ExpectQuery("SELECT dimension_scores FROM assessments").
		WillReturnRows(rows)

	output, err := h.Execute(context.Background(), &Input{
		AssessmentID:    "assessment-3",
		BenchmarkName:   benchmark.MovingAverageBenchmarkName,
		DimensionScores: testScores(),
	})
	require.NoError(t, err)

	assert.Equal(t, benchmark.MovingAverageBenchmarkName, output.Comparison.BenchmarkName)
	for _, d := range output.Comparison.Dimensions {
		assert.Equal(t, 3.0, d.BenchmarkScore)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_NoScoresFails(t *testing.T) {
	h, _ := newTestHandler(t)

	_, err := h.Execute(context.Background(), &Input{AssessmentID: "assessment-4"})
	assert.Error(t, err)
}
