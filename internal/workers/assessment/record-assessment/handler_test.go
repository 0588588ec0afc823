// internal/workers/assessment/record-assessment/handler_test.go
package recordassessment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/benchmark"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/logger"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/models"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/scoring"
)

type fakeIndexer struct {
	index string
	id    string
	body  []byte
	err   error
	calls int
}

func (f *fakeIndexer) IndexDocument(_ context.Context, index, id string, body []byte) error {
	f.calls++
	f.index = index
	f.id = id
	f.body = body
	return f.err
}

func newTestHandler(t *testing.T, indexer SearchIndexer) (*Handler, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := benchmark.NewStore(db, nil, logger.NewTestLogger(t))
	h := NewHandler(LoadConfig(), store, indexer, logger.NewTestLogger(t))
	h.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return h, mock
}

func testInput() *Input {
	return &Input{
		AssessmentID: "assessment-7",
		CompanyName:  "Acme Logistics",
		Result: scoring.ReadinessResult{
			Total:      62,
			MaxTotal:   90,
			Percentage: 69,
			Band:       scoring.BandResult{Label: "Building Blocks"},
		},
		DimensionScores: map[string]float64{"process": 3.5, "data": 3.0},
		Answers:         map[string]int{"process_1": 4},
	}
}

func TestExecute_RecordsAndIndexes(t *testing.T) {
	indexer := &fakeIndexer{}
	h, mock := newTestHandler(t, indexer)

	mock.ExpectExec("INSERT INTO assessments").
		WithArgs("assessment-7", "Acme Logistics", 62.0, 69, "Building Blocks", false,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	output, err := h.Execute(context.Background(), testInput())
	require.NoError(t, err)

	assert.True(t, output.Recorded)
	assert.True(t, output.Indexed)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), output.CompletedAt)

	require.Equal(t, 1, indexer.calls)
	assert.Equal(t, "assessments", indexer.index)
	assert.Equal(t, "assessment-7", indexer.id)

	var doc models.Assessment
	require.NoError(t, json.Unmarshal(indexer.body, &doc))
	assert.Equal(t, "Building Blocks", doc.Band)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_IndexFailureDoesNotFailJob(t *testing.T) {
	indexer := &fakeIndexer{err: errors.New("cluster unavailable")}
	h, mock := newTestHandler(t, indexer)

	mock.ExpectExec("INSERT INTO assessments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	output, err := h.Execute(context.Background(), testInput())
	require.NoError(t, err)
	assert.True(t, output.Recorded)
	assert.False(t, output.Indexed)
}

func TestExecute_NilIndexerSkipsMirror(t *testing.T) {
	h, mock := newTestHandler(t, nil)

	mock.ExpectExec("INSERT INTO assessments").
		WillReturnResult(sqlmock.NewResult(0, 1))

	output, err := h.Execute(context.Background(), testInput())
	require.NoError(t, err)
	assert.True(t, output.Recorded)
	assert.False(t, output.Indexed)
}

func TestExecute_InsertFailureFailsJob(t *testing.T) {
	h, mock := newTestHandler(t, nil)

	mock.ExpectExec("INSERT INTO assessments").
		WillReturnError(errors.New("connection refused"))

	_, err := h.Execute(context.Background(), testInput())
	assert.Error(t, err)
}

func TestExecute_RequiresAssessmentID(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	input := testInput()
	input.AssessmentID = ""
	_, err := h.Execute(context.Background(), input)
	assert.Error(t, err)
}
