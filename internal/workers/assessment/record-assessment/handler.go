// internal/workers/assessment/record-assessment/handler.go
package recordassessment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/benchmark"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/errors"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/logger"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/metrics"
)

const (
	TaskType = "record-assessment"
)

// SearchIndexer mirrors recorded assessments into a search index. The
// Elasticsearch client satisfies it; tests substitute a fake.
type SearchIndexer interface {
	IndexDocument(ctx context.Context, index, id string, body []byte) error
}

type Handler struct {
	config     *Config
	store      *benchmark.Store
	indexer    SearchIndexer
	logger     logger.Logger
	errHandler *errors.ErrorHandler
	now        func() time.Time
}

// NewHandler creates the persistence worker. indexer may be nil when no
// search cluster is configured; recording then skips the mirror step.
func NewHandler(config *Config, store *benchmark.Store, indexer SearchIndexer, log logger.Logger) *Handler {
	workerLog := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		store:      store,
		indexer:    indexer,
		logger:     workerLog,
		errHandler: errors.NewErrorHandler(workerLog),
		now:        time.Now,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "PARSE_ERROR").Inc()
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err), 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.ErrCodeAssessmentInsertFailed)).Inc()
		h.errHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.AssessmentID == "" {
		return nil, errors.NewAnswerValidationError("assessmentId is required")
	}

	completedAt := h.now().UTC()
	record := input.toAssessment(completedAt)

	if err := h.store.RecordAssessment(ctx, record); err != nil {
		return nil, errors.NewAssessmentInsertError(fmt.Sprintf("assessment %s: %v", input.AssessmentID, err))
	}

	output := &Output{
		AssessmentID: input.AssessmentID,
		Recorded:     true,
		CompletedAt:  completedAt,
	}

	// The relational row is the source of truth; the search mirror is best
	// effort and must not fail the job.
	if h.indexer != nil {
		doc, err := json.Marshal(record)
		if err == nil {
			err = h.indexer.IndexDocument(ctx, h.config.SearchIndex, record.ID, doc)
		}
		if err != nil {
			idxErr := errors.NewAssessmentIndexError(err.Error())
			metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(idxErr.Code)).Inc()
			h.logger.Warn("failed to index assessment", map[string]interface{}{
				"assessmentId": record.ID,
				"error":        idxErr.Details,
			})
		} else {
			output.Indexed = true
		}
	}

	h.logger.Info("assessment recorded", map[string]interface{}{
		"assessmentId": record.ID,
		"companyName":  record.CompanyName,
		"band":         record.Band,
		"indexed":      output.Indexed,
	})

	return output, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string, _ int32) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
