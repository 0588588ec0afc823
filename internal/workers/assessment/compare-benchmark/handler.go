// internal/workers/assessment/compare-benchmark/handler.go
package comparebenchmark

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
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/scoring"
)

const (
	TaskType = "compare-benchmark"
)

type Handler struct {
	config     *Config
	store      *benchmark.Store
	catalog    scoring.Catalog
	logger     logger.Logger
	errHandler *errors.ErrorHandler
}

func NewHandler(config *Config, store *benchmark.Store, catalog scoring.Catalog, log logger.Logger) *Handler {
	workerLog := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:     config,
		store:      store,
		catalog:    catalog,
		logger:     workerLog,
		errHandler: errors.NewErrorHandler(workerLog),
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
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.ErrCodeComparisonFailed)).Inc()
		h.errHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if len(input.DimensionScores) == 0 {
		return nil, &errors.StandardError{
			Code:      errors.ErrCodeComparisonFailed,
			Message:   "No dimension scores to compare",
			Retryable: false,
			Timestamp: time.Now().UTC(),
		}
	}

	name := input.BenchmarkName
	if name == "" {
		name = h.config.DefaultBenchmark
	}

	baseline, err := h.store.GetBaseline(ctx, name)
	if err != nil {
		return nil, errors.NewBenchmarkLookupError(fmt.Sprintf("baseline %q: %v", name, err))
	}

	order := make([]string, 0, len(h.catalog.Dimensions))
	for _, dim := range h.catalog.Dimensions {
		order = append(order, dim.ID)
	}

	cmp := benchmark.Compare(input.DimensionScores, order, baseline)
	metrics.BenchmarkComparisons.WithLabelValues(baseline.Name).Inc()

	h.logger.Info("benchmark comparison complete", map[string]interface{}{
		"assessmentId":    input.AssessmentID,
		"benchmark":       baseline.Name,
		"totalDifference": cmp.TotalDifference,
	})

	return &Output{
		AssessmentID: input.AssessmentID,
		Comparison:   cmp,
	}, nil
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
