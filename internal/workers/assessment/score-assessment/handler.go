// internal/workers/assessment/score-assessment/handler.go
package scoreassessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	cmerrors "github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/errors"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/logger"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/metrics"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/scoring"
)

const (
	TaskType = "score-assessment"
)

var (
	ErrScoringFailed = errors.New("SCORING_FAILED")
)

type Handler struct {
	config *Config
	engine *scoring.Engine
	logger logger.Logger
}

func NewHandler(config *Config, engine *scoring.Engine, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		engine: engine,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	if err := validateInput(h.engine.Catalog(), job.Variables); err != nil {
		stdErr := cmerrors.NewAnswerValidationError(err.Error())
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
		h.failJob(client, job, string(stdErr.Code), stdErr.Details, 0)
		return
	}

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
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "SCORING_FAILED").Inc()
		h.failJob(client, job, "SCORING_FAILED", err.Error(), 0)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	start := time.Now()

	assessmentID := input.AssessmentID
	if assessmentID == "" {
		assessmentID = uuid.New().String()
	}

	answers := make(scoring.AnswerSet, len(input.Answers))
	for id, v := range input.Answers {
		answers[id] = v
	}

	result := h.engine.Score(answers)
	summary := scoring.Summary(result)

	metrics.ScoringDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	metrics.AssessmentsScored.WithLabelValues(result.Band.Label).Inc()

	h.logger.Info("assessment scored", map[string]interface{}{
		"assessmentId": assessmentID,
		"companyName":  input.CompanyName,
		"total":        result.Total,
		"percentage":   result.Percentage,
		"band":         result.Band.Label,
	})

	return &Output{
		AssessmentID:    assessmentID,
		CompanyName:     input.CompanyName,
		Result:          result,
		DimensionScores: h.engine.NormalizedScores(result),
		Summary:         summary,
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
