// internal/workers/assessment/send-report/models.go
package sendreport

import (
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/benchmark"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/scoring"
)

type Input struct {
	AssessmentID   string                  `json:"assessmentId"`
	CompanyName    string                  `json:"companyName"`
	RecipientEmail string                  `json:"recipientEmail,omitempty"`
	Result         scoring.ReadinessResult `json:"result"`
	Summary        string                  `json:"summary"`
	Comparison     *benchmark.Comparison   `json:"comparison,omitempty"`
}

type Output struct {
	ReportID string `json:"reportId"`
	Status   string `json:"status"` // "sent", "failed", "disabled"
	SentAt   string `json:"sentAt"` // ISO 8601
}

const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)
