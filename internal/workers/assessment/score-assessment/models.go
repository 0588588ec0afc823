// internal/workers/assessment/score-assessment/models.go
package scoreassessment

import "github.com/tejmar999-bot/ai-process-readiness2-automation/internal/scoring"

type Input struct {
	AssessmentID string         `json:"assessmentId,omitempty"`
	CompanyName  string         `json:"companyName"`
	Answers      map[string]int `json:"answers"`
}

type Output struct {
	AssessmentID string                  `json:"assessmentId"`
	CompanyName  string                  `json:"companyName"`
	Result       scoring.ReadinessResult `json:"result"`
	// DimensionScores are the per-dimension scores normalized to the 1-5
	// answer scale, the form downstream benchmark and persistence steps use.
	DimensionScores map[string]float64 `json:"dimensionScores"`
	Summary         string             `json:"summary"`
}
