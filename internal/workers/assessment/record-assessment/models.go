// internal/workers/assessment/record-assessment/models.go
package recordassessment

import (
	"time"

	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/models"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/scoring"
)

type Input struct {
	AssessmentID    string                  `json:"assessmentId"`
	CompanyName     string                  `json:"companyName"`
	Result          scoring.ReadinessResult `json:"result"`
	DimensionScores map[string]float64      `json:"dimensionScores"`
	Answers         map[string]int          `json:"answers"`
}

type Output struct {
	AssessmentID string    `json:"assessmentId"`
	Recorded     bool      `json:"recorded"`
	Indexed      bool      `json:"indexed"`
	CompletedAt  time.Time `json:"completedAt"`
}

// toAssessment flattens the job input into the persisted record shape.
func (in *Input) toAssessment(completedAt time.Time) models.Assessment {
	return models.Assessment{
		ID:              in.AssessmentID,
		CompanyName:     in.CompanyName,
		Total:           in.Result.Total,
		Percentage:      in.Result.Percentage,
		Band:            in.Result.Band.Label,
		BandCapped:      in.Result.Band.Capped,
		DimensionScores: in.DimensionScores,
		Answers:         in.Answers,
		CompletedAt:     completedAt,
	}
}
