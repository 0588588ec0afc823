// internal/workers/assessment/compare-benchmark/models.go
package comparebenchmark

import "github.com/tejmar999-bot/ai-process-readiness2-automation/internal/benchmark"

type Input struct {
	AssessmentID    string             `json:"assessmentId"`
	CompanyName     string             `json:"companyName"`
	BenchmarkName   string             `json:"benchmarkName,omitempty"`
	DimensionScores map[string]float64 `json:"dimensionScores"`
}

type Output struct {
	AssessmentID string               `json:"assessmentId"`
	Comparison   benchmark.Comparison `json:"comparison"`
}
