// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_scored_total",
			Help: "Total number of assessments scored, by readiness band",
		},
		[]string{"band"},
	)

	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assessment_scoring_duration_seconds",
			Help: "Duration of assessment scoring in seconds",
		},
		[]string{"task_type"},
	)

	BenchmarkComparisons = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "benchmark_comparisons_total",
			Help: "Total number of benchmark comparisons, by baseline name",
		},
		[]string{"benchmark"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)
)
