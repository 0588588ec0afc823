// internal/benchmark/compare.go
package benchmark

import "math"

// DimensionComparison is one dimension's delta against the baseline.
type DimensionComparison struct {
	DimensionID           string  `json:"dimensionId"`
	YourScore             float64 `json:"yourScore"`
	BenchmarkScore        float64 `json:"benchmarkScore"`
	Difference            float64 `json:"difference"`
	PercentageOfBenchmark float64 `json:"percentageOfBenchmark"`
}

// Comparison is the full diff of an assessment against a baseline.
type Comparison struct {
	BenchmarkName        string                `json:"benchmarkName"`
	BenchmarkDescription string                `json:"benchmarkDescription"`
	YourTotal            float64               `json:"yourTotal"`
	BenchmarkTotal       float64               `json:"benchmarkTotal"`
	TotalDifference      float64               `json:"totalDifference"`
	Dimensions           []DimensionComparison `json:"dimensions"`
}

// Compare diffs normalized (1-5 scale) dimension scores against a baseline.
// Dimension order follows dimensionOrder so output is stable for renderers.
// A zero benchmark score yields percentage-of-benchmark 0 instead of
// dividing by zero.
func Compare(scores map[string]float64, dimensionOrder []string, b Benchmark) Comparison {
	cmp := Comparison{
		BenchmarkName:        b.Name,
		BenchmarkDescription: b.Description,
		BenchmarkTotal:       b.Total,
		Dimensions:           make([]DimensionComparison, 0, len(dimensionOrder)),
	}

	for _, id := range dimensionOrder {
		yours, ok := scores[id]
		if !ok {
			continue
		}
		benchScore := b.PerDimension[id]

		pct := 0.0
		if benchScore > 0 {
			pct = math.Round(yours/benchScore*1000) / 10
		}

		cmp.Dimensions = append(cmp.Dimensions, DimensionComparison{
			DimensionID:           id,
			YourScore:             yours,
			BenchmarkScore:        benchScore,
			Difference:            yours - benchScore,
			PercentageOfBenchmark: pct,
		})
		cmp.YourTotal += yours
	}

	cmp.TotalDifference = cmp.YourTotal - cmp.BenchmarkTotal
	return cmp
}
