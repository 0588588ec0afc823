// internal/workers/assessment/send-report/report.go
package sendreport

import (
	"fmt"
	"strings"
)

// buildSubject is the one-line email subject for a finished assessment.
func buildSubject(input *Input) string {
	company := input.CompanyName
	if company == "" {
		company = "Your organization"
	}
	return fmt.Sprintf("AI Readiness Report: %s — %s", company, input.Result.Band.Label)
}

// buildReportBody renders the plain-text report. The same text goes to both
// the email body and the notification topic.
func buildReportBody(input *Input) string {
	var b strings.Builder

	company := input.CompanyName
	if company == "" {
		company = "Your organization"
	}

	fmt.Fprintf(&b, "AI Process Readiness Report\n")
	fmt.Fprintf(&b, "Company: %s\n", company)
	fmt.Fprintf(&b, "Overall: %s (%.1f of %.0f, %d%%)\n\n",
		input.Result.Band.Label, input.Result.Total, input.Result.MaxTotal, input.Result.Percentage)

	if input.Summary != "" {
		b.WriteString(input.Summary)
		b.WriteString("\n\n")
	}

	b.WriteString("Dimension scores:\n")
	for _, ds := range input.Result.DimensionScores {
		fmt.Fprintf(&b, "  - %s: %.1f\n", ds.Title, ds.WeightedScore)
	}

	if input.Comparison != nil {
		fmt.Fprintf(&b, "\nCompared against %s (total %+.1f):\n",
			input.Comparison.BenchmarkName, input.Comparison.TotalDifference)
		for _, d := range input.Comparison.Dimensions {
			fmt.Fprintf(&b, "  - %s: %+.1f vs benchmark\n", d.DimensionID, d.Difference)
		}
	}

	return b.String()
}
