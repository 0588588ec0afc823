// internal/scoring/narrative.go
package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// bandOpenings are the per-band opening sentences of the executive summary.
// Narrative text is table-driven so it can be tested without any renderer.
var bandOpenings = map[ReadinessBand]string{
	BandAIReady:          "The organization shows a strong foundation across the assessed dimensions and is positioned to run strategic AI pilots.",
	BandBuildingBlocks:   "The building blocks for AI adoption are in place, but weak dimensions should be addressed before scaling beyond pilots.",
	BandFoundationalGaps: "Significant foundational gaps remain; focused groundwork is needed before AI initiatives can deliver reliably.",
	BandNotReady:         "The organization is not yet positioned for AI adoption; business fundamentals need attention first.",
}

// dimensionFocus is the first-priority action per dimension, appended for
// the weakest areas of an assessment.
var dimensionFocus = map[string]string{
	"process":    "document and standardize critical business processes",
	"tech":       "develop API-first infrastructure for AI integration",
	"data":       "implement data quality frameworks and governance",
	"people":     "launch AI literacy programs across the organization",
	"leadership": "secure executive sponsorship and dedicated funding",
	"governance": "establish formal AI governance structures",
}

// Summary produces the executive-summary paragraph for a result: the band
// opening, the weakest dimensions with their focus actions, and any red or
// yellow critical-dimension recommendations. Pure function of its inputs.
func Summary(result ReadinessResult) string {
	var b strings.Builder
	b.WriteString(bandOpenings[result.Band.Band])
	if result.Band.Caution {
		b.WriteString(" Proceed with caution: one critical dimension still needs strengthening.")
	}
	if result.Band.Capped {
		b.WriteString(" The readiness level was capped because critical dimensions scored in the red zone.")
	}

	weakest := WeakestDimensions(result, 2)
	if len(weakest) > 0 {
		names := make([]string, 0, len(weakest))
		for _, ds := range weakest {
			if focus, ok := dimensionFocus[ds.DimensionID]; ok {
				names = append(names, fmt.Sprintf("%s (%s)", ds.Title, focus))
			} else {
				names = append(names, ds.Title)
			}
		}
		b.WriteString(" Priority areas: ")
		b.WriteString(strings.Join(names, "; "))
		b.WriteString(".")
	}

	for _, cs := range result.CriticalStatuses {
		if cs.Tier != TierStrong && cs.Recommendation != "" {
			b.WriteString(" ")
			b.WriteString(cs.Recommendation)
		}
	}
	return b.String()
}

// WeakestDimensions returns up to n dimension scores ordered by ascending
// raw score. Ties keep catalog order, so output is deterministic.
func WeakestDimensions(result ReadinessResult, n int) []DimensionScore {
	sorted := make([]DimensionScore, len(result.DimensionScores))
	copy(sorted, result.DimensionScores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RawScore < sorted[j].RawScore
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
