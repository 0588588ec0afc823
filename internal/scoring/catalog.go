// internal/scoring/catalog.go
package scoring

import "fmt"

const (
	// QuestionsPerDimension is fixed by the assessment design: every
	// dimension is probed by exactly three Likert questions.
	QuestionsPerDimension = 3

	// MinAnswer and MaxAnswer bound the Likert scale.
	MinAnswer = 1
	MaxAnswer = 5

	// CriticalDimensionCount is the number of dimensions the band
	// classifier gates on. The classifier assumes exactly this many.
	CriticalDimensionCount = 2
)

// Question is a single Likert-scale question. It belongs to exactly one
// dimension.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Dimension is one topical area of organizational readiness.
type Dimension struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Critical    bool       `json:"critical"`
	Weight      float64    `json:"weight"`
	Questions   []Question `json:"questions"`
}

// Catalog is the ordered set of dimensions an assessment scores against.
// It is loaded once at process start and never mutated afterwards.
type Catalog struct {
	Dimensions []Dimension
}

// DefaultCatalog returns the canonical six-dimension catalog. Data Readiness
// and Leadership & Alignment are the critical dimensions: weak scores there
// gate the overall readiness band regardless of the total.
func DefaultCatalog() Catalog {
	return Catalog{Dimensions: []Dimension{
		{
			ID:          "process",
			Title:       "Process Maturity",
			Description: "How well defined and measured your processes are.",
			Weight:      3.0,
			Questions: []Question{
				{ID: "proc_doc", Text: "Are core processes documented and standardized across teams?"},
				{ID: "proc_metrics", Text: "Are process performance metrics tracked regularly and reliably?"},
				{ID: "proc_variation", Text: "Is process variation understood and root-causes identified?"},
			},
		},
		{
			ID:          "tech",
			Title:       "Technology Infrastructure",
			Description: "Tools and platforms available for analytics and automation.",
			Weight:      3.0,
			Questions: []Question{
				{ID: "tech_stack", Text: "Does your tech stack support integrations and APIs?"},
				{ID: "analytics", Text: "Are analytics and reporting tools available to teams?"},
				{ID: "experimentation", Text: "Is there an environment for ML experiments or pilots?"},
			},
		},
		{
			ID:          "data",
			Title:       "Data Readiness",
			Description: "Quality, accessibility and structure of your data.",
			Critical:    true,
			Weight:      3.0,
			Questions: []Question{
				{ID: "data_digitized", Text: "Is process data digitized and collected consistently?"},
				{ID: "data_quality", Text: "Is the data cleaned, documented, and validated?"},
				{ID: "data_access", Text: "Can teams access historical data for analysis and modelling?"},
			},
		},
		{
			ID:          "people",
			Title:       "People & Culture",
			Description: "Workforce capability and understanding of AI and data-driven methods.",
			Weight:      3.0,
			Questions: []Question{
				{ID: "ai_awareness", Text: "Do teams understand basic AI concepts and use-cases?"},
				{ID: "training", Text: "Are training programs in place for data and AI skills?"},
				{ID: "roles", Text: "Are there named AI/data translators, champions or SMEs?"},
			},
		},
		{
			ID:          "leadership",
			Title:       "Leadership & Alignment",
			Description: "Executive commitment and strategic alignment for AI.",
			Critical:    true,
			Weight:      3.0,
			Questions: []Question{
				{ID: "strategy", Text: "Is AI explicitly part of the organizational strategy?"},
				{ID: "funding", Text: "Is there allocated funding for pilots and scale-up?"},
				{ID: "outcomes", Text: "Are AI initiatives tied to measurable business outcomes?"},
			},
		},
		{
			ID:          "governance",
			Title:       "Governance & Risk",
			Description: "Oversight, risk management and accountability for AI systems.",
			Weight:      3.0,
			Questions: []Question{
				{ID: "gov_structure", Text: "Are there formal governance structures for AI and data initiatives?"},
				{ID: "risk_framework", Text: "Are AI risks assessed before deployment with a defined framework?"},
				{ID: "monitoring", Text: "Are deployed models and automations monitored on an ongoing basis?"},
			},
		},
	}}
}

// Validate checks the structural invariants the engine depends on. A
// malformed catalog is a configuration bug: callers must treat an error here
// as fatal at startup rather than score against a broken catalog.
func (c Catalog) Validate() error {
	if len(c.Dimensions) == 0 {
		return fmt.Errorf("catalog has no dimensions")
	}

	seen := make(map[string]bool, len(c.Dimensions))
	critical := 0
	for _, dim := range c.Dimensions {
		if dim.ID == "" {
			return fmt.Errorf("dimension %q has empty id", dim.Title)
		}
		if seen[dim.ID] {
			return fmt.Errorf("duplicate dimension id %q", dim.ID)
		}
		seen[dim.ID] = true

		if len(dim.Questions) != QuestionsPerDimension {
			return fmt.Errorf("dimension %q has %d questions, want %d",
				dim.ID, len(dim.Questions), QuestionsPerDimension)
		}
		if dim.Weight <= 0 {
			return fmt.Errorf("dimension %q has non-positive weight %v", dim.ID, dim.Weight)
		}
		if dim.Critical {
			critical++
			if _, ok := criticalRecommendations[dim.ID]; !ok {
				return fmt.Errorf("critical dimension %q has no recommendation entries", dim.ID)
			}
		}
	}

	if critical != CriticalDimensionCount {
		return fmt.Errorf("catalog flags %d critical dimensions, want %d",
			critical, CriticalDimensionCount)
	}
	return nil
}

// DimensionByID returns the dimension with the given id, or false when the
// catalog does not contain it.
func (c Catalog) DimensionByID(id string) (Dimension, bool) {
	for _, dim := range c.Dimensions {
		if dim.ID == id {
			return dim, true
		}
	}
	return Dimension{}, false
}
