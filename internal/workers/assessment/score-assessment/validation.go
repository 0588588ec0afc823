// internal/workers/assessment/score-assessment/validation.go
package scoreassessment

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/scoring"
)

// buildAnswersSchema derives the JSON schema for the answers payload from
// the catalog: one integer property in [1,5] per known question id, nothing
// else allowed. Out-of-range or unknown answers are rejected here, at the
// boundary; the engine assumes validated input.
func buildAnswersSchema(catalog scoring.Catalog) map[string]interface{} {
	answerProps := make(map[string]interface{})
	for _, dim := range catalog.Dimensions {
		for _, q := range dim.Questions {
			answerProps[q.ID] = map[string]interface{}{
				"type":    "integer",
				"minimum": scoring.MinAnswer,
				"maximum": scoring.MaxAnswer,
			}
		}
	}

	return map[string]interface{}{
		"type":     "object",
		"required": []string{"answers"},
		"properties": map[string]interface{}{
			"assessmentId": map[string]interface{}{"type": "string"},
			"companyName":  map[string]interface{}{"type": "string"},
			"answers": map[string]interface{}{
				"type":                 "object",
				"properties":           answerProps,
				"additionalProperties": false,
			},
		},
	}
}

// validateInput checks the raw job variables against the answers schema.
// Missing answers are fine (the engine defaults them); malformed ones are
// not.
func validateInput(catalog scoring.Catalog, rawVariables string) error {
	schemaLoader := gojsonschema.NewGoLoader(buildAnswersSchema(catalog))
	documentLoader := gojsonschema.NewStringLoader(rawVariables)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate answers payload: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("invalid answers payload: %s", strings.Join(msgs, "; "))
}
