// internal/models/assessment.go
package models

import "time"

// Assessment is the persisted record of one scored assessment. The scoring
// engine never sees this type: it is the wire/storage shape shared by the
// store, the workers and the search index.
type Assessment struct {
	ID              string             `json:"id"`
	CompanyName     string             `json:"companyName"`
	Total           float64            `json:"total"`
	Percentage      int                `json:"percentage"`
	Band            string             `json:"band"`
	BandCapped      bool               `json:"bandCapped"`
	DimensionScores map[string]float64 `json:"dimensionScores"` // normalized 1-5 per dimension
	Answers         map[string]int     `json:"answers,omitempty"`
	CompletedAt     time.Time          `json:"completedAt"`
}
