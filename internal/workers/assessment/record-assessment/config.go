// internal/workers/assessment/record-assessment/config.go
package recordassessment

import "time"

type Config struct {
	Timeout     time.Duration
	SearchIndex string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:     15 * time.Second,
		SearchIndex: "assessments",
	}
}
