// internal/workers/assessment/compare-benchmark/config.go
package comparebenchmark

import "time"

type Config struct {
	Timeout          time.Duration
	DefaultBenchmark string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:          10 * time.Second,
		DefaultBenchmark: "Industry Average",
	}
}
