// internal/workers/assessment/send-report/config.go
package sendreport

import "time"

type Config struct {
	EmailEnabled bool
	TopicEnabled bool
	SenderEmail  string
	TopicARN     string
	AWSRegion    string
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		EmailEnabled: true,
		Timeout:      30 * time.Second,
	}
}
