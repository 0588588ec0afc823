// internal/common/aws/ses.go

// Package aws wraps the AWS clients the send-report worker delivers
// readiness reports through: SES for the recipient email and SNS for the
// subscriber topic.
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// SESClient sends readiness report emails. It satisfies the send-report
// worker's SESService interface.
type SESClient struct {
	client *ses.Client
}

// NewSESClient builds an SES client from the ambient AWS credential chain.
// An empty region defers to the chain's own region resolution.
func NewSESClient(ctx context.Context, region string) (*SESClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, regionOptions(region)...)
	if err != nil {
		return nil, err
	}
	return &SESClient{client: ses.NewFromConfig(cfg)}, nil
}

func (s *SESClient) SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	return s.client.SendEmail(ctx, input)
}

func regionOptions(region string) []func(*config.LoadOptions) error {
	if region == "" {
		return nil
	}
	return []func(*config.LoadOptions) error{config.WithRegion(region)}
}
