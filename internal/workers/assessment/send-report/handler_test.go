// internal/workers/assessment/send-report/handler_test.go
package sendreport

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/benchmark"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/common/logger"
	"github.com/tejmar999-bot/ai-process-readiness2-automation/internal/scoring"
)

type MockSESService struct {
	SendEmailFunc func(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

func (m *MockSESService) SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, input)
}

type MockSNSService struct {
	PublishFunc func(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

func (m *MockSNSService) Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error) {
	return m.PublishFunc(ctx, input)
}

func createTestConfig() *Config {
	return &Config{
		EmailEnabled: true,
		TopicEnabled: true,
		SenderEmail:  "reports@assessments.example.com",
		TopicARN:     "arn:aws:sns:us-east-1:000000000000:assessment-reports",
		AWSRegion:    "us-east-1",
		Timeout:      30 * time.Second,
	}
}

func createTestHandler(t *testing.T, sesMock SESService, snsMock SNSService) *Handler {
	return &Handler{
		config:    createTestConfig(),
		logger:    logger.NewTestLogger(t),
		sesClient: sesMock,
		snsClient: snsMock,
	}
}

func createTestInput() *Input {
	return &Input{
		AssessmentID:   "assessment-9",
		CompanyName:    "Acme Logistics",
		RecipientEmail: "ops@acme.example.com",
		Result: scoring.ReadinessResult{
			Total:      72,
			MaxTotal:   90,
			Percentage: 80,
			Band:       scoring.BandResult{Label: "AI-Ready"},
			DimensionScores: []scoring.DimensionScore{
				{DimensionID: "data", Title: "Data Readiness", RawScore: 12, WeightedScore: 12},
			},
		},
		Summary: "Strong foundation across the board.",
	}
}

func TestExecute_SendsEmailAndPublishes(t *testing.T) {
	var capturedEmail *ses.SendEmailInput
	var capturedPublish *sns.PublishInput

	sesMock := &MockSESService{
		SendEmailFunc: func(_ context.Context, params *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
			capturedEmail = params
			return &ses.SendEmailOutput{}, nil
		},
	}
	snsMock := &MockSNSService{
		PublishFunc: func(_ context.Context, params *sns.PublishInput) (*sns.PublishOutput, error) {
			capturedPublish = params
			return &sns.PublishOutput{}, nil
		},
	}

	h := createTestHandler(t, sesMock, snsMock)
	output, err := h.Execute(context.Background(), createTestInput())
	require.NoError(t, err)

	assert.Equal(t, StatusSent, output.Status)
	assert.NotEmpty(t, output.ReportID)

	require.NotNil(t, capturedEmail)
	assert.Equal(t, []string{"ops@acme.example.com"}, capturedEmail.Destination.ToAddresses)
	assert.Contains(t, *capturedEmail.Message.Subject.Data, "AI-Ready")
	assert.Contains(t, *capturedEmail.Message.Body.Text.Data, "Acme Logistics")

	require.NotNil(t, capturedPublish)
	assert.Equal(t, "arn:aws:sns:us-east-1:000000000000:assessment-reports", *capturedPublish.TopicArn)
}

func TestExecute_EmailFailureReportsFailedStatus(t *testing.T) {
	sesMock := &MockSESService{
		SendEmailFunc: func(_ context.Context, _ *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
			return nil, errors.New("throttled")
		},
	}

	h := createTestHandler(t, sesMock, nil)
	output, err := h.Execute(context.Background(), createTestInput())
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, output.Status)
}

func TestExecute_AllChannelsDisabled(t *testing.T) {
	h := createTestHandler(t, nil, nil)
	h.config.EmailEnabled = false
	h.config.TopicEnabled = false

	output, err := h.Execute(context.Background(), createTestInput())
	require.NoError(t, err)
	assert.Equal(t, StatusDisabled, output.Status)
}

func TestExecute_NoRecipientSkipsEmail(t *testing.T) {
	snsMock := &MockSNSService{
		PublishFunc: func(_ context.Context, _ *sns.PublishInput) (*sns.PublishOutput, error) {
			return &sns.PublishOutput{}, nil
		},
	}

	h := createTestHandler(t, nil, snsMock)
	input := createTestInput()
	input.RecipientEmail = ""

	output, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, StatusSent, output.Status)
}

func TestBuildReportBody(t *testing.T) {
	input := createTestInput()
	input.Comparison = &benchmark.Comparison{
		BenchmarkName:   "Industry Average",
		TotalDifference: 2.5,
		Dimensions: []benchmark.DimensionComparison{
			{DimensionID: "data", Difference: 0.8},
		},
	}

	body := buildReportBody(input)
	assert.Contains(t, body, "Acme Logistics")
	assert.Contains(t, body, "Data Readiness")
	assert.Contains(t, body, "Industry Average")
	assert.Contains(t, body, "Strong foundation")
	assert.True(t, strings.HasPrefix(body, "AI Process Readiness Report"))
}

func TestBuildSubject_EmptyCompany(t *testing.T) {
	input := createTestInput()
	input.CompanyName = ""
	assert.Contains(t, buildSubject(input), "Your organization")
}
