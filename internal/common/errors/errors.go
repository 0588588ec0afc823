// Package errors provides standardized error handling for the assessment
// workflow integration.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeAnswerValidationFailed ErrorCode = "ANSWER_VALIDATION_FAILED"
	ErrCodeScoringFailed          ErrorCode = "SCORING_FAILED"
	ErrCodeCatalogInvalid         ErrorCode = "CATALOG_INVALID"

	ErrCodeBenchmarkLookupFailed ErrorCode = "BENCHMARK_LOOKUP_FAILED"
	ErrCodeComparisonFailed      ErrorCode = "COMPARISON_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeAssessmentInsertFailed   ErrorCode = "ASSESSMENT_INSERT_FAILED"
	ErrCodeAssessmentIndexFailed    ErrorCode = "ASSESSMENT_INDEX_FAILED"
	ErrCodeQueryTimeout             ErrorCode = "QUERY_TIMEOUT"

	ErrCodeReportSendFailed ErrorCode = "REPORT_SEND_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// ConvertToBPMNError maps a StandardError onto the workflow error shape.
func ConvertToBPMNError(err *StandardError) *BPMNError {
	return &BPMNError{
		Code:      string(err.Code),
		Message:   err.Message,
		Details:   err.Details,
		Retryable: err.Retryable,
		Retries:   GetRetryCount(err.Code),
	}
}

// retryCounts defines how many retries each transient error code earns.
// Validation and configuration errors are deterministic: retrying them
// only burns workflow retries.
var retryCounts = map[ErrorCode]int{
	ErrCodeDatabaseConnectionFailed: 3,
	ErrCodeAssessmentInsertFailed:   3,
	ErrCodeAssessmentIndexFailed:    2,
	ErrCodeQueryTimeout:             2,
	ErrCodeBenchmarkLookupFailed:    2,
	ErrCodeReportSendFailed:         3,
}

// GetRetryCount returns the retry budget for an error code; zero means the
// error is thrown to the workflow instead of retried.
func GetRetryCount(code ErrorCode) int {
	return retryCounts[code]
}

// ==========================
// 3. Error Constructors
// ==========================

// NewAnswerValidationError creates a non-retryable boundary validation error.
func NewAnswerValidationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAnswerValidationFailed,
		Message:   "Answer set failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogInvalidError signals a malformed dimension catalog. This is a
// configuration bug and must abort startup.
func NewCatalogInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogInvalid,
		Message:   "Dimension catalog failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAssessmentInsertError creates a retryable persistence error.
func NewAssessmentInsertError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAssessmentInsertFailed,
		Message:   "Failed to persist assessment",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAssessmentIndexError creates a retryable search-index error.
func NewAssessmentIndexError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAssessmentIndexFailed,
		Message:   "Failed to index assessment for search",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBenchmarkLookupError creates a retryable baseline resolution error.
func NewBenchmarkLookupError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBenchmarkLookupFailed,
		Message:   "Failed to resolve benchmark baseline",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewReportSendError creates a retryable notification delivery error.
func NewReportSendError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportSendFailed,
		Message:   "Failed to deliver assessment report",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
