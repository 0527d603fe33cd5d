package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode identifies a class of failure that handlers map to an HTTP status.
type ErrorCode string

const (
	CodeInternal        ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput    ErrorCode = "INVALID_INPUT"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"

	// Upstream completion-provider failures.
	CodeUpstreamAuth  ErrorCode = "UPSTREAM_AUTH_ERROR"
	CodeUpstreamQuota ErrorCode = "UPSTREAM_QUOTA_EXCEEDED"

	// Recovering structured data from the model's text failed and the
	// endpoint has no safe fallback.
	CodeExtractionFailed ErrorCode = "EXTRACTION_FAILED"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
)

// DomainError is the error type surfaced to the HTTP layer.
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON hides the wrapped cause from API responses.
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{Code: code, Message: message, Cause: cause}
}

// NewNotFoundError covers both absence and non-ownership: the two are
// deliberately indistinguishable so responses do not leak existence.
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewUnauthenticatedError() *DomainError {
	return NewError(CodeUnauthenticated, "Authentication required", nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUpstreamAuthError(cause error) *DomainError {
	return NewError(CodeUpstreamAuth, "Completion provider rejected the configured credentials", cause)
}

func NewUpstreamQuotaError(cause error) *DomainError {
	return NewError(CodeUpstreamQuota, "Completion provider quota exceeded", cause)
}

// NewExtractionFailedError attaches the raw model response so callers can
// inspect what could not be decoded.
func NewExtractionFailedError(raw string, cause error) *DomainError {
	return &DomainError{
		Code:    CodeExtractionFailed,
		Message: "Failed to parse AI response",
		Cause:   cause,
		Context: map[string]interface{}{"rawResponse": raw},
	}
}
