package service

import (
	"errors"

	"studyflow/internal/domain"
	"studyflow/internal/genai"
)

// mapGenerationError converts pipeline failures into the domain error
// taxonomy. Extraction failures carry the raw model response so the
// handler can expose it in the error details.
func mapGenerationError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, genai.ErrUpstreamAuth) {
		return domain.NewUpstreamAuthError(err)
	}
	if errors.Is(err, genai.ErrUpstreamQuota) {
		return domain.NewUpstreamQuotaError(err)
	}
	var extractionErr *genai.ExtractionError
	if errors.As(err, &extractionErr) {
		return domain.NewExtractionFailedError(extractionErr.Raw, err)
	}
	return domain.NewInternalError("Completion request failed", err)
}

// isExtractionFailure reports whether err is a structured-extraction
// failure, for endpoints that substitute a deterministic fallback
// instead of surfacing the error.
func isExtractionFailure(err error) bool {
	var extractionErr *genai.ExtractionError
	return errors.As(err, &extractionErr)
}
