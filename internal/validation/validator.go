package validation

import (
	"regexp"
	"strings"
	"studyflow/internal/domain"
	"time"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateStudyPlanRequest validates the study plan generation request.
func (v *Validator) ValidateStudyPlanRequest(examID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(examID) == "" {
		errors = append(errors, domain.NewMissingFieldError("examId"))
	} else if !isValidULID(examID) {
		errors = append(errors, domain.NewInvalidFormatError("examId", examID))
	}

	return errors
}

// ValidateChaptersRequest validates the chapter list request.
func (v *Validator) ValidateChaptersRequest(subject string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(subject) == "" {
		errors = append(errors, domain.NewMissingFieldError("subject"))
	}

	return errors
}

// ValidateTopicsRequest validates the topic breakdown request.
func (v *Validator) ValidateTopicsRequest(subject, chapter string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(subject) == "" {
		errors = append(errors, domain.NewMissingFieldError("subject"))
	}
	if strings.TrimSpace(chapter) == "" {
		errors = append(errors, domain.NewMissingFieldError("chapter"))
	}

	return errors
}

// ValidateAllTopicsRequest validates the batched topic request.
func (v *Validator) ValidateAllTopicsRequest(subject string, chapters []string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(subject) == "" {
		errors = append(errors, domain.NewMissingFieldError("subject"))
	}
	if len(chapters) == 0 {
		errors = append(errors, domain.NewMissingFieldError("chapters"))
	} else if len(chapters) > 30 {
		errors = append(errors, domain.NewOutOfRangeError("chapters", len(chapters), 1, 30))
	}

	return errors
}

// ValidateQuizGenerateRequest validates the quiz generation request.
func (v *Validator) ValidateQuizGenerateRequest(subject, chapter string, questionCount int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(subject) == "" {
		errors = append(errors, domain.NewMissingFieldError("subject"))
	}
	if strings.TrimSpace(chapter) == "" {
		errors = append(errors, domain.NewMissingFieldError("chapter"))
	}
	if questionCount < 0 || questionCount > 25 {
		errors = append(errors, domain.NewOutOfRangeError("questionCount", questionCount, 0, 25))
	}

	return errors
}

// ValidateQuizSubmitRequest validates the quiz submission request.
func (v *Validator) ValidateQuizSubmitRequest(quizID string, answerCount int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quizId"))
	} else if !isValidULID(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("quizId", quizID))
	}
	if answerCount == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	}

	return errors
}

// ValidateExplainConceptRequest validates the concept explanation request.
func (v *Validator) ValidateExplainConceptRequest(question string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(question) == "" {
		errors = append(errors, domain.NewMissingFieldError("question"))
	} else if len(question) > 2000 {
		errors = append(errors, domain.NewOutOfRangeError("question", len(question), 1, 2000))
	}

	return errors
}

// ValidateExamRequest validates exam create/update fields.
func (v *Validator) ValidateExamRequest(title, subject, classLevel, date string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}
	if strings.TrimSpace(subject) == "" {
		errors = append(errors, domain.NewMissingFieldError("subject"))
	}
	if strings.TrimSpace(classLevel) == "" {
		errors = append(errors, domain.NewMissingFieldError("class"))
	}
	if strings.TrimSpace(date) == "" {
		errors = append(errors, domain.NewMissingFieldError("date"))
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("date", date))
	}

	return errors
}

// ValidateNoteRequest validates note create/update fields.
func (v *Validator) ValidateNoteRequest(title string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}

	return errors
}

// ValidateTaskRequest validates task create/update fields.
func (v *Validator) ValidateTaskRequest(title, dueDate string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}
	if strings.TrimSpace(dueDate) == "" {
		errors = append(errors, domain.NewMissingFieldError("dueDate"))
	} else if !isValidDate(dueDate) {
		errors = append(errors, domain.NewInvalidFormatError("dueDate", dueDate))
	}

	return errors
}

// ValidateResourceID validates a path or query resource identifier.
func (v *Validator) ValidateResourceID(field, id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
	} else if !isValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError(field, id))
	}

	return errors
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidDate accepts either a bare date or a full RFC 3339 timestamp.
func isValidDate(s string) bool {
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return true
	}
	return false
}
