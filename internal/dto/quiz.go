package dto

import "studyflow/internal/domain"

// QuizGenerateRequest asks for a fresh multiple-choice quiz.
// @Description Request body for generating a quiz
type QuizGenerateRequest struct {
	Subject       string `json:"subject" validate:"required"`
	Chapter       string `json:"chapter" validate:"required"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"questionCount"`
	ExamID        string `json:"examId"`
}

// QuizGenerateResponse carries the generated quiz and its questions.
type QuizGenerateResponse struct {
	QuizID    string                `json:"quizId"`
	Questions []domain.QuizQuestion `json:"questions"`
}

// SubmittedAnswer is one answer of a quiz submission.
type SubmittedAnswer struct {
	QuestionID string `json:"questionId" validate:"required"`
	Answer     string `json:"answer"`
}

// QuizSubmitRequest grades a completed quiz and asks for study advice.
// @Description Request body for submitting quiz answers
type QuizSubmitRequest struct {
	QuizID  string            `json:"quizId" validate:"required"`
	Answers []SubmittedAnswer `json:"answers" validate:"required"`
}

// QuizSubmitResponse carries the grading result and the generated
// recommendation.
type QuizSubmitResponse struct {
	Score          int                         `json:"score"`
	CorrectCount   int                         `json:"correctCount"`
	TotalQuestions int                         `json:"totalQuestions"`
	Answers        []domain.QuizAnswer         `json:"answers"`
	Recommendation *domain.StudyRecommendation `json:"recommendation,omitempty"`
}

// StoredRecommendation is one persisted recommendation row.
type StoredRecommendation struct {
	ID             string                     `json:"id"`
	Subject        string                     `json:"subject"`
	Chapter        string                     `json:"chapter"`
	Recommendation domain.StudyRecommendation `json:"recommendation"`
	CreatedAt      string                     `json:"createdAt"`
}

// RecommendationsResponse wraps the user's persisted recommendations.
type RecommendationsResponse struct {
	Recommendations []StoredRecommendation `json:"recommendations"`
}
