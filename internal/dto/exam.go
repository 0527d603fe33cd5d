package dto

// ExamRequest creates or updates an exam.
// @Description Request body for creating or updating an exam
type ExamRequest struct {
	Title       string `json:"title" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
	Board       string `json:"board"`
	ClassLevel  string `json:"class" validate:"required"`
	Date        string `json:"date" validate:"required"` // YYYY-MM-DD
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ExamResponse is one exam in API responses.
type ExamResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subject     string `json:"subject"`
	Board       string `json:"board"`
	ClassLevel  string `json:"class"`
	Date        string `json:"date"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// ExamsResponse wraps the user's exams.
type ExamsResponse struct {
	Exams []ExamResponse `json:"exams"`
}

// SingleExamResponse wraps one exam.
type SingleExamResponse struct {
	Exam ExamResponse `json:"exam"`
}
