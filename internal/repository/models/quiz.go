package models

import (
	"database/sql"
	"time"
)

// Quiz represents a generated quiz row.
type Quiz struct {
	ID         string         `db:"id"` // ULID
	ExamID     sql.NullString `db:"exam_id"`
	UserID     string         `db:"user_id"`
	Subject    string         `db:"subject"`
	Chapter    string         `db:"chapter"`
	Difficulty string         `db:"difficulty"`
	CreatedAt  time.Time      `db:"created_at"`
}

// QuizQuestion represents a single question belonging to a quiz.
type QuizQuestion struct {
	ID               string         `db:"id"` // ULID
	QuizID           string         `db:"quiz_id"`
	QuestionText     string         `db:"question_text"`
	Options          StringSlice    `db:"options"`
	CorrectAnswer    string         `db:"correct_answer"`
	Explanation      sql.NullString `db:"explanation"`
	Difficulty       sql.NullString `db:"difficulty"`
	ConceptTested    sql.NullString `db:"concept_tested"`
	RecommendedStudy sql.NullString `db:"recommended_study"`
}

// QuizAttempt represents a graded submission of a quiz.
type QuizAttempt struct {
	ID          string    `db:"id"` // ULID
	QuizID      string    `db:"quiz_id"`
	UserID      string    `db:"user_id"`
	Score       int       `db:"score"`
	CompletedAt time.Time `db:"completed_at"`
}

// QuizAnswer represents a single graded answer within an attempt.
type QuizAnswer struct {
	ID         string `db:"id"` // ULID
	AttemptID  string `db:"attempt_id"`
	QuestionID string `db:"question_id"`
	UserAnswer string `db:"user_answer"`
	IsCorrect  bool   `db:"is_correct"`
}

// StudyRecommendation stores the post-quiz study recommendation.
type StudyRecommendation struct {
	ID        string         `db:"id"` // ULID
	UserID    string         `db:"user_id"`
	ExamID    sql.NullString `db:"exam_id"`
	Subject   string         `db:"subject"`
	Chapter   string         `db:"chapter"`
	WeakAreas StringSlice    `db:"weak_areas"`
	StudyPlan JSONDocument   `db:"study_plan"`
	CreatedAt time.Time      `db:"created_at"`
}
