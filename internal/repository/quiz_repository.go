package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"studyflow/internal/repository/models"
	"time"

	"github.com/jmoiron/sqlx"
)

// QuizRepository defines the interface for quiz data operations. A quiz
// and its questions are written together; an attempt and its answers are
// written together.
type QuizRepository interface {
	SaveQuiz(ctx context.Context, quiz *models.Quiz, questions []models.QuizQuestion) error
	GetQuizByID(ctx context.Context, quizID, userID string) (*models.Quiz, error)
	GetQuestionsByQuizID(ctx context.Context, quizID string) ([]models.QuizQuestion, error)
	SaveAttempt(ctx context.Context, attempt *models.QuizAttempt, answers []models.QuizAnswer) error
}

type sqlxQuizRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizRepository creates a new instance of sqlxQuizRepository.
func NewSQLXQuizRepository(db *sqlx.DB) QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func (r *sqlxQuizRepository) SaveQuiz(ctx context.Context, quiz *models.Quiz, questions []models.QuizQuestion) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	quiz.CreatedAt = time.Now()
	quizQuery := `INSERT INTO quizzes (id, exam_id, user_id, subject, chapter, difficulty, created_at)
	              VALUES (:id, :exam_id, :user_id, :subject, :chapter, :difficulty, :created_at)`
	if _, err := tx.NamedExecContext(ctx, quizQuery, quiz); err != nil {
		return fmt.Errorf("failed to insert quiz: %w", err)
	}

	questionQuery := `INSERT INTO quiz_questions (id, quiz_id, question_text, options, correct_answer, explanation, difficulty, concept_tested, recommended_study)
	                  VALUES (:id, :quiz_id, :question_text, :options, :correct_answer, :explanation, :difficulty, :concept_tested, :recommended_study)`
	for i := range questions {
		questions[i].QuizID = quiz.ID
		if _, err := tx.NamedExecContext(ctx, questionQuery, &questions[i]); err != nil {
			return fmt.Errorf("failed to insert quiz question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetQuizByID returns (nil, nil) when the quiz does not exist or is not
// owned by userID.
func (r *sqlxQuizRepository) GetQuizByID(ctx context.Context, quizID, userID string) (*models.Quiz, error) {
	var quiz models.Quiz
	query := `SELECT * FROM quizzes WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, &quiz, query, quizID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return &quiz, nil
}

func (r *sqlxQuizRepository) GetQuestionsByQuizID(ctx context.Context, quizID string) ([]models.QuizQuestion, error) {
	questions := []models.QuizQuestion{}
	query := `SELECT * FROM quiz_questions WHERE quiz_id = $1 ORDER BY id ASC`

	if err := r.db.SelectContext(ctx, &questions, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to list quiz questions: %w", err)
	}
	return questions, nil
}

func (r *sqlxQuizRepository) SaveAttempt(ctx context.Context, attempt *models.QuizAttempt, answers []models.QuizAnswer) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	attempt.CompletedAt = time.Now()
	attemptQuery := `INSERT INTO quiz_attempts (id, quiz_id, user_id, score, completed_at)
	                 VALUES (:id, :quiz_id, :user_id, :score, :completed_at)`
	if _, err := tx.NamedExecContext(ctx, attemptQuery, attempt); err != nil {
		return fmt.Errorf("failed to insert quiz attempt: %w", err)
	}

	answerQuery := `INSERT INTO quiz_answers (id, attempt_id, question_id, user_answer, is_correct)
	                VALUES (:id, :attempt_id, :question_id, :user_answer, :is_correct)`
	for i := range answers {
		answers[i].AttemptID = attempt.ID
		if _, err := tx.NamedExecContext(ctx, answerQuery, &answers[i]); err != nil {
			return fmt.Errorf("failed to insert quiz answer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
