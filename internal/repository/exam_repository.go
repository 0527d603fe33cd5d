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

// ExamRepository defines the interface for exam data operations.
// All lookups are scoped to the owning user; a row belonging to another
// user is indistinguishable from a missing row.
type ExamRepository interface {
	CreateExam(ctx context.Context, exam *models.Exam) error
	GetExamsByUserID(ctx context.Context, userID string) ([]models.Exam, error)
	GetExamByID(ctx context.Context, examID, userID string) (*models.Exam, error)
	UpdateExam(ctx context.Context, exam *models.Exam) error
	DeleteExam(ctx context.Context, examID, userID string) error
}

type sqlxExamRepository struct {
	db *sqlx.DB
}

// NewSQLXExamRepository creates a new instance of sqlxExamRepository.
func NewSQLXExamRepository(db *sqlx.DB) ExamRepository {
	return &sqlxExamRepository{db: db}
}

func (r *sqlxExamRepository) CreateExam(ctx context.Context, exam *models.Exam) error {
	query := `INSERT INTO exams (id, user_id, title, subject, board, class_level, date, duration, description, created_at)
	          VALUES (:id, :user_id, :title, :subject, :board, :class_level, :date, :duration, :description, :created_at)`

	exam.CreatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, exam); err != nil {
		return fmt.Errorf("failed to create exam: %w", err)
	}
	return nil
}

func (r *sqlxExamRepository) GetExamsByUserID(ctx context.Context, userID string) ([]models.Exam, error) {
	exams := []models.Exam{}
	query := `SELECT * FROM exams WHERE user_id = $1 ORDER BY date ASC`

	if err := r.db.SelectContext(ctx, &exams, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}
	return exams, nil
}

// GetExamByID returns (nil, nil) when the exam does not exist or is not
// owned by userID.
func (r *sqlxExamRepository) GetExamByID(ctx context.Context, examID, userID string) (*models.Exam, error) {
	var exam models.Exam
	query := `SELECT * FROM exams WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, &exam, query, examID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}
	return &exam, nil
}

func (r *sqlxExamRepository) UpdateExam(ctx context.Context, exam *models.Exam) error {
	query := `UPDATE exams SET
	            title = :title,
	            subject = :subject,
	            board = :board,
	            class_level = :class_level,
	            date = :date,
	            duration = :duration,
	            description = :description
	          WHERE id = :id AND user_id = :user_id`

	result, err := r.db.NamedExecContext(ctx, query, exam)
	if err != nil {
		return fmt.Errorf("failed to update exam: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteExam removes the exam and its dependent rows. Study plans are
// deleted with the exam; quizzes keep their rows but drop the reference.
func (r *sqlxExamRepository) DeleteExam(ctx context.Context, examID, userID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var ownedID string
	err = tx.GetContext(ctx, &ownedID, `SELECT id FROM exams WHERE id = $1 AND user_id = $2`, examID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return fmt.Errorf("failed to check exam ownership: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM study_plans WHERE exam_id = $1`, examID); err != nil {
		return fmt.Errorf("failed to delete study plans for exam: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE quizzes SET exam_id = NULL WHERE exam_id = $1`, examID); err != nil {
		return fmt.Errorf("failed to detach quizzes from exam: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM exams WHERE id = $1 AND user_id = $2`, examID, userID); err != nil {
		return fmt.Errorf("failed to delete exam: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
