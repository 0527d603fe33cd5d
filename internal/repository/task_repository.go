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

// TaskRepository defines the interface for task data operations.
type TaskRepository interface {
	CreateTask(ctx context.Context, task *models.Task) error
	GetTasksByUserID(ctx context.Context, userID string) ([]models.Task, error)
	GetTaskByID(ctx context.Context, taskID, userID string) (*models.Task, error)
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, taskID, userID string) error
}

type sqlxTaskRepository struct {
	db *sqlx.DB
}

// NewSQLXTaskRepository creates a new instance of sqlxTaskRepository.
func NewSQLXTaskRepository(db *sqlx.DB) TaskRepository {
	return &sqlxTaskRepository{db: db}
}

func (r *sqlxTaskRepository) CreateTask(ctx context.Context, task *models.Task) error {
	query := `INSERT INTO tasks (id, user_id, title, description, due_date, created_at)
	          VALUES (:id, :user_id, :title, :description, :due_date, :created_at)`

	task.CreatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, task); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *sqlxTaskRepository) GetTasksByUserID(ctx context.Context, userID string) ([]models.Task, error) {
	tasks := []models.Task{}
	query := `SELECT * FROM tasks WHERE user_id = $1 ORDER BY due_date ASC`

	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTaskByID returns (nil, nil) when the task does not exist or is not
// owned by userID.
func (r *sqlxTaskRepository) GetTaskByID(ctx context.Context, taskID, userID string) (*models.Task, error) {
	var task models.Task
	query := `SELECT * FROM tasks WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, &task, query, taskID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

func (r *sqlxTaskRepository) UpdateTask(ctx context.Context, task *models.Task) error {
	query := `UPDATE tasks SET
	            title = :title,
	            description = :description,
	            due_date = :due_date
	          WHERE id = :id AND user_id = :user_id`

	result, err := r.db.NamedExecContext(ctx, query, task)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
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

func (r *sqlxTaskRepository) DeleteTask(ctx context.Context, taskID, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, taskID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
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
