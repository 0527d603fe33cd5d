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

// PlanRepository stores generated study plans. Regeneration replaces the
// exam's plan wholesale: the previous rows are removed in the same
// transaction as the insert.
type PlanRepository interface {
	ReplacePlan(ctx context.Context, plan *models.StudyPlan) error
	GetPlanByExamID(ctx context.Context, examID string) (*models.StudyPlan, error)
}

type sqlxPlanRepository struct {
	db *sqlx.DB
}

// NewSQLXPlanRepository creates a new instance of sqlxPlanRepository.
func NewSQLXPlanRepository(db *sqlx.DB) PlanRepository {
	return &sqlxPlanRepository{db: db}
}

func (r *sqlxPlanRepository) ReplacePlan(ctx context.Context, plan *models.StudyPlan) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM study_plans WHERE exam_id = $1`, plan.ExamID); err != nil {
		return fmt.Errorf("failed to delete previous plan: %w", err)
	}

	plan.CreatedAt = time.Now()
	query := `INSERT INTO study_plans (id, exam_id, nodes, edges, created_at)
	          VALUES (:id, :exam_id, :nodes, :edges, :created_at)`
	if _, err := tx.NamedExecContext(ctx, query, plan); err != nil {
		return fmt.Errorf("failed to insert plan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetPlanByExamID returns (nil, nil) when the exam has no stored plan.
func (r *sqlxPlanRepository) GetPlanByExamID(ctx context.Context, examID string) (*models.StudyPlan, error) {
	var plan models.StudyPlan
	query := `SELECT * FROM study_plans WHERE exam_id = $1 ORDER BY created_at DESC LIMIT 1`

	err := r.db.GetContext(ctx, &plan, query, examID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return &plan, nil
}
