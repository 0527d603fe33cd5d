package repository

import (
	"context"
	"fmt"
	"studyflow/internal/repository/models"
	"time"

	"github.com/jmoiron/sqlx"
)

// RecommendationRepository stores study recommendations produced after
// quiz grading.
type RecommendationRepository interface {
	SaveRecommendation(ctx context.Context, rec *models.StudyRecommendation) error
	GetRecommendationsByUserID(ctx context.Context, userID string) ([]models.StudyRecommendation, error)
}

type sqlxRecommendationRepository struct {
	db *sqlx.DB
}

// NewSQLXRecommendationRepository creates a new instance of sqlxRecommendationRepository.
func NewSQLXRecommendationRepository(db *sqlx.DB) RecommendationRepository {
	return &sqlxRecommendationRepository{db: db}
}

func (r *sqlxRecommendationRepository) SaveRecommendation(ctx context.Context, rec *models.StudyRecommendation) error {
	query := `INSERT INTO study_recommendations (id, user_id, exam_id, subject, chapter, weak_areas, study_plan, created_at)
	          VALUES (:id, :user_id, :exam_id, :subject, :chapter, :weak_areas, :study_plan, :created_at)`

	rec.CreatedAt = time.Now()

	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("failed to save recommendation: %w", err)
	}
	return nil
}

func (r *sqlxRecommendationRepository) GetRecommendationsByUserID(ctx context.Context, userID string) ([]models.StudyRecommendation, error) {
	recs := []models.StudyRecommendation{}
	query := `SELECT * FROM study_recommendations WHERE user_id = $1 ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &recs, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return recs, nil
}
