package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"studyflow/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLXPlanRepository_ReplacePlan(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXPlanRepository(db)
	defer db.Close()

	plan := &models.StudyPlan{
		ID:     "01PLANULID0000000000000000",
		ExamID: "01EXAMULID0000000000000000",
		Nodes:  models.JSONDocument(`[{"id":"n1"}]`),
		Edges:  models.JSONDocument(`[]`),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM study_plans WHERE exam_id = \$1`).
		WithArgs(plan.ExamID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO study_plans`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ReplacePlan(context.Background(), plan)

	assert.NoError(t, err)
	assert.False(t, plan.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXPlanRepository_GetPlanByExamID(t *testing.T) {
	examID := "01EXAMULID0000000000000000"

	t.Run("Found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXPlanRepository(db)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "exam_id", "nodes", "edges", "created_at"}).
			AddRow("01PLANULID0000000000000000", examID, []byte(`[{"id":"n1"}]`), []byte(`[]`), time.Now())

		mock.ExpectQuery(`SELECT \* FROM study_plans WHERE exam_id = \$1`).
			WithArgs(examID).
			WillReturnRows(rows)

		plan, err := repo.GetPlanByExamID(context.Background(), examID)

		require.NoError(t, err)
		require.NotNil(t, plan)
		assert.JSONEq(t, `[{"id":"n1"}]`, string(plan.Nodes))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoPlanYet", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXPlanRepository(db)
		defer db.Close()

		mock.ExpectQuery(`SELECT \* FROM study_plans WHERE exam_id = \$1`).
			WithArgs(examID).
			WillReturnError(sql.ErrNoRows)

		plan, err := repo.GetPlanByExamID(context.Background(), examID)

		assert.NoError(t, err)
		assert.Nil(t, plan)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
