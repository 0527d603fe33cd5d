package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"studyflow/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new sqlx.DB instance and sqlmock for repository testing.
func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func TestSQLXExamRepository_CreateExam(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXExamRepository(db)
	defer db.Close()

	exam := &models.Exam{
		ID:         "01EXAMULID0000000000000000",
		UserID:     "01USERULID0000000000000000",
		Title:      "Physics Board Exam",
		Subject:    "Physics",
		Board:      "CBSE",
		ClassLevel: "12",
		Date:       time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(`INSERT INTO exams`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateExam(context.Background(), exam)

	assert.NoError(t, err)
	assert.False(t, exam.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXExamRepository_GetExamByID(t *testing.T) {
	examID := "01EXAMULID0000000000000000"
	userID := "01USERULID0000000000000000"
	now := time.Now()

	t.Run("Found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXExamRepository(db)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "user_id", "title", "subject", "board", "class_level", "date", "duration", "description", "created_at"}).
			AddRow(examID, userID, "Physics Board Exam", "Physics", "CBSE", "12", now, nil, nil, now)

		mock.ExpectQuery(`SELECT \* FROM exams WHERE id = \$1 AND user_id = \$2`).
			WithArgs(examID, userID).
			WillReturnRows(rows)

		exam, err := repo.GetExamByID(context.Background(), examID, userID)

		require.NoError(t, err)
		require.NotNil(t, exam)
		assert.Equal(t, "Physics", exam.Subject)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFoundOrNotOwned", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXExamRepository(db)
		defer db.Close()

		mock.ExpectQuery(`SELECT \* FROM exams WHERE id = \$1 AND user_id = \$2`).
			WithArgs(examID, "someone-else").
			WillReturnError(sql.ErrNoRows)

		exam, err := repo.GetExamByID(context.Background(), examID, "someone-else")

		assert.NoError(t, err)
		assert.Nil(t, exam)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSQLXExamRepository_DeleteExam(t *testing.T) {
	examID := "01EXAMULID0000000000000000"
	userID := "01USERULID0000000000000000"

	t.Run("DeletesChildrenFirst", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXExamRepository(db)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM exams WHERE id = \$1 AND user_id = \$2`).
			WithArgs(examID, userID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(examID))
		mock.ExpectExec(`DELETE FROM study_plans WHERE exam_id = \$1`).
			WithArgs(examID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE quizzes SET exam_id = NULL WHERE exam_id = \$1`).
			WithArgs(examID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM exams WHERE id = \$1 AND user_id = \$2`).
			WithArgs(examID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeleteExam(context.Background(), examID, userID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotOwned", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewSQLXExamRepository(db)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM exams WHERE id = \$1 AND user_id = \$2`).
			WithArgs(examID, "someone-else").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := repo.DeleteExam(context.Background(), examID, "someone-else")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
