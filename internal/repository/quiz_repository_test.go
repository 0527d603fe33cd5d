package repository

import (
	"context"
	"testing"

	"studyflow/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSQLXQuizRepository_SaveQuiz(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuizRepository(db)
	defer db.Close()

	quiz := &models.Quiz{
		ID:         "01QUIZULID0000000000000000",
		UserID:     "01USERULID0000000000000000",
		Subject:    "Physics",
		Chapter:    "Optics",
		Difficulty: "medium",
	}
	questions := []models.QuizQuestion{
		{ID: "q1", QuestionText: "What is refraction?", Options: models.StringSlice{"a", "b", "c", "d"}, CorrectAnswer: "a"},
		{ID: "q2", QuestionText: "What is a lens?", Options: models.StringSlice{"a", "b", "c", "d"}, CorrectAnswer: "b"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO quizzes`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO quiz_questions`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO quiz_questions`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SaveQuiz(context.Background(), quiz, questions)

	assert.NoError(t, err)
	assert.Equal(t, quiz.ID, questions[0].QuizID)
	assert.Equal(t, quiz.ID, questions[1].QuizID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXQuizRepository_SaveAttempt(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXQuizRepository(db)
	defer db.Close()

	attempt := &models.QuizAttempt{
		ID:     "01ATTEMPTULID0000000000000",
		QuizID: "01QUIZULID0000000000000000",
		UserID: "01USERULID0000000000000000",
		Score:  80,
	}
	answers := []models.QuizAnswer{
		{ID: "a1", QuestionID: "q1", UserAnswer: "a", IsCorrect: true},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO quiz_attempts`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO quiz_answers`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SaveAttempt(context.Background(), attempt, answers)

	assert.NoError(t, err)
	assert.Equal(t, attempt.ID, answers[0].AttemptID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
