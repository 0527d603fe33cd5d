package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"studyflow/internal/domain"
	"studyflow/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testQuizID = "01TESTQZ000000000000000000"

func TestQuizHandler_GenerateQuiz(t *testing.T) {
	t.Run("returns the generated quiz", func(t *testing.T) {
		quizService := new(MockQuizService)
		h := NewQuizHandler(quizService, newTestValidator())
		app := newTestApp()
		app.Post("/api/quiz/generate", h.GenerateQuiz)

		quizService.On("GenerateQuiz", mock.Anything, testUserID, mock.AnythingOfType("dto.QuizGenerateRequest")).
			Return(&dto.QuizGenerateResponse{
				QuizID:    testQuizID,
				Questions: []domain.QuizQuestion{{ID: "q1", Question: "What is F=ma?"}},
			}, nil)

		body, _ := json.Marshal(dto.QuizGenerateRequest{Subject: "Physics", Chapter: "Laws of Motion"})
		req := httptest.NewRequest("POST", "/api/quiz/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var payload dto.QuizGenerateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, testQuizID, payload.QuizID)
		require.Len(t, payload.Questions, 1)
	})

	t.Run("question count over the cap fails validation", func(t *testing.T) {
		quizService := new(MockQuizService)
		h := NewQuizHandler(quizService, newTestValidator())
		app := newTestApp()
		app.Post("/api/quiz/generate", h.GenerateQuiz)

		body, _ := json.Marshal(dto.QuizGenerateRequest{Subject: "Physics", Chapter: "Optics", QuestionCount: 100})
		req := httptest.NewRequest("POST", "/api/quiz/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		quizService.AssertNotCalled(t, "GenerateQuiz")
	})
}

func TestQuizHandler_SubmitQuiz(t *testing.T) {
	t.Run("returns the grading result", func(t *testing.T) {
		quizService := new(MockQuizService)
		h := NewQuizHandler(quizService, newTestValidator())
		app := newTestApp()
		app.Post("/api/quiz/submit", h.SubmitQuiz)

		quizService.On("SubmitQuiz", mock.Anything, testUserID, mock.AnythingOfType("dto.QuizSubmitRequest")).
			Return(&dto.QuizSubmitResponse{Score: 50, CorrectCount: 1, TotalQuestions: 2}, nil)

		body, _ := json.Marshal(dto.QuizSubmitRequest{
			QuizID:  testQuizID,
			Answers: []dto.SubmittedAnswer{{QuestionID: "q1", Answer: "F=ma"}},
		})
		req := httptest.NewRequest("POST", "/api/quiz/submit", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var payload dto.QuizSubmitResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, 50, payload.Score)
	})

	t.Run("foreign quiz maps to 404", func(t *testing.T) {
		quizService := new(MockQuizService)
		h := NewQuizHandler(quizService, newTestValidator())
		app := newTestApp()
		app.Post("/api/quiz/submit", h.SubmitQuiz)

		quizService.On("SubmitQuiz", mock.Anything, testUserID, mock.Anything).
			Return(nil, domain.NewNotFoundError("Quiz"))

		body, _ := json.Marshal(dto.QuizSubmitRequest{
			QuizID:  testQuizID,
			Answers: []dto.SubmittedAnswer{{QuestionID: "q1", Answer: "x"}},
		})
		req := httptest.NewRequest("POST", "/api/quiz/submit", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("empty answers fail validation", func(t *testing.T) {
		quizService := new(MockQuizService)
		h := NewQuizHandler(quizService, newTestValidator())
		app := newTestApp()
		app.Post("/api/quiz/submit", h.SubmitQuiz)

		body, _ := json.Marshal(dto.QuizSubmitRequest{QuizID: testQuizID})
		req := httptest.NewRequest("POST", "/api/quiz/submit", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestQuizHandler_GetRecommendations(t *testing.T) {
	t.Run("wraps stored rows under recommendations", func(t *testing.T) {
		quizService := new(MockQuizService)
		h := NewQuizHandler(quizService, newTestValidator())
		app := newTestApp()
		app.Get("/api/recommendations", h.GetRecommendations)

		quizService.On("GetRecommendations", mock.Anything, testUserID).Return([]dto.StoredRecommendation{
			{ID: "r1", Subject: "Physics", Chapter: "Optics"},
		}, nil)

		req := httptest.NewRequest("GET", "/api/recommendations", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var payload dto.RecommendationsResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		require.Len(t, payload.Recommendations, 1)
		assert.Equal(t, "Physics", payload.Recommendations[0].Subject)
	})
}
