package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"studyflow/internal/adapter"
	"studyflow/internal/cache"
	"studyflow/internal/domain"
	"studyflow/internal/repository/models"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const chaptersCompletion = `[
  {"id": 1, "title": "Laws of Motion", "description": "Forces and motion", "difficulty": "Medium", "estimatedStudyHours": 6, "topics": ["Newton's laws"]},
  {"id": 2, "title": "Optics", "description": "Light", "difficulty": "Hard", "estimatedStudyHours": 8, "topics": ["Refraction"]}
]`

func TestInsightService_GetChapters(t *testing.T) {
	ctx := context.Background()

	t.Run("generates and caches", func(t *testing.T) {
		db, redisMock := redismock.NewClientMock()
		cacheAdapter := adapter.NewRedisCacheAdapter(db)
		completer := new(MockCompleter)
		taskRepo := new(MockTaskRepository)
		svc := NewInsightService(completer, cacheAdapter, taskRepo, time.Hour)

		key := cache.GenerateCacheKey("insight", "chapters", "Physics", "CBSE", "12")
		redisMock.ExpectGet(key).RedisNil()
		completer.On("Complete", ctx, mock.AnythingOfType("string")).Return(chaptersCompletion, nil)
		redisMock.Regexp().ExpectSet(key, `.*`, time.Hour).SetVal("OK")

		chapters, err := svc.GetChapters(ctx, "Physics", "", "")
		require.NoError(t, err)
		require.Len(t, chapters, 2)
		assert.Equal(t, "Laws of Motion", chapters[0].Title)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the provider", func(t *testing.T) {
		db, redisMock := redismock.NewClientMock()
		cacheAdapter := adapter.NewRedisCacheAdapter(db)
		completer := new(MockCompleter)
		taskRepo := new(MockTaskRepository)
		svc := NewInsightService(completer, cacheAdapter, taskRepo, time.Hour)

		cached := []domain.Chapter{{ID: 1, Title: "Cached Chapter", Difficulty: "Easy", EstimatedStudyHours: 2}}
		raw, err := json.Marshal(cached)
		require.NoError(t, err)

		key := cache.GenerateCacheKey("insight", "chapters", "Physics", "CBSE", "12")
		redisMock.ExpectGet(key).SetVal(string(raw))

		chapters, err := svc.GetChapters(ctx, "Physics", "CBSE", "12")
		require.NoError(t, err)
		require.Len(t, chapters, 1)
		assert.Equal(t, "Cached Chapter", chapters[0].Title)
		completer.AssertNotCalled(t, "Complete")
	})

	t.Run("extraction failure serves the fallback list", func(t *testing.T) {
		completer := new(MockCompleter)
		taskRepo := new(MockTaskRepository)
		svc := NewInsightService(completer, nil, taskRepo, time.Hour)

		completer.On("Complete", ctx, mock.AnythingOfType("string")).Return("sorry, no syllabus today", nil)

		chapters, err := svc.GetChapters(ctx, "Physics", "CBSE", "12")
		require.NoError(t, err)
		require.Len(t, chapters, 2)
		assert.Equal(t, "Fallback chapter", chapters[0].Description)
	})
}

func TestInsightService_GetTopicBreakdown(t *testing.T) {
	ctx := context.Background()

	t.Run("extraction failure surfaces with raw response", func(t *testing.T) {
		completer := new(MockCompleter)
		taskRepo := new(MockTaskRepository)
		svc := NewInsightService(completer, nil, taskRepo, time.Hour)

		raw := "I can't break that chapter down."
		completer.On("Complete", ctx, mock.AnythingOfType("string")).Return(raw, nil)

		_, err := svc.GetTopicBreakdown(ctx, "Physics", "Optics", "CBSE", "12")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeExtractionFailed, domainErr.Code)
		assert.Equal(t, raw, domainErr.Context["rawResponse"])
	})
}

func TestInsightService_GetAllTopics(t *testing.T) {
	ctx := context.Background()

	t.Run("extraction failure yields templated placeholders per chapter", func(t *testing.T) {
		completer := new(MockCompleter)
		taskRepo := new(MockTaskRepository)
		svc := NewInsightService(completer, nil, taskRepo, time.Hour)

		completer.On("Complete", ctx, mock.AnythingOfType("string")).Return("nope", nil)

		topics, err := svc.GetAllTopics(ctx, "Physics", []string{"Optics", "Waves"}, "", "")
		require.NoError(t, err)
		require.Len(t, topics, 2)
		assert.Equal(t, []string{
			"Introduction to Optics",
			"Key concepts in Optics",
			"Applications of Optics",
		}, topics["Optics"])
	})
}

func TestInsightService_ExplainConcept(t *testing.T) {
	ctx := context.Background()

	t.Run("extraction failure yields apologetic placeholders", func(t *testing.T) {
		completer := new(MockCompleter)
		taskRepo := new(MockTaskRepository)
		svc := NewInsightService(completer, nil, taskRepo, time.Hour)

		completer.On("Complete", ctx, mock.AnythingOfType("string")).Return("plain prose", nil)

		explanation, err := svc.ExplainConcept(ctx, "What is entropy?", "")
		require.NoError(t, err)
		assert.Contains(t, explanation.Conceptual, "Sorry")
		assert.Contains(t, explanation.StepByStep, "Sorry")
	})
}

func TestInsightService_GetTaskInsights(t *testing.T) {
	ctx := context.Background()
	userID := "01USERULID0000000000000000"

	t.Run("free text passes through without extraction", func(t *testing.T) {
		completer := new(MockCompleter)
		taskRepo := new(MockTaskRepository)
		svc := NewInsightService(completer, nil, taskRepo, time.Hour)

		taskRepo.On("GetTasksByUserID", ctx, userID).Return([]models.Task{}, nil)

		advice, err := svc.GetTaskInsights(ctx, userID)
		require.NoError(t, err)
		assert.Contains(t, advice, "no tasks")
		completer.AssertNotCalled(t, "Complete")
	})
}
