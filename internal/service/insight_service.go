package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"studyflow/internal/cache"
	"studyflow/internal/domain"
	"studyflow/internal/genai"
	"studyflow/internal/logger"
	"studyflow/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const insightServiceName = "insight"

// InsightService serves AI-generated syllabus content. Generated content
// is cached in Redis keyed by the normalized request parameters, and
// concurrent identical requests are collapsed into one completion call.
type InsightService interface {
	GetChapters(ctx context.Context, subject, board, grade string) ([]domain.Chapter, error)
	GetTopicBreakdown(ctx context.Context, subject, chapter, board, grade string) (*domain.TopicBreakdown, error)
	GetAllTopics(ctx context.Context, subject string, chapters []string, board, grade string) (map[string][]string, error)
	GetChapterFlow(ctx context.Context, subject, examType, classLevel string) (*domain.StudyFlow, error)
	ExplainConcept(ctx context.Context, question, interests string) (*domain.ConceptExplanation, error)
	GetTaskInsights(ctx context.Context, userID string) (string, error)
}

type insightServiceImpl struct {
	completer genai.Completer
	cache     domain.Cache
	taskRepo  repository.TaskRepository
	ttl       time.Duration
	group     singleflight.Group
}

// NewInsightService creates a new instance of InsightService. Cache may
// be nil, in which case every request hits the completion provider.
func NewInsightService(completer genai.Completer, cacheClient domain.Cache, taskRepo repository.TaskRepository, ttl time.Duration) InsightService {
	return &insightServiceImpl{
		completer: completer,
		cache:     cacheClient,
		taskRepo:  taskRepo,
		ttl:       ttl,
	}
}

// GetChapters returns the chapter list for a subject. On extraction
// failure a deterministic placeholder list is returned instead of an
// error; placeholders are never cached.
func (s *insightServiceImpl) GetChapters(ctx context.Context, subject, board, grade string) ([]domain.Chapter, error) {
	board, grade = applyCurriculumDefaults(board, grade)
	key := cache.GenerateCacheKey(insightServiceName, "chapters", subject, board, grade)

	var cached []domain.Chapter
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		// The chapter prompt asks for a bare JSON array.
		var chapters []domain.Chapter
		prompt := genai.ChaptersPrompt(subject, board, grade)
		if err := genai.Generate(ctx, s.completer, prompt, &chapters); err != nil {
			return nil, err
		}
		return chapters, nil
	})
	if err != nil {
		if isExtractionFailure(err) {
			logger.Get().Warn("Chapter extraction failed, serving fallback", zap.String("subject", subject), zap.Error(err))
			return genai.FallbackChapters(), nil
		}
		return nil, mapGenerationError(err)
	}

	chapters := result.([]domain.Chapter)
	s.writeCache(ctx, key, chapters)
	return chapters, nil
}

// GetTopicBreakdown returns the detailed topic breakdown of one chapter.
// Extraction failures are surfaced to the caller.
func (s *insightServiceImpl) GetTopicBreakdown(ctx context.Context, subject, chapter, board, grade string) (*domain.TopicBreakdown, error) {
	board, grade = applyCurriculumDefaults(board, grade)
	key := cache.GenerateCacheKey(insightServiceName, "topics", subject, chapter, board, grade)

	var cached domain.TopicBreakdown
	if s.readCache(ctx, key, &cached) {
		return &cached, nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		var breakdown domain.TopicBreakdown
		prompt := genai.TopicsPrompt(subject, chapter, board, grade)
		if err := genai.Generate(ctx, s.completer, prompt, &breakdown); err != nil {
			return nil, err
		}
		if breakdown.FlowData != nil {
			genai.AssignFlowPositions(breakdown.FlowData.Nodes)
		}
		return &breakdown, nil
	})
	if err != nil {
		return nil, mapGenerationError(err)
	}

	breakdown := result.(*domain.TopicBreakdown)
	s.writeCache(ctx, key, breakdown)
	return breakdown, nil
}

// GetAllTopics returns topic lists for several chapters in one call. On
// extraction failure every requested chapter gets a placeholder list.
func (s *insightServiceImpl) GetAllTopics(ctx context.Context, subject string, chapters []string, board, grade string) (map[string][]string, error) {
	board, grade = applyCurriculumDefaults(board, grade)
	key := cache.GenerateCacheKey(insightServiceName, "all-topics", subject, board, grade, strings.Join(chapters, "|"))

	var cached map[string][]string
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		var out struct {
			TopicsByChapter map[string][]string `json:"topicsByChapter"`
		}
		prompt := genai.AllTopicsPrompt(subject, chapters, board, grade)
		if err := genai.Generate(ctx, s.completer, prompt, &out); err != nil {
			return nil, err
		}
		return out.TopicsByChapter, nil
	})
	if err != nil {
		if isExtractionFailure(err) {
			logger.Get().Warn("All-topics extraction failed, serving fallback", zap.String("subject", subject), zap.Error(err))
			return genai.FallbackTopicsByChapter(chapters), nil
		}
		return nil, mapGenerationError(err)
	}

	topics := result.(map[string][]string)
	s.writeCache(ctx, key, topics)
	return topics, nil
}

// GetChapterFlow returns the chapter dependency graph with study
// insights. The graph is normalized and laid out on the standard grid.
func (s *insightServiceImpl) GetChapterFlow(ctx context.Context, subject, examType, classLevel string) (*domain.StudyFlow, error) {
	key := cache.GenerateCacheKey(insightServiceName, "chapter-flow", subject, examType, classLevel)

	var cached domain.StudyFlow
	if s.readCache(ctx, key, &cached) {
		return &cached, nil
	}

	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		var flow domain.StudyFlow
		prompt := genai.ChapterFlowPrompt(subject, examType, classLevel)
		if err := genai.Generate(ctx, s.completer, prompt, &flow); err != nil {
			return nil, err
		}
		flow.Nodes, flow.Edges = domain.NormalizeGraph(flow.Nodes, flow.Edges)
		genai.AssignPositions(flow.Nodes)
		return &flow, nil
	})
	if err != nil {
		return nil, mapGenerationError(err)
	}

	flow := result.(*domain.StudyFlow)
	s.writeCache(ctx, key, flow)
	return flow, nil
}

// ExplainConcept returns four explanation styles for one concept. On
// extraction failure an apologetic placeholder is returned instead of an
// error. Explanations are personal (interests) and are not cached.
func (s *insightServiceImpl) ExplainConcept(ctx context.Context, question, interests string) (*domain.ConceptExplanation, error) {
	var explanation domain.ConceptExplanation
	prompt := genai.ExplainConceptPrompt(question, interests)
	if err := genai.Generate(ctx, s.completer, prompt, &explanation); err != nil {
		if isExtractionFailure(err) {
			logger.Get().Warn("Concept explanation extraction failed, serving fallback", zap.Error(err))
			fallback := genai.FallbackExplanation()
			return &fallback, nil
		}
		return nil, mapGenerationError(err)
	}
	return &explanation, nil
}

// GetTaskInsights returns free-text prioritization advice over the
// user's open tasks. There is no structured extraction step.
func (s *insightServiceImpl) GetTaskInsights(ctx context.Context, userID string) (string, error) {
	taskModels, err := s.taskRepo.GetTasksByUserID(ctx, userID)
	if err != nil {
		return "", domain.NewInternalError("Failed to load tasks", err)
	}
	if len(taskModels) == 0 {
		return "You have no tasks yet. Add a few tasks to get prioritization advice.", nil
	}

	tasks := make([]domain.Task, 0, len(taskModels))
	for _, m := range taskModels {
		tasks = append(tasks, domain.Task{
			ID:          m.ID,
			UserID:      m.UserID,
			Title:       m.Title,
			Description: m.Description,
			DueDate:     m.DueDate,
			CreatedAt:   m.CreatedAt,
		})
	}

	text, err := s.completer.Complete(ctx, genai.TaskInsightsPrompt(tasks))
	if err != nil {
		return "", mapGenerationError(err)
	}
	return text, nil
}

// applyCurriculumDefaults substitutes the configured defaults for empty
// board or grade parameters so cache keys stay canonical.
func applyCurriculumDefaults(board, grade string) (string, string) {
	if board == "" {
		board = genai.DefaultBoard
	}
	if grade == "" {
		grade = genai.DefaultGrade
	}
	return board, grade
}

func (s *insightServiceImpl) readCache(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Get().Warn("Cache entry is unreadable, ignoring", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *insightServiceImpl) writeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Get().Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}
