package handler

import (
	"context"

	"studyflow/internal/domain"
	"studyflow/internal/dto"
	"studyflow/internal/middleware"
	"studyflow/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
)

const testUserID = "01USERULID0000000000000000"

// newTestApp wires a fiber app with the centralized error handler and a
// stub auth middleware that injects a fixed user id.
func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.UserIDKey, testUserID)
		return c.Next()
	})
	return app
}

func newTestValidator() *validation.Validator {
	return validation.NewValidator()
}

type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) GeneratePlan(ctx context.Context, userID, examID string) (*dto.StudyPlanResponse, error) {
	args := m.Called(ctx, userID, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StudyPlanResponse), args.Error(1)
}

func (m *MockPlanService) GetPlan(ctx context.Context, userID, examID string) (*dto.StudyPlanResponse, error) {
	args := m.Called(ctx, userID, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StudyPlanResponse), args.Error(1)
}

type MockInsightService struct {
	mock.Mock
}

func (m *MockInsightService) GetChapters(ctx context.Context, subject, board, grade string) ([]domain.Chapter, error) {
	args := m.Called(ctx, subject, board, grade)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Chapter), args.Error(1)
}

func (m *MockInsightService) GetTopicBreakdown(ctx context.Context, subject, chapter, board, grade string) (*domain.TopicBreakdown, error) {
	args := m.Called(ctx, subject, chapter, board, grade)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TopicBreakdown), args.Error(1)
}

func (m *MockInsightService) GetAllTopics(ctx context.Context, subject string, chapters []string, board, grade string) (map[string][]string, error) {
	args := m.Called(ctx, subject, chapters, board, grade)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]string), args.Error(1)
}

func (m *MockInsightService) GetChapterFlow(ctx context.Context, subject, examType, classLevel string) (*domain.StudyFlow, error) {
	args := m.Called(ctx, subject, examType, classLevel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudyFlow), args.Error(1)
}

func (m *MockInsightService) ExplainConcept(ctx context.Context, question, interests string) (*domain.ConceptExplanation, error) {
	args := m.Called(ctx, question, interests)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConceptExplanation), args.Error(1)
}

func (m *MockInsightService) GetTaskInsights(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) GenerateQuiz(ctx context.Context, userID string, req dto.QuizGenerateRequest) (*dto.QuizGenerateResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizGenerateResponse), args.Error(1)
}

func (m *MockQuizService) SubmitQuiz(ctx context.Context, userID string, req dto.QuizSubmitRequest) (*dto.QuizSubmitResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizSubmitResponse), args.Error(1)
}

func (m *MockQuizService) GetRecommendations(ctx context.Context, userID string) ([]dto.StoredRecommendation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.StoredRecommendation), args.Error(1)
}

type MockExamService struct {
	mock.Mock
}

func (m *MockExamService) CreateExam(ctx context.Context, userID string, req dto.ExamRequest) (*dto.ExamResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExamResponse), args.Error(1)
}

func (m *MockExamService) GetExams(ctx context.Context, userID string) ([]dto.ExamResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ExamResponse), args.Error(1)
}

func (m *MockExamService) GetExam(ctx context.Context, userID, examID string) (*dto.ExamResponse, error) {
	args := m.Called(ctx, userID, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExamResponse), args.Error(1)
}

func (m *MockExamService) UpdateExam(ctx context.Context, userID, examID string, req dto.ExamRequest) (*dto.ExamResponse, error) {
	args := m.Called(ctx, userID, examID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ExamResponse), args.Error(1)
}

func (m *MockExamService) DeleteExam(ctx context.Context, userID, examID string) error {
	args := m.Called(ctx, userID, examID)
	return args.Error(0)
}
