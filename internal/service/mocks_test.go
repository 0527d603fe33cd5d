package service

import (
	"context"

	"studyflow/internal/repository/models"

	"github.com/stretchr/testify/mock"
)

// --- MockCompleter ---

type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- MockExamRepository ---

type MockExamRepository struct {
	mock.Mock
}

func (m *MockExamRepository) CreateExam(ctx context.Context, exam *models.Exam) error {
	args := m.Called(ctx, exam)
	return args.Error(0)
}

func (m *MockExamRepository) GetExamsByUserID(ctx context.Context, userID string) ([]models.Exam, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Exam), args.Error(1)
}

func (m *MockExamRepository) GetExamByID(ctx context.Context, examID, userID string) (*models.Exam, error) {
	args := m.Called(ctx, examID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exam), args.Error(1)
}

func (m *MockExamRepository) UpdateExam(ctx context.Context, exam *models.Exam) error {
	args := m.Called(ctx, exam)
	return args.Error(0)
}

func (m *MockExamRepository) DeleteExam(ctx context.Context, examID, userID string) error {
	args := m.Called(ctx, examID, userID)
	return args.Error(0)
}

// --- MockPlanRepository ---

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) ReplacePlan(ctx context.Context, plan *models.StudyPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) GetPlanByExamID(ctx context.Context, examID string) (*models.StudyPlan, error) {
	args := m.Called(ctx, examID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudyPlan), args.Error(1)
}

// --- MockQuizRepository ---

type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) SaveQuiz(ctx context.Context, quiz *models.Quiz, questions []models.QuizQuestion) error {
	args := m.Called(ctx, quiz, questions)
	return args.Error(0)
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, quizID, userID string) (*models.Quiz, error) {
	args := m.Called(ctx, quizID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetQuestionsByQuizID(ctx context.Context, quizID string) ([]models.QuizQuestion, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizQuestion), args.Error(1)
}

func (m *MockQuizRepository) SaveAttempt(ctx context.Context, attempt *models.QuizAttempt, answers []models.QuizAnswer) error {
	args := m.Called(ctx, attempt, answers)
	return args.Error(0)
}

// --- MockRecommendationRepository ---

type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) SaveRecommendation(ctx context.Context, rec *models.StudyRecommendation) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRecommendationRepository) GetRecommendationsByUserID(ctx context.Context, userID string) ([]models.StudyRecommendation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudyRecommendation), args.Error(1)
}

// --- MockTaskRepository ---

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) CreateTask(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetTasksByUserID(ctx context.Context, userID string) ([]models.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockTaskRepository) GetTaskByID(ctx context.Context, taskID, userID string) (*models.Task, error) {
	args := m.Called(ctx, taskID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task *models.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, taskID, userID string) error {
	args := m.Called(ctx, taskID, userID)
	return args.Error(0)
}
