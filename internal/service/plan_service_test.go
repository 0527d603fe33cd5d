package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"studyflow/internal/domain"
	"studyflow/internal/repository/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const planCompletion = `{
  "nodes": [
    {"id": "n1", "type": "topic", "label": "Kinematics", "description": "Motion basics", "estimatedHours": 4},
    {"id": "n2", "type": "topic", "label": "Dynamics", "description": "Forces", "estimatedHours": 5},
    {"id": "n3", "type": "subtopic", "label": "Friction", "description": "Contact forces", "estimatedHours": -2},
    {"id": "n4", "type": "", "label": "Work and Energy", "description": "Energy methods", "estimatedHours": 3},
    {"id": "n5", "type": "topic", "label": "Momentum", "description": "Collisions", "estimatedHours": 3}
  ],
  "edges": [
    {"id": "e1", "source": "n1", "target": "n2"},
    {"id": "e2", "source": "n2", "target": "n3"},
    {"id": "e3", "source": "n3", "target": "n4"},
    {"id": "e4", "source": "n4", "target": "n5"},
    {"id": "e5", "source": "n5", "target": "n99"}
  ]
}`

func testExam(examID, userID string) *models.Exam {
	return &models.Exam{
		ID:         examID,
		UserID:     userID,
		Title:      "Board Exam",
		Subject:    "Physics",
		Board:      "CBSE",
		ClassLevel: "12",
		Date:       time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestPlanService_GeneratePlan(t *testing.T) {
	ctx := context.Background()
	examID := "01EXAMULID0000000000000000"
	userID := "01USERULID0000000000000000"

	t.Run("happy path normalizes and lays out the graph", func(t *testing.T) {
		completer := new(MockCompleter)
		examRepo := new(MockExamRepository)
		planRepo := new(MockPlanRepository)
		svc := NewPlanService(completer, examRepo, planRepo)

		examRepo.On("GetExamByID", ctx, examID, userID).Return(testExam(examID, userID), nil)
		completer.On("Complete", ctx, mock.AnythingOfType("string")).Return(planCompletion, nil)
		planRepo.On("ReplacePlan", ctx, mock.AnythingOfType("*models.StudyPlan")).Return(nil)

		resp, err := svc.GeneratePlan(ctx, userID, examID)
		require.NoError(t, err)
		require.Len(t, resp.Nodes, 5)

		// Positions follow the 3-column grid.
		assert.Equal(t, domain.Position{X: 150, Y: 100}, resp.Nodes[0].Position)
		assert.Equal(t, domain.Position{X: 450, Y: 100}, resp.Nodes[1].Position)
		assert.Equal(t, domain.Position{X: 750, Y: 100}, resp.Nodes[2].Position)
		assert.Equal(t, domain.Position{X: 150, Y: 300}, resp.Nodes[3].Position)
		assert.Equal(t, domain.Position{X: 450, Y: 300}, resp.Nodes[4].Position)

		// Negative estimates are clamped and missing types defaulted.
		assert.Equal(t, float64(0), resp.Nodes[2].EstimatedHours)
		assert.Equal(t, domain.NodeTypeTopic, resp.Nodes[3].Type)

		// The dangling edge (n5 -> n99) is dropped; the rest survive in order.
		require.Len(t, resp.Edges, 4)
		assert.Equal(t, "e4", resp.Edges[3].ID)

		planRepo.AssertExpectations(t)
	})

	t.Run("storage failure still returns the generated plan", func(t *testing.T) {
		completer := new(MockCompleter)
		examRepo := new(MockExamRepository)
		planRepo := new(MockPlanRepository)
		svc := NewPlanService(completer, examRepo, planRepo)

		examRepo.On("GetExamByID", ctx, examID, userID).Return(testExam(examID, userID), nil)
		completer.On("Complete", ctx, mock.AnythingOfType("string")).Return(planCompletion, nil)
		planRepo.On("ReplacePlan", ctx, mock.AnythingOfType("*models.StudyPlan")).Return(errors.New("db down"))

		resp, err := svc.GeneratePlan(ctx, userID, examID)
		require.NoError(t, err)
		assert.Len(t, resp.Nodes, 5)
	})

	t.Run("unknown exam is NotFound", func(t *testing.T) {
		completer := new(MockCompleter)
		examRepo := new(MockExamRepository)
		planRepo := new(MockPlanRepository)
		svc := NewPlanService(completer, examRepo, planRepo)

		examRepo.On("GetExamByID", ctx, examID, userID).Return(nil, nil)

		_, err := svc.GeneratePlan(ctx, userID, examID)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeNotFound, domainErr.Code)
		completer.AssertNotCalled(t, "Complete")
	})

	t.Run("malformed completion surfaces extraction failure with raw response", func(t *testing.T) {
		completer := new(MockCompleter)
		examRepo := new(MockExamRepository)
		planRepo := new(MockPlanRepository)
		svc := NewPlanService(completer, examRepo, planRepo)

		raw := "I cannot produce a study plan right now."
		examRepo.On("GetExamByID", ctx, examID, userID).Return(testExam(examID, userID), nil)
		completer.On("Complete", ctx, mock.AnythingOfType("string")).Return(raw, nil)

		_, err := svc.GeneratePlan(ctx, userID, examID)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeExtractionFailed, domainErr.Code)
		assert.Equal(t, raw, domainErr.Context["rawResponse"])
		planRepo.AssertNotCalled(t, "ReplacePlan")
	})
}

func TestPlanService_GetPlan(t *testing.T) {
	ctx := context.Background()
	examID := "01EXAMULID0000000000000000"
	userID := "01USERULID0000000000000000"

	t.Run("returns stored plan", func(t *testing.T) {
		completer := new(MockCompleter)
		examRepo := new(MockExamRepository)
		planRepo := new(MockPlanRepository)
		svc := NewPlanService(completer, examRepo, planRepo)

		examRepo.On("GetExamByID", ctx, examID, userID).Return(testExam(examID, userID), nil)
		planRepo.On("GetPlanByExamID", ctx, examID).Return(&models.StudyPlan{
			ID:     "01PLANULID0000000000000000",
			ExamID: examID,
			Nodes:  models.JSONDocument(`[{"id":"n1","type":"topic","label":"Kinematics"}]`),
			Edges:  models.JSONDocument(`[]`),
		}, nil)

		resp, err := svc.GetPlan(ctx, userID, examID)
		require.NoError(t, err)
		require.Len(t, resp.Nodes, 1)
		assert.Equal(t, "Kinematics", resp.Nodes[0].Label)
		assert.Empty(t, resp.Edges)
	})

	t.Run("missing plan is NotFound", func(t *testing.T) {
		completer := new(MockCompleter)
		examRepo := new(MockExamRepository)
		planRepo := new(MockPlanRepository)
		svc := NewPlanService(completer, examRepo, planRepo)

		examRepo.On("GetExamByID", ctx, examID, userID).Return(testExam(examID, userID), nil)
		planRepo.On("GetPlanByExamID", ctx, examID).Return(nil, nil)

		_, err := svc.GetPlan(ctx, userID, examID)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeNotFound, domainErr.Code)
	})
}
