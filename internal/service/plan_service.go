package service

import (
	"context"
	"encoding/json"
	"fmt"

	"studyflow/internal/domain"
	"studyflow/internal/dto"
	"studyflow/internal/genai"
	"studyflow/internal/logger"
	"studyflow/internal/repository"
	"studyflow/internal/repository/models"
	"studyflow/internal/util"

	"go.uber.org/zap"
)

// PlanService generates and stores study plans for registered exams.
type PlanService interface {
	GeneratePlan(ctx context.Context, userID, examID string) (*dto.StudyPlanResponse, error)
	GetPlan(ctx context.Context, userID, examID string) (*dto.StudyPlanResponse, error)
}

type planServiceImpl struct {
	completer genai.Completer
	examRepo  repository.ExamRepository
	planRepo  repository.PlanRepository
}

// NewPlanService creates a new instance of PlanService.
func NewPlanService(completer genai.Completer, examRepo repository.ExamRepository, planRepo repository.PlanRepository) PlanService {
	return &planServiceImpl{
		completer: completer,
		examRepo:  examRepo,
		planRepo:  planRepo,
	}
}

// GeneratePlan produces a fresh study graph for the exam and replaces any
// previously stored plan. Persistence is best effort: a storage failure
// is logged and the generated plan is still returned.
func (s *planServiceImpl) GeneratePlan(ctx context.Context, userID, examID string) (*dto.StudyPlanResponse, error) {
	exam, err := s.examRepo.GetExamByID(ctx, examID, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load exam", err)
	}
	if exam == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Exam %s not found", examID))
	}

	board := exam.Board
	if board == "" {
		board = genai.DefaultBoard
	}
	grade := exam.ClassLevel
	if grade == "" {
		grade = genai.DefaultGrade
	}

	prompt := genai.StudyPlanPrompt(genai.PlanRequest{
		ExamTitle: exam.Title,
		Subject:   exam.Subject,
		Date:      exam.Date.Format("2006-01-02"),
		Board:     board,
		ClassName: grade,
	})

	var graph struct {
		Nodes []domain.StudyNode `json:"nodes"`
		Edges []domain.StudyEdge `json:"edges"`
	}
	if err := genai.Generate(ctx, s.completer, prompt, &graph); err != nil {
		return nil, mapGenerationError(err)
	}

	nodes, edges := domain.NormalizeGraph(graph.Nodes, graph.Edges)
	genai.AssignPositions(nodes)

	s.persistPlan(ctx, examID, nodes, edges)

	return &dto.StudyPlanResponse{Nodes: nodes, Edges: edges}, nil
}

// GetPlan returns the stored plan for the exam, or NotFound when the exam
// is missing, not owned, or has no plan yet.
func (s *planServiceImpl) GetPlan(ctx context.Context, userID, examID string) (*dto.StudyPlanResponse, error) {
	exam, err := s.examRepo.GetExamByID(ctx, examID, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load exam", err)
	}
	if exam == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Exam %s not found", examID))
	}

	stored, err := s.planRepo.GetPlanByExamID(ctx, examID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load plan", err)
	}
	if stored == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("No study plan for exam %s", examID))
	}

	var nodes []domain.StudyNode
	var edges []domain.StudyEdge
	if err := json.Unmarshal(stored.Nodes, &nodes); err != nil {
		return nil, domain.NewInternalError("Stored plan nodes are unreadable", err)
	}
	if err := json.Unmarshal(stored.Edges, &edges); err != nil {
		return nil, domain.NewInternalError("Stored plan edges are unreadable", err)
	}

	return &dto.StudyPlanResponse{Nodes: nodes, Edges: edges}, nil
}

func (s *planServiceImpl) persistPlan(ctx context.Context, examID string, nodes []domain.StudyNode, edges []domain.StudyEdge) {
	appLogger := logger.Get()

	nodesJSON, err := json.Marshal(nodes)
	if err != nil {
		appLogger.Warn("Failed to encode plan nodes for storage", zap.String("examID", examID), zap.Error(err))
		return
	}
	edgesJSON, err := json.Marshal(edges)
	if err != nil {
		appLogger.Warn("Failed to encode plan edges for storage", zap.String("examID", examID), zap.Error(err))
		return
	}

	plan := &models.StudyPlan{
		ID:     util.NewULID(),
		ExamID: examID,
		Nodes:  models.JSONDocument(nodesJSON),
		Edges:  models.JSONDocument(edgesJSON),
	}
	if err := s.planRepo.ReplacePlan(ctx, plan); err != nil {
		appLogger.Warn("Failed to persist generated study plan", zap.String("examID", examID), zap.Error(err))
	}
}
