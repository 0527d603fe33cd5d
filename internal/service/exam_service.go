package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"studyflow/internal/domain"
	"studyflow/internal/dto"
	"studyflow/internal/genai"
	"studyflow/internal/repository"
	"studyflow/internal/repository/models"
	"studyflow/internal/util"
)

// ExamService owns exam CRUD. Every operation is scoped to the calling
// user; rows owned by someone else surface as NotFound.
type ExamService interface {
	CreateExam(ctx context.Context, userID string, req dto.ExamRequest) (*dto.ExamResponse, error)
	GetExams(ctx context.Context, userID string) ([]dto.ExamResponse, error)
	GetExam(ctx context.Context, userID, examID string) (*dto.ExamResponse, error)
	UpdateExam(ctx context.Context, userID, examID string, req dto.ExamRequest) (*dto.ExamResponse, error)
	DeleteExam(ctx context.Context, userID, examID string) error
}

type examServiceImpl struct {
	examRepo repository.ExamRepository
}

// NewExamService creates a new instance of ExamService.
func NewExamService(examRepo repository.ExamRepository) ExamService {
	return &examServiceImpl{examRepo: examRepo}
}

func (s *examServiceImpl) CreateExam(ctx context.Context, userID string, req dto.ExamRequest) (*dto.ExamResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("Invalid exam date: %s", req.Date))
	}

	board := req.Board
	if board == "" {
		board = genai.DefaultBoard
	}

	exam := &models.Exam{
		ID:          util.NewULID(),
		UserID:      userID,
		Title:       req.Title,
		Subject:     req.Subject,
		Board:       board,
		ClassLevel:  req.ClassLevel,
		Date:        date,
		Duration:    util.StringToNullString(req.Duration),
		Description: util.StringToNullString(req.Description),
	}
	if err := s.examRepo.CreateExam(ctx, exam); err != nil {
		return nil, domain.NewInternalError("Failed to create exam", err)
	}

	resp := toExamResponse(exam)
	return &resp, nil
}

func (s *examServiceImpl) GetExams(ctx context.Context, userID string) ([]dto.ExamResponse, error) {
	exams, err := s.examRepo.GetExamsByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list exams", err)
	}

	responses := make([]dto.ExamResponse, 0, len(exams))
	for i := range exams {
		responses = append(responses, toExamResponse(&exams[i]))
	}
	return responses, nil
}

func (s *examServiceImpl) GetExam(ctx context.Context, userID, examID string) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.GetExamByID(ctx, examID, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load exam", err)
	}
	if exam == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Exam %s not found", examID))
	}

	resp := toExamResponse(exam)
	return &resp, nil
}

func (s *examServiceImpl) UpdateExam(ctx context.Context, userID, examID string, req dto.ExamRequest) (*dto.ExamResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("Invalid exam date: %s", req.Date))
	}

	exam, err := s.examRepo.GetExamByID(ctx, examID, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load exam", err)
	}
	if exam == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Exam %s not found", examID))
	}

	exam.Title = req.Title
	exam.Subject = req.Subject
	if req.Board != "" {
		exam.Board = req.Board
	}
	exam.ClassLevel = req.ClassLevel
	exam.Date = date
	exam.Duration = util.StringToNullString(req.Duration)
	exam.Description = util.StringToNullString(req.Description)

	if err := s.examRepo.UpdateExam(ctx, exam); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("Exam %s not found", examID))
		}
		return nil, domain.NewInternalError("Failed to update exam", err)
	}

	resp := toExamResponse(exam)
	return &resp, nil
}

func (s *examServiceImpl) DeleteExam(ctx context.Context, userID, examID string) error {
	if err := s.examRepo.DeleteExam(ctx, examID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError(fmt.Sprintf("Exam %s not found", examID))
		}
		return domain.NewInternalError("Failed to delete exam", err)
	}
	return nil
}

func toExamResponse(exam *models.Exam) dto.ExamResponse {
	return dto.ExamResponse{
		ID:          exam.ID,
		Title:       exam.Title,
		Subject:     exam.Subject,
		Board:       exam.Board,
		ClassLevel:  exam.ClassLevel,
		Date:        exam.Date.Format("2006-01-02"),
		Duration:    exam.Duration.String,
		Description: exam.Description.String,
		CreatedAt:   exam.CreatedAt.Format(time.RFC3339),
	}
}
