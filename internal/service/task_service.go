package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"studyflow/internal/domain"
	"studyflow/internal/dto"
	"studyflow/internal/repository"
	"studyflow/internal/repository/models"
	"studyflow/internal/util"
)

// TaskService owns task CRUD, scoped to the calling user.
type TaskService interface {
	CreateTask(ctx context.Context, userID string, req dto.TaskRequest) (*dto.TaskResponse, error)
	GetTasks(ctx context.Context, userID string) ([]dto.TaskResponse, error)
	UpdateTask(ctx context.Context, userID, taskID string, req dto.TaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}

type taskServiceImpl struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskServiceImpl{taskRepo: taskRepo}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, userID string, req dto.TaskRequest) (*dto.TaskResponse, error) {
	dueDate, err := parseTaskDate(req.DueDate)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("Invalid due date: %s", req.DueDate))
	}

	task := &models.Task{
		ID:          util.NewULID(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	}
	if err := s.taskRepo.CreateTask(ctx, task); err != nil {
		return nil, domain.NewInternalError("Failed to create task", err)
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

func (s *taskServiceImpl) GetTasks(ctx context.Context, userID string) ([]dto.TaskResponse, error) {
	tasks, err := s.taskRepo.GetTasksByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list tasks", err)
	}

	responses := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, toTaskResponse(&tasks[i]))
	}
	return responses, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, userID, taskID string, req dto.TaskRequest) (*dto.TaskResponse, error) {
	dueDate, err := parseTaskDate(req.DueDate)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("Invalid due date: %s", req.DueDate))
	}

	task, err := s.taskRepo.GetTaskByID(ctx, taskID, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load task", err)
	}
	if task == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Task %s not found", taskID))
	}

	task.Title = req.Title
	task.Description = req.Description
	task.DueDate = dueDate

	if err := s.taskRepo.UpdateTask(ctx, task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("Task %s not found", taskID))
		}
		return nil, domain.NewInternalError("Failed to update task", err)
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID string) error {
	if err := s.taskRepo.DeleteTask(ctx, taskID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError(fmt.Sprintf("Task %s not found", taskID))
		}
		return domain.NewInternalError("Failed to delete task", err)
	}
	return nil
}

// parseTaskDate accepts either a bare date or a full RFC 3339 timestamp.
func parseTaskDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toTaskResponse(task *models.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate.Format(time.RFC3339),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
	}
}
