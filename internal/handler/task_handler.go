package handler

import (
	"studyflow/internal/dto"
	"studyflow/internal/service"
	"studyflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TaskHandler handles task CRUD requests.
type TaskHandler struct {
	taskService service.TaskService
	validator   *validation.Validator
}

// NewTaskHandler creates a new TaskHandler instance.
func NewTaskHandler(taskService service.TaskService, validator *validation.Validator) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator,
	}
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body dto.TaskRequest true "Task"
// @Success 201 {object} dto.SingleTaskResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateTaskRequest(req.Title, req.DueDate); len(errs) > 0 {
		return errs
	}

	task, err := h.taskService.CreateTask(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SingleTaskResponse{Task: *task})
}

// GetTasks godoc
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.TasksResponse
// @Router /tasks [get]
func (h *TaskHandler) GetTasks(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.GetTasks(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.TasksResponse{Tasks: tasks})
}

// UpdateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Task ID"
// @Param body body dto.TaskRequest true "Task"
// @Success 200 {object} dto.SingleTaskResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	taskID := c.Params("id")
	if errs := h.validator.ValidateResourceID("id", taskID); len(errs) > 0 {
		return errs
	}

	var req dto.TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateTaskRequest(req.Title, req.DueDate); len(errs) > 0 {
		return errs
	}

	task, err := h.taskService.UpdateTask(c.Context(), userID, taskID, req)
	if err != nil {
		return err
	}
	return c.JSON(dto.SingleTaskResponse{Task: *task})
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Task ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	taskID := c.Params("id")
	if errs := h.validator.ValidateResourceID("id", taskID); len(errs) > 0 {
		return errs
	}

	if err := h.taskService.DeleteTask(c.Context(), userID, taskID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Task deleted"})
}
