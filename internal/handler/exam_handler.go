package handler

import (
	"studyflow/internal/dto"
	"studyflow/internal/service"
	"studyflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ExamHandler handles exam CRUD requests.
type ExamHandler struct {
	examService service.ExamService
	validator   *validation.Validator
}

// NewExamHandler creates a new ExamHandler instance.
func NewExamHandler(examService service.ExamService, validator *validation.Validator) *ExamHandler {
	return &ExamHandler{
		examService: examService,
		validator:   validator,
	}
}

// CreateExam godoc
// @Summary Register an exam
// @Tags exams
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body dto.ExamRequest true "Exam"
// @Success 201 {object} dto.SingleExamResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /exams [post]
func (h *ExamHandler) CreateExam(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateExamRequest(req.Title, req.Subject, req.ClassLevel, req.Date); len(errs) > 0 {
		return errs
	}

	exam, err := h.examService.CreateExam(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SingleExamResponse{Exam: *exam})
}

// GetExams godoc
// @Summary List registered exams
// @Tags exams
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.ExamsResponse
// @Router /exams [get]
func (h *ExamHandler) GetExams(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	exams, err := h.examService.GetExams(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.ExamsResponse{Exams: exams})
}

// GetExam godoc
// @Summary Get one exam
// @Tags exams
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Exam ID"
// @Success 200 {object} dto.SingleExamResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /exams/{id} [get]
func (h *ExamHandler) GetExam(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	examID := c.Params("id")
	if errs := h.validator.ValidateResourceID("id", examID); len(errs) > 0 {
		return errs
	}

	exam, err := h.examService.GetExam(c.Context(), userID, examID)
	if err != nil {
		return err
	}
	return c.JSON(dto.SingleExamResponse{Exam: *exam})
}

// UpdateExam godoc
// @Summary Update an exam
// @Tags exams
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Exam ID"
// @Param body body dto.ExamRequest true "Exam"
// @Success 200 {object} dto.SingleExamResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /exams/{id} [put]
func (h *ExamHandler) UpdateExam(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	examID := c.Params("id")
	if errs := h.validator.ValidateResourceID("id", examID); len(errs) > 0 {
		return errs
	}

	var req dto.ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateExamRequest(req.Title, req.Subject, req.ClassLevel, req.Date); len(errs) > 0 {
		return errs
	}

	exam, err := h.examService.UpdateExam(c.Context(), userID, examID, req)
	if err != nil {
		return err
	}
	return c.JSON(dto.SingleExamResponse{Exam: *exam})
}

// DeleteExam godoc
// @Summary Delete an exam
// @Description Deletes an exam along with its study plans; quizzes are detached
// @Tags exams
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Exam ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /exams/{id} [delete]
func (h *ExamHandler) DeleteExam(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	examID := c.Params("id")
	if errs := h.validator.ValidateResourceID("id", examID); len(errs) > 0 {
		return errs
	}

	if err := h.examService.DeleteExam(c.Context(), userID, examID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Exam deleted"})
}
