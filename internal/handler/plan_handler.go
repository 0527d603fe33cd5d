package handler

import (
	"studyflow/internal/dto"
	"studyflow/internal/service"
	"studyflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// PlanHandler handles study-plan HTTP requests.
type PlanHandler struct {
	planService service.PlanService
	validator   *validation.Validator
}

// NewPlanHandler creates a new PlanHandler instance.
func NewPlanHandler(planService service.PlanService, validator *validation.Validator) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		validator:   validator,
	}
}

// GeneratePlan godoc
// @Summary Generate a study plan
// @Description Generates a study graph for an exam and replaces any stored plan
// @Tags study-plan
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body dto.StudyPlanRequest true "Exam to plan for"
// @Success 200 {object} dto.StudyPlanResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /study-plan [post]
func (h *PlanHandler) GeneratePlan(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.StudyPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateStudyPlanRequest(req.ExamID); len(errs) > 0 {
		return errs
	}

	resp, err := h.planService.GeneratePlan(c.Context(), userID, req.ExamID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetPlan godoc
// @Summary Get the stored study plan
// @Description Returns the persisted study graph for an exam
// @Tags study-plan
// @Produce json
// @Security ApiKeyAuth
// @Param examId query string true "Exam ID"
// @Success 200 {object} dto.StudyPlanResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /study-plan [get]
func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	examID := c.Query("examId")
	if errs := h.validator.ValidateStudyPlanRequest(examID); len(errs) > 0 {
		return errs
	}

	resp, err := h.planService.GetPlan(c.Context(), userID, examID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
