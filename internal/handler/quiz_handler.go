package handler

import (
	"studyflow/internal/dto"
	"studyflow/internal/service"
	"studyflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz generation, grading and recommendations.
type QuizHandler struct {
	quizService service.QuizService
	validator   *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance.
func NewQuizHandler(quizService service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		validator:   validator,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates and stores a multiple-choice quiz for a chapter
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body dto.QuizGenerateRequest true "Quiz parameters"
// @Success 200 {object} dto.QuizGenerateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/generate [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.QuizGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateQuizGenerateRequest(req.Subject, req.Chapter, req.QuestionCount); len(errs) > 0 {
		return errs
	}

	resp, err := h.quizService.GenerateQuiz(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Grades a quiz against its stored questions and generates a recommendation
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body dto.QuizSubmitRequest true "Answers"
// @Success 200 {object} dto.QuizSubmitResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/submit [post]
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.QuizSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateQuizSubmitRequest(req.QuizID, len(req.Answers)); len(errs) > 0 {
		return errs
	}

	resp, err := h.quizService.SubmitQuiz(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetRecommendations godoc
// @Summary List stored study recommendations
// @Description Returns the user's persisted recommendations, newest first
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.RecommendationsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /recommendations [get]
func (h *QuizHandler) GetRecommendations(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	recs, err := h.quizService.GetRecommendations(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.RecommendationsResponse{Recommendations: recs})
}
