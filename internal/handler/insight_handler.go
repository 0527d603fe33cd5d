package handler

import (
	"studyflow/internal/dto"
	"studyflow/internal/service"
	"studyflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// InsightHandler serves generated curriculum insights.
type InsightHandler struct {
	insightService service.InsightService
	validator      *validation.Validator
}

// NewInsightHandler creates a new InsightHandler instance.
func NewInsightHandler(insightService service.InsightService, validator *validation.Validator) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
		validator:      validator,
	}
}

// GetChapters godoc
// @Summary List chapters for a subject
// @Description Generates (or serves the cached) chapter list for a syllabus
// @Tags insights
// @Produce json
// @Param subject query string true "Subject"
// @Param board query string false "Exam board"
// @Param grade query string false "Class level"
// @Success 200 {object} dto.ChaptersResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /chapters [get]
func (h *InsightHandler) GetChapters(c *fiber.Ctx) error {
	req := dto.ChaptersRequest{
		Subject: c.Query("subject"),
		Board:   c.Query("board"),
		Grade:   c.Query("grade"),
	}
	return h.chapters(c, req)
}

// GenerateChapters godoc
// @Summary List chapters for a subject
// @Description POST variant of the chapter list endpoint
// @Tags insights
// @Accept json
// @Produce json
// @Param body body dto.ChaptersRequest true "Syllabus"
// @Success 200 {object} dto.ChaptersResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /chapters [post]
func (h *InsightHandler) GenerateChapters(c *fiber.Ctx) error {
	var req dto.ChaptersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return h.chapters(c, req)
}

func (h *InsightHandler) chapters(c *fiber.Ctx, req dto.ChaptersRequest) error {
	if errs := h.validator.ValidateChaptersRequest(req.Subject); len(errs) > 0 {
		return errs
	}
	chapters, err := h.insightService.GetChapters(c.Context(), req.Subject, req.Board, req.Grade)
	if err != nil {
		return err
	}
	return c.JSON(dto.ChaptersResponse{Chapters: chapters})
}

// GetTopics godoc
// @Summary Break a chapter into topics
// @Description Generates a topic breakdown with a study flow for one chapter
// @Tags insights
// @Produce json
// @Param subject query string true "Subject"
// @Param chapter query string true "Chapter title"
// @Param board query string false "Exam board"
// @Param grade query string false "Class level"
// @Success 200 {object} domain.TopicBreakdown
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /topics [get]
func (h *InsightHandler) GetTopics(c *fiber.Ctx) error {
	req := dto.TopicsRequest{
		Subject: c.Query("subject"),
		Chapter: c.Query("chapter"),
		Board:   c.Query("board"),
		Grade:   c.Query("grade"),
	}
	return h.topics(c, req)
}

// GenerateTopics godoc
// @Summary Break a chapter into topics
// @Description POST variant of the topic breakdown endpoint
// @Tags insights
// @Accept json
// @Produce json
// @Param body body dto.TopicsRequest true "Chapter"
// @Success 200 {object} domain.TopicBreakdown
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /topics [post]
func (h *InsightHandler) GenerateTopics(c *fiber.Ctx) error {
	var req dto.TopicsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return h.topics(c, req)
}

func (h *InsightHandler) topics(c *fiber.Ctx, req dto.TopicsRequest) error {
	if errs := h.validator.ValidateTopicsRequest(req.Subject, req.Chapter); len(errs) > 0 {
		return errs
	}
	breakdown, err := h.insightService.GetTopicBreakdown(c.Context(), req.Subject, req.Chapter, req.Board, req.Grade)
	if err != nil {
		return err
	}
	return c.JSON(breakdown)
}

// GetAllTopics godoc
// @Summary Topic lists for several chapters
// @Description Generates compact topic lists for up to 30 chapters in one call
// @Tags insights
// @Accept json
// @Produce json
// @Param body body dto.AllTopicsRequest true "Chapters"
// @Success 200 {object} dto.AllTopicsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /all-topics [post]
func (h *InsightHandler) GetAllTopics(c *fiber.Ctx) error {
	var req dto.AllTopicsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateAllTopicsRequest(req.Subject, req.Chapters); len(errs) > 0 {
		return errs
	}
	topics, err := h.insightService.GetAllTopics(c.Context(), req.Subject, req.Chapters, req.Board, req.Grade)
	if err != nil {
		return err
	}
	return c.JSON(dto.AllTopicsResponse{TopicsByChapter: topics})
}

// GetChapterFlow godoc
// @Summary Chapter dependency flow
// @Description Generates a chapter dependency graph with study insights
// @Tags insights
// @Accept json
// @Produce json
// @Param body body dto.ChapterFlowRequest true "Subject"
// @Success 200 {object} dto.ChapterFlowResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /chapter-flow [post]
func (h *InsightHandler) GetChapterFlow(c *fiber.Ctx) error {
	var req dto.ChapterFlowRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateChaptersRequest(req.Subject); len(errs) > 0 {
		return errs
	}
	flow, err := h.insightService.GetChapterFlow(c.Context(), req.Subject, req.ExamType, req.ClassLevel)
	if err != nil {
		return err
	}
	return c.JSON(dto.ChapterFlowResponse{FlowData: *flow})
}

// ExplainConcept godoc
// @Summary Explain a concept
// @Description Generates conceptual, real-world, step-by-step and memory-trick explanations
// @Tags insights
// @Accept json
// @Produce json
// @Param body body dto.ExplainConceptRequest true "Question"
// @Success 200 {object} domain.ConceptExplanation
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /explain-concept [post]
func (h *InsightHandler) ExplainConcept(c *fiber.Ctx) error {
	var req dto.ExplainConceptRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateExplainConceptRequest(req.Question); len(errs) > 0 {
		return errs
	}
	explanation, err := h.insightService.ExplainConcept(c.Context(), req.Question, req.Interests)
	if err != nil {
		return err
	}
	return c.JSON(explanation)
}

// GetTaskInsights godoc
// @Summary Prioritization advice for open tasks
// @Description Generates free-text advice over the user's task list
// @Tags insights
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.TaskInsightsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /insights [get]
func (h *InsightHandler) GetTaskInsights(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	insights, err := h.insightService.GetTaskInsights(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.TaskInsightsResponse{Insights: insights})
}
