package handler

import (
	"studyflow/internal/dto"
	"studyflow/internal/service"
	"studyflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// NoteHandler handles note CRUD requests.
type NoteHandler struct {
	noteService service.NoteService
	validator   *validation.Validator
}

// NewNoteHandler creates a new NoteHandler instance.
func NewNoteHandler(noteService service.NoteService, validator *validation.Validator) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		validator:   validator,
	}
}

// CreateNote godoc
// @Summary Create a note
// @Tags notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body dto.NoteRequest true "Note"
// @Success 201 {object} dto.SingleNoteResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /notes [post]
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateNoteRequest(req.Title); len(errs) > 0 {
		return errs
	}

	note, err := h.noteService.CreateNote(c.Context(), userID, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SingleNoteResponse{Note: *note})
}

// GetNotes godoc
// @Summary List notes
// @Tags notes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.NotesResponse
// @Router /notes [get]
func (h *NoteHandler) GetNotes(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	notes, err := h.noteService.GetNotes(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NotesResponse{Notes: notes})
}

// GetNote godoc
// @Summary Get one note
// @Tags notes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Note ID"
// @Success 200 {object} dto.SingleNoteResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /notes/{id} [get]
func (h *NoteHandler) GetNote(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	noteID := c.Params("id")
	if errs := h.validator.ValidateResourceID("id", noteID); len(errs) > 0 {
		return errs
	}

	note, err := h.noteService.GetNote(c.Context(), userID, noteID)
	if err != nil {
		return err
	}
	return c.JSON(dto.SingleNoteResponse{Note: *note})
}

// UpdateNote godoc
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Note ID"
// @Param body body dto.NoteRequest true "Note"
// @Success 200 {object} dto.SingleNoteResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	noteID := c.Params("id")
	if errs := h.validator.ValidateResourceID("id", noteID); len(errs) > 0 {
		return errs
	}

	var req dto.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if errs := h.validator.ValidateNoteRequest(req.Title); len(errs) > 0 {
		return errs
	}

	note, err := h.noteService.UpdateNote(c.Context(), userID, noteID, req)
	if err != nil {
		return err
	}
	return c.JSON(dto.SingleNoteResponse{Note: *note})
}

// DeleteNote godoc
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Note ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	noteID := c.Params("id")
	if errs := h.validator.ValidateResourceID("id", noteID); len(errs) > 0 {
		return errs
	}

	if err := h.noteService.DeleteNote(c.Context(), userID, noteID); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Note deleted"})
}
