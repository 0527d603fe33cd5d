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

const defaultNoteColor = "#FFFFFF"

// NoteService owns note CRUD, scoped to the calling user.
type NoteService interface {
	CreateNote(ctx context.Context, userID string, req dto.NoteRequest) (*dto.NoteResponse, error)
	GetNotes(ctx context.Context, userID string) ([]dto.NoteResponse, error)
	GetNote(ctx context.Context, userID, noteID string) (*dto.NoteResponse, error)
	UpdateNote(ctx context.Context, userID, noteID string, req dto.NoteRequest) (*dto.NoteResponse, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}

type noteServiceImpl struct {
	noteRepo repository.NoteRepository
}

// NewNoteService creates a new instance of NoteService.
func NewNoteService(noteRepo repository.NoteRepository) NoteService {
	return &noteServiceImpl{noteRepo: noteRepo}
}

func (s *noteServiceImpl) CreateNote(ctx context.Context, userID string, req dto.NoteRequest) (*dto.NoteResponse, error) {
	color := req.Color
	if color == "" {
		color = defaultNoteColor
	}

	note := &models.Note{
		ID:      util.NewULID(),
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    models.StringSlice(req.Tags),
		Color:   color,
	}
	if err := s.noteRepo.CreateNote(ctx, note); err != nil {
		return nil, domain.NewInternalError("Failed to create note", err)
	}

	resp := toNoteResponse(note)
	return &resp, nil
}

func (s *noteServiceImpl) GetNotes(ctx context.Context, userID string) ([]dto.NoteResponse, error) {
	notes, err := s.noteRepo.GetNotesByUserID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list notes", err)
	}

	responses := make([]dto.NoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, toNoteResponse(&notes[i]))
	}
	return responses, nil
}

func (s *noteServiceImpl) GetNote(ctx context.Context, userID, noteID string) (*dto.NoteResponse, error) {
	note, err := s.noteRepo.GetNoteByID(ctx, noteID, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load note", err)
	}
	if note == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Note %s not found", noteID))
	}

	resp := toNoteResponse(note)
	return &resp, nil
}

func (s *noteServiceImpl) UpdateNote(ctx context.Context, userID, noteID string, req dto.NoteRequest) (*dto.NoteResponse, error) {
	note, err := s.noteRepo.GetNoteByID(ctx, noteID, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load note", err)
	}
	if note == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("Note %s not found", noteID))
	}

	note.Title = req.Title
	note.Content = req.Content
	note.Tags = models.StringSlice(req.Tags)
	if req.Color != "" {
		note.Color = req.Color
	}

	if err := s.noteRepo.UpdateNote(ctx, note); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("Note %s not found", noteID))
		}
		return nil, domain.NewInternalError("Failed to update note", err)
	}

	resp := toNoteResponse(note)
	return &resp, nil
}

func (s *noteServiceImpl) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := s.noteRepo.DeleteNote(ctx, noteID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewNotFoundError(fmt.Sprintf("Note %s not found", noteID))
		}
		return domain.NewInternalError("Failed to delete note", err)
	}
	return nil
}

func toNoteResponse(note *models.Note) dto.NoteResponse {
	tags := []string(note.Tags)
	if tags == nil {
		tags = []string{}
	}
	return dto.NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      tags,
		Color:     note.Color,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
}
