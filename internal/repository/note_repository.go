package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"studyflow/internal/repository/models"
	"time"

	"github.com/jmoiron/sqlx"
)

// NoteRepository defines the interface for note data operations.
type NoteRepository interface {
	CreateNote(ctx context.Context, note *models.Note) error
	GetNotesByUserID(ctx context.Context, userID string) ([]models.Note, error)
	GetNoteByID(ctx context.Context, noteID, userID string) (*models.Note, error)
	UpdateNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, noteID, userID string) error
}

type sqlxNoteRepository struct {
	db *sqlx.DB
}

// NewSQLXNoteRepository creates a new instance of sqlxNoteRepository.
func NewSQLXNoteRepository(db *sqlx.DB) NoteRepository {
	return &sqlxNoteRepository{db: db}
}

func (r *sqlxNoteRepository) CreateNote(ctx context.Context, note *models.Note) error {
	query := `INSERT INTO notes (id, user_id, title, content, tags, color, created_at, updated_at)
	          VALUES (:id, :user_id, :title, :content, :tags, :color, :created_at, :updated_at)`

	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt

	if _, err := r.db.NamedExecContext(ctx, query, note); err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

func (r *sqlxNoteRepository) GetNotesByUserID(ctx context.Context, userID string) ([]models.Note, error) {
	notes := []models.Note{}
	query := `SELECT * FROM notes WHERE user_id = $1 ORDER BY updated_at DESC`

	if err := r.db.SelectContext(ctx, &notes, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// GetNoteByID returns (nil, nil) when the note does not exist or is not
// owned by userID.
func (r *sqlxNoteRepository) GetNoteByID(ctx context.Context, noteID, userID string) (*models.Note, error) {
	var note models.Note
	query := `SELECT * FROM notes WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, &note, query, noteID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return &note, nil
}

func (r *sqlxNoteRepository) UpdateNote(ctx context.Context, note *models.Note) error {
	note.UpdatedAt = time.Now()

	query := `UPDATE notes SET
	            title = :title,
	            content = :content,
	            tags = :tags,
	            color = :color,
	            updated_at = :updated_at
	          WHERE id = :id AND user_id = :user_id`

	result, err := r.db.NamedExecContext(ctx, query, note)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *sqlxNoteRepository) DeleteNote(ctx context.Context, noteID, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, noteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
