package dto

// NoteRequest creates or updates a note.
// @Description Request body for creating or updating a note
type NoteRequest struct {
	Title   string   `json:"title" validate:"required"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Color   string   `json:"color"`
}

// NoteResponse is one note in API responses.
type NoteResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Color     string   `json:"color"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// NotesResponse wraps the user's notes.
type NotesResponse struct {
	Notes []NoteResponse `json:"notes"`
}

// SingleNoteResponse wraps one note.
type SingleNoteResponse struct {
	Note NoteResponse `json:"note"`
}
