package models

import "time"

// Note represents a user note row.
type Note struct {
	ID        string      `db:"id"` // ULID
	UserID    string      `db:"user_id"`
	Title     string      `db:"title"`
	Content   string      `db:"content"`
	Tags      StringSlice `db:"tags"`
	Color     string      `db:"color"`
	CreatedAt time.Time   `db:"created_at"`
	UpdatedAt time.Time   `db:"updated_at"`
}

// Task represents a user task row.
type Task struct {
	ID          string    `db:"id"` // ULID
	UserID      string    `db:"user_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	DueDate     time.Time `db:"due_date"`
	CreatedAt   time.Time `db:"created_at"`
}
