package domain

import "time"

// Exam is a user-registered exam. ClassLevel mirrors the "class" field of
// the UI; Board defaults to the configured curriculum board when unset.
type Exam struct {
	ID          string
	UserID      string
	Title       string
	Subject     string
	Board       string
	ClassLevel  string
	Date        time.Time
	Duration    string
	Description string
	CreatedAt   time.Time
}

// Note is a free-form user note.
type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	Tags      []string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Task is a dated to-do item feeding the task-analysis insight.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	DueDate     time.Time
	CreatedAt   time.Time
}
