package models

import (
	"database/sql"
	"time"
)

// Exam represents a registered exam row.
type Exam struct {
	ID          string         `db:"id"` // ULID
	UserID      string         `db:"user_id"`
	Title       string         `db:"title"`
	Subject     string         `db:"subject"`
	Board       string         `db:"board"`
	ClassLevel  string         `db:"class_level"`
	Date        time.Time      `db:"date"`
	Duration    sql.NullString `db:"duration"`
	Description sql.NullString `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}

// StudyPlan holds the generated study graph for an exam. Nodes and
// edges are stored as JSON documents and decoded at the service layer.
type StudyPlan struct {
	ID        string       `db:"id"` // ULID
	ExamID    string       `db:"exam_id"`
	Nodes     JSONDocument `db:"nodes"`
	Edges     JSONDocument `db:"edges"`
	CreatedAt time.Time    `db:"created_at"`
}
