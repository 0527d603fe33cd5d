package models

import (
	"database/sql"
	"time"
)

// User represents a user in the system.
type User struct {
	ID                    string         `db:"id"` // ULID
	GoogleID              string         `db:"google_id"`
	Email                 string         `db:"email"`
	Name                  sql.NullString `db:"name"`
	ProfilePictureURL     sql.NullString `db:"profile_picture_url"`
	EncryptedAccessToken  sql.NullString `db:"encrypted_access_token"`
	EncryptedRefreshToken sql.NullString `db:"encrypted_refresh_token"`
	TokenExpiresAt        sql.NullTime   `db:"token_expires_at"`
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"`
	DeletedAt             sql.NullTime   `db:"deleted_at"`
}
