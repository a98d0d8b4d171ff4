package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// Records are immutable after registration: there are no update or
// delete operations on users.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"password_hash" db:"password_hash"` // Bcrypt hash, never sent to clients
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
