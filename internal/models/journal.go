package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// StringSlice stores a list of strings in a JSONB column.
type StringSlice []string

// Value implements driver.Valuer. A nil slice is stored as an empty list.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringSlice) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = StringSlice{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported source type for StringSlice")
	}
}

// JournalDB represents a journal entry record in the database.
type JournalDB struct {
	JournalID uuid.UUID   `json:"id" db:"journal_id"`           // Primary key
	UserID    uuid.UUID   `json:"user_id" db:"user_id"`         // Owner, immutable
	Title     string      `json:"title" db:"title"`             // Required
	Content   string      `json:"content" db:"content"`         // Required
	Location  string      `json:"location,omitempty" db:"location"` // Optional
	Images    StringSlice `json:"images" db:"images"`           // Image references
	EntryDate time.Time   `json:"date" db:"entry_date"`         // Defaults to creation time
	CreatedAt time.Time   `json:"created_at" db:"created_at"`   // Creation timestamp
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`   // Last update timestamp
}

// JournalUpdate holds the fields of a partial journal update.
// Nil fields are left unchanged.
type JournalUpdate struct {
	Title    *string    `json:"title"`
	Content  *string    `json:"content"`
	Location *string    `json:"location"`
	Images   *[]string  `json:"images"`
	Date     *time.Time `json:"date"`
}
