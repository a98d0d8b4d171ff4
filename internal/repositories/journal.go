package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/voyagehub/internal/logger"
	"github.com/sbilibin2017/voyagehub/internal/models"
)

// JournalReadRepository handles journal read operations.
type JournalReadRepository struct {
	db *sqlx.DB
}

func NewJournalReadRepository(db *sqlx.DB) *JournalReadRepository {
	return &JournalReadRepository{db: db}
}

// GetByUserID returns all journal entries owned by the given user,
// newest first.
func (r *JournalReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.JournalDB, error) {
	const query = `
		SELECT journal_id, user_id, title, content, location, images, entry_date, created_at, updated_at
		FROM journals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	journals := []models.JournalDB{}
	err := r.db.SelectContext(ctx, &journals, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(journals),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return journals, nil
}

// JournalWriteRepository handles journal write operations.
type JournalWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewJournalWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *JournalWriteRepository {
	return &JournalWriteRepository{db: db, txGetter: txGetter}
}

func (r *JournalWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new journal entry and returns the stored record.
// The entry date defaults to the creation time.
func (r *JournalWriteRepository) Save(ctx context.Context, userID uuid.UUID, title, content, location string, images []string) (*models.JournalDB, error) {
	const query = `
		INSERT INTO journals (journal_id, user_id, title, content, location, images, entry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW(), NOW())
		RETURNING journal_id, user_id, title, content, location, images, entry_date, created_at, updated_at
	`
	args := []any{uuid.New(), userID, title, content, location, models.StringSlice(images)}

	var journal models.JournalDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &journal, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, title, location},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &journal, nil
}

// Update applies the non-nil fields of upd to the entry matching both
// journal id and owner. Returns sql.ErrNoRows when no such entry exists
// or it belongs to a different owner.
func (r *JournalWriteRepository) Update(ctx context.Context, userID, journalID uuid.UUID, upd models.JournalUpdate) (*models.JournalDB, error) {
	const query = `
		UPDATE journals
		SET title      = COALESCE($3::VARCHAR, title),
		    content    = COALESCE($4::TEXT, content),
		    location   = COALESCE($5::TEXT, location),
		    images     = COALESCE($6::JSONB, images),
		    entry_date = COALESCE($7::TIMESTAMPTZ, entry_date),
		    updated_at = NOW()
		WHERE journal_id = $1 AND user_id = $2
		RETURNING journal_id, user_id, title, content, location, images, entry_date, created_at, updated_at
	`

	var images any
	if upd.Images != nil {
		images = models.StringSlice(*upd.Images)
	}
	args := []any{journalID, userID, upd.Title, upd.Content, upd.Location, images, upd.Date}

	var journal models.JournalDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &journal, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{journalID, userID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &journal, nil
}

// Delete removes the entry matching both journal id and owner.
// Returns sql.ErrNoRows when no such entry exists or it belongs to a
// different owner.
func (r *JournalWriteRepository) Delete(ctx context.Context, userID, journalID uuid.UUID) error {
	const query = `
		DELETE FROM journals
		WHERE journal_id = $1 AND user_id = $2
		RETURNING journal_id
	`

	var deleted uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &deleted, query, journalID, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{journalID, userID},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return sql.ErrNoRows
		}
		return err
	}
	return nil
}
