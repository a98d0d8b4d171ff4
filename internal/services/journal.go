package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/voyagehub/internal/logger"
	"github.com/sbilibin2017/voyagehub/internal/models"
	"github.com/segmentio/kafka-go"
)

var (
	// ErrTitleAndContentRequired is returned when a create or update
	// would leave an entry without a title or content.
	ErrTitleAndContentRequired = errors.New("title and content are required")

	// ErrJournalNotFound covers both an absent entry and an entry owned
	// by another user, so responses do not confirm existence to
	// non-owners.
	ErrJournalNotFound = errors.New("journal not found")
)

// JournalReader defines read operations for journal entries.
type JournalReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.JournalDB, error)
}

// JournalWriter defines write operations for journal entries.
type JournalWriter interface {
	Save(ctx context.Context, userID uuid.UUID, title, content, location string, images []string) (*models.JournalDB, error)
	Update(ctx context.Context, userID, journalID uuid.UUID, upd models.JournalUpdate) (*models.JournalDB, error)
	Delete(ctx context.Context, userID, journalID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// JournalService handles owner-scoped journal operations and Kafka publishing.
type JournalService struct {
	readRepo    JournalReader
	writeRepo   JournalWriter
	kafkaWriter KafkaWriter
}

// NewJournalService creates a new JournalService.
func NewJournalService(readRepo JournalReader, writeRepo JournalWriter, kafkaWriter KafkaWriter) *JournalService {
	return &JournalService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a journal event to Kafka. Publishing is
// best-effort and never fails the request.
func (s *JournalService) publishEvent(ctx context.Context, journalID, userID uuid.UUID, operation string) {
	evt := models.JournalEvent{
		EventID:   uuid.NewString(),
		JournalID: journalID.String(),
		UserID:    userID.String(),
		Operation: operation,
		Timestamp: time.Now().Unix(),
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal journal event for Kafka", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish journal event to Kafka", "event_id", evt.EventID, "error", err)
	} else {
		logger.Log.Infow("Journal event published to Kafka", "event_id", evt.EventID, "operation", operation)
	}
}

// List returns all entries owned by the user, newest first.
func (s *JournalService) List(ctx context.Context, userID uuid.UUID) ([]models.JournalDB, error) {
	journals, err := s.readRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list journals", "userID", userID, "error", err)
		return nil, err
	}
	return journals, nil
}

// Create stores a new entry owned by the authenticated user. The owner
// always comes from the verified identity, never from the request body.
func (s *JournalService) Create(ctx context.Context, userID uuid.UUID, title, content, location string, images []string) (*models.JournalDB, error) {
	if title == "" || content == "" {
		return nil, ErrTitleAndContentRequired
	}
	if images == nil {
		images = []string{}
	}

	journal, err := s.writeRepo.Save(ctx, userID, title, content, location, images)
	if err != nil {
		logger.Log.Errorw("failed to save journal", "userID", userID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, journal.JournalID, userID, "create")

	return journal, nil
}

// Update applies the supplied fields to the entry matching both the
// journal id and the owner. An entry owned by another user resolves as
// ErrJournalNotFound.
func (s *JournalService) Update(ctx context.Context, userID, journalID uuid.UUID, upd models.JournalUpdate) (*models.JournalDB, error) {
	if upd.Title != nil && *upd.Title == "" {
		return nil, ErrTitleAndContentRequired
	}
	if upd.Content != nil && *upd.Content == "" {
		return nil, ErrTitleAndContentRequired
	}

	journal, err := s.writeRepo.Update(ctx, userID, journalID, upd)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJournalNotFound
		}
		logger.Log.Errorw("failed to update journal", "userID", userID, "journalID", journalID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, journalID, userID, "update")

	return journal, nil
}

// Delete removes the entry matching both the journal id and the owner.
// An entry owned by another user resolves as ErrJournalNotFound.
func (s *JournalService) Delete(ctx context.Context, userID, journalID uuid.UUID) error {
	if err := s.writeRepo.Delete(ctx, userID, journalID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrJournalNotFound
		}
		logger.Log.Errorw("failed to delete journal", "userID", userID, "journalID", journalID, "error", err)
		return err
	}

	s.publishEvent(ctx, journalID, userID, "delete")

	return nil
}
