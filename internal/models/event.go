package models

// JournalEvent is published to Kafka after every journal mutation.
type JournalEvent struct {
	EventID   string `json:"event_id"`   // Unique event id, also the message key
	JournalID string `json:"journal_id"` // Affected entry
	UserID    string `json:"user_id"`    // Owner
	Operation string `json:"operation"`  // "create", "update" or "delete"
	Timestamp int64  `json:"timestamp"`  // Unix seconds
}
