package repository

import (
	emailsyncdomain "crm-backend/internal/emailsync/domain"
)

// EmailSummaryRepository defines the interface for persisted summary operations
type EmailSummaryRepository interface {
	// ExistingMessageIDs returns which of the candidate provider message IDs
	// already have a summary for this user. Single IN query; an empty
	// candidate set returns an empty map without touching the database.
	ExistingMessageIDs(userID string, messageIDs []string) (map[string]struct{}, error)
	// Create inserts a new summary record
	Create(summary *emailsyncdomain.EmailSummary) error
	// ListByUser returns summaries for a user, newest first
	ListByUser(userID string, limit int) ([]*emailsyncdomain.EmailSummary, error)
	// CountByUser returns the number of summaries stored for a user
	CountByUser(userID string) (int64, error)
}
