package repository

import (
	"time"

	emailsyncdomain "crm-backend/internal/emailsync/domain"
)

// EmailAccountRepository defines the interface for connected-mailbox operations
type EmailAccountRepository interface {
	// ListSyncEnabled returns all sync-enabled accounts for a user
	ListSyncEnabled(userID string) ([]*emailsyncdomain.EmailAccount, error)
	// FindByID returns an account or (nil, nil) when not found
	FindByID(id string) (*emailsyncdomain.EmailAccount, error)
	// Create stores a newly connected mailbox
	Create(account *emailsyncdomain.EmailAccount) error
	// UpdateTokens persists a refreshed access token and its expiry
	UpdateTokens(id, accessToken, refreshToken string, expiresAt time.Time) error
	// UpdateLastSynced advances the account's sync watermark
	UpdateLastSynced(id string, syncedAt time.Time) error
}
