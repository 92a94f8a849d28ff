package domain

import (
	"context"
	"fmt"
	"time"
)

// SyncContext carries the requesting user and organization explicitly into
// every pipeline component instead of relying on ambient session state.
type SyncContext struct {
	UserID string
	OrgID  *string
}

// MailProvider lists and fetches message metadata from the mail provider.
// Implementations must skip messages whose metadata fetch fails rather than
// failing the whole batch.
type MailProvider interface {
	FetchRecent(ctx context.Context, accessToken string, max int) ([]*Message, error)
}

// RefreshedToken is the provider's response to a token refresh
type RefreshedToken struct {
	AccessToken  string
	RefreshToken string // empty if the provider did not rotate it
	ExpiresAt    time.Time
}

// TokenRefresher exchanges a refresh token for a new access token
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (*RefreshedToken, error)
}

// CredentialError marks a token refresh failure for one account. The sync
// run records it as an account-level error and moves on; it never aborts
// the run.
type CredentialError struct {
	AccountEmail string
	Err          error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credential refresh failed for %s: %v", e.AccountEmail, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}
