package usecase

import (
	"context"
	"time"

	emailsyncdomain "crm-backend/internal/emailsync/domain"
	"crm-backend/internal/emailsync/repository"
)

// refreshMargin is how close to expiry a stored access token may get before
// a sync run refreshes it
const refreshMargin = 5 * time.Minute

// TokenManager hands out a valid access token for an account, refreshing
// through the provider at most once per run. A failed refresh leaves the
// stored token and expiry untouched.
type TokenManager struct {
	refresher   emailsyncdomain.TokenRefresher
	accountRepo repository.EmailAccountRepository
}

func NewTokenManager(refresher emailsyncdomain.TokenRefresher, accountRepo repository.EmailAccountRepository) *TokenManager {
	return &TokenManager{
		refresher:   refresher,
		accountRepo: accountRepo,
	}
}

// EnsureToken returns an access token usable for the remainder of the run.
// On refresh failure it returns a *CredentialError so the caller can record
// one account-level error and move on. There is no retry: retrying
// immediately against a revoked grant cannot succeed.
func (m *TokenManager) EnsureToken(ctx context.Context, account *emailsyncdomain.EmailAccount) (string, error) {
	if time.Until(account.TokenExpiresAt) > refreshMargin {
		return account.AccessToken, nil
	}

	refreshed, err := m.refresher.Refresh(ctx, account.RefreshToken)
	if err != nil {
		return "", &emailsyncdomain.CredentialError{AccountEmail: account.Email, Err: err}
	}

	if err := m.accountRepo.UpdateTokens(account.ID, refreshed.AccessToken, refreshed.RefreshToken, refreshed.ExpiresAt); err != nil {
		return "", &emailsyncdomain.CredentialError{AccountEmail: account.Email, Err: err}
	}

	account.AccessToken = refreshed.AccessToken
	account.TokenExpiresAt = refreshed.ExpiresAt
	if refreshed.RefreshToken != "" {
		account.RefreshToken = refreshed.RefreshToken
	}

	return refreshed.AccessToken, nil
}
