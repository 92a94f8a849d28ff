package usecase

import (
	"context"

	emailsyncdomain "crm-backend/internal/emailsync/domain"
)

// SyncUsecase drives the inbound email pipeline
type SyncUsecase interface {
	// RunSync processes all sync-enabled accounts for the caller. It always
	// returns a result; account- and message-level failures surface only as
	// counts inside it.
	RunSync(ctx context.Context, sctx emailsyncdomain.SyncContext) *emailsyncdomain.SyncResult
	// NewMessageIDs returns the candidate IDs with no existing summary for
	// the user, preserving input order
	NewMessageIDs(userID string, candidates []string) ([]string, error)
	// ListSummaries returns persisted summaries for the read surface
	ListSummaries(userID string, limit int) ([]*emailsyncdomain.EmailSummary, error)
	// ConnectAccount stores a newly connected mailbox
	ConnectAccount(account *emailsyncdomain.EmailAccount) error
	// ListAccounts returns the caller's sync-enabled accounts
	ListAccounts(userID string) ([]*emailsyncdomain.EmailAccount, error)
}
