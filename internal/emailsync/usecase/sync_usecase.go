package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	emailsyncdomain "crm-backend/internal/emailsync/domain"
	"crm-backend/internal/emailsync/repository"
	"crm-backend/pkg/ai"
)

// syncBatchSize caps how many messages one run pulls per account
const syncBatchSize = 50

// syncUsecase implements SyncUsecase interface
type syncUsecase struct {
	accountRepo repository.EmailAccountRepository
	summaryRepo repository.EmailSummaryRepository
	tokens      *TokenManager
	provider    emailsyncdomain.MailProvider
	matcher     MatchStrategy
	summarizer  ai.Summarizer
}

// NewSyncUsecase creates a new instance of syncUsecase
func NewSyncUsecase(
	accountRepo repository.EmailAccountRepository,
	summaryRepo repository.EmailSummaryRepository,
	tokens *TokenManager,
	provider emailsyncdomain.MailProvider,
	matcher MatchStrategy,
	summarizer ai.Summarizer,
) SyncUsecase {
	return &syncUsecase{
		accountRepo: accountRepo,
		summaryRepo: summaryRepo,
		tokens:      tokens,
		provider:    provider,
		matcher:     matcher,
		summarizer:  summarizer,
	}
}

// RunSync processes every sync-enabled account for the caller in sequence.
// One broken account never aborts the run, and one broken message never
// aborts its account's batch; everything that goes wrong becomes a count.
func (u *syncUsecase) RunSync(ctx context.Context, sctx emailsyncdomain.SyncContext) *emailsyncdomain.SyncResult {
	result := &emailsyncdomain.SyncResult{Accounts: []emailsyncdomain.AccountSyncResult{}}

	accounts, err := u.accountRepo.ListSyncEnabled(sctx.UserID)
	if err != nil {
		log.Printf("[Sync] Failed to list accounts for user %s: %v", sctx.UserID, err)
		result.TotalErrors++
		return result
	}

	for _, account := range accounts {
		result.AddAccount(u.syncAccount(ctx, sctx, account))
	}

	return result
}

func (u *syncUsecase) syncAccount(ctx context.Context, sctx emailsyncdomain.SyncContext, account *emailsyncdomain.EmailAccount) emailsyncdomain.AccountSyncResult {
	acc := emailsyncdomain.AccountSyncResult{Email: account.Email}

	token, err := u.tokens.EnsureToken(ctx, account)
	if err != nil {
		log.Printf("[Sync] %v", err)
		acc.Errors++
		return acc
	}

	messages, err := u.provider.FetchRecent(ctx, token, syncBatchSize)
	if err != nil {
		log.Printf("[Sync] Fetch failed for %s: %v", account.Email, err)
		acc.Errors++
		return acc
	}

	// Fetched counts every message whose metadata came back, including ones
	// later dropped for an unparsable sender
	acc.MessagesFetched = len(messages)

	candidates := make([]string, len(messages))
	for i, msg := range messages {
		candidates[i] = msg.ProviderID
	}

	newIDs, err := u.NewMessageIDs(sctx.UserID, candidates)
	if err != nil {
		log.Printf("[Sync] Dedup lookup failed for %s: %v", account.Email, err)
		acc.Errors++
		return acc
	}
	isNew := make(map[string]struct{}, len(newIDs))
	for _, id := range newIDs {
		isNew[id] = struct{}{}
	}

	for _, msg := range messages {
		if _, ok := isNew[msg.ProviderID]; !ok {
			continue
		}
		created, err := u.processMessage(ctx, sctx, account, msg)
		if err != nil {
			log.Printf("[Sync] Message %s failed for %s: %v", msg.ProviderID, account.Email, err)
			acc.Errors++
			continue
		}
		if created {
			acc.NewSummaries++
		}
	}

	// Partial success still advances the watermark; catch-up on the next run
	// relies on the per-message dedup check, not on this timestamp
	if err := u.accountRepo.UpdateLastSynced(account.ID, time.Now()); err != nil {
		log.Printf("[Sync] Failed to update last_synced_at for %s: %v", account.Email, err)
		acc.Errors++
	}

	return acc
}

// processMessage matches, summarizes, and persists one new message.
// Returns (false, nil) when the message is skipped for an unparsable sender.
func (u *syncUsecase) processMessage(ctx context.Context, sctx emailsyncdomain.SyncContext, account *emailsyncdomain.EmailAccount, msg *emailsyncdomain.Message) (bool, error) {
	sender, ok := emailsyncdomain.ExtractAddress(msg.From)
	if !ok {
		return false, nil
	}

	matches, err := u.matcher.Match(sctx, sender, msg.Subject, msg.Preview)
	if err != nil {
		return false, err
	}

	input := ai.EmailInput{
		Subject: msg.Subject,
		Preview: msg.Preview,
		Sender:  sender,
	}
	if matches.Contact != nil {
		input.ContactName = matches.Contact.Name
	}
	if matches.Deal != nil {
		input.DealTitle = matches.Deal.Title
	}

	insight, err := u.summarizer.AnalyzeEmail(ctx, input)
	if err != nil {
		return false, err
	}

	summary := &emailsyncdomain.EmailSummary{
		UserID:     sctx.UserID,
		OrgID:      sctx.OrgID,
		AccountID:  account.ID,
		MessageID:  msg.ProviderID,
		ThreadID:   msg.ThreadID,
		Subject:    msg.Subject,
		Sender:     sender,
		Recipients: strings.Join(msg.To, ", "),
		Date:       msg.Date,
		Preview:    msg.Preview,
		Summary:    insight.Summary,
		Sentiment:  emailsyncdomain.Sentiment(insight.Sentiment),
	}
	if !summary.Sentiment.IsValid() {
		summary.Sentiment = emailsyncdomain.SentimentNeutral
	}

	if items, err := json.Marshal(insight.ActionItems); err == nil {
		summary.ActionItems = string(items)
	}
	if insight.SuggestedStage != "" {
		stage := emailsyncdomain.PipelineStage(insight.SuggestedStage)
		if stage.IsValid() {
			summary.SuggestedStage = &stage
		}
	}
	if matches.Contact != nil {
		summary.ContactID = &matches.Contact.ID
	}
	if matches.Deal != nil {
		summary.DealID = &matches.Deal.ID
	}
	if matches.Investor != nil {
		summary.InvestorID = &matches.Investor.ID
	}

	if err := u.summaryRepo.Create(summary); err != nil {
		return false, err
	}
	return true, nil
}

// NewMessageIDs is the dedup filter: candidates minus the IDs that already
// have a summary for this user, preserving candidate order. An empty
// candidate set short-circuits without a repository call.
func (u *syncUsecase) NewMessageIDs(userID string, candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return []string{}, nil
	}

	existing, err := u.summaryRepo.ExistingMessageIDs(userID, candidates)
	if err != nil {
		return nil, err
	}

	fresh := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if _, seen := existing[id]; !seen {
			fresh = append(fresh, id)
		}
	}
	return fresh, nil
}

func (u *syncUsecase) ListSummaries(userID string, limit int) ([]*emailsyncdomain.EmailSummary, error) {
	return u.summaryRepo.ListByUser(userID, limit)
}

func (u *syncUsecase) ConnectAccount(account *emailsyncdomain.EmailAccount) error {
	return u.accountRepo.Create(account)
}

func (u *syncUsecase) ListAccounts(userID string) ([]*emailsyncdomain.EmailAccount, error) {
	return u.accountRepo.ListSyncEnabled(userID)
}
