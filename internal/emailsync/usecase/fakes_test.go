package usecase

import (
	"context"
	"fmt"
	"time"

	crmdomain "crm-backend/internal/crm/domain"
	emailsyncdomain "crm-backend/internal/emailsync/domain"
	"crm-backend/pkg/ai"
)

// --- account repository fake ---

type fakeAccountRepo struct {
	accounts     []*emailsyncdomain.EmailAccount
	listErr      error
	tokenUpdates int
	lastSynced   map[string]time.Time
}

func newFakeAccountRepo(accounts ...*emailsyncdomain.EmailAccount) *fakeAccountRepo {
	return &fakeAccountRepo{accounts: accounts, lastSynced: map[string]time.Time{}}
}

func (r *fakeAccountRepo) ListSyncEnabled(userID string) ([]*emailsyncdomain.EmailAccount, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*emailsyncdomain.EmailAccount
	for _, a := range r.accounts {
		if a.UserID == userID && a.SyncEnabled {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAccountRepo) FindByID(id string) (*emailsyncdomain.EmailAccount, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Create(account *emailsyncdomain.EmailAccount) error {
	r.accounts = append(r.accounts, account)
	return nil
}

func (r *fakeAccountRepo) UpdateTokens(id, accessToken, refreshToken string, expiresAt time.Time) error {
	r.tokenUpdates++
	for _, a := range r.accounts {
		if a.ID == id {
			a.AccessToken = accessToken
			if refreshToken != "" {
				a.RefreshToken = refreshToken
			}
			a.TokenExpiresAt = expiresAt
		}
	}
	return nil
}

func (r *fakeAccountRepo) UpdateLastSynced(id string, syncedAt time.Time) error {
	r.lastSynced[id] = syncedAt
	return nil
}

// --- summary repository fake ---

type fakeSummaryRepo struct {
	byUser        map[string]map[string]*emailsyncdomain.EmailSummary
	existingCalls int
	createErr     error
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{byUser: map[string]map[string]*emailsyncdomain.EmailSummary{}}
}

func (r *fakeSummaryRepo) ExistingMessageIDs(userID string, messageIDs []string) (map[string]struct{}, error) {
	r.existingCalls++
	existing := map[string]struct{}{}
	for _, id := range messageIDs {
		if _, ok := r.byUser[userID][id]; ok {
			existing[id] = struct{}{}
		}
	}
	return existing, nil
}

func (r *fakeSummaryRepo) Create(summary *emailsyncdomain.EmailSummary) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byUser[summary.UserID]; !ok {
		r.byUser[summary.UserID] = map[string]*emailsyncdomain.EmailSummary{}
	}
	if _, dup := r.byUser[summary.UserID][summary.MessageID]; dup {
		return fmt.Errorf("duplicate summary for message %s", summary.MessageID)
	}
	r.byUser[summary.UserID][summary.MessageID] = summary
	return nil
}

func (r *fakeSummaryRepo) ListByUser(userID string, limit int) ([]*emailsyncdomain.EmailSummary, error) {
	var out []*emailsyncdomain.EmailSummary
	for _, s := range r.byUser[userID] {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSummaryRepo) CountByUser(userID string) (int64, error) {
	return int64(len(r.byUser[userID])), nil
}

func (r *fakeSummaryRepo) get(userID, messageID string) *emailsyncdomain.EmailSummary {
	return r.byUser[userID][messageID]
}

// --- provider fakes ---

type fakeRefresher struct {
	calls   int
	failFor map[string]error
	result  *emailsyncdomain.RefreshedToken
}

func (f *fakeRefresher) Refresh(ctx context.Context, refreshToken string) (*emailsyncdomain.RefreshedToken, error) {
	f.calls++
	if err, ok := f.failFor[refreshToken]; ok {
		return nil, err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &emailsyncdomain.RefreshedToken{
		AccessToken: "refreshed-" + refreshToken,
		ExpiresAt:   time.Now().Add(time.Hour),
	}, nil
}

type fakeProvider struct {
	calls    int
	messages []*emailsyncdomain.Message
	err      error
}

func (f *fakeProvider) FetchRecent(ctx context.Context, accessToken string, max int) ([]*emailsyncdomain.Message, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.messages) > max {
		return f.messages[:max], nil
	}
	return f.messages, nil
}

// --- summarizer fake ---

type fakeSummarizer struct {
	calls   int
	analyze func(input ai.EmailInput) (*ai.EmailInsight, error)
}

func (f *fakeSummarizer) AnalyzeEmail(ctx context.Context, input ai.EmailInput) (*ai.EmailInsight, error) {
	f.calls++
	if f.analyze != nil {
		return f.analyze(input)
	}
	return &ai.EmailInsight{
		Summary:     "summary of " + input.Subject,
		Sentiment:   ai.SentimentNeutral,
		ActionItems: []string{},
	}, nil
}

// --- CRM repository fakes ---

func orgMatches(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

type fakeContactRepo struct {
	contacts []*crmdomain.Contact
}

func (r *fakeContactRepo) FindByEmail(userID string, orgID *string, email string) (*crmdomain.Contact, error) {
	for _, c := range r.contacts {
		if c.UserID == userID && orgMatches(c.OrgID, orgID) && c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeContactRepo) Create(contact *crmdomain.Contact) error {
	r.contacts = append(r.contacts, contact)
	return nil
}

func (r *fakeContactRepo) List(userID string, orgID *string) ([]*crmdomain.Contact, error) {
	return r.contacts, nil
}

type fakeDealRepo struct {
	deal  *crmdomain.Deal
	calls int
}

func (r *fakeDealRepo) FindMostRecent(userID string, orgID *string) (*crmdomain.Deal, error) {
	r.calls++
	if r.deal != nil && r.deal.UserID == userID && orgMatches(r.deal.OrgID, orgID) {
		return r.deal, nil
	}
	return nil, nil
}

func (r *fakeDealRepo) Create(deal *crmdomain.Deal) error {
	r.deal = deal
	return nil
}

func (r *fakeDealRepo) List(userID string, orgID *string) ([]*crmdomain.Deal, error) {
	if r.deal == nil {
		return nil, nil
	}
	return []*crmdomain.Deal{r.deal}, nil
}

type fakeInvestorRepo struct {
	investor *crmdomain.Investor
	calls    int
}

func (r *fakeInvestorRepo) FindMostRecent(userID string, orgID *string) (*crmdomain.Investor, error) {
	r.calls++
	if r.investor != nil && r.investor.UserID == userID && orgMatches(r.investor.OrgID, orgID) {
		return r.investor, nil
	}
	return nil, nil
}

func (r *fakeInvestorRepo) Create(investor *crmdomain.Investor) error {
	r.investor = investor
	return nil
}

func (r *fakeInvestorRepo) List(userID string, orgID *string) ([]*crmdomain.Investor, error) {
	if r.investor == nil {
		return nil, nil
	}
	return []*crmdomain.Investor{r.investor}, nil
}
