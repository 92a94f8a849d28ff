package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	crmdomain "crm-backend/internal/crm/domain"
	emailsyncdomain "crm-backend/internal/emailsync/domain"
	"crm-backend/pkg/ai"
)

type syncFixture struct {
	accountRepo *fakeAccountRepo
	summaryRepo *fakeSummaryRepo
	refresher   *fakeRefresher
	provider    *fakeProvider
	summarizer  *fakeSummarizer
	contacts    *fakeContactRepo
	uc          SyncUsecase
}

func newSyncFixture(accounts ...*emailsyncdomain.EmailAccount) *syncFixture {
	f := &syncFixture{
		accountRepo: newFakeAccountRepo(accounts...),
		summaryRepo: newFakeSummaryRepo(),
		refresher:   &fakeRefresher{},
		provider:    &fakeProvider{},
		summarizer:  &fakeSummarizer{},
		contacts:    &fakeContactRepo{},
	}
	matcher := NewKeywordMatcher(f.contacts, &fakeDealRepo{}, &fakeInvestorRepo{})
	tokens := NewTokenManager(f.refresher, f.accountRepo)
	f.uc = NewSyncUsecase(f.accountRepo, f.summaryRepo, tokens, f.provider, matcher, f.summarizer)
	return f
}

func validAccount(id, userID, email string) *emailsyncdomain.EmailAccount {
	return &emailsyncdomain.EmailAccount{
		ID:             id,
		UserID:         userID,
		Provider:       "gmail",
		Email:          email,
		AccessToken:    "access-" + id,
		RefreshToken:   "refresh-" + id,
		TokenExpiresAt: time.Now().Add(time.Hour),
		SyncEnabled:    true,
	}
}

func msg(id, from, subject string) *emailsyncdomain.Message {
	return &emailsyncdomain.Message{
		ProviderID: id,
		ThreadID:   "thread-" + id,
		Subject:    subject,
		From:       from,
		To:         []string{"me@example.com"},
		Date:       time.Now(),
		Preview:    "preview of " + id,
	}
}

func TestRunSyncNoAccounts(t *testing.T) {
	f := newSyncFixture()

	result := f.uc.RunSync(context.Background(), emailsyncdomain.SyncContext{UserID: "user-1"})
	if result.TotalMessages != 0 || result.NewSummaries != 0 || result.TotalErrors != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
	if len(result.Accounts) != 0 {
		t.Errorf("expected no account breakdown, got %d", len(result.Accounts))
	}
	if f.provider.calls != 0 {
		t.Error("provider should not be called with zero accounts")
	}
}

func TestRunSyncEndToEnd(t *testing.T) {
	// One account, valid token, 3 unseen messages, one with an unparsable
	// sender, one from a known contact
	f := newSyncFixture(validAccount("acc-1", "user-1", "me@example.com"))
	f.contacts.contacts = []*crmdomain.Contact{
		{ID: "contact-1", UserID: "user-1", Name: "Jane Doe", Email: "jane@example.com"},
	}
	f.provider.messages = []*emailsyncdomain.Message{
		msg("m1", "Jane Doe <jane@example.com>", "catching up"),
		msg("m2", "not an address", "mystery mail"),
		msg("m3", "bob@example.com", "lunch?"),
	}

	result := f.uc.RunSync(context.Background(), emailsyncdomain.SyncContext{UserID: "user-1"})

	// Fetched counts all three; the unparsable sender is a silent skip
	if result.TotalMessages != 3 {
		t.Errorf("total messages = %d, want 3", result.TotalMessages)
	}
	if result.NewSummaries != 2 {
		t.Errorf("new summaries = %d, want 2", result.NewSummaries)
	}
	if result.TotalErrors != 0 {
		t.Errorf("errors = %d, want 0", result.TotalErrors)
	}
	if len(result.Accounts) != 1 || result.Accounts[0].Email != "me@example.com" {
		t.Fatalf("account breakdown = %+v", result.Accounts)
	}

	s1 := f.summaryRepo.get("user-1", "m1")
	if s1 == nil {
		t.Fatal("no summary persisted for m1")
	}
	if s1.ContactID == nil || *s1.ContactID != "contact-1" {
		t.Errorf("m1 contact = %v, want contact-1", s1.ContactID)
	}
	if s1.Sender != "jane@example.com" {
		t.Errorf("m1 sender = %q, want normalized address", s1.Sender)
	}

	s3 := f.summaryRepo.get("user-1", "m3")
	if s3 == nil {
		t.Fatal("no summary persisted for m3")
	}
	if s3.ContactID != nil {
		t.Errorf("m3 contact = %v, want none", s3.ContactID)
	}

	if f.summaryRepo.get("user-1", "m2") != nil {
		t.Error("unparsable sender message must not be persisted")
	}

	if _, ok := f.accountRepo.lastSynced["acc-1"]; !ok {
		t.Error("last-synced watermark not advanced")
	}
}

func TestRunSyncIdempotent(t *testing.T) {
	f := newSyncFixture(validAccount("acc-1", "user-1", "me@example.com"))
	f.provider.messages = []*emailsyncdomain.Message{
		msg("m1", "a@example.com", "one"),
		msg("m2", "b@example.com", "two"),
	}
	sctx := emailsyncdomain.SyncContext{UserID: "user-1"}

	first := f.uc.RunSync(context.Background(), sctx)
	if first.NewSummaries != 2 {
		t.Fatalf("first run new summaries = %d, want 2", first.NewSummaries)
	}
	countAfterFirst, _ := f.summaryRepo.CountByUser("user-1")
	summarizerCalls := f.summarizer.calls

	second := f.uc.RunSync(context.Background(), sctx)
	if second.NewSummaries != 0 {
		t.Errorf("second run new summaries = %d, want 0", second.NewSummaries)
	}
	if second.TotalMessages != 2 {
		t.Errorf("second run still fetches, total = %d, want 2", second.TotalMessages)
	}
	if second.TotalErrors != 0 {
		t.Errorf("second run errors = %d, want 0", second.TotalErrors)
	}

	countAfterSecond, _ := f.summaryRepo.CountByUser("user-1")
	if countAfterFirst != countAfterSecond {
		t.Errorf("summary count changed across runs: %d -> %d", countAfterFirst, countAfterSecond)
	}
	// Dedup must prevent re-calling the summarization service
	if f.summarizer.calls != summarizerCalls {
		t.Errorf("summarizer re-called for already-seen messages: %d -> %d", summarizerCalls, f.summarizer.calls)
	}
}

func TestRunSyncAccountIsolation(t *testing.T) {
	accountA := validAccount("acc-a", "user-1", "a@example.com")
	accountA.TokenExpiresAt = time.Now() // forces a refresh
	accountB := validAccount("acc-b", "user-1", "b@example.com")

	f := newSyncFixture(accountA, accountB)
	f.refresher.failFor = map[string]error{"refresh-acc-a": errors.New("invalid_grant")}
	f.provider.messages = []*emailsyncdomain.Message{
		msg("m1", "x@example.com", "one"),
		msg("m2", "y@example.com", "two"),
	}

	result := f.uc.RunSync(context.Background(), emailsyncdomain.SyncContext{UserID: "user-1"})

	if result.TotalErrors != 1 {
		t.Errorf("total errors = %d, want exactly 1 (account A)", result.TotalErrors)
	}
	if len(result.Accounts) != 2 {
		t.Fatalf("account breakdown entries = %d, want 2", len(result.Accounts))
	}

	var a, b *emailsyncdomain.AccountSyncResult
	for i := range result.Accounts {
		switch result.Accounts[i].Email {
		case "a@example.com":
			a = &result.Accounts[i]
		case "b@example.com":
			b = &result.Accounts[i]
		}
	}
	if a == nil || b == nil {
		t.Fatalf("missing per-account entries: %+v", result.Accounts)
	}
	if a.Errors != 1 || a.MessagesFetched != 0 || a.NewSummaries != 0 {
		t.Errorf("account A = %+v, want one error and nothing else", *a)
	}
	if b.Errors != 0 || b.MessagesFetched != 2 || b.NewSummaries != 2 {
		t.Errorf("account B = %+v, want full counts", *b)
	}

	if _, ok := f.accountRepo.lastSynced["acc-a"]; ok {
		t.Error("failed account must not advance its watermark")
	}
	if _, ok := f.accountRepo.lastSynced["acc-b"]; !ok {
		t.Error("healthy account must advance its watermark")
	}
}

func TestRunSyncMessageIsolation(t *testing.T) {
	f := newSyncFixture(validAccount("acc-1", "user-1", "me@example.com"))
	f.provider.messages = []*emailsyncdomain.Message{
		msg("m1", "a@example.com", "boom"),
		msg("m2", "b@example.com", "fine"),
	}
	f.summarizer.analyze = func(input ai.EmailInput) (*ai.EmailInsight, error) {
		if input.Subject == "boom" {
			return nil, errors.New("model unavailable")
		}
		return &ai.EmailInsight{Summary: "ok", Sentiment: ai.SentimentNeutral, ActionItems: []string{}}, nil
	}

	result := f.uc.RunSync(context.Background(), emailsyncdomain.SyncContext{UserID: "user-1"})

	if result.TotalErrors != 1 {
		t.Errorf("total errors = %d, want 1", result.TotalErrors)
	}
	if result.NewSummaries != 1 {
		t.Errorf("new summaries = %d, want 1 (the message after the failure)", result.NewSummaries)
	}
	if f.summaryRepo.get("user-1", "m2") == nil {
		t.Error("message after the failing one was not processed")
	}
	// Errored messages still advance the account watermark
	if _, ok := f.accountRepo.lastSynced["acc-1"]; !ok {
		t.Error("watermark not advanced after partial success")
	}
}

func TestRunSyncFallbackSummaryStillPersists(t *testing.T) {
	f := newSyncFixture(validAccount("acc-1", "user-1", "me@example.com"))
	f.provider.messages = []*emailsyncdomain.Message{msg("m1", "a@example.com", "hello")}
	f.summarizer.analyze = func(input ai.EmailInput) (*ai.EmailInsight, error) {
		return ai.FallbackInsight("The model said something unstructured."), nil
	}

	result := f.uc.RunSync(context.Background(), emailsyncdomain.SyncContext{UserID: "user-1"})
	if result.TotalErrors != 0 {
		t.Errorf("fallback output is not an error, got %d errors", result.TotalErrors)
	}
	s := f.summaryRepo.get("user-1", "m1")
	if s == nil {
		t.Fatal("fallback summary not persisted")
	}
	if s.Sentiment != emailsyncdomain.SentimentNeutral {
		t.Errorf("fallback sentiment = %q, want neutral", s.Sentiment)
	}
	if s.SuggestedStage != nil {
		t.Error("fallback must not suggest a stage")
	}
}

func TestNewMessageIDs(t *testing.T) {
	f := newSyncFixture()
	f.summaryRepo.byUser["user-1"] = map[string]*emailsyncdomain.EmailSummary{
		"m2": {MessageID: "m2", UserID: "user-1"},
	}

	fresh, err := f.uc.NewMessageIDs("user-1", []string{"m1", "m2", "m3"})
	if err != nil {
		t.Fatalf("NewMessageIDs: %v", err)
	}
	if len(fresh) != 2 || fresh[0] != "m1" || fresh[1] != "m3" {
		t.Errorf("fresh = %v, want [m1 m3] in order", fresh)
	}
}

func TestNewMessageIDsEmptyCandidates(t *testing.T) {
	f := newSyncFixture()

	fresh, err := f.uc.NewMessageIDs("user-1", nil)
	if err != nil {
		t.Fatalf("NewMessageIDs: %v", err)
	}
	if len(fresh) != 0 {
		t.Errorf("fresh = %v, want empty", fresh)
	}
	if f.summaryRepo.existingCalls != 0 {
		t.Error("empty candidate set must not hit the repository")
	}
}

func TestRunSyncFetchFailure(t *testing.T) {
	f := newSyncFixture(validAccount("acc-1", "user-1", "me@example.com"))
	f.provider.err = errors.New("rate limited")

	result := f.uc.RunSync(context.Background(), emailsyncdomain.SyncContext{UserID: "user-1"})
	if result.TotalErrors != 1 {
		t.Errorf("total errors = %d, want 1", result.TotalErrors)
	}
	if result.TotalMessages != 0 || result.NewSummaries != 0 {
		t.Errorf("unexpected counts: %+v", result)
	}
}
