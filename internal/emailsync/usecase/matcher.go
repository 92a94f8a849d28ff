package usecase

import (
	"strings"

	crmdomain "crm-backend/internal/crm/domain"
	crmrepo "crm-backend/internal/crm/repository"
	emailsyncdomain "crm-backend/internal/emailsync/domain"
)

// EntityMatches links one message to zero or more CRM entities. The three
// matches are computed independently; a message can carry all of them.
type EntityMatches struct {
	Contact  *crmdomain.Contact
	Deal     *crmdomain.Deal
	Investor *crmdomain.Investor
}

// MatchStrategy resolves a message's sender and text to CRM entities.
// Kept as an interface so the keyword heuristic can be swapped for a
// better-scoped algorithm without touching the orchestrator.
type MatchStrategy interface {
	Match(sctx emailsyncdomain.SyncContext, sender, subject, preview string) (*EntityMatches, error)
}

var dealKeywords = []string{"deal", "proposal", "contract", "quote", "order", "sale"}

var investorKeywords = []string{"invest", "funding", "round", "capital", "valuation", "pitch"}

// keywordMatcher is the default MatchStrategy: exact contact-by-email, and
// a coarse keyword heuristic that attaches the most recently created deal or
// investor when the message text mentions one of the trigger words. The
// heuristic does not inspect the deal's own title or participants, so it
// can attach unrelated records; it is a placeholder strategy, not a
// correctness guarantee.
type keywordMatcher struct {
	contactRepo  crmrepo.ContactRepository
	dealRepo     crmrepo.DealRepository
	investorRepo crmrepo.InvestorRepository
}

func NewKeywordMatcher(contactRepo crmrepo.ContactRepository, dealRepo crmrepo.DealRepository, investorRepo crmrepo.InvestorRepository) MatchStrategy {
	return &keywordMatcher{
		contactRepo:  contactRepo,
		dealRepo:     dealRepo,
		investorRepo: investorRepo,
	}
}

func (m *keywordMatcher) Match(sctx emailsyncdomain.SyncContext, sender, subject, preview string) (*EntityMatches, error) {
	matches := &EntityMatches{}

	contact, err := m.contactRepo.FindByEmail(sctx.UserID, sctx.OrgID, sender)
	if err != nil {
		return nil, err
	}
	matches.Contact = contact

	text := strings.ToLower(subject + " " + preview)

	if containsAny(text, dealKeywords) {
		deal, err := m.dealRepo.FindMostRecent(sctx.UserID, sctx.OrgID)
		if err != nil {
			return nil, err
		}
		matches.Deal = deal
	}

	if containsAny(text, investorKeywords) {
		investor, err := m.investorRepo.FindMostRecent(sctx.UserID, sctx.OrgID)
		if err != nil {
			return nil, err
		}
		matches.Investor = investor
	}

	return matches, nil
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
