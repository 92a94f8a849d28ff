package repository

import (
	crmdomain "crm-backend/internal/crm/domain"
)

// ContactRepository defines the interface for contact operations
type ContactRepository interface {
	// FindByEmail does an exact, case-sensitive lookup scoped to user/org.
	// Returns (nil, nil) when no contact matches.
	FindByEmail(userID string, orgID *string, email string) (*crmdomain.Contact, error)
	Create(contact *crmdomain.Contact) error
	List(userID string, orgID *string) ([]*crmdomain.Contact, error)
}

// DealRepository defines the interface for deal operations
type DealRepository interface {
	// FindMostRecent returns the most recently created deal for user/org,
	// or (nil, nil) when there are none
	FindMostRecent(userID string, orgID *string) (*crmdomain.Deal, error)
	Create(deal *crmdomain.Deal) error
	List(userID string, orgID *string) ([]*crmdomain.Deal, error)
}

// InvestorRepository defines the interface for investor operations
type InvestorRepository interface {
	// FindMostRecent returns the most recently created investor for user/org,
	// or (nil, nil) when there are none
	FindMostRecent(userID string, orgID *string) (*crmdomain.Investor, error)
	Create(investor *crmdomain.Investor) error
	List(userID string, orgID *string) ([]*crmdomain.Investor, error)
}
