package repository

import (
	"errors"
	"time"

	crmdomain "crm-backend/internal/crm/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scopeOwner restricts a query to one user and organization. A nil orgID
// means a personal workspace, matched as org_id IS NULL.
func scopeOwner(db *gorm.DB, userID string, orgID *string) *gorm.DB {
	q := db.Where("user_id = ?", userID)
	if orgID != nil {
		return q.Where("org_id = ?", *orgID)
	}
	return q.Where("org_id IS NULL")
}

// contactRepository implements ContactRepository interface
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new instance of contactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{
		db: db,
	}
}

func (r *contactRepository) FindByEmail(userID string, orgID *string, email string) (*crmdomain.Contact, error) {
	var contact crmdomain.Contact
	err := scopeOwner(r.db, userID, orgID).Where("email = ?", email).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) Create(contact *crmdomain.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	contact.CreatedAt = time.Now()
	contact.UpdatedAt = time.Now()
	return r.db.Create(contact).Error
}

func (r *contactRepository) List(userID string, orgID *string) ([]*crmdomain.Contact, error) {
	var contacts []*crmdomain.Contact
	err := scopeOwner(r.db, userID, orgID).Order("created_at DESC").Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}
