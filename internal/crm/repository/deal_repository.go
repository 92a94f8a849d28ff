package repository

import (
	"errors"
	"time"

	crmdomain "crm-backend/internal/crm/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// dealRepository implements DealRepository interface
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new instance of dealRepository
func NewDealRepository(db *gorm.DB) DealRepository {
	return &dealRepository{
		db: db,
	}
}

func (r *dealRepository) FindMostRecent(userID string, orgID *string) (*crmdomain.Deal, error) {
	var deal crmdomain.Deal
	err := scopeOwner(r.db, userID, orgID).Order("created_at DESC").First(&deal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deal, nil
}

func (r *dealRepository) Create(deal *crmdomain.Deal) error {
	if deal.ID == "" {
		deal.ID = uuid.New().String()
	}
	deal.CreatedAt = time.Now()
	deal.UpdatedAt = time.Now()
	return r.db.Create(deal).Error
}

func (r *dealRepository) List(userID string, orgID *string) ([]*crmdomain.Deal, error) {
	var deals []*crmdomain.Deal
	err := scopeOwner(r.db, userID, orgID).Order("created_at DESC").Find(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}
