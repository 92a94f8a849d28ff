package repository

import (
	"errors"
	"time"

	crmdomain "crm-backend/internal/crm/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// investorRepository implements InvestorRepository interface
type investorRepository struct {
	db *gorm.DB
}

// NewInvestorRepository creates a new instance of investorRepository
func NewInvestorRepository(db *gorm.DB) InvestorRepository {
	return &investorRepository{
		db: db,
	}
}

func (r *investorRepository) FindMostRecent(userID string, orgID *string) (*crmdomain.Investor, error) {
	var investor crmdomain.Investor
	err := scopeOwner(r.db, userID, orgID).Order("created_at DESC").First(&investor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &investor, nil
}

func (r *investorRepository) Create(investor *crmdomain.Investor) error {
	if investor.ID == "" {
		investor.ID = uuid.New().String()
	}
	investor.CreatedAt = time.Now()
	investor.UpdatedAt = time.Now()
	return r.db.Create(investor).Error
}

func (r *investorRepository) List(userID string, orgID *string) ([]*crmdomain.Investor, error) {
	var investors []*crmdomain.Investor
	err := scopeOwner(r.db, userID, orgID).Order("created_at DESC").Find(&investors).Error
	if err != nil {
		return nil, err
	}
	return investors, nil
}
