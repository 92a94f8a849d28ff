package repository

import (
	"errors"
	"time"

	emailsyncdomain "crm-backend/internal/emailsync/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// emailAccountRepository implements EmailAccountRepository interface
type emailAccountRepository struct {
	db *gorm.DB
}

// NewEmailAccountRepository creates a new instance of emailAccountRepository
func NewEmailAccountRepository(db *gorm.DB) EmailAccountRepository {
	return &emailAccountRepository{
		db: db,
	}
}

func (r *emailAccountRepository) ListSyncEnabled(userID string) ([]*emailsyncdomain.EmailAccount, error) {
	var accounts []*emailsyncdomain.EmailAccount
	err := r.db.Where("user_id = ? AND sync_enabled = ?", userID, true).Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *emailAccountRepository) FindByID(id string) (*emailsyncdomain.EmailAccount, error) {
	var account emailsyncdomain.EmailAccount
	err := r.db.Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *emailAccountRepository) Create(account *emailsyncdomain.EmailAccount) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	return r.db.Create(account).Error
}

func (r *emailAccountRepository) UpdateTokens(id, accessToken, refreshToken string, expiresAt time.Time) error {
	updates := map[string]interface{}{
		"access_token":     accessToken,
		"token_expires_at": expiresAt,
		"updated_at":       time.Now(),
	}
	if refreshToken != "" {
		updates["refresh_token"] = refreshToken
	}
	return r.db.Model(&emailsyncdomain.EmailAccount{}).Where("id = ?", id).Updates(updates).Error
}

func (r *emailAccountRepository) UpdateLastSynced(id string, syncedAt time.Time) error {
	return r.db.Model(&emailsyncdomain.EmailAccount{}).Where("id = ?", id).Updates(map[string]interface{}{
		"last_synced_at": syncedAt,
		"updated_at":     time.Now(),
	}).Error
}
