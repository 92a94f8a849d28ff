package domain

import "time"

// EmailAccount is one connected mailbox with its stored OAuth credentials.
// Token fields are mutated by the token manager, LastSyncedAt by the sync run.
type EmailAccount struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	UserID         string     `json:"user_id" gorm:"index;not null"`
	OrgID          *string    `json:"org_id,omitempty" gorm:"index"`
	Provider       string     `json:"provider"` // "gmail"
	Email          string     `json:"email" gorm:"not null"`
	AccessToken    string     `json:"-" gorm:"type:text"`
	RefreshToken   string     `json:"-" gorm:"type:text"`
	TokenExpiresAt time.Time  `json:"token_expires_at"`
	SyncEnabled    bool       `json:"sync_enabled" gorm:"default:true"`
	LastSyncedAt   *time.Time `json:"last_synced_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (EmailAccount) TableName() string {
	return "email_accounts"
}
