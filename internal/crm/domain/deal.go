package domain

import "time"

type Deal struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	OrgID     *string   `json:"org_id,omitempty" gorm:"index"`
	Title     string    `json:"title"`
	Value     float64   `json:"value"`
	Stage     string    `json:"stage" gorm:"size:20;default:'lead'"`
	ContactID *string   `json:"contact_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Deal) TableName() string {
	return "deals"
}
