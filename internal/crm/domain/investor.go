package domain

import "time"

type Investor struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	OrgID     *string   `json:"org_id,omitempty" gorm:"index"`
	Name      string    `json:"name"`
	Firm      string    `json:"firm,omitempty"`
	Email     string    `json:"email,omitempty"`
	Stage     string    `json:"stage,omitempty" gorm:"size:30"`
	CheckSize float64   `json:"check_size,omitempty"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Investor) TableName() string {
	return "investors"
}
