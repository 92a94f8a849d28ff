package domain

import "time"

// Sentiment classifies the tone of a summarized email
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	SentimentUrgent   Sentiment = "urgent"
)

// IsValid checks if the sentiment is one of the enumerated values
func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative, SentimentUrgent:
		return true
	}
	return false
}

// PipelineStage is a suggested CRM pipeline stage for a deal-related email
type PipelineStage string

const (
	StageLead        PipelineStage = "lead"
	StageQualified   PipelineStage = "qualified"
	StageProposal    PipelineStage = "proposal"
	StageNegotiation PipelineStage = "negotiation"
	StageClosedWon   PipelineStage = "closed_won"
	StageClosedLost  PipelineStage = "closed_lost"
)

// IsValid checks if the stage is one of the enumerated values
func (p PipelineStage) IsValid() bool {
	switch p {
	case StageLead, StageQualified, StageProposal, StageNegotiation, StageClosedWon, StageClosedLost:
		return true
	}
	return false
}

// EmailSummary is the persisted CRM-facing result of processing one message.
// (user_id, message_id) is unique; the dedup filter checks it before insert
// so the summarization service is never re-called for a seen message.
type EmailSummary struct {
	ID             string         `json:"id" gorm:"primaryKey"`
	UserID         string         `json:"user_id" gorm:"uniqueIndex:idx_user_message;not null"`
	OrgID          *string        `json:"org_id,omitempty" gorm:"index"`
	AccountID      string         `json:"account_id" gorm:"index;not null"`
	MessageID      string         `json:"message_id" gorm:"uniqueIndex:idx_user_message;not null"`
	ThreadID       string         `json:"thread_id"`
	Subject        string         `json:"subject"`
	Sender         string         `json:"sender"` // normalized address
	Recipients     string         `json:"recipients" gorm:"type:text"` // comma-joined
	Date           time.Time      `json:"date"`
	Preview        string         `json:"preview" gorm:"type:text"`
	Summary        string         `json:"summary" gorm:"type:text"`
	Sentiment      Sentiment      `json:"sentiment" gorm:"size:20;default:'neutral'"`
	ActionItems    string         `json:"action_items" gorm:"type:text"` // JSON-encoded list
	SuggestedStage *PipelineStage `json:"suggested_stage,omitempty" gorm:"size:20"`
	ContactID      *string        `json:"contact_id,omitempty" gorm:"index"`
	DealID         *string        `json:"deal_id,omitempty"`
	InvestorID     *string        `json:"investor_id,omitempty"`
	IsRead         bool           `json:"is_read" gorm:"default:false"`
	CreatedAt      time.Time      `json:"created_at"`
}

// TableName specifies the table name for GORM
func (EmailSummary) TableName() string {
	return "email_summaries"
}
