package repository

import (
	"time"

	emailsyncdomain "crm-backend/internal/emailsync/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// emailSummaryRepository implements EmailSummaryRepository interface
type emailSummaryRepository struct {
	db *gorm.DB
}

// NewEmailSummaryRepository creates a new instance of emailSummaryRepository
func NewEmailSummaryRepository(db *gorm.DB) EmailSummaryRepository {
	return &emailSummaryRepository{
		db: db,
	}
}

// ExistingMessageIDs returns the subset of messageIDs that already have a
// summary for this user, as a set
func (r *emailSummaryRepository) ExistingMessageIDs(userID string, messageIDs []string) (map[string]struct{}, error) {
	if len(messageIDs) == 0 {
		return map[string]struct{}{}, nil
	}

	var ids []string
	err := r.db.Model(&emailsyncdomain.EmailSummary{}).
		Where("user_id = ? AND message_id IN ?", userID, messageIDs).
		Pluck("message_id", &ids).Error
	if err != nil {
		return nil, err
	}

	existing := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		existing[id] = struct{}{}
	}
	return existing, nil
}

func (r *emailSummaryRepository) Create(summary *emailsyncdomain.EmailSummary) error {
	if summary.ID == "" {
		summary.ID = uuid.New().String()
	}
	summary.CreatedAt = time.Now()
	return r.db.Create(summary).Error
}

func (r *emailSummaryRepository) ListByUser(userID string, limit int) ([]*emailsyncdomain.EmailSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var summaries []*emailsyncdomain.EmailSummary
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *emailSummaryRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&emailsyncdomain.EmailSummary{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
