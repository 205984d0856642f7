package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"intranet-api/internal/domain"
)

// MessageRepository defines message persistence operations
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	ListForCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Message, error)
	ListAll(ctx context.Context) ([]domain.Message, error)
	Count(ctx context.Context) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListForCompany returns every message the company sent or received,
// ascending by time. The client groups them into conversations.
func (r *messageRepository) ListForCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("sender_company_id = ? OR receiver_company_id = ?", companyID, companyID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) ListAll(ctx context.Context) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *messageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).Count(&count).Error
	return count, err
}
