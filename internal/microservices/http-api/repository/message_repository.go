package repository

import (
	"context"

	"servicehub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// MessageRepository is the append-only store for chat messages.
// Create assigns the canonical id; rows are never updated or deleted.
// Context is threaded through because the realtime gateway calls this
// from per-connection goroutines.
type MessageRepository interface {
	Create(ctx context.Context, message *models.ChatMessage) error
	ListByBooking(ctx context.Context, bookingID int64) ([]models.ChatMessage, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) ListByBooking(ctx context.Context, bookingID int64) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("sent_at ASC").
		Find(&messages).Error
	return messages, err
}
