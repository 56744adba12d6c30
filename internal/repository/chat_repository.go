package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/s5redllms/NoteBuddy/internal/model"
)

// ChatRepository defines chat log persistence operations.
type ChatRepository interface {
	Create(ctx context.Context, message *model.ChatMessage) error
	RecentByUser(ctx context.Context, userID uint, limit int) ([]model.ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository builds a GORM-backed repository.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(ctx context.Context, message *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *chatRepository) RecentByUser(ctx context.Context, userID uint, limit int) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
