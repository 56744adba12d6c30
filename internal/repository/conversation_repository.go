package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/s5redllms/NoteBuddy/internal/model"
)

// ConversationRepository defines saved-conversation persistence operations.
// Mutations are owner-scoped like the other resource stores.
type ConversationRepository interface {
	Create(ctx context.Context, conversation *model.Conversation) error
	ListByUser(ctx context.Context, userID uint) ([]model.Conversation, error)
	FindByUser(ctx context.Context, userID, id uint) (*model.Conversation, error)
	Update(ctx context.Context, userID, id uint, title, messages string) error
	Delete(ctx context.Context, userID, id uint) error
	Count(ctx context.Context) (int64, error)
}

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository builds a GORM-backed repository.
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, conversation *model.Conversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *conversationRepository) ListByUser(ctx context.Context, userID uint) ([]model.Conversation, error) {
	var conversations []model.Conversation
	err := r.db.WithContext(ctx).
		Select("id", "user_id", "title", "created_at", "updated_at").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *conversationRepository) FindByUser(ctx context.Context, userID, id uint) (*model.Conversation, error) {
	var conversation model.Conversation
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) Update(ctx context.Context, userID, id uint, title, messages string) error {
	return r.db.WithContext(ctx).Model(&model.Conversation{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"title": title, "messages": messages}).Error
}

func (r *conversationRepository) Delete(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Conversation{}).Error
}

func (r *conversationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Conversation{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
