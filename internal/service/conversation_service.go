package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/s5redllms/NoteBuddy/internal/auth"
	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
	"github.com/s5redllms/NoteBuddy/internal/model"
	"github.com/s5redllms/NoteBuddy/internal/repository"
)

// ConversationService manages saved chat transcripts. Mutations carry the
// owner-scoped silent no-op contract; a save against another user's
// conversation id succeeds without touching their row.
type ConversationService interface {
	List(ctx context.Context, session auth.SessionContext) ([]model.Conversation, error)
	// Save creates a conversation, or updates one when conversationID is
	// non-zero. It returns the conversation id.
	Save(ctx context.Context, session auth.SessionContext, conversationID uint, title string, turns []model.ChatTurn) (uint, error)
	Get(ctx context.Context, session auth.SessionContext, id uint) (*model.Conversation, []model.ChatTurn, error)
	Delete(ctx context.Context, session auth.SessionContext, id uint) error
}

type conversationService struct {
	repo repository.ConversationRepository
}

// NewConversationService creates a new conversation service.
func NewConversationService(repo repository.ConversationRepository) ConversationService {
	return &conversationService{repo: repo}
}

func (s *conversationService) List(ctx context.Context, session auth.SessionContext) ([]model.Conversation, error) {
	return s.repo.ListByUser(ctx, session.UserID)
}

func (s *conversationService) Save(ctx context.Context, session auth.SessionContext, conversationID uint, title string, turns []model.ChatTurn) (uint, error) {
	if title == "" || len(turns) == 0 {
		return 0, apperrors.NewValidation("title and messages are required")
	}

	messages, err := model.EncodeMessages(turns)
	if err != nil {
		return 0, fmt.Errorf("encode messages: %w", err)
	}

	if conversationID != 0 {
		if err := s.repo.Update(ctx, session.UserID, conversationID, title, messages); err != nil {
			return 0, fmt.Errorf("update conversation: %w", err)
		}
		return conversationID, nil
	}

	conversation := &model.Conversation{
		UserID:   session.UserID,
		Title:    title,
		Messages: messages,
	}
	if err := s.repo.Create(ctx, conversation); err != nil {
		return 0, fmt.Errorf("create conversation: %w", err)
	}
	return conversation.ID, nil
}

func (s *conversationService) Get(ctx context.Context, session auth.SessionContext, id uint) (*model.Conversation, []model.ChatTurn, error) {
	conversation, err := s.repo.FindByUser(ctx, session.UserID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, fmt.Errorf("load conversation: %w", err)
	}

	turns, err := conversation.DecodeMessages()
	if err != nil {
		return nil, nil, apperrors.ErrCorruptConversation
	}
	return conversation, turns, nil
}

func (s *conversationService) Delete(ctx context.Context, session auth.SessionContext, id uint) error {
	return s.repo.Delete(ctx, session.UserID, id)
}
