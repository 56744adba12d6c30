package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/s5redllms/NoteBuddy/internal/auth"
	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
	"github.com/s5redllms/NoteBuddy/internal/model"
)

func TestConversationService_Save(t *testing.T) {
	session := auth.SessionContext{UserID: 7}
	turns := []model.ChatTurn{
		{Sender: "user", Content: "hi"},
		{Sender: "ai", Content: "hello"},
	}

	t.Run("missing title or messages", func(t *testing.T) {
		svc := NewConversationService(new(MockConversationRepository))

		_, err := svc.Save(context.Background(), session, 0, "", turns)
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)

		_, err = svc.Save(context.Background(), session, 0, "Chat", nil)
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("creates a new conversation", func(t *testing.T) {
		mockRepo := new(MockConversationRepository)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(conversation *model.Conversation) bool {
			return conversation.UserID == session.UserID && conversation.Title == "Chat"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Conversation).ID = 12
		}).Return(nil)

		svc := NewConversationService(mockRepo)

		id, err := svc.Save(context.Background(), session, 0, "Chat", turns)
		assert.NoError(t, err)
		assert.Equal(t, uint(12), id)
		mockRepo.AssertExpectations(t)
	})

	t.Run("updates an existing conversation owner-scoped", func(t *testing.T) {
		encoded, _ := model.EncodeMessages(turns)

		mockRepo := new(MockConversationRepository)
		mockRepo.On("Update", mock.Anything, uint(7), uint(12), "Chat", encoded).Return(nil)

		svc := NewConversationService(mockRepo)

		id, err := svc.Save(context.Background(), session, 12, "Chat", turns)
		assert.NoError(t, err)
		assert.Equal(t, uint(12), id)
		mockRepo.AssertExpectations(t)
	})
}

func TestConversationService_Get(t *testing.T) {
	session := auth.SessionContext{UserID: 7}

	t.Run("decodes the transcript", func(t *testing.T) {
		mockRepo := new(MockConversationRepository)
		mockRepo.On("FindByUser", mock.Anything, uint(7), uint(12)).Return(&model.Conversation{
			ID:       12,
			UserID:   7,
			Title:    "Chat",
			Messages: `[{"sender":"user","content":"hi"},{"sender":"ai","content":"hello"}]`,
		}, nil)

		svc := NewConversationService(mockRepo)

		conversation, turns, err := svc.Get(context.Background(), session, 12)
		assert.NoError(t, err)
		assert.Equal(t, "Chat", conversation.Title)
		assert.Len(t, turns, 2)
		assert.Equal(t, "user", turns[0].Sender)
	})

	t.Run("another user's conversation is not found", func(t *testing.T) {
		mockRepo := new(MockConversationRepository)
		mockRepo.On("FindByUser", mock.Anything, uint(7), uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewConversationService(mockRepo)

		_, _, err := svc.Get(context.Background(), session, 99)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("corrupt transcript", func(t *testing.T) {
		mockRepo := new(MockConversationRepository)
		mockRepo.On("FindByUser", mock.Anything, uint(7), uint(13)).Return(&model.Conversation{
			ID:       13,
			UserID:   7,
			Messages: "not json",
		}, nil)

		svc := NewConversationService(mockRepo)

		_, _, err := svc.Get(context.Background(), session, 13)
		assert.ErrorIs(t, err, apperrors.ErrCorruptConversation)
	})
}

func TestConversationService_Delete_OwnerScoped(t *testing.T) {
	session := auth.SessionContext{UserID: 7}

	mockRepo := new(MockConversationRepository)
	mockRepo.On("Delete", mock.Anything, uint(7), uint(12)).Return(nil)

	svc := NewConversationService(mockRepo)

	assert.NoError(t, svc.Delete(context.Background(), session, 12))
	mockRepo.AssertExpectations(t)
}
