package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/s5redllms/NoteBuddy/internal/auth"
	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
	"github.com/s5redllms/NoteBuddy/internal/model"
	"github.com/s5redllms/NoteBuddy/internal/ollama"
)

func TestChatService_Send(t *testing.T) {
	session := auth.SessionContext{UserID: 7, Username: "alice"}

	tests := []struct {
		name          string
		generator     *fakeGenerator
		expectedReply string
	}{
		{
			name:          "reply from the model",
			generator:     &fakeGenerator{response: "hello there"},
			expectedReply: "hello there",
		},
		{
			name:          "inference server unreachable",
			generator:     &fakeGenerator{err: fmt.Errorf("%w: connection refused", ollama.ErrUnreachable)},
			expectedReply: "Sorry, I am currently unavailable. Please make sure Ollama is running.",
		},
		{
			name:          "inference server returns an error status",
			generator:     &fakeGenerator{err: fmt.Errorf("%w: status 500", ollama.ErrBadStatus)},
			expectedReply: "Sorry, I am currently unavailable.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockChatRepository)
			// The exchange is persisted whether or not inference succeeded,
			// with the substituted text standing in for the reply.
			mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(message *model.ChatMessage) bool {
				return message.UserID == session.UserID &&
					message.Message == "hi" &&
					message.Response == tt.expectedReply
			})).Return(nil)

			svc := NewChatService(mockRepo, tt.generator)

			reply, err := svc.Send(context.Background(), session, "hi")
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedReply, reply)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestChatService_Send_EmptyMessage(t *testing.T) {
	svc := NewChatService(new(MockChatRepository), &fakeGenerator{response: "unused"})

	reply, err := svc.Send(context.Background(), auth.SessionContext{UserID: 7}, "")
	var validation *apperrors.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Empty(t, reply)
}

func TestChatService_History(t *testing.T) {
	session := auth.SessionContext{UserID: 7}

	mockRepo := new(MockChatRepository)
	mockRepo.On("RecentByUser", mock.Anything, uint(7), 50).Return([]model.ChatMessage{
		{ID: 2, UserID: 7, Message: "newer"},
		{ID: 1, UserID: 7, Message: "older"},
	}, nil)

	svc := NewChatService(mockRepo, &fakeGenerator{})

	messages, err := svc.History(context.Background(), session)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	mockRepo.AssertExpectations(t)
}
