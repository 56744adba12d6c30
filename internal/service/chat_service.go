package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/s5redllms/NoteBuddy/internal/auth"
	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
	"github.com/s5redllms/NoteBuddy/internal/model"
	"github.com/s5redllms/NoteBuddy/internal/ollama"
	"github.com/s5redllms/NoteBuddy/internal/repository"
)

const (
	chatHistoryLimit = 50

	// Fallback texts substituted when the inference service fails. The user
	// sees these as a normal reply; the failure is never an error page.
	fallbackUnreachable = "Sorry, I am currently unavailable. Please make sure Ollama is running."
	fallbackBadStatus   = "Sorry, I am currently unavailable."
)

// ChatService sends prompts to the inference service and keeps the per-user
// chat log. An unavailable inference service degrades to a fixed fallback
// reply; the exchange is persisted either way so the conversation keeps its
// continuity.
type ChatService interface {
	Send(ctx context.Context, session auth.SessionContext, message string) (string, error)
	History(ctx context.Context, session auth.SessionContext) ([]model.ChatMessage, error)
}

type chatService struct {
	repo      repository.ChatRepository
	generator ollama.Generator
}

// NewChatService creates a new chat service.
func NewChatService(repo repository.ChatRepository, generator ollama.Generator) ChatService {
	return &chatService{repo: repo, generator: generator}
}

func (s *chatService) Send(ctx context.Context, session auth.SessionContext, message string) (string, error) {
	if message == "" {
		return "", apperrors.NewValidation("message is required")
	}

	response, err := s.generator.Generate(ctx, message)
	if err != nil {
		switch {
		case errors.Is(err, ollama.ErrBadStatus):
			response = fallbackBadStatus
		default:
			response = fallbackUnreachable
		}
	}

	entry := &model.ChatMessage{
		UserID:   session.UserID,
		Message:  message,
		Response: response,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return "", fmt.Errorf("persist chat message: %w", err)
	}
	return response, nil
}

func (s *chatService) History(ctx context.Context, session auth.SessionContext) ([]model.ChatMessage, error) {
	return s.repo.RecentByUser(ctx, session.UserID, chatHistoryLimit)
}
