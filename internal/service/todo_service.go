package service

import (
	"context"

	"github.com/s5redllms/NoteBuddy/internal/auth"
	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
	"github.com/s5redllms/NoteBuddy/internal/model"
	"github.com/s5redllms/NoteBuddy/internal/repository"
)

// TodoService exposes owner-scoped todo operations. Updates and deletes
// against a todo the caller does not own succeed without changing anything;
// the existence of other users' rows is never revealed.
type TodoService interface {
	List(ctx context.Context, session auth.SessionContext) ([]model.Todo, error)
	Create(ctx context.Context, session auth.SessionContext, title string) (*model.Todo, error)
	SetCompleted(ctx context.Context, session auth.SessionContext, id uint, completed bool) error
	Delete(ctx context.Context, session auth.SessionContext, id uint) error
}

type todoService struct {
	repo repository.TodoRepository
}

// NewTodoService creates a new todo service.
func NewTodoService(repo repository.TodoRepository) TodoService {
	return &todoService{repo: repo}
}

func (s *todoService) List(ctx context.Context, session auth.SessionContext) ([]model.Todo, error) {
	return s.repo.ListByUser(ctx, session.UserID)
}

// Create inserts a todo owned by the session user. The owner always comes
// from the session, never from the payload.
func (s *todoService) Create(ctx context.Context, session auth.SessionContext, title string) (*model.Todo, error) {
	if title == "" {
		return nil, apperrors.NewValidation("title is required")
	}
	todo := &model.Todo{
		UserID: session.UserID,
		Title:  title,
	}
	if err := s.repo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *todoService) SetCompleted(ctx context.Context, session auth.SessionContext, id uint, completed bool) error {
	return s.repo.SetCompleted(ctx, session.UserID, id, completed)
}

func (s *todoService) Delete(ctx context.Context, session auth.SessionContext, id uint) error {
	return s.repo.Delete(ctx, session.UserID, id)
}
