package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/s5redllms/NoteBuddy/internal/model"
)

// TodoRepository defines todo persistence operations. Every mutation is
// owner-scoped: the predicate includes both the row id and the owner id, so a
// write against another user's todo matches zero rows and changes nothing.
type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	ListByUser(ctx context.Context, userID uint) ([]model.Todo, error)
	SetCompleted(ctx context.Context, userID, id uint, completed bool) error
	Delete(ctx context.Context, userID, id uint) error
	Count(ctx context.Context) (int64, error)
}

type todoRepository struct {
	db *gorm.DB
}

// NewTodoRepository builds a GORM-backed repository.
func NewTodoRepository(db *gorm.DB) TodoRepository {
	return &todoRepository{db: db}
}

func (r *todoRepository) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Create(todo).Error
}

func (r *todoRepository) ListByUser(ctx context.Context, userID uint) ([]model.Todo, error) {
	var todos []model.Todo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *todoRepository) SetCompleted(ctx context.Context, userID, id uint, completed bool) error {
	return r.db.WithContext(ctx).Model(&model.Todo{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("completed", completed).Error
}

func (r *todoRepository) Delete(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Todo{}).Error
}

func (r *todoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Todo{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
