package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/s5redllms/NoteBuddy/internal/model"
)

// NoteRepository defines note persistence operations. Reads and writes are
// owner-scoped; Update refreshes updated_at on every content mutation.
type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	ListByUser(ctx context.Context, userID uint) ([]model.Note, error)
	FindByUser(ctx context.Context, userID, id uint) (*model.Note, error)
	Update(ctx context.Context, userID, id uint, title, content string) error
	Delete(ctx context.Context, userID, id uint) error
	Count(ctx context.Context) (int64, error)
}

type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository builds a GORM-backed repository.
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *model.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) ListByUser(ctx context.Context, userID uint) ([]model.Note, error) {
	var notes []model.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) FindByUser(ctx context.Context, userID, id uint) (*model.Note, error) {
	var note model.Note
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) Update(ctx context.Context, userID, id uint, title, content string) error {
	return r.db.WithContext(ctx).Model(&model.Note{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"title": title, "content": content}).Error
}

func (r *noteRepository) Delete(ctx context.Context, userID, id uint) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Note{}).Error
}

func (r *noteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Note{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
