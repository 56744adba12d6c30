package service

import (
	"context"
	"fmt"
	"html"

	"gorm.io/gorm"

	"github.com/s5redllms/NoteBuddy/internal/auth"
	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
	"github.com/s5redllms/NoteBuddy/internal/model"
	"github.com/s5redllms/NoteBuddy/internal/repository"
)

// ExportFormat selects a note export rendering.
type ExportFormat string

const (
	// ExportPDF returns the decoded content as JSON for client-side PDF
	// generation.
	ExportPDF ExportFormat = "pdf"
	// ExportHTML returns a standalone HTML document.
	ExportHTML ExportFormat = "html"
)

// NoteExport is the pdf-format export payload.
type NoteExport struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	HTML    string `json:"html"`
}

// NoteService exposes owner-scoped note operations plus export. The same
// silent no-op contract as todos applies to update and delete.
type NoteService interface {
	List(ctx context.Context, session auth.SessionContext) ([]model.Note, error)
	Create(ctx context.Context, session auth.SessionContext, title, content string) (*model.Note, error)
	Update(ctx context.Context, session auth.SessionContext, id uint, title, content string) error
	Delete(ctx context.Context, session auth.SessionContext, id uint) error
	// Export renders the note in the requested format. The stored body may
	// be the structured rich-text form or legacy plain text; both decode.
	Export(ctx context.Context, session auth.SessionContext, id uint, format ExportFormat) (*NoteExport, string, error)
}

type noteService struct {
	repo repository.NoteRepository
}

// NewNoteService creates a new note service.
func NewNoteService(repo repository.NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func (s *noteService) List(ctx context.Context, session auth.SessionContext) ([]model.Note, error) {
	return s.repo.ListByUser(ctx, session.UserID)
}

func (s *noteService) Create(ctx context.Context, session auth.SessionContext, title, content string) (*model.Note, error) {
	if title == "" {
		return nil, apperrors.NewValidation("title is required")
	}
	note := &model.Note{
		UserID:  session.UserID,
		Title:   title,
		Content: content,
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) Update(ctx context.Context, session auth.SessionContext, id uint, title, content string) error {
	return s.repo.Update(ctx, session.UserID, id, title, content)
}

func (s *noteService) Delete(ctx context.Context, session auth.SessionContext, id uint) error {
	return s.repo.Delete(ctx, session.UserID, id)
}

func (s *noteService) Export(ctx context.Context, session auth.SessionContext, id uint, format ExportFormat) (*NoteExport, string, error) {
	note, err := s.repo.FindByUser(ctx, session.UserID, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", apperrors.ErrNotFound
		}
		return nil, "", fmt.Errorf("load note: %w", err)
	}

	content := model.DecodeNoteContent(note.Content)
	switch format {
	case ExportPDF:
		return &NoteExport{
			Title:   note.Title,
			Content: content.Text,
			HTML:    content.HTML,
		}, "", nil
	case ExportHTML:
		return nil, renderExportDocument(note.Title, content.HTML), nil
	default:
		return nil, "", apperrors.NewValidation("invalid format")
	}
}

func renderExportDocument(title, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; line-height: 1.6; }
        h1 { margin-bottom: 20px; }
    </style>
</head>
<body>
    <h1>%s</h1>
    %s
</body>
</html>
`, html.EscapeString(title), html.EscapeString(title), body)
}
