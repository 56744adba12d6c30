package model

import (
	"encoding/json"
	"html"
	"strings"
	"time"
)

// Note is a rich-text note owned by one user. Content is stored as text:
// either the structured {"text","html"} form written by the editor, or legacy
// plain text from before the rich-text editor existed.
type Note struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteContent is the decoded form of a note body.
type NoteContent struct {
	Text string `json:"text"`
	HTML string `json:"html"`
}

// DecodeNoteContent parses a stored note body. Structured content is returned
// as-is; anything that does not parse as the structured form is treated as
// legacy plain text and wrapped in a paragraph tag. It never fails.
func DecodeNoteContent(raw string) NoteContent {
	if raw == "" {
		return NoteContent{}
	}
	var content NoteContent
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		if err := json.Unmarshal([]byte(raw), &content); err == nil {
			return content
		}
	}
	return NoteContent{
		Text: raw,
		HTML: "<p>" + html.EscapeString(raw) + "</p>",
	}
}
