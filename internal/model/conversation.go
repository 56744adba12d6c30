package model

import (
	"encoding/json"
	"time"
)

// ChatTurn is one entry in a saved conversation transcript.
type ChatTurn struct {
	Sender  string `json:"sender"` // "user" or "ai"
	Content string `json:"content"`
}

// Conversation is a saved chat transcript owned by one user. Messages is the
// serialized []ChatTurn; it is decoded on read and re-encoded on write so an
// undecodable row surfaces as an explicit error rather than leaking raw text.
type Conversation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Messages  string    `json:"-" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DecodeMessages parses the stored transcript.
func (c *Conversation) DecodeMessages() ([]ChatTurn, error) {
	var turns []ChatTurn
	if err := json.Unmarshal([]byte(c.Messages), &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

// EncodeMessages serializes a transcript for storage.
func EncodeMessages(turns []ChatTurn) (string, error) {
	data, err := json.Marshal(turns)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
