package model

import "time"

// ChatMessage is one exchange in the chat log: the user's prompt and the
// assistant's reply (or the fallback text when the inference service was
// unavailable).
type ChatMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Response  string    `json:"response" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime;index"`
}
