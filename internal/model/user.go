package model

import "time"

// User represents an authenticated NoteBuddy account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	RoleID       uint      `json:"role_id" gorm:"not null;default:2;index"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Role Role `json:"-" gorm:"foreignKey:RoleID"`
}

// UserWithRole is the admin listing projection: a user row joined with its
// current role name.
type UserWithRole struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	RoleID    uint      `json:"role_id"`
	RoleName  RoleName  `json:"role_name"`
}
