package model

// RoleName enumerates the fixed set of roles. Comparisons are made against
// these values, never against raw strings from the database row id.
type RoleName string

const (
	// RoleAdmin is the privileged role.
	RoleAdmin RoleName = "admin"
	// RoleUser is the default role for self-registered accounts.
	RoleUser RoleName = "user"
)

// IsAdmin reports whether the role carries administrator privileges.
func (r RoleName) IsAdmin() bool {
	return r == RoleAdmin
}

// Role represents a named permission group. Exactly two rows are seeded
// (admin, user); self-registration defaults to user.
type Role struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Name        RoleName `json:"name" gorm:"uniqueIndex;size:50;not null"`
	Description string   `json:"description" gorm:"size:255"`
}

// Seed ids for the two fixed roles. Registration references DefaultRoleID
// directly so a missing role row fails loudly at the foreign key.
const (
	AdminRoleID   uint = 1
	DefaultRoleID uint = 2
)
