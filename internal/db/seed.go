package db

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/s5redllms/NoteBuddy/internal/model"
)

// Default admin credentials, created only when no admin account exists yet.
// Meant to be changed right after first login.
const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@notebuddy.com"
	defaultAdminPassword = "admin123"
)

// Migrate creates or updates the schema for all models.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Todo{},
		&model.Note{},
		&model.ChatMessage{},
		&model.Conversation{},
	)
}

// Seed inserts the two fixed roles and the bootstrap admin account if they
// are missing. It is idempotent and safe to run on every startup.
func Seed(ctx context.Context, gormDB *gorm.DB) error {
	roles := []model.Role{
		{ID: model.AdminRoleID, Name: model.RoleAdmin, Description: "NoteBuddy Administrator with full system access"},
		{ID: model.DefaultRoleID, Name: model.RoleUser, Description: "NoteBuddy user with standard access"},
	}
	if err := gormDB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}

	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", defaultAdminUsername).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &model.User{
		Username:     defaultAdminUsername,
		Email:        defaultAdminEmail,
		PasswordHash: string(hash),
		RoleID:       model.AdminRoleID,
	}
	if err := gormDB.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}
