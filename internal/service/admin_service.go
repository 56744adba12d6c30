package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/s5redllms/NoteBuddy/internal/cache"
	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
	"github.com/s5redllms/NoteBuddy/internal/model"
	"github.com/s5redllms/NoteBuddy/internal/repository"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 30 * time.Second
)

// Stats aggregates resource counts across all users.
type Stats struct {
	Users         int64 `json:"users"`
	Todos         int64 `json:"todos"`
	Notes         int64 `json:"notes"`
	Conversations int64 `json:"conversations"`
}

// AdminService exposes cross-user operations. Every caller must pass IsAdmin
// first; the router's admin group enforces that before any handler runs.
type AdminService interface {
	// IsAdmin re-reads the user's role from storage. The session's cached
	// role claim is deliberately not trusted here, so a demotion takes
	// effect on the next admin-gated call without waiting for re-login.
	IsAdmin(ctx context.Context, userID uint) (bool, error)
	ListUsers(ctx context.Context) ([]model.UserWithRole, error)
	ListRoles(ctx context.Context) ([]model.Role, error)
	SetRole(ctx context.Context, targetUserID, roleID uint) error
	DeleteUser(ctx context.Context, actorUserID, targetUserID uint) error
	GetStats(ctx context.Context) (*Stats, error)
}

type adminService struct {
	userRepo         repository.UserRepository
	roleRepo         repository.RoleRepository
	todoRepo         repository.TodoRepository
	noteRepo         repository.NoteRepository
	conversationRepo repository.ConversationRepository
	cache            *cache.Client
}

// NewAdminService creates a new admin service.
func NewAdminService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	todoRepo repository.TodoRepository,
	noteRepo repository.NoteRepository,
	conversationRepo repository.ConversationRepository,
	cache *cache.Client,
) AdminService {
	return &adminService{
		userRepo:         userRepo,
		roleRepo:         roleRepo,
		todoRepo:         todoRepo,
		noteRepo:         noteRepo,
		conversationRepo: conversationRepo,
		cache:            cache,
	}
}

func (s *adminService) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	role, err := s.userRepo.RoleOf(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, fmt.Errorf("resolve role: %w", err)
	}
	return role.IsAdmin(), nil
}

func (s *adminService) ListUsers(ctx context.Context) ([]model.UserWithRole, error) {
	return s.userRepo.ListWithRoles(ctx)
}

func (s *adminService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.roleRepo.List(ctx)
}

// SetRole assigns a role to a user. The role must exist; nothing prevents an
// admin demoting themselves (documented open question, left as-is).
func (s *adminService) SetRole(ctx context.Context, targetUserID, roleID uint) error {
	if roleID == 0 {
		return apperrors.NewValidation("role ID is required")
	}
	if _, err := s.roleRepo.FindByID(ctx, roleID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.NewValidation("role does not exist")
		}
		return fmt.Errorf("check role: %w", err)
	}
	return s.userRepo.SetRole(ctx, targetUserID, roleID)
}

// DeleteUser removes the target user and everything it owns in one
// transaction. Self-delete is rejected to avoid admin lockout.
func (s *adminService) DeleteUser(ctx context.Context, actorUserID, targetUserID uint) error {
	if targetUserID == actorUserID {
		return apperrors.ErrSelfDelete
	}
	if err := s.userRepo.DeleteCascade(ctx, targetUserID); err != nil {
		return fmt.Errorf("cascade delete user %d: %w", targetUserID, err)
	}
	_ = s.cache.Delete(ctx, statsCacheKey)
	return nil
}

// GetStats returns aggregate counts, cached briefly to keep the admin
// dashboard cheap.
func (s *adminService) GetStats(ctx context.Context) (*Stats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached Stats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &Stats{}
	var err error
	if stats.Users, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Todos, err = s.todoRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Notes, err = s.noteRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Conversations, err = s.conversationRepo.Count(ctx); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}
	return stats, nil
}
