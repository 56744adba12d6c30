package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/s5redllms/NoteBuddy/internal/auth"
	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
	"github.com/s5redllms/NoteBuddy/internal/model"
	"github.com/s5redllms/NoteBuddy/internal/repository"
)

const (
	bcryptCost        = 10
	minPasswordLength = 6
)

// AuthService handles registration, login and logout.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	// Login returns a signed session token on success.
	Login(ctx context.Context, username, password string) (token string, user *model.User, role model.RoleName, err error)
	Logout(ctx context.Context, claims *auth.SessionClaims) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
	sessions auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService, sessions auth.SessionStoreInterface) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Register creates a new account with hashed password and the default role.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if username == "" || email == "" {
		return nil, apperrors.NewValidation("username and email are required")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.NewValidation("password must be at least 6 characters long")
	}

	// Precheck for a friendlier message; the unique indexes are the
	// authoritative guard against racing registrations.
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrDuplicateUser
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrDuplicateUser
	} else if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		RoleID:       model.DefaultRoleID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, apperrors.ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues a session token carrying the user's
// id, username and role name at login time.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, model.RoleName, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, "", apperrors.ErrInvalidCredentials
	}

	role, err := s.userRepo.RoleOf(ctx, user.ID)
	if err != nil {
		return "", nil, "", fmt.Errorf("resolve role: %w", err)
	}

	token, err := s.tokens.Issue(user, role)
	if err != nil {
		return "", nil, "", fmt.Errorf("issue session token: %w", err)
	}
	return token, user, role, nil
}

// Logout revokes the session token for its remaining lifetime.
func (s *authService) Logout(ctx context.Context, claims *auth.SessionClaims) error {
	ttl := auth.SessionExpiry
	if claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}
	return s.sessions.Revoke(ctx, claims.ID, ttl)
}
