package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/s5redllms/NoteBuddy/internal/model"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "nb_session"
	// SessionExpiry is how long a login remains valid.
	SessionExpiry = 7 * 24 * time.Hour
)

// SessionContext is the per-request identity resolved from the session
// cookie. It is a plain value passed down explicitly; nothing global holds
// the "current user".
type SessionContext struct {
	UserID   uint
	Username string
	Role     model.RoleName
}

// IsAdminClaim reports the role snapshot taken at login. Admin-gated
// endpoints must not trust it; they re-verify against the store (see
// service.AdminService.IsAdmin).
func (s SessionContext) IsAdminClaim() bool {
	return s.Role.IsAdmin()
}

// SessionClaims is the JWT payload of the session cookie. The role is cached
// here to avoid a join on every request; it goes stale on role change until
// the user logs in again.
type SessionClaims struct {
	UserID   uint           `json:"user_id"`
	Username string         `json:"username"`
	Role     model.RoleName `json:"role"`
	jwt.RegisteredClaims
}

// Context converts validated claims into a SessionContext value.
func (c *SessionClaims) Context() SessionContext {
	return SessionContext{
		UserID:   c.UserID,
		Username: c.Username,
		Role:     c.Role,
	}
}

// TokenService signs and validates session cookie tokens.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given HMAC secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue creates a signed session token for the user. The token ID (jti)
// identifies the session in the revocation list.
func (s *TokenService) Issue(user *model.User, role model.RoleName) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a session token.
func (s *TokenService) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Secret exposes the signing key for the echo-jwt middleware.
func (s *TokenService) Secret() []byte {
	return s.secret
}
