package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s5redllms/NoteBuddy/internal/model"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	tokens := NewTokenService("test-secret")

	user := &model.User{ID: 7, Username: "alice"}
	token, err := tokens.Issue(user, model.RoleUser)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokens.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, model.RoleUser, claims.Role)
	assert.NotEmpty(t, claims.ID)

	session := claims.Context()
	assert.Equal(t, uint(7), session.UserID)
	assert.False(t, session.IsAdminClaim())
}

func TestTokenService_RejectsTamperedToken(t *testing.T) {
	tokens := NewTokenService("test-secret")

	token, err := tokens.Issue(&model.User{ID: 7, Username: "alice"}, model.RoleUser)
	assert.NoError(t, err)

	// corrupt the signature
	parts := strings.Split(token, ".")
	parts[2] = "x" + parts[2]
	_, err = tokens.Validate(strings.Join(parts, "."))
	assert.Error(t, err)
}

func TestTokenService_RejectsForeignSecret(t *testing.T) {
	issued, err := NewTokenService("secret-one").Issue(&model.User{ID: 7, Username: "alice"}, model.RoleAdmin)
	assert.NoError(t, err)

	_, err = NewTokenService("secret-two").Validate(issued)
	assert.Error(t, err)
}

func TestSessionTokensAreUnique(t *testing.T) {
	tokens := NewTokenService("test-secret")
	user := &model.User{ID: 7, Username: "alice"}

	first, err := tokens.Issue(user, model.RoleUser)
	assert.NoError(t, err)
	second, err := tokens.Issue(user, model.RoleUser)
	assert.NoError(t, err)

	firstClaims, _ := tokens.Validate(first)
	secondClaims, _ := tokens.Validate(second)
	// each login gets its own jti so logout revokes only that session
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}
