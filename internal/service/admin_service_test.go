package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/s5redllms/NoteBuddy/internal/errors"
	"github.com/s5redllms/NoteBuddy/internal/model"
)

func newAdminService(userRepo *MockUserRepository, roleRepo *MockRoleRepository, todoRepo *MockTodoRepository, noteRepo *MockNoteRepository, conversationRepo *MockConversationRepository) AdminService {
	// nil cache degrades to a miss on every read, which is the fail-safe
	// behavior the service is written against
	return NewAdminService(userRepo, roleRepo, todoRepo, noteRepo, conversationRepo, nil)
}

func TestAdminService_IsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		userID   uint
		setup    func(*MockUserRepository)
		expected bool
	}{
		{
			name:   "admin role",
			userID: 1,
			setup: func(m *MockUserRepository) {
				m.On("RoleOf", mock.Anything, uint(1)).Return(model.RoleAdmin, nil)
			},
			expected: true,
		},
		{
			name:   "regular user",
			userID: 2,
			setup: func(m *MockUserRepository) {
				m.On("RoleOf", mock.Anything, uint(2)).Return(model.RoleUser, nil)
			},
			expected: false,
		},
		{
			name:   "deleted user",
			userID: 3,
			setup: func(m *MockUserRepository) {
				m.On("RoleOf", mock.Anything, uint(3)).Return(model.RoleName(""), gorm.ErrRecordNotFound)
			},
			expected: false,
		},
		{
			name:     "no session",
			userID:   0,
			setup:    func(m *MockUserRepository) {},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			tt.setup(mockUsers)

			svc := newAdminService(mockUsers, new(MockRoleRepository), new(MockTodoRepository), new(MockNoteRepository), new(MockConversationRepository))
			isAdmin, err := svc.IsAdmin(context.Background(), tt.userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, isAdmin)
			mockUsers.AssertExpectations(t)
		})
	}
}

// A demoted admin's cookie still claims the admin role, but the guard asks
// the store, so the next admin-gated call is denied without re-login.
func TestAdminService_IsAdmin_DemotionTakesEffectImmediately(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("RoleOf", mock.Anything, uint(5)).Return(model.RoleAdmin, nil).Once()
	mockUsers.On("RoleOf", mock.Anything, uint(5)).Return(model.RoleUser, nil).Once()

	svc := newAdminService(mockUsers, new(MockRoleRepository), new(MockTodoRepository), new(MockNoteRepository), new(MockConversationRepository))

	isAdmin, err := svc.IsAdmin(context.Background(), 5)
	assert.NoError(t, err)
	assert.True(t, isAdmin)

	// role changed in storage between the two calls
	isAdmin, err = svc.IsAdmin(context.Background(), 5)
	assert.NoError(t, err)
	assert.False(t, isAdmin)

	mockUsers.AssertExpectations(t)
}

func TestAdminService_DeleteUser(t *testing.T) {
	t.Run("rejects self delete", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		svc := newAdminService(mockUsers, new(MockRoleRepository), new(MockTodoRepository), new(MockNoteRepository), new(MockConversationRepository))

		err := svc.DeleteUser(context.Background(), 1, 1)
		assert.ErrorIs(t, err, apperrors.ErrSelfDelete)
		mockUsers.AssertNotCalled(t, "DeleteCascade", mock.Anything, mock.Anything)
	})

	t.Run("cascades for another user", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockUsers.On("DeleteCascade", mock.Anything, uint(9)).Return(nil)

		svc := newAdminService(mockUsers, new(MockRoleRepository), new(MockTodoRepository), new(MockNoteRepository), new(MockConversationRepository))

		assert.NoError(t, svc.DeleteUser(context.Background(), 1, 9))
		mockUsers.AssertExpectations(t)
	})
}

func TestAdminService_SetRole(t *testing.T) {
	t.Run("missing role id", func(t *testing.T) {
		svc := newAdminService(new(MockUserRepository), new(MockRoleRepository), new(MockTodoRepository), new(MockNoteRepository), new(MockConversationRepository))

		err := svc.SetRole(context.Background(), 4, 0)
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)
	})

	t.Run("nonexistent role", func(t *testing.T) {
		mockRoles := new(MockRoleRepository)
		mockRoles.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		svc := newAdminService(new(MockUserRepository), mockRoles, new(MockTodoRepository), new(MockNoteRepository), new(MockConversationRepository))

		err := svc.SetRole(context.Background(), 4, 42)
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)
		mockRoles.AssertExpectations(t)
	})

	t.Run("valid role", func(t *testing.T) {
		mockUsers := new(MockUserRepository)
		mockRoles := new(MockRoleRepository)
		mockRoles.On("FindByID", mock.Anything, uint(1)).Return(&model.Role{ID: 1, Name: model.RoleAdmin}, nil)
		mockUsers.On("SetRole", mock.Anything, uint(4), uint(1)).Return(nil)

		svc := newAdminService(mockUsers, mockRoles, new(MockTodoRepository), new(MockNoteRepository), new(MockConversationRepository))

		assert.NoError(t, svc.SetRole(context.Background(), 4, 1))
		mockUsers.AssertExpectations(t)
		mockRoles.AssertExpectations(t)
	})
}

func TestAdminService_GetStats(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockTodos := new(MockTodoRepository)
	mockNotes := new(MockNoteRepository)
	mockConversations := new(MockConversationRepository)

	mockUsers.On("Count", mock.Anything).Return(int64(3), nil)
	mockTodos.On("Count", mock.Anything).Return(int64(10), nil)
	mockNotes.On("Count", mock.Anything).Return(int64(5), nil)
	mockConversations.On("Count", mock.Anything).Return(int64(2), nil)

	svc := newAdminService(mockUsers, new(MockRoleRepository), mockTodos, mockNotes, mockConversations)

	stats, err := svc.GetStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, &Stats{Users: 3, Todos: 10, Notes: 5, Conversations: 2}, stats)
}
