package services

import (
	"testing"

	"github.com/burgerclub/gin-burger-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	user := &models.User{
		Username: "alice", Email: "alice@example.com",
		Password: "secret123", FullName: "Alice", IsActive: true,
	}
	require.NoError(t, user.HashPassword())
	require.NoError(t, svc.CreateUser(user))

	sameEmail := &models.User{
		Username: "alice2", Email: "alice@example.com",
		PasswordHash: "x", FullName: "Alice Two",
	}
	assert.ErrorIs(t, svc.CreateUser(sameEmail), ErrDuplicateName)

	sameUsername := &models.User{
		Username: "alice", Email: "other@example.com",
		PasswordHash: "x", FullName: "Other Alice",
	}
	assert.ErrorIs(t, svc.CreateUser(sameUsername), ErrDuplicateName)
}

func TestPasswordRoundTrip(t *testing.T) {
	user := &models.User{Password: "secret123"}
	require.NoError(t, user.HashPassword())

	assert.Empty(t, user.Password)
	assert.True(t, user.CheckPassword("secret123"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestGetUserByEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	created := createTestUser(t, db, "alice", false)

	found, err := svc.GetUserByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
