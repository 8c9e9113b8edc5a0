// internal/services/user_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acmesoft/bizops-backend/internal/models"
	"github.com/acmesoft/bizops-backend/internal/store"
)

func TestCreateUserHashesPassword(t *testing.T) {
	st := store.New()
	svc := NewUserService(st)

	user, err := svc.CreateUser(&CreateUserRequest{
		Username: "jdoe",
		Password: "secret123",
		FullName: "Jane Doe",
		Email:    "jdoe@example.com",
		Role:     models.RoleStaff,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, user.ID)
	assert.True(t, user.Active)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, user.CheckPassword("secret123"))
	assert.Error(t, user.CheckPassword("wrong"))
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	st := store.New()
	svc := NewUserService(st)

	req := &CreateUserRequest{
		Username: "jdoe",
		Password: "secret123",
		FullName: "Jane Doe",
		Email:    "jdoe@example.com",
		Role:     models.RoleStaff,
	}
	_, err := svc.CreateUser(req)
	require.NoError(t, err)

	_, err = svc.CreateUser(req)
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Len(t, st.GetAllUsers(), 1)
}

func TestUpdateUserRejectsTakenUsername(t *testing.T) {
	st := store.New()
	svc := NewUserService(st)

	_, err := svc.CreateUser(&CreateUserRequest{
		Username: "jdoe",
		Password: "secret123",
		FullName: "Jane Doe",
		Email:    "jdoe@example.com",
		Role:     models.RoleStaff,
	})
	require.NoError(t, err)

	other, err := svc.CreateUser(&CreateUserRequest{
		Username: "msmith",
		Password: "secret123",
		FullName: "Mark Smith",
		Email:    "msmith@example.com",
		Role:     models.RoleStaff,
	})
	require.NoError(t, err)

	taken := "jdoe"
	_, err = svc.UpdateUser(other.ID, &UpdateUserRequest{Username: &taken})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	got, err := svc.GetUser(other.ID)
	require.NoError(t, err)
	assert.Equal(t, "msmith", got.Username)

	// Re-submitting a user's own username is not a collision.
	own := "msmith"
	updated, err := svc.UpdateUser(other.ID, &UpdateUserRequest{Username: &own})
	require.NoError(t, err)
	assert.Equal(t, "msmith", updated.Username)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	st := store.New()
	svc := NewUserService(st)

	user, err := svc.CreateUser(&CreateUserRequest{
		Username: "jdoe",
		Password: "secret123",
		FullName: "Jane Doe",
		Email:    "jdoe@example.com",
		Role:     models.RoleStaff,
	})
	require.NoError(t, err)

	newPassword := "changed456"
	fullName := "Jane A. Doe"
	updated, err := svc.UpdateUser(user.ID, &UpdateUserRequest{
		Password: &newPassword,
		FullName: &fullName,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane A. Doe", updated.FullName)
	assert.Equal(t, "jdoe", updated.Username)
	assert.NoError(t, updated.CheckPassword("changed456"))
	assert.Error(t, updated.CheckPassword("secret123"))
}

func TestUpdateUserUnknownID(t *testing.T) {
	st := store.New()
	svc := NewUserService(st)

	active := false
	_, err := svc.UpdateUser(42, &UpdateUserRequest{Active: &active})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
