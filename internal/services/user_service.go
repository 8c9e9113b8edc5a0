// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/acmesoft/bizops-backend/internal/models"
	"github.com/acmesoft/bizops-backend/internal/store"
)

// ErrUsernameTaken is returned when a create or update names a username
// that already belongs to another user.
var ErrUsernameTaken = errors.New("username already taken")

type UserService struct {
	store *store.MemStore
}

func NewUserService(store *store.MemStore) *UserService {
	return &UserService{store: store}
}

type CreateUserRequest struct {
	Username string      `json:"username" validate:"required,username"`
	Password string      `json:"password" validate:"required,min=6"`
	FullName string      `json:"fullName" validate:"required,max=255"`
	Email    string      `json:"email" validate:"required,email"`
	Role     models.Role `json:"role" validate:"required,oneof=admin staff"`
	Active   *bool       `json:"active"`
}

type UpdateUserRequest struct {
	Username *string      `json:"username" validate:"omitempty,username"`
	Password *string      `json:"password" validate:"omitempty,min=6"`
	FullName *string      `json:"fullName" validate:"omitempty,max=255"`
	Email    *string      `json:"email" validate:"omitempty,email"`
	Role     *models.Role `json:"role" validate:"omitempty,oneof=admin staff"`
	Active   *bool        `json:"active"`
}

// CreateUser hashes the supplied password and stores the new user.
// Usernames must be unique.
func (s *UserService) CreateUser(req *CreateUserRequest) (models.User, error) {
	if _, err := s.store.GetUserByUsername(req.Username); err == nil {
		return models.User{}, fmt.Errorf("%w: %q", ErrUsernameTaken, req.Username)
	}

	user := models.User{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
		Active:   true,
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if err := user.SetPassword(req.Password); err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.store.CreateUser(user), nil
}

func (s *UserService) UpdateUser(id int, req *UpdateUserRequest) (models.User, error) {
	if req.Username != nil {
		if existing, err := s.store.GetUserByUsername(*req.Username); err == nil && existing.ID != id {
			return models.User{}, fmt.Errorf("%w: %q", ErrUsernameTaken, *req.Username)
		}
	}

	patch := models.UserPatch{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
		Active:   req.Active,
	}

	if req.Password != nil {
		var holder models.User
		if err := holder.SetPassword(*req.Password); err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		patch.PasswordHash = &holder.PasswordHash
	}

	return s.store.UpdateUser(id, patch)
}

func (s *UserService) GetUser(id int) (models.User, error) {
	return s.store.GetUser(id)
}

func (s *UserService) GetAllUsers() []models.User {
	return s.store.GetAllUsers()
}
