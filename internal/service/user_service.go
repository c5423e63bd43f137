package service

import (
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/tokoprima/admin-api/internal/models"
	"github.com/tokoprima/admin-api/internal/utils"
)

// UserStore is the repository surface the user service depends on.
type UserStore interface {
	GetAll() ([]models.User, error)
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id int) error
	TouchLastActive(id int) error
}

// UserService implements user management rules.
type UserService struct {
	users UserStore
}

// NewUserService constructs a UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=8"`
	Role     models.Role `json:"role" binding:"required,oneof=admin cashier"`
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Name     *string      `json:"name"`
	Email    *string      `json:"email"`
	Password *string      `json:"password"`
	Role     *models.Role `json:"role"`
}

// ListUsers returns all users.
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.users.GetAll()
}

// CreateUser hashes the password, stamps activity, and persists the user.
func (s *UserService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	if _, err := s.users.GetByEmail(req.Email); err == nil {
		return nil, utils.ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		LastActiveAt: time.Now(),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	log.Info().Int("user_id", user.ID).Str("email", user.Email).Msg("User created")
	return user, nil
}

// UpdateUser applies the present fields. The stored password hash is replaced
// only when a non-empty password is supplied; an update that omits the
// password leaves the hash untouched.
func (s *UserService) UpdateUser(id int, req *UpdateUserRequest) (*models.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrUserNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		if _, err := s.users.GetByEmail(*req.Email); err == nil {
			return nil, utils.ErrEmailTaken
		} else if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.LastActiveAt = time.Now()

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(id int) error {
	return s.users.Delete(id)
}

// TouchActivity updates only the last-active timestamp of a user.
func (s *UserService) TouchActivity(id int) error {
	if err := s.users.TouchLastActive(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.ErrUserNotFound
		}
		return err
	}
	return nil
}
