package service

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/tokoprima/admin-api/internal/models"
	"github.com/tokoprima/admin-api/internal/utils"
)

// CredentialStore is the slice of the user repository the auth service needs.
type CredentialStore interface {
	GetByEmail(email string) (*models.User, error)
}

// AuthService performs credential checks and issues admin tokens.
type AuthService struct {
	users  CredentialStore
	tokens *utils.JWTManager
}

// NewAuthService constructs an AuthService.
func NewAuthService(users CredentialStore, tokens *utils.JWTManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies an email/password pair and returns the user together with a
// signed token. Unknown email and wrong password collapse into the same
// invalid-credentials error so callers cannot enumerate accounts.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		log.Debug().Str("email", email).Msg("Login attempt for unknown email")
		return nil, "", utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("email", email).Msg("Password verification failed")
		return nil, "", utils.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to sign token")
		return nil, "", err
	}

	log.Info().Str("email", email).Msg("Login successful")
	return user, token, nil
}
