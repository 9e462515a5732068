// Package service implements the business rules on top of the repositories:
// authentication, registration, the inventory status lifecycle, overdue
// detection, search, and audit emission.
package service

import (
	"go.uber.org/zap"

	"github.com/crucial707/lab-inventory/internal/apperrors"
	"github.com/crucial707/lab-inventory/internal/auth"
	"github.com/crucial707/lab-inventory/internal/logger"
	"github.com/crucial707/lab-inventory/internal/models"
	"github.com/crucial707/lab-inventory/internal/repo"
)

// Auth implements authentication and sign-up.
type Auth struct {
	users       *repo.UserRepo
	adminSecret string
	log         *zap.SugaredLogger
}

func NewAuth(users *repo.UserRepo, adminSecret string) *Auth {
	return &Auth{users: users, adminSecret: adminSecret, log: logger.Get()}
}

// Authenticate returns the stored role on a credential match. Unknown users
// and wrong passwords collapse into the same failure on purpose.
func (s *Auth) Authenticate(username, password string) (string, error) {
	u, found, err := s.users.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if !found || !auth.VerifyPassword(u.PasswordHash, password) {
		return "", apperrors.ErrInvalidCredentials
	}
	return u.Role, nil
}

// Register creates a new credential. Requesting the Admin role requires the
// shared secret; any other request is stored as Student. Nothing is written
// when the secret check fails.
func (s *Auth) Register(username, password, requestedRole, adminSecret string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, apperrors.WithMessage(apperrors.ErrValidation, "username and password are required")
	}

	role := models.RoleStudent
	if requestedRole == models.RoleAdmin {
		if adminSecret != s.adminSecret {
			return models.User{}, apperrors.ErrBadAdminSecret
		}
		role = models.RoleAdmin
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	u, err := s.users.Create(models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return models.User{}, err
	}

	s.log.Infow("user registered", "username", u.Username, "role", u.Role)
	return u, nil
}
