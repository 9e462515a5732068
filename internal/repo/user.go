package repo

import (
	"github.com/crucial707/lab-inventory/internal/apperrors"
	"github.com/crucial707/lab-inventory/internal/auth"
	"github.com/crucial707/lab-inventory/internal/models"
	"github.com/crucial707/lab-inventory/internal/store"
)

// Default admin credential seeded on first run. The demo password matches
// the lab's original deployment and uses the legacy sha256 digest.
const (
	defaultAdminUser     = "admin"
	defaultAdminPassword = "admin123"
)

// ==========================
// UserRepo
// ==========================

type UserRepo struct {
	store *store.Store
}

// ==========================
// Constructor
// ==========================

func NewUserRepo(s *store.Store) *UserRepo {
	return &UserRepo{store: s}
}

// load reads every credential, seeding the default admin when no store
// exists yet.
func (r *UserRepo) load() ([]models.User, error) {
	var users []models.User
	ok, err := r.store.Load(&users)
	if err != nil {
		return nil, err
	}
	if !ok {
		users = []models.User{{
			Username:     defaultAdminUser,
			PasswordHash: auth.SHA256Hex(defaultAdminPassword),
			Role:         models.RoleAdmin,
		}}
		if err := r.store.Save(users); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// ==========================
// Get By Username
// ==========================

// GetByUsername returns the credential and whether it exists. Absence is not
// an error here; the auth service collapses it with a bad password.
func (r *UserRepo) GetByUsername(username string) (models.User, bool, error) {
	users, err := r.load()
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

// ==========================
// Create User
// ==========================

// Create appends a credential. Duplicate usernames fail with
// apperrors.ErrUsernameTaken and leave the store unchanged.
func (r *UserRepo) Create(u models.User) (models.User, error) {
	users, err := r.load()
	if err != nil {
		return models.User{}, err
	}
	for _, e := range users {
		if e.Username == u.Username {
			return models.User{}, apperrors.ErrUsernameTaken
		}
	}
	users = append(users, u)
	if err := r.store.Save(users); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// ==========================
// List Users
// ==========================

func (r *UserRepo) List() ([]models.User, error) {
	return r.load()
}
