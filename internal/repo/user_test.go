package repo

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/crucial707/lab-inventory/internal/apperrors"
	"github.com/crucial707/lab-inventory/internal/auth"
	"github.com/crucial707/lab-inventory/internal/models"
	"github.com/crucial707/lab-inventory/internal/store"
)

func newUserRepo(t *testing.T) *UserRepo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	return NewUserRepo(store.New(path))
}

func TestUserRepo_SeedsDefaultAdmin(t *testing.T) {
	repo := newUserRepo(t)

	u, found, err := repo.GetByUsername("admin")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if !found {
		t.Fatal("default admin was not seeded")
	}
	if u.Role != models.RoleAdmin {
		t.Errorf("expected Admin role, got %q", u.Role)
	}
	if u.PasswordHash != auth.SHA256Hex("admin123") {
		t.Errorf("seeded admin must carry the legacy sha256 digest")
	}
}

func TestUserRepo_Create_Conflict(t *testing.T) {
	repo := newUserRepo(t)

	u := models.User{Username: "bob", PasswordHash: "x", Role: models.RoleStudent}
	if _, err := repo.Create(u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Create(u); !errors.Is(err, apperrors.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}

	users, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	// admin seed + bob, nothing else.
	if len(users) != 2 {
		t.Errorf("conflict must not write a record, have %d users", len(users))
	}
}

func TestUserRepo_GetByUsername_Unknown(t *testing.T) {
	repo := newUserRepo(t)

	_, found, err := repo.GetByUsername("ghost")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if found {
		t.Error("unknown user reported as found")
	}
}
