// Package session keeps the logged-in identity between CLI invocations. The
// signed token lives in a dotfile in the user's home directory; every
// command that mutates state verifies it and rebuilds the caller context.
package session

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/crucial707/lab-inventory/internal/auth"
	"github.com/crucial707/lab-inventory/internal/models"
)

const tokenFileName = ".lab_inventory_token"

func path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, tokenFileName), nil
}

// Save stores the session token locally.
func Save(token string) error {
	p, err := path()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Read returns the stored session token.
func Read() (string, error) {
	p, err := path()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Clear removes the stored token. A missing file is fine.
func Clear() error {
	p, err := path()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Caller verifies the stored token and rebuilds the caller identity.
func Caller(secret []byte) (models.Caller, error) {
	token, err := Read()
	if err != nil {
		return models.Caller{}, fmt.Errorf("please login first")
	}
	caller, err := auth.VerifyToken(secret, token)
	if err != nil {
		return models.Caller{}, fmt.Errorf("session expired or invalid, please login again")
	}
	return caller, nil
}
