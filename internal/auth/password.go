// Package auth handles password digests and local session tokens.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// SHA256Hex returns the unsalted hex digest the original user store
// recorded. Kept for the seeded admin account and legacy records.
func SHA256Hex(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// HashPassword hashes a password with bcrypt for storage. New registrations
// always go through here; only pre-existing records keep sha256 digests.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword checks a password against a stored hash. Bcrypt records are
// checked with bcrypt; anything else falls back to a constant-time
// comparison against the legacy sha256 hex digest.
func VerifyPassword(hash, password string) bool {
	if strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	digest := SHA256Hex(password)
	return subtle.ConstantTimeCompare([]byte(hash), []byte(digest)) == 1
}
