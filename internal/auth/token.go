package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/crucial707/lab-inventory/internal/apperrors"
	"github.com/crucial707/lab-inventory/internal/models"
)

// IssueToken signs an HS256 session token carrying the caller identity. The
// CLI stores it locally so subsequent commands can rebuild the caller
// context without re-prompting for a password.
func IssueToken(secret []byte, username, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"jti":  uuid.NewString(),
		"sub":  username,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyToken parses a session token and rebuilds the caller context.
// Expired, tampered, or claim-less tokens fail with ErrSessionInvalid.
func VerifyToken(secret []byte, tokenStr string) (models.Caller, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return models.Caller{}, apperrors.Wrap(apperrors.ErrSessionInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Caller{}, apperrors.ErrSessionInvalid
	}
	username, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if username == "" || role == "" {
		return models.Caller{}, apperrors.ErrSessionInvalid
	}

	return models.Caller{Username: username, Role: role}, nil
}
