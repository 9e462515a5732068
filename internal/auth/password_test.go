package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Bcrypt(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"), "new hashes must be bcrypt, got %q", hash)

	assert.True(t, VerifyPassword(hash, "pw1"))
	assert.False(t, VerifyPassword(hash, "wrongpw"))
}

func TestVerifyPassword_LegacySHA256(t *testing.T) {
	legacy := SHA256Hex("admin123")

	assert.True(t, VerifyPassword(legacy, "admin123"))
	assert.False(t, VerifyPassword(legacy, "admin1234"))
}

func TestSHA256Hex_FixedLength(t *testing.T) {
	assert.Len(t, SHA256Hex(""), 64)
	assert.Len(t, SHA256Hex("anything at all"), 64)
}
