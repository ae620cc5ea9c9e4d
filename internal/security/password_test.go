package security_test

import (
	"testing"

	"auth-web-server/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := security.HashPassword("StrongPass123!")
	require.NoError(t, err)

	assert.NotEqual(t, "StrongPass123!", hash)
	assert.True(t, security.CheckPassword("StrongPass123!", hash))
	assert.False(t, security.CheckPassword("wrongpass", hash))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, security.CheckPassword("StrongPass123!", "не bcrypt хэш"))
}
