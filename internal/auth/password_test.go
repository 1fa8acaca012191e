package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)
	require.NotEqual(t, "pw1", hash)

	valid, err := VerifyPassword("pw1", hash)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestVerifyPasswordMismatch(t *testing.T) {
	hash, err := HashPassword("pw1")
	require.NoError(t, err)

	// Wrong password is not an error, just not valid
	valid, err := VerifyPassword("wrongpw", hash)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestVerifyPasswordBrokenHash(t *testing.T) {
	// A corrupt stored hash is an error, distinct from a wrong password
	valid, err := VerifyPassword("pw1", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, valid)
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("pw1")
	require.NoError(t, err)
	h2, err := HashPassword("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
