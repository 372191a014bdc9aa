package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifyPassword("password123", hash))
	assert.False(t, VerifyPassword("autre-mot-de-passe", hash))
}

func TestVerifyPasswordInvalidHash(t *testing.T) {
	assert.False(t, VerifyPassword("password123", "pas-un-hash-bcrypt"))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)

	second, err := HashPassword("password123")
	require.NoError(t, err)

	// Le sel bcrypt rend chaque hash unique
	assert.NotEqual(t, first, second)
}
