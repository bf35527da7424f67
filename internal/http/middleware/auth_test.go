package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEqual(t, "pw123", hash)

	assert.True(t, CheckPassword(hash, "pw123"))
	assert.False(t, CheckPassword(hash, "pw124"))
	assert.False(t, CheckPassword("not-a-hash", "pw123"))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("pw123")
	require.NoError(t, err)
	second, err := HashPassword("pw123")
	require.NoError(t, err)

	// same plaintext, different salt, different hash
	assert.NotEqual(t, first, second)
}
