package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ngPass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Str0ngPass", hash)

	assert.True(t, CheckPassword("Str0ngPass", hash))
	assert.False(t, CheckPassword("WrongPass1", hash))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("Str0ngPass")
	require.NoError(t, err)
	second, err := HashPassword("Str0ngPass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPassword_InvalidStoredHash(t *testing.T) {
	assert.False(t, CheckPassword("Str0ngPass", "not-a-bcrypt-hash"))
}
