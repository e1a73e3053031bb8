package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)
	require.Len(t, salt, 32) // 16 random bytes, hex encoded

	hash, err := HashPassword("Str0ng!pass", salt)
	require.NoError(t, err)
	require.NotEqual(t, "Str0ng!pass", hash)

	t.Run("same_salt_same_verifier", func(t *testing.T) {
		again, err := HashPassword("Str0ng!pass", salt)
		require.NoError(t, err)
		require.Equal(t, hash, again)
	})

	t.Run("different_salt_different_verifier", func(t *testing.T) {
		otherSalt, err := GenerateSalt()
		require.NoError(t, err)
		require.NotEqual(t, salt, otherSalt)

		other, err := HashPassword("Str0ng!pass", otherSalt)
		require.NoError(t, err)
		require.NotEqual(t, hash, other)
	})

	t.Run("verify_accepts_correct_password", func(t *testing.T) {
		ok, err := VerifyPassword("Str0ng!pass", salt, hash)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("verify_rejects_wrong_password", func(t *testing.T) {
		ok, err := VerifyPassword("Wrong!pass1", salt, hash)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("malformed_salt", func(t *testing.T) {
		_, err := HashPassword("Str0ng!pass", "not-hex")
		require.Error(t, err)
	})
}

func TestGenerateSessionToken(t *testing.T) {
	first, err := GenerateSessionToken()
	require.NoError(t, err)
	require.Len(t, first, 64) // 32 random bytes, hex encoded

	second, err := GenerateSessionToken()
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
