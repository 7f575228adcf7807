package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("verifies against its own plaintext", func(t *testing.T) {
		hash, err := HashPassword("supersecret")
		require.NoError(t, err)
		assert.True(t, CheckPassword("supersecret", hash))
	})

	t.Run("salts independently", func(t *testing.T) {
		first, err := HashPassword("supersecret")
		require.NoError(t, err)
		second, err := HashPassword("supersecret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, CheckPassword("supersecret", first))
		assert.True(t, CheckPassword("supersecret", second))
	})
}

func TestCheckPassword(t *testing.T) {
	t.Run("rejects wrong password", func(t *testing.T) {
		hash, err := HashPassword("supersecret")
		require.NoError(t, err)
		assert.False(t, CheckPassword("wrong", hash))
	})

	t.Run("malformed hash is a mismatch, not an error", func(t *testing.T) {
		assert.False(t, CheckPassword("supersecret", "not-a-bcrypt-hash"))
		assert.False(t, CheckPassword("supersecret", ""))
	})
}
