// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "secret1")

	// Fresh salt per call.
	other, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	t.Run("Match", func(t *testing.T) {
		valid, err := VerifyPassword("secret1", hash)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Mismatch", func(t *testing.T) {
		valid, err := VerifyPassword("wrong", hash)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("MalformedHash", func(t *testing.T) {
		_, err := VerifyPassword("secret1", "not-a-hash")
		assert.Error(t, err)
	})
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	t.Run("NilHashNeverMatches", func(t *testing.T) {
		valid, err := VerifyPasswordTimingSafe("secret1", nil)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("RealHashMatches", func(t *testing.T) {
		hash, err := HashPassword("secret1")
		require.NoError(t, err)

		valid, err := VerifyPasswordTimingSafe("secret1", &hash)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("RealHashMismatch", func(t *testing.T) {
		hash, err := HashPassword("secret1")
		require.NoError(t, err)

		valid, err := VerifyPasswordTimingSafe("wrong", &hash)
		require.NoError(t, err)
		assert.False(t, valid)
	})
}
