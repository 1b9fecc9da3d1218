package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	// MinCost keeps the CPU-bound work factor out of the test runtime.
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash then verify round trip", func(t *testing.T) {
		t.Parallel()

		hash, err := hasher.Hash("secret1")
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		assert.NotEqual(t, "secret1", hash)
		assert.True(t, hasher.Verify("secret1", hash))
		assert.False(t, hasher.Verify("secret2", hash))
		assert.False(t, hasher.Verify("", hash))
	})

	t.Run("same plaintext yields distinct salted hashes", func(t *testing.T) {
		t.Parallel()

		h1, err := hasher.Hash("secret1")
		require.NoError(t, err)
		h2, err := hasher.Hash("secret1")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})

	t.Run("out-of-range cost falls back to default", func(t *testing.T) {
		t.Parallel()

		h := NewBcryptHasher(bcrypt.MaxCost + 1)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)

		h = NewBcryptHasher(0)
		assert.Equal(t, bcrypt.DefaultCost, h.cost)
	})

	t.Run("verify rejects garbage hash", func(t *testing.T) {
		t.Parallel()

		assert.False(t, hasher.Verify("secret1", "not-a-bcrypt-hash"))
	})
}
