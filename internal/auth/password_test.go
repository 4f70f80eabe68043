package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("hunter42", "pepper", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "hunter42", hash)

	require.NoError(t, ComparePassword(hash, "hunter42", "pepper"))
	require.Error(t, ComparePassword(hash, "hunter43", "pepper"))
	require.Error(t, ComparePassword(hash, "hunter42", "other-pepper"))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("hunter42", "pepper", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("hunter42", "pepper", bcrypt.MinCost)
	require.NoError(t, err)

	// bcrypt salts internally, so equal inputs never collide.
	require.NotEqual(t, first, second)
}
