package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitpet/internal/auth"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("Str0ng!Pass")
	require.NoError(t, err)

	assert.NotEqual(t, "Str0ng!Pass", hash)
	assert.NoError(t, auth.CheckPassword(hash, "Str0ng!Pass"))
	assert.Error(t, auth.CheckPassword(hash, "str0ng!pass"))
	assert.Error(t, auth.CheckPassword(hash, ""))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	h1, err := auth.HashPassword("Str0ng!Pass")
	require.NoError(t, err)
	h2, err := auth.HashPassword("Str0ng!Pass")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
