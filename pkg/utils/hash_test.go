package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Senha123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Senha123", hash)

	assert.True(t, CheckPasswordHash("Senha123", hash))
	assert.False(t, CheckPasswordHash("senha123", hash))
	assert.False(t, CheckPasswordHash("", hash))
}
