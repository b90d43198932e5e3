package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cure-Password!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cure-Password!", hash)

	assert.True(t, CheckPassword(hash, "s3cure-Password!"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("same-input")
	require.NoError(t, err)
	second, err := HashPassword("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
