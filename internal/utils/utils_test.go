package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hashed, err := Hash("password1", 1)
	require.NoError(t, err)
	assert.NotEqual(t, "password1", hashed)

	assert.NoError(t, CompareHash(hashed, "password1"))
	assert.ErrorIs(t, CompareHash(hashed, "wrong"), ErrPasswordMismatch)
}

func TestCompareHash_InvalidHash(t *testing.T) {
	err := CompareHash("not-a-hash", "password1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("password", 0))
	assert.False(t, IsStrongPassword("password", 3))
	assert.False(t, IsStrongPassword("aliya1990", 3, "aliya"))
	assert.True(t, IsStrongPassword("correct-horse-battery-staple-91!", 3))
}
