package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	j := NewJWTUtil("secret", 1)

	token, err := j.GenerateToken(42, "v@example.com", "ADMIN")
	require.NoError(t, err)

	claims, err := j.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "v@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTUtil("secret", 1).GenerateToken(1, "a@b.c", "CUSTOMER")
	require.NoError(t, err)

	_, err = NewJWTUtil("other", 1).ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("12345")
	require.NoError(t, err)
	assert.NotEqual(t, "12345", hash)

	assert.True(t, CheckPassword("12345", hash))
	assert.False(t, CheckPassword("wrong", hash))
}
