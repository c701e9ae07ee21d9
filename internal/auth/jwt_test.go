package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", "user-1", "User", time.Hour)
	require.NoError(t, err)

	sub, role, err := VerifyToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
	assert.Equal(t, "User", role)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", "user-1", "User", time.Hour)
	require.NoError(t, err)

	_, _, err = VerifyToken("other-secret", token)
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", "user-1", "User", -time.Minute)
	require.NoError(t, err)

	_, _, err = VerifyToken("secret", token)
	assert.Error(t, err)
}
