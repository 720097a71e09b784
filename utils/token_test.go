package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken("user-1", "test-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := CreateToken("user-1", "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	require.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	token, err := CreateToken("user-1", "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, "test-secret")
	require.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")
	require.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("supersecret")
	require.NoError(t, err)
	require.NotEqual(t, "supersecret", hashed)

	require.NoError(t, VerifyPassword(hashed, "supersecret"))
	require.Error(t, VerifyPassword(hashed, "wrong"))
}
