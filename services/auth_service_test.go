package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hashed)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("s3cret-pass")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("wrong")))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "access-secret-for-tests")
	t.Setenv("SECRET_KEY_REFRESH_TOKEN", "refresh-secret-for-tests")

	access, refresh, err := IssueTokenPair(42)
	require.NoError(t, err)

	userID, err := GetUserIDFromToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)

	userID, err = GetUserIDFromRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenSecretsAreNotInterchangeable(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "access-secret-for-tests")
	t.Setenv("SECRET_KEY_REFRESH_TOKEN", "refresh-secret-for-tests")

	access, refresh, err := IssueTokenPair(42)
	require.NoError(t, err)

	_, err = GetUserIDFromToken(refresh)
	assert.Error(t, err)

	_, err = GetUserIDFromRefreshToken(access)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	t.Setenv("SECRET_KEY_ACCESS_TOKEN", "access-secret-for-tests")

	_, err := GetUserIDFromToken("not-a-token")
	assert.Error(t, err)
}
