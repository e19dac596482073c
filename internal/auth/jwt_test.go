package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_RoundTrip(t *testing.T) {
	v := NewVerifier("test-secret")

	token, err := v.Sign("user-1", time.Hour)
	require.NoError(t, err)

	claims, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewVerifier("secret-a").Sign("user-1", time.Hour)
	require.NoError(t, err)

	_, err = NewVerifier("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	v := NewVerifier("test-secret")

	token, err := v.Sign("user-1", -time.Minute)
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := NewVerifier("test-secret").Verify("not-a-token")
	assert.Error(t, err)
}
