package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	maker, err := NewMaker("test-secret", time.Hour)
	require.NoError(t, err)

	signed, expiresAt, err := maker.Issue("user-1", "customer")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	principal, err := maker.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.UserID)
	assert.Equal(t, "customer", principal.Role)
}

func TestVerifyWrongSecret(t *testing.T) {
	maker, err := NewMaker("secret-a", time.Hour)
	require.NoError(t, err)

	signed, _, err := maker.Issue("user-1", "admin")
	require.NoError(t, err)

	other, err := NewMaker("secret-b", time.Hour)
	require.NoError(t, err)

	_, err = other.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	maker, err := NewMaker("test-secret", time.Hour)
	require.NoError(t, err)
	maker.expiry = -time.Minute

	signed, _, err := maker.Issue("user-1", "customer")
	require.NoError(t, err)

	_, err = maker.Verify(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyGarbage(t *testing.T) {
	maker, err := NewMaker("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = maker.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewMakerEmptySecret(t *testing.T) {
	_, err := NewMaker("", time.Hour)
	assert.Error(t, err)
}
