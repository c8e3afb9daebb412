package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelar/taskhub/internal/adapter/token"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	mgr := token.NewJWT("test-secret", time.Hour)
	userID := uuid.New()

	signed, err := mgr.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	got, err := mgr.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := token.NewJWT("secret-a", time.Hour).Issue(uuid.New())
	require.NoError(t, err)

	_, err = token.NewJWT("secret-b", time.Hour).Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	mgr := token.NewJWT("test-secret", -time.Minute)

	signed, err := mgr.Issue(uuid.New())
	require.NoError(t, err)

	_, err = mgr.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := token.NewJWT("test-secret", time.Hour).Verify("not-a-jwt")
	assert.Error(t, err)
}
