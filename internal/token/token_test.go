package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pradeepaul/devConnector/internal/token"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)
	userID := uuid.New()

	tokenString, err := svc.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	got, err := svc.Verify(tokenString)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := token.NewService("secret-one", time.Hour)
	verifier := token.NewService("secret-two", time.Hour)

	tokenString, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(tokenString)
	require.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	svc := token.NewService("test-secret", -time.Minute)

	tokenString, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	require.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	svc := token.NewService("test-secret", time.Hour)

	_, err := svc.Verify("not-a-token")
	require.ErrorIs(t, err, token.ErrInvalidToken)
}
