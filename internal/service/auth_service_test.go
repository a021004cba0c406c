package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pradeepaul/devConnector/internal/gravatar"
	"github.com/pradeepaul/devConnector/internal/service"
	"github.com/pradeepaul/devConnector/internal/token"
)

func newAuthService(userRepo *fakeUserRepo) (service.AuthService, *token.Service) {
	tokens := token.NewService("test-secret", time.Hour)
	return service.NewAuthService(userRepo, tokens, nopPublisher{}), tokens
}

func TestRegisterUser_IssuesVerifiableToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc, tokens := newAuthService(userRepo)

	tokenString, err := svc.RegisterUser(context.Background(), "A", "a@x.com", "secret1")
	require.NoError(t, err)

	userID, err := tokens.Verify(tokenString)
	require.NoError(t, err)

	user, err := userRepo.FindByID(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, "A", user.Name)
	require.Equal(t, "a@x.com", user.Email)
}

func TestRegisterUser_HashesPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc, _ := newAuthService(userRepo)

	_, err := svc.RegisterUser(context.Background(), "A", "a@x.com", "secret1")
	require.NoError(t, err)

	user, err := userRepo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
}

func TestRegisterUser_SetsGravatarAvatar(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc, _ := newAuthService(userRepo)

	_, err := svc.RegisterUser(context.Background(), "A", "a@x.com", "secret1")
	require.NoError(t, err)

	user, err := userRepo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, gravatar.URL("a@x.com"), user.AvatarURL)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc, _ := newAuthService(userRepo)

	_, err := svc.RegisterUser(context.Background(), "A", "a@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.RegisterUser(context.Background(), "B", "a@x.com", "secret2")
	require.Error(t, err)

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	require.Equal(t, "23505", pgErr.Code)

	// the first registration is the only user
	require.Len(t, userRepo.users, 1)
}

func TestLoginUser_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc, tokens := newAuthService(userRepo)

	_, err := svc.RegisterUser(context.Background(), "A", "a@x.com", "secret1")
	require.NoError(t, err)

	tokenString, err := svc.LoginUser(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)

	userID, err := tokens.Verify(tokenString)
	require.NoError(t, err)

	user, err := userRepo.FindByID(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", user.Email)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc, _ := newAuthService(userRepo)

	_, err := svc.RegisterUser(context.Background(), "A", "a@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.LoginUser(context.Background(), "a@x.com", "wrong")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepo())

	_, err := svc.LoginUser(context.Background(), "nobody@x.com", "secret1")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}
