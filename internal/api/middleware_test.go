package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pradeepaul/devConnector/internal/api"
	"github.com/pradeepaul/devConnector/internal/token"
)

func protectedApp(tokens *token.Service) *fiber.App {
	app := fiber.New()
	app.Get("/protected", api.AuthMiddleware(tokens), func(c *fiber.Ctx) error {
		userID, err := api.UserIDFromContext(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": err.Error()})
		}
		return c.JSON(fiber.Map{"user": userID})
	})
	return app
}

func bodyJSON(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	app := protectedApp(token.NewService("s", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "No token, authorization denied.", bodyJSON(t, resp)["msg"])
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	app := protectedApp(token.NewService("s", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(api.TokenHeader, "garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "token is not valid", bodyJSON(t, resp)["msg"])
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	app := protectedApp(token.NewService("right", time.Hour))

	other := token.NewService("wrong", time.Hour)
	tokenString, err := other.Issue(uuid.New())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(api.TokenHeader, tokenString)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := token.NewService("s", time.Hour)
	app := protectedApp(tokens)

	userID := uuid.New()
	tokenString, err := tokens.Issue(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(api.TokenHeader, tokenString)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, userID.String(), bodyJSON(t, resp)["user"])
}
