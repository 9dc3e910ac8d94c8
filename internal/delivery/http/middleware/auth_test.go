package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geomark-service/internal/delivery/http/middleware"
	"github.com/geomark-service/internal/pkg/auth"
)

func newTestApp(t *testing.T) (*fiber.App, *auth.TokenManager) {
	t.Helper()

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected", middleware.Auth(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": middleware.UserID(c)})
	})

	return app, tokens
}

func TestAuth(t *testing.T) {
	t.Run("missing header is rejected", func(t *testing.T) {
		app, _ := newTestApp(t)

		req := httptest.NewRequest("GET", "/protected", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		app, tokens := newTestApp(t)

		token, err := tokens.Generate(1)
		require.NoError(t, err)

		for _, header := range []string{
			"Bearer",
			"Bearer ",
			token,
			"Basic " + token,
		} {
			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Authorization", header)
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header: %q", header)
		}
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		app, _ := newTestApp(t)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		app, _ := newTestApp(t)

		other, err := auth.NewTokenManager("other-secret", time.Hour)
		require.NoError(t, err)
		token, err := other.Generate(1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		app, tokens := newTestApp(t)

		token, err := tokens.Generate(42)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("bearer scheme is case insensitive", func(t *testing.T) {
		app, tokens := newTestApp(t)

		token, err := tokens.Generate(42)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
