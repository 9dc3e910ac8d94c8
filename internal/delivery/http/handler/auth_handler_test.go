package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geomark-service/internal/delivery/http/handler"
	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/pkg/auth"
	"github.com/geomark-service/internal/pkg/errors"
	"github.com/geomark-service/internal/usecase"
)

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newAuthTestApp(t *testing.T, repo *MockUserRepository) (*fiber.App, *auth.TokenManager) {
	t.Helper()

	logger := zap.NewNop()
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	uc := usecase.NewAuthUseCase(repo, tokens, 4, logger)
	h := handler.NewAuthHandler(uc, logger)

	app := fiber.New()
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)

	return app, tokens
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		repo := &MockUserRepository{}
		app, _ := newAuthTestApp(t, repo)

		repo.On("Create", mock.Anything, "alice@example.com", mock.Anything).Return(int64(1), nil)

		payload, _ := json.Marshal(fiber.Map{"email": "alice@example.com", "password": "pass123"})
		req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id": 1}`, string(body))
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		repo := &MockUserRepository{}
		app, _ := newAuthTestApp(t, repo)

		repo.On("Create", mock.Anything, "alice@example.com", mock.Anything).
			Return(int64(0), errors.ErrDuplicateEmail)

		payload, _ := json.Marshal(fiber.Map{"email": "alice@example.com", "password": "pass123"})
		req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("invalid email is 400", func(t *testing.T) {
		repo := &MockUserRepository{}
		app, _ := newAuthTestApp(t, repo)

		payload, _ := json.Marshal(fiber.Map{"email": "not-an-email", "password": "pass123"})
		req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	hash, err := auth.HashPassword("pass123", 4)
	require.NoError(t, err)
	user := &domain.User{ID: 7, Email: "alice@example.com", PasswordHash: hash}

	t.Run("valid credentials return a usable token", func(t *testing.T) {
		repo := &MockUserRepository{}
		app, tokens := newAuthTestApp(t, repo)

		repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)

		payload, _ := json.Marshal(fiber.Map{"email": "alice@example.com", "password": "pass123"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var got struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(body, &got))

		userID, err := tokens.Validate(got.Token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), userID)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		repo := &MockUserRepository{}
		app, _ := newAuthTestApp(t, repo)

		repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)

		payload, _ := json.Marshal(fiber.Map{"email": "alice@example.com", "password": "wrong"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown email is 401", func(t *testing.T) {
		repo := &MockUserRepository{}
		app, _ := newAuthTestApp(t, repo)

		repo.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(nil, errors.ErrInvalidCredentials)

		payload, _ := json.Marshal(fiber.Map{"email": "nobody@example.com", "password": "pass123"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
