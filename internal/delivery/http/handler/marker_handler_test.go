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
	"github.com/geomark-service/internal/delivery/http/middleware"
	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/pkg/auth"
	"github.com/geomark-service/internal/usecase"
)

// MockMarkerRepository is a mock of MarkerRepository
type MockMarkerRepository struct {
	mock.Mock
}

func (m *MockMarkerRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Marker, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Marker), args.Error(1)
}

func (m *MockMarkerRepository) Create(ctx context.Context, userID int64, marker *domain.Marker) (int64, error) {
	args := m.Called(ctx, userID, marker)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMarkerRepository) Update(ctx context.Context, id, userID int64, patch *domain.MarkerPatch) error {
	args := m.Called(ctx, id, userID, patch)
	return args.Error(0)
}

func (m *MockMarkerRepository) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockMarkerRepository) DeleteAll(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type markerTestEnv struct {
	app    *fiber.App
	repo   *MockMarkerRepository
	tokens *auth.TokenManager
}

func newMarkerTestEnv(t *testing.T) *markerTestEnv {
	t.Helper()

	logger := zap.NewNop()
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	repo := &MockMarkerRepository{}
	uc := usecase.NewMarkerUseCase(repo, nil, logger)
	h := handler.NewMarkerHandler(uc, logger)

	app := fiber.New()
	markers := app.Group("/markers", middleware.Auth(tokens))
	markers.Get("/", h.List)
	markers.Post("/", h.Create)
	markers.Put("/:id", h.Update)
	markers.Delete("/:id", h.Delete)
	markers.Delete("/", h.DeleteAll)

	return &markerTestEnv{app: app, repo: repo, tokens: tokens}
}

func bearerFor(t *testing.T, tokens *auth.TokenManager, userID int64) string {
	t.Helper()
	token, err := tokens.Generate(userID)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestMarkerHandler_Unauthorized(t *testing.T) {
	env := newMarkerTestEnv(t)

	req := httptest.NewRequest("GET", "/markers/", nil)
	resp, err := env.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	env.repo.AssertNotCalled(t, "ListByUser")
}

func TestMarkerHandler_List(t *testing.T) {
	env := newMarkerTestEnv(t)

	markers := []*domain.Marker{
		{ID: 1, UserID: 42, Name: "Home", Latitude: 41.38, Longitude: 2.17},
	}
	env.repo.On("ListByUser", mock.Anything, int64(42)).Return(markers, nil)

	req := httptest.NewRequest("GET", "/markers/", nil)
	req.Header.Set("Authorization", bearerFor(t, env.tokens, 42))
	resp, err := env.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var got []domain.Marker
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Home", got[0].Name)
}

func TestMarkerHandler_Create(t *testing.T) {
	env := newMarkerTestEnv(t)

	env.repo.On("Create", mock.Anything, int64(42), mock.MatchedBy(func(m *domain.Marker) bool {
		return m.Name == "Office" && m.Latitude == 41.3851
	})).Return(int64(7), nil)

	payload, _ := json.Marshal(fiber.Map{
		"name":      "Office",
		"latitude":  41.3851,
		"longitude": 2.1734,
	})
	req := httptest.NewRequest("POST", "/markers/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, env.tokens, 42))
	resp, err := env.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 7}`, string(body))
}

func TestMarkerHandler_Create_MissingCoordinates(t *testing.T) {
	env := newMarkerTestEnv(t)

	payload, _ := json.Marshal(fiber.Map{"name": "Office"})
	req := httptest.NewRequest("POST", "/markers/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, env.tokens, 42))
	resp, err := env.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	env.repo.AssertNotCalled(t, "Create")
}

func TestMarkerHandler_Create_OutOfRangeCoordinates(t *testing.T) {
	env := newMarkerTestEnv(t)

	payload, _ := json.Marshal(fiber.Map{
		"latitude":  95.0,
		"longitude": 2.1734,
	})
	req := httptest.NewRequest("POST", "/markers/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, env.tokens, 42))
	resp, err := env.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	env.repo.AssertNotCalled(t, "Create")
}

func TestMarkerHandler_Update(t *testing.T) {
	env := newMarkerTestEnv(t)

	env.repo.On("Update", mock.Anything, int64(5), int64(42), mock.MatchedBy(func(p *domain.MarkerPatch) bool {
		return p.Name != nil && *p.Name == "Renamed" && p.Latitude == nil
	})).Return(nil)

	payload, _ := json.Marshal(fiber.Map{"name": "Renamed"})
	req := httptest.NewRequest("PUT", "/markers/5", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, env.tokens, 42))
	resp, err := env.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	env.repo.AssertExpectations(t)
}

func TestMarkerHandler_Update_BadID(t *testing.T) {
	env := newMarkerTestEnv(t)

	payload, _ := json.Marshal(fiber.Map{"name": "Renamed"})
	req := httptest.NewRequest("PUT", "/markers/abc", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, env.tokens, 42))
	resp, err := env.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	env.repo.AssertNotCalled(t, "Update")
}

func TestMarkerHandler_DeleteAll(t *testing.T) {
	env := newMarkerTestEnv(t)

	env.repo.On("DeleteAll", mock.Anything, int64(42)).Return(nil)

	req := httptest.NewRequest("DELETE", "/markers/", nil)
	req.Header.Set("Authorization", bearerFor(t, env.tokens, 42))
	resp, err := env.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	env.repo.AssertExpectations(t)
}
