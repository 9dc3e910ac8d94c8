package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/geomark-service/internal/domain"
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

// MockCircleRepository is a mock of CircleRepository
type MockCircleRepository struct {
	mock.Mock
}

func (m *MockCircleRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Circle, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Circle), args.Error(1)
}

func (m *MockCircleRepository) Create(ctx context.Context, userID int64, c *domain.Circle) (int64, error) {
	args := m.Called(ctx, userID, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCircleRepository) Update(ctx context.Context, id, userID int64, patch *domain.CirclePatch) error {
	args := m.Called(ctx, id, userID, patch)
	return args.Error(0)
}

func (m *MockCircleRepository) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockCircleRepository) DeleteAll(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockPolylineRepository is a mock of PolylineRepository
type MockPolylineRepository struct {
	mock.Mock
}

func (m *MockPolylineRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Polyline, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Polyline), args.Error(1)
}

func (m *MockPolylineRepository) Create(ctx context.Context, userID int64, p *domain.Polyline) (int64, error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPolylineRepository) Update(ctx context.Context, id, userID int64, patch *domain.PolylinePatch) error {
	args := m.Called(ctx, id, userID, patch)
	return args.Error(0)
}

func (m *MockPolylineRepository) Delete(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockPolylineRepository) DeleteAll(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ClaimPending(ctx context.Context, stream, group, consumer string, minIdle time.Duration, count int) ([]domain.PendingMessage, error) {
	args := m.Called(ctx, stream, group, consumer, minIdle, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PendingMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetAddress(ctx context.Context, lat, lng float64) (*domain.Address, error) {
	args := m.Called(ctx, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func (m *MockCacheRepository) SetAddress(ctx context.Context, lat, lng float64, addr *domain.Address, ttl time.Duration) error {
	args := m.Called(ctx, lat, lng, addr, ttl)
	return args.Error(0)
}

// MockGeocodeRepository is a mock of GeocodeRepository
type MockGeocodeRepository struct {
	mock.Mock
}

func (m *MockGeocodeRepository) ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.Address, error) {
	args := m.Called(ctx, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}

func ptrString(s string) *string    { return &s }
func ptrFloat64(f float64) *float64 { return &f }
