package repository

import (
	"context"
	"time"

	"github.com/geomark-service/internal/domain"
)

// CacheRepository is the Redis-backed cache boundary.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// GetAddress returns a cached reverse-geocode result, nil on miss.
	GetAddress(ctx context.Context, lat, lng float64) (*domain.Address, error)

	// SetAddress caches a reverse-geocode result.
	SetAddress(ctx context.Context, lat, lng float64, addr *domain.Address, ttl time.Duration) error
}
