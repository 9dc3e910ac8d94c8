package usecase

import (
	"context"
	"time"

	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/domain/repository"
	"github.com/geomark-service/internal/pkg/errors"
	"github.com/geomark-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// GeocodeUseCase resolves coordinates to place names through the external
// lookup service, with a Redis cache in front.
type GeocodeUseCase struct {
	geocodeRepo repository.GeocodeRepository
	cacheRepo   repository.CacheRepository
	cacheTTL    time.Duration
	logger      *zap.Logger
}

func NewGeocodeUseCase(
	geocodeRepo repository.GeocodeRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocodeRepo: geocodeRepo,
		cacheRepo:   cacheRepo,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Reverse returns the address for a coordinate. Cache failures degrade to a
// direct lookup; only a failed lookup itself is an error.
func (uc *GeocodeUseCase) Reverse(ctx context.Context, lat, lng float64) (*domain.Address, error) {
	if !utils.ValidateCoordinates(lat, lng) {
		return nil, errors.ErrInvalidCoordinates
	}

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetAddress(ctx, lat, lng)
		if err != nil {
			uc.logger.Warn("Geocode cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	addr, err := uc.geocodeRepo.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		uc.logger.Error("Reverse geocode failed",
			zap.Float64("lat", lat),
			zap.Float64("lng", lng),
			zap.Error(err))
		return nil, errors.ErrGeocodeError
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetAddress(ctx, lat, lng, addr, uc.cacheTTL); err != nil {
			uc.logger.Warn("Geocode cache write failed", zap.Error(err))
		}
	}

	return addr, nil
}
